package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/hancock/internal/dynamo"
)

const (
	DefaultBase    = 10
	DefaultN       = 255
	DefaultSpacing = 20
	DefaultMaxIter = dynamo.DefaultMaxIter
	DefaultWorkers = 1
	DefaultOut     = "hancock_pattern.svg"
	DefaultDataDir = ".hancock"
)

var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Base    int    `yaml:"base" env:"BASE"`
	N       int    `yaml:"n" env:"N"`
	Spacing int    `yaml:"spacing" env:"SPACING"`
	MaxIter int    `yaml:"max_iter" env:"MAX_ITER"`
	Workers int    `yaml:"workers" env:"WORKERS"`
	Out     string `yaml:"out" env:"OUT"`
	DataDir string `yaml:"data_dir" env:"DATA_DIR"`
}

func DefaultConfig() *Config {
	return &Config{
		Base:    DefaultBase,
		N:       DefaultN,
		Spacing: DefaultSpacing,
		MaxIter: DefaultMaxIter,
		Workers: DefaultWorkers,
		Out:     DefaultOut,
		DataDir: DefaultDataDir,
	}
}

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto decodes the file at path over cfg. Fields the file omits keep
// their current values.
func LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides fields from HANCOCK_* environment variables. Unset
// variables leave the current value in place.
func (c *Config) ApplyEnv() error {
	return env.ParseWithOptions(c, env.Options{Prefix: "HANCOCK_"})
}

// Validate reports the first field that cannot drive a classification run.
func (c *Config) Validate() error {
	if _, err := dynamo.NewMap(c.Base); err != nil {
		return err
	}
	if c.N < 1 {
		return fmt.Errorf("%w: n must be at least 1, got %d", ErrInvalid, c.N)
	}
	if c.Spacing < 1 {
		return fmt.Errorf("%w: spacing must be at least 1, got %d", ErrInvalid, c.Spacing)
	}
	if c.MaxIter < 0 {
		return fmt.Errorf("%w: max_iter must not be negative, got %d", ErrInvalid, c.MaxIter)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalid, c.Workers)
	}
	return nil
}
