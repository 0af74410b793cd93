package config

import "sort"

var Presets = map[string]*Config{
	"binary": {
		Base: 2, N: 255, Spacing: 20, MaxIter: 100,
	},
	"octal": {
		Base: 8, N: 511, Spacing: 20, MaxIter: 100,
	},
	"decimal": {
		Base: 10, N: 255, Spacing: 20, MaxIter: 100,
	},
	"decimal-wide": {
		Base: 10, N: 10000, Spacing: 10, MaxIter: 100,
	},
	"hex": {
		Base: 16, N: 4095, Spacing: 15, MaxIter: 100,
	},
	"sexagesimal": {
		Base: 60, N: 3600, Spacing: 10, MaxIter: 200,
	},
}

// GetPreset returns a copy of the named preset with unset fields filled
// from the defaults, or nil when no such preset exists.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Base = p.Base
	cfg.N = p.N
	cfg.Spacing = p.Spacing
	cfg.MaxIter = p.MaxIter
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
