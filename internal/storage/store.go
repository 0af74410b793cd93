package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/hancock/internal/analysis"
	"github.com/san-kum/hancock/internal/dynamo"
)

const (
	metadataFile = "metadata.json"
	labelsFile   = "labels.csv"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string                  `json:"id"`
	Timestamp time.Time               `json:"timestamp"`
	Base      int                     `json:"base"`
	N         int                     `json:"n"`
	MaxIter   int                     `json:"max_iter"`
	Spacing   int                     `json:"spacing"`
	Metrics   map[string]float64      `json:"metrics"`
	Order     []string                `json:"order"`
	Cycles    map[string]dynamo.Cycle `json:"cycles"`
}

// Params returns the classification parameters the run was made with.
func (m *RunMetadata) Params() analysis.Params {
	return analysis.Params{N: m.N, Base: m.Base, MaxIter: m.MaxIter}
}

func newRunID(base int) string {
	id := uuid.NewString()
	return fmt.Sprintf("base%d_%s", base, id[:strings.IndexByte(id, '-')])
}

// Save writes the run's metadata and per-integer labels under a fresh run id.
// A run directory that could not be written completely is removed.
func (s *Store) Save(cls *analysis.Classification, spacing int) (runID string, err error) {
	runID = newRunID(cls.Params.Base)
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			os.RemoveAll(runDir)
			runID = ""
		}
	}()

	order := cls.Table.Labels()
	cycles := make(map[string]dynamo.Cycle, len(order))
	for _, lbl := range order {
		cycles[lbl], _ = cls.Table.CycleOf(lbl)
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now(),
		Base:      cls.Params.Base,
		N:         cls.Params.N,
		MaxIter:   cls.Params.MaxIter,
		Spacing:   spacing,
		Metrics:   cls.Metrics,
		Order:     order,
		Cycles:    cycles,
	}

	if err := writeMetadata(filepath.Join(runDir, metadataFile), &meta); err != nil {
		return "", err
	}
	if err := writeLabels(filepath.Join(runDir, labelsFile), cls.Labels); err != nil {
		return "", err
	}

	return runID, nil
}

func writeMetadata(path string, meta *RunMetadata) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func writeLabels(path string, labels []string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"n", "label"}); err != nil {
		return err
	}
	for i, lbl := range labels {
		if err := w.Write([]string{strconv.Itoa(i + 1), lbl}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns every readable run, oldest first. Directories without valid
// metadata are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadLabels reads the label sequence of a run; element i belongs to n = i+1.
func (s *Store) LoadLabels(runID string) ([]string, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, labelsFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = 2

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []string{}, nil
	}

	labels := make([]string, 0, len(records)-1)
	for i := 1; i < len(records); i++ {
		n, err := strconv.Atoi(records[i][0])
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", labelsFile, i+1, err)
		}
		if n != i {
			return nil, fmt.Errorf("%s line %d: expected n=%d, got %d", labelsFile, i+1, i, n)
		}
		labels = append(labels, records[i][1])
	}

	return labels, nil
}

// LoadClassification rebuilds a saved run so it can be exported or plotted.
func (s *Store) LoadClassification(runID string) (*analysis.Classification, *RunMetadata, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, nil, err
	}

	labels, err := s.LoadLabels(runID)
	if err != nil {
		return nil, nil, err
	}
	if len(labels) != meta.N {
		return nil, nil, fmt.Errorf("run %s: expected %d labels, found %d", runID, meta.N, len(labels))
	}

	cls, err := analysis.Restore(meta.Params(), labels, meta.Order, meta.Cycles)
	if err != nil {
		return nil, nil, fmt.Errorf("run %s: %w", runID, err)
	}
	for k, v := range meta.Metrics {
		cls.Metrics[k] = v
	}

	return cls, meta, nil
}
