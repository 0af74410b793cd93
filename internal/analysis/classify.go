package analysis

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/san-kum/hancock/internal/dynamo"
)

// ErrUnknownLabel indicates a restored label sequence that refers to a label
// missing from the table.
var ErrUnknownLabel = errors.New("analysis: label not present in table")

// Params selects the integers to classify and how.
type Params struct {
	N       int // classify 1..N
	Base    int
	MaxIter int
}

// Validate checks the parameters without running anything.
func (p Params) Validate() error {
	if p.N < 0 || uint64(p.N) > math.MaxUint32 {
		return fmt.Errorf("%w: n=%d", dynamo.ErrParameterBounds, p.N)
	}
	if p.MaxIter < 0 {
		return fmt.Errorf("%w: max_iter=%d", dynamo.ErrParameterBounds, p.MaxIter)
	}
	_, err := dynamo.NewMap(p.Base)
	return err
}

type options struct {
	workers int
	logger  *slog.Logger
	metrics []dynamo.Metric
}

// Option configures a classification run.
type Option func(*options)

// WithWorkers runs cycle detection on k goroutines. Labels are unaffected.
func WithWorkers(k int) Option {
	return func(o *options) {
		if k > 0 {
			o.workers = k
		}
	}
}

// WithLogger logs newly discovered cycles at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics feeds every orbit, in increasing n order, to ms. Their values
// are reported in Classification.Metrics.
func WithMetrics(ms ...dynamo.Metric) Option {
	return func(o *options) {
		o.metrics = append(o.metrics, ms...)
	}
}

// Classification is the outcome of one run.
type Classification struct {
	Params  Params
	Labels  []string       // Labels[i] belongs to n = i+1
	Orbits  []dynamo.Orbit // nil for restored runs
	Table   *Table
	Metrics map[string]float64

	m dynamo.Map
}

// Classify labels every integer in 1..p.N by the canonical cycle its
// trajectory reaches, or Other when none is found within p.MaxIter steps.
func Classify(ctx context.Context, p Params, opts ...Option) (*Classification, error) {
	o := options{
		workers: 1,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&o)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	m, err := dynamo.NewMap(p.Base)
	if err != nil {
		return nil, err
	}
	det, err := dynamo.NewDetector(m, p.MaxIter)
	if err != nil {
		return nil, err
	}

	cls := &Classification{
		Params:  p,
		Labels:  make([]string, p.N),
		Table:   NewTable(),
		Metrics: make(map[string]float64),
		m:       m,
	}
	if p.N == 0 {
		cls.Orbits = []dynamo.Orbit{}
		return cls, nil
	}

	orbits, found, err := dynamo.DetectRange(ctx, det, 1, dynamo.Value(p.N), o.workers)
	if err != nil {
		return nil, err
	}
	cls.Orbits = orbits

	for _, mt := range o.metrics {
		mt.Reset()
	}

	// single writer: labels depend only on increasing n
	for i := range orbits {
		for _, mt := range o.metrics {
			mt.Observe(orbits[i], found[i])
		}

		if !found[i] {
			cls.Labels[i] = Other
			continue
		}

		lbl, added, err := cls.Table.Assign(orbits[i].Cycle)
		if err != nil {
			return nil, fmt.Errorf("classify n=%d: %w", i+1, err)
		}
		if added {
			o.logger.Debug("new cycle",
				"label", lbl,
				"n", i+1,
				"cycle", orbits[i].Cycle.String(),
				"transient", orbits[i].Transient,
			)
		}
		cls.Labels[i] = lbl
	}

	for _, mt := range o.metrics {
		cls.Metrics[mt.Name()] = mt.Value()
	}

	o.logger.Debug("classification complete",
		"base", p.Base,
		"n", p.N,
		"cycles", cls.Table.Len(),
	)
	return cls, nil
}

// Restore rebuilds a classification from a persisted label sequence and the
// labelled cycles in assignment order.
func Restore(p Params, labels []string, order []string, cycles map[string]dynamo.Cycle) (*Classification, error) {
	m, err := dynamo.NewMap(p.Base)
	if err != nil {
		return nil, err
	}

	table := NewTable()
	for _, lbl := range order {
		c, ok := cycles[lbl]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownLabel, lbl)
		}
		got, _, err := table.Assign(c)
		if err != nil {
			return nil, err
		}
		if got != lbl {
			return nil, fmt.Errorf("analysis: cycle %v restored as %s, expected %s", c, got, lbl)
		}
	}

	for _, lbl := range labels {
		if lbl == Other {
			continue
		}
		if _, ok := table.CycleOf(lbl); !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownLabel, lbl)
		}
	}

	return &Classification{
		Params:  p,
		Labels:  labels,
		Table:   table,
		Metrics: make(map[string]float64),
		m:       m,
	}, nil
}

// Map returns the iteration step the run used.
func (c *Classification) Map() dynamo.Map {
	return c.m
}

// LabelFor returns the label of integer n.
func (c *Classification) LabelFor(n int) (string, bool) {
	if n < 1 || n > len(c.Labels) {
		return "", false
	}
	return c.Labels[n-1], true
}

// UniqueLabels returns the distinct labels in presentation order.
func (c *Classification) UniqueLabels() []string {
	return SortLabels(c.Labels)
}

// Counts returns how many integers carry each label.
func (c *Classification) Counts() map[string]int {
	counts := make(map[string]int)
	for _, l := range c.Labels {
		counts[l]++
	}
	return counts
}
