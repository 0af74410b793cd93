package metrics

import "github.com/san-kum/hancock/internal/dynamo"

// MaxCycleLength tracks the longest cycle seen.
type MaxCycleLength struct {
	name string
	max  int
}

func NewMaxCycleLength() *MaxCycleLength {
	return &MaxCycleLength{
		name: "max_cycle_length",
	}
}

func (m *MaxCycleLength) Name() string {
	return m.name
}

func (m *MaxCycleLength) Observe(o dynamo.Orbit, converged bool) {
	if converged && len(o.Cycle) > m.max {
		m.max = len(o.Cycle)
	}
}

func (m *MaxCycleLength) Value() float64 {
	return float64(m.max)
}

func (m *MaxCycleLength) Reset() {
	m.max = 0
}

// DistinctCycles counts canonical cycles seen at least once.
type DistinctCycles struct {
	name string
	seen map[string]struct{}
}

func NewDistinctCycles() *DistinctCycles {
	return &DistinctCycles{
		name: "distinct_cycles",
		seen: make(map[string]struct{}),
	}
}

func (d *DistinctCycles) Name() string {
	return d.name
}

func (d *DistinctCycles) Observe(o dynamo.Orbit, converged bool) {
	if converged {
		d.seen[o.Cycle.Key()] = struct{}{}
	}
}

func (d *DistinctCycles) Value() float64 {
	return float64(len(d.seen))
}

func (d *DistinctCycles) Reset() {
	d.seen = make(map[string]struct{})
}

// Defaults returns the metrics recorded for every run.
func Defaults() []dynamo.Metric {
	return []dynamo.Metric{
		NewConvergence(),
		NewMeanTransient(),
		NewMaxCycleLength(),
		NewDistinctCycles(),
	}
}
