package dynamo

import "slices"

// Detector iterates a Map from a starting value and reports the first
// recurrence within a fixed bound.
type Detector struct {
	m       Map
	maxIter int
}

// NewDetector returns a detector performing at most maxIter map applications
// per start value. A bound of zero is valid and never converges.
func NewDetector(m Map, maxIter int) (*Detector, error) {
	if maxIter < 0 {
		return nil, ErrParameterBounds
	}
	if m.base < 2 {
		return nil, &BaseError{Base: int(m.base), Wrapped: ErrBaseTooSmall}
	}
	return &Detector{m: m, maxIter: maxIter}, nil
}

// Map returns the underlying iteration step.
func (d *Detector) Map() Map { return d.m }

// MaxIter returns the iteration bound.
func (d *Detector) MaxIter() int { return d.maxIter }

// Detect iterates from n. The start value itself never enters the history,
// so a fixed point shows up as a length-1 cycle on the second application.
// The returned cycle is canonical. ok is false when no value recurred within
// the bound.
func (d *Detector) Detect(n Value) (orbit Orbit, ok bool) {
	history := make([]Value, 0, 16)
	x := n

	for step := 1; step <= d.maxIter; step++ {
		x = d.m.Apply(x)
		if idx := slices.Index(history, x); idx >= 0 {
			// history[idx:] is never empty, Canonical cannot fail here
			cycle, _ := Canonical(history[idx:])
			return Orbit{
				Start:     n,
				Cycle:     cycle,
				Transient: idx,
				Steps:     step,
			}, true
		}
		history = append(history, x)
	}

	return Orbit{Start: n, Steps: d.maxIter}, false
}

// Trajectory returns n followed by up to steps successive map applications.
// Iteration stops early once a value repeats, after appending the repeat.
func (d *Detector) Trajectory(n Value, steps int) []Value {
	if steps < 0 {
		steps = 0
	}
	out := make([]Value, 0, steps+1)
	out = append(out, n)
	seen := map[Value]struct{}{}

	x := n
	for i := 0; i < steps; i++ {
		x = d.m.Apply(x)
		out = append(out, x)
		if _, dup := seen[x]; dup {
			break
		}
		seen[x] = struct{}{}
	}
	return out
}
