package dynamo

import (
	"strconv"
	"strings"
)

// Value is a single point of a trajectory.
type Value uint64

// MaxBase is the largest accepted radix. For any base up to 1<<16 the squared
// digit sum of a uint64 stays below 1<<40, so iteration never overflows.
const MaxBase = 1 << 16

// DefaultMaxIter is the iteration bound used when none is configured.
const DefaultMaxIter = 100

// Orbit describes where a starting integer ends up.
type Orbit struct {
	Start     Value
	Cycle     Cycle // canonical
	Transient int   // values produced before the first cycle element
	Steps     int   // map applications performed until the recurrence
}

// Tail returns the number of distinct values visited, transient plus cycle.
func (o Orbit) Tail() int {
	return o.Transient + len(o.Cycle)
}

func (c Cycle) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range c {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatUint(uint64(v), 10))
	}
	b.WriteByte(']')
	return b.String()
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

// Metric accumulates a statistic over the orbits of a classification run.
type Metric interface {
	Name() string
	Observe(o Orbit, converged bool)
	Value() float64
	Reset()
}
