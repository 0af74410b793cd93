package dynamo

import (
	"slices"
	"strconv"
	"strings"
)

// Cycle is the repeating tail of a trajectory. Two cycles are equivalent when
// one is a rotation of the other.
type Cycle []Value

// Compare orders cycles shorter-first, then by the first differing element.
func Compare(a, b Cycle) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return slices.Compare(a, b)
}

// Canonical returns the lexicographically smallest rotation of c. When
// several rotations tie the first one in rotation order wins. The input is
// never modified.
func Canonical(c Cycle) (Cycle, error) {
	if len(c) == 0 {
		return nil, ErrEmptyCycle
	}

	n := len(c)
	best := 0
	for off := 1; off < n; off++ {
		if compareRotations(c, off, best) < 0 {
			best = off
		}
	}

	out := make(Cycle, 0, n)
	out = append(out, c[best:]...)
	out = append(out, c[:best]...)
	return out, nil
}

// compareRotations compares the rotations of c starting at offsets i and j
// without materializing either.
func compareRotations(c Cycle, i, j int) int {
	n := len(c)
	for k := 0; k < n; k++ {
		a, b := c[(i+k)%n], c[(j+k)%n]
		if a < b {
			return -1
		}
		if a > b {
			return 1
		}
	}
	return 0
}

// IsCanonical reports whether c is already its own canonical rotation.
func (c Cycle) IsCanonical() bool {
	canon, err := Canonical(c)
	return err == nil && c.Equal(canon)
}

// Equal reports element-wise equality.
func (c Cycle) Equal(other Cycle) bool {
	return slices.Equal(c, other)
}

// Key returns a comparable encoding of c suitable for use as a map key.
func (c Cycle) Key() string {
	var b strings.Builder
	for i, v := range c {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(v), 10))
	}
	return b.String()
}

// Clone returns an independent copy of c.
func (c Cycle) Clone() Cycle {
	return slices.Clone(c)
}
