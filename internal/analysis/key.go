package analysis

import (
	"sort"
	"strconv"
	"strings"

	"github.com/san-kum/hancock/internal/dynamo"
)

// KeyEntry is one line of the pattern key.
type KeyEntry struct {
	Label string
	Cycle dynamo.Cycle
	Text  string
}

// FormatValue renders v as its base-b digits joined with ".".
func FormatValue(m dynamo.Map, v dynamo.Value) string {
	digits := m.Digits(v)
	parts := make([]string, len(digits))
	for i, d := range digits {
		parts[i] = strconv.FormatUint(uint64(d), 10)
	}
	return strings.Join(parts, ".")
}

// FormatCycle renders each element with FormatValue, separated by ", ".
func FormatCycle(m dynamo.Map, c dynamo.Cycle) string {
	parts := make([]string, len(c))
	for i, v := range c {
		parts[i] = FormatValue(m, v)
	}
	return strings.Join(parts, ", ")
}

// Key lists every labelled cycle, sorted by label string.
func (c *Classification) Key() []KeyEntry {
	labels := c.Table.Labels()
	sort.Strings(labels)

	entries := make([]KeyEntry, 0, len(labels))
	for _, lbl := range labels {
		cyc, _ := c.Table.CycleOf(lbl)
		entries = append(entries, KeyEntry{
			Label: lbl,
			Cycle: cyc,
			Text:  FormatCycle(c.m, cyc),
		})
	}
	return entries
}
