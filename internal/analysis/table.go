package analysis

import (
	"github.com/san-kum/hancock/internal/dynamo"
)

// Table pairs canonical cycles with labels. Labels are handed out in
// insertion order; entries are never removed.
type Table struct {
	byKey   map[string]string
	byLabel map[string]dynamo.Cycle
	order   []string
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{
		byKey:   make(map[string]string),
		byLabel: make(map[string]dynamo.Cycle),
		order:   make([]string, 0),
	}
}

// Assign returns the label of c, allocating the next one when c has not been
// seen. c is canonicalized first so any rotation maps to the same entry.
func (t *Table) Assign(c dynamo.Cycle) (label string, added bool, err error) {
	canon, err := dynamo.Canonical(c)
	if err != nil {
		return "", false, err
	}

	key := canon.Key()
	if lbl, ok := t.byKey[key]; ok {
		return lbl, false, nil
	}

	lbl, err := Label(len(t.order))
	if err != nil {
		return "", false, err
	}
	t.byKey[key] = lbl
	t.byLabel[lbl] = canon
	t.order = append(t.order, lbl)
	return lbl, true, nil
}

// LabelOf looks up the label of a cycle in any rotation.
func (t *Table) LabelOf(c dynamo.Cycle) (string, bool) {
	canon, err := dynamo.Canonical(c)
	if err != nil {
		return "", false
	}
	lbl, ok := t.byKey[canon.Key()]
	return lbl, ok
}

// CycleOf returns a copy of the canonical cycle registered under label.
func (t *Table) CycleOf(label string) (dynamo.Cycle, bool) {
	c, ok := t.byLabel[label]
	if !ok {
		return nil, false
	}
	return c.Clone(), true
}

// Labels returns the labels in the order they were assigned.
func (t *Table) Labels() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Len returns the number of labelled cycles.
func (t *Table) Len() int {
	return len(t.order)
}
