package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/hancock/internal/analysis"
)

type CycleEntry struct {
	Label  string   `json:"label"`
	Cycle  []uint64 `json:"cycle"`
	Digits string   `json:"digits"`
	Count  int      `json:"count"`
}

type ExportData struct {
	Base    int                `json:"base"`
	N       int                `json:"n"`
	MaxIter int                `json:"max_iter"`
	Labels  []string           `json:"labels"`
	Cycles  []CycleEntry       `json:"cycles"`
	Metrics map[string]float64 `json:"metrics,omitempty"`
}

// NewExportData flattens cls into its serializable form.
func NewExportData(cls *analysis.Classification) ExportData {
	counts := cls.Counts()
	key := cls.Key()

	data := ExportData{
		Base:    cls.Params.Base,
		N:       cls.Params.N,
		MaxIter: cls.Params.MaxIter,
		Labels:  cls.Labels,
		Cycles:  make([]CycleEntry, 0, len(key)),
		Metrics: cls.Metrics,
	}
	for _, e := range key {
		cycle := make([]uint64, len(e.Cycle))
		for i, v := range e.Cycle {
			cycle[i] = uint64(v)
		}
		data.Cycles = append(data.Cycles, CycleEntry{
			Label:  e.Label,
			Cycle:  cycle,
			Digits: e.Text,
			Count:  counts[e.Label],
		})
	}
	return data
}

func WriteJSON(w io.Writer, cls *analysis.Classification) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewExportData(cls))
}
