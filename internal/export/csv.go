package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/hancock/internal/analysis"
)

// WriteCSV writes one "n,label,cycle" row per integer. The cycle column holds
// the base-b key text, empty for other.
func WriteCSV(w io.Writer, cls *analysis.Classification) error {
	cw := csv.NewWriter(w)

	text := make(map[string]string)
	for _, e := range cls.Key() {
		text[e.Label] = e.Text
	}

	if err := cw.Write([]string{"n", "label", "cycle"}); err != nil {
		return err
	}
	for i, l := range cls.Labels {
		if err := cw.Write([]string{strconv.Itoa(i + 1), l, text[l]}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
