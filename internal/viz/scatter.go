package viz

import (
	"fmt"
	"strings"

	"github.com/san-kum/hancock/internal/analysis"
)

// ScatterPlot draws one dot per integer in the band of its label. Bands are
// stacked in presentation order with the first label at the bottom.
type ScatterPlot struct {
	cls    *analysis.Classification
	labels []string
	index  map[string]int
	canvas *Canvas
	gutter int
}

// NewScatterPlot lays out cls on a canvas width cells wide.
func NewScatterPlot(cls *analysis.Classification, width int) *ScatterPlot {
	if width < 1 {
		width = 1
	}
	labels := cls.UniqueLabels()
	index := make(map[string]int, len(labels))
	gutter := 1
	for i, l := range labels {
		index[l] = i
		gutter = max(gutter, len(l))
	}

	p := &ScatterPlot{
		cls:    cls,
		labels: labels,
		index:  index,
		canvas: NewCanvas(width, len(labels)),
		gutter: gutter,
	}

	for i, l := range cls.Labels {
		p.canvas.Set(p.subX(i+1), p.subY(l), index[l])
	}
	return p
}

// Labels returns the bands from bottom to top.
func (p *ScatterPlot) Labels() []string {
	return append([]string(nil), p.labels...)
}

func (p *ScatterPlot) subX(n int) int {
	span := len(p.cls.Labels) - 1
	if span <= 0 {
		return 0
	}
	return (n - 1) * (p.canvas.Width*2 - 1) / span
}

// subY places a label in the middle of its text row, counted from the top.
func (p *ScatterPlot) subY(label string) int {
	row := len(p.labels) - 1 - p.index[label]
	return row*4 + 1
}

// Column returns the text column integer n is drawn in.
func (p *ScatterPlot) Column(n int) int {
	return p.subX(n) / 2
}

// Render returns the plot with a label gutter, an x axis and, when marker is
// a valid integer, a caret under its column.
func (p *ScatterPlot) Render(marker int) string {
	var b strings.Builder
	w := p.canvas.Width

	for row := 0; row < p.canvas.Height; row++ {
		lbl := p.labels[len(p.labels)-1-row]
		b.WriteString(labelStyle(p.index[lbl]).Render(fmt.Sprintf("%*s", p.gutter, lbl)))
		b.WriteString(" │")
		b.WriteString(p.canvas.Row(row))
		b.WriteByte('\n')
	}

	pad := strings.Repeat(" ", p.gutter)
	b.WriteString(pad + " └" + strings.Repeat("─", w) + "\n")

	if marker >= 1 && marker <= len(p.cls.Labels) {
		b.WriteString(pad + "  " + strings.Repeat(" ", p.Column(marker)) + "▲\n")
	}

	last := fmt.Sprintf("%d", len(p.cls.Labels))
	gap := max(1, w-1-len(last))
	b.WriteString(pad + "  1" + strings.Repeat(" ", gap) + last + "\n")
	return b.String()
}

// Scatter renders cls as a terminal scatter plot width cells wide.
func Scatter(cls *analysis.Classification, width int) string {
	return NewScatterPlot(cls, width).Render(0)
}
