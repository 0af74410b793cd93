package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/hancock/internal/analysis"
	"github.com/san-kum/hancock/internal/viz"
)

const (
	svgWidth     = 1200
	marginLeft   = 80
	marginRight  = 120
	marginTop    = 60
	marginBottom = 50
	minPlotH     = 200
	pointRadius  = 3
)

// ScatterSVG renders the classification as a scatter plot: one circle per
// integer at height index(label)*spacing, colored per label, with a hover
// title on every point, y ticks, a legend and a caption.
func ScatterSVG(cls *analysis.Classification, spacing int) string {
	if spacing < 1 {
		spacing = 1
	}
	labels := cls.UniqueLabels()
	yOf := make(map[string]int, len(labels))
	for i, l := range labels {
		yOf[l] = i * spacing
	}

	n := len(cls.Labels)
	plotW := float64(svgWidth - marginLeft - marginRight)
	plotH := float64(max(minPlotH, len(labels)*spacing))
	height := int(plotH) + marginTop + marginBottom

	// y range covers every band with half a spacing of headroom
	yMax := float64(max(len(labels)-1, 1)*spacing) + float64(spacing)/2
	yMin := -float64(spacing) / 2

	px := func(x int) float64 {
		if n <= 1 {
			return marginLeft + plotW/2
		}
		return marginLeft + float64(x-1)/float64(n-1)*plotW
	}
	py := func(y int) float64 {
		return marginTop + plotH - (float64(y)-yMin)/(yMax-yMin)*plotH
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" font-family="sans-serif">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, svgWidth, height, svgWidth, height))

	title := fmt.Sprintf("Hancock Pattern Scatter Plot (base %d, N=%d, spacing=%d)", cls.Params.Base, cls.Params.N, spacing)
	sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" font-size="18" text-anchor="middle">%s</text>
`, svgWidth/2, marginTop/2, html.EscapeString(title)))

	// axes
	x0, y0 := float64(marginLeft), marginTop+plotH
	sb.WriteString(fmt.Sprintf(`<g stroke="#333333" stroke-width="1">
<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
</g>
`, x0, y0, x0+plotW, y0, x0, y0, x0, float64(marginTop)))

	sb.WriteString(`<g font-size="8" text-anchor="end">` + "\n")
	for _, l := range labels {
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f">%s</text>
`, x0-6, py(yOf[l])+3, html.EscapeString(l)))
	}
	sb.WriteString("</g>\n")

	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%d" font-size="12" text-anchor="middle">Positive Integer</text>
<text x="16" y="%.1f" font-size="12" text-anchor="middle" transform="rotate(-90 16 %.1f)">Pattern</text>
`, x0+plotW/2, height-12, marginTop+plotH/2, marginTop+plotH/2))

	if n > 0 {
		sb.WriteString(fmt.Sprintf(`<g font-size="10" text-anchor="middle">
<text x="%.1f" y="%.1f">1</text>
<text x="%.1f" y="%.1f">%d</text>
</g>
`, px(1), y0+16, px(n), y0+16, n))
	}

	colors := viz.LabelColors(labels)
	sb.WriteString("<g>\n")
	for i, l := range cls.Labels {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%d" fill="%s"><title>n=%d</title></circle>
`, px(i+1), py(yOf[l]), pointRadius, colors[l], i+1))
	}
	sb.WriteString("</g>\n")

	// legend
	lx := float64(svgWidth - marginRight + 16)
	sb.WriteString(fmt.Sprintf(`<g font-size="8">
<text x="%.1f" y="%d" font-size="10">Pattern</text>
`, lx, marginTop))
	for i, l := range labels {
		y := float64(marginTop + 14 + i*12)
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="10" height="8" fill="%s"/><text x="%.1f" y="%.1f">%s</text>
`, lx, y-7, colors[l], lx+14, y, html.EscapeString(l)))
	}
	sb.WriteString("</g>\n")

	sb.WriteString("</svg>\n")
	return sb.String()
}
