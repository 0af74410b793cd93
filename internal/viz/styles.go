package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/hancock/internal/analysis"
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ffff"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	MetricLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899")).
			Width(18)

	MetricValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)

	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444466")).
		Padding(0, 1)
)

func labelStyle(i int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Color(i)).Bold(true)
}

// Key renders the pattern key with each label in its plot color.
func Key(cls *analysis.Classification) string {
	colors := LabelColors(cls.UniqueLabels())

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Pattern Key:"))
	b.WriteByte('\n')
	for _, e := range cls.Key() {
		lbl := lipgloss.NewStyle().Foreground(colors[e.Label]).Bold(true).Render(e.Label)
		fmt.Fprintf(&b, "  %s: %s\n", lbl, e.Text)
	}
	return b.String()
}

// Legend renders one colored swatch per label in presentation order.
func Legend(labels []string) string {
	parts := make([]string, len(labels))
	for i, l := range labels {
		parts[i] = labelStyle(i).Render("●") + " " + l
	}
	return strings.Join(parts, "  ")
}

// BasinBar renders the share of integers in one basin as a bar.
func BasinBar(fraction float64, width, color int) string {
	filled := int(fraction * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return labelStyle(color).Render(bar)
}

// Sparkline renders values as a one-line chart width cells wide.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return strings.Repeat("─", max(width, 0))
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	rng := hi - lo
	if rng == 0 {
		rng = 1
	}

	var b strings.Builder
	for i := 0; i < width; i++ {
		idx := i * len(values) / width
		if idx >= len(values) {
			break
		}
		norm := (values[idx] - lo) / rng
		c := int(norm * float64(len(chars)-1))
		b.WriteRune(chars[min(max(c, 0), len(chars)-1)])
	}
	return b.String()
}
