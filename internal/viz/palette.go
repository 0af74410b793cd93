package viz

import "github.com/charmbracelet/lipgloss"

// Palette is the 20-color qualitative scheme labels cycle through.
var Palette = []lipgloss.Color{
	"#1f77b4", "#aec7e8", "#ff7f0e", "#ffbb78", "#2ca02c",
	"#98df8a", "#d62728", "#ff9896", "#9467bd", "#c5b0d5",
	"#8c564b", "#c49c94", "#e377c2", "#f7b6d2", "#7f7f7f",
	"#c7c7c7", "#bcbd22", "#dbdb8d", "#17becf", "#9edae5",
}

// Color returns the palette entry for the i-th label in presentation order.
func Color(i int) lipgloss.Color {
	if i < 0 {
		i = -i
	}
	return Palette[i%len(Palette)]
}

// Hex returns Color(i) as a "#rrggbb" string.
func Hex(i int) string {
	return string(Color(i))
}

// LabelColors maps each label to its color by position in labels.
func LabelColors(labels []string) map[string]lipgloss.Color {
	out := make(map[string]lipgloss.Color, len(labels))
	for i, l := range labels {
		out[l] = Color(i)
	}
	return out
}
