package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/hancock/internal/analysis"
	"github.com/san-kum/hancock/internal/dynamo"
)

const (
	defaultPlotWidth = 72
	trajectorySteps  = 24
)

// Explorer is a Bubble Tea model that walks a cursor over the classified
// integers and shows what each one converges to.
type Explorer struct {
	cls      *analysis.Classification
	det      *dynamo.Detector
	plot     *ScatterPlot
	colors   map[string]lipgloss.Color
	cursor   int
	width    int
	showHelp bool
}

// NewExplorer prepares an explorer positioned on the first integer.
func NewExplorer(cls *analysis.Classification) (Explorer, error) {
	det, err := dynamo.NewDetector(cls.Map(), cls.Params.MaxIter)
	if err != nil {
		return Explorer{}, err
	}
	cursor := 1
	if len(cls.Labels) == 0 {
		cursor = 0
	}
	return Explorer{
		cls:    cls,
		det:    det,
		plot:   NewScatterPlot(cls, defaultPlotWidth),
		colors: LabelColors(cls.UniqueLabels()),
		cursor: cursor,
		width:  defaultPlotWidth,
	}, nil
}

// Cursor returns the integer under the cursor, 0 for an empty run.
func (m Explorer) Cursor() int {
	return m.cursor
}

func (m Explorer) Init() tea.Cmd { return nil }

func (m Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w := max(msg.Width-8, 10)
		if w != m.width {
			m.width = w
			m.plot = NewScatterPlot(m.cls, w)
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "l":
			m.move(1)
		case "left", "h":
			m.move(-1)
		case "pgdown", "L":
			m.move(10)
		case "pgup", "H":
			m.move(-10)
		case "home", "g":
			m.move(-len(m.cls.Labels))
		case "end", "G":
			m.move(len(m.cls.Labels))
		case "?":
			m.showHelp = !m.showHelp
		}
	}
	return m, nil
}

func (m *Explorer) move(delta int) {
	if len(m.cls.Labels) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 1), len(m.cls.Labels))
}

func (m Explorer) View() string {
	var b strings.Builder

	title := fmt.Sprintf("Hancock Pattern (base %d, N=%d)", m.cls.Params.Base, m.cls.Params.N)
	b.WriteString(TitleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(m.plot.Render(m.cursor))
	b.WriteString("\n")
	b.WriteString(Legend(m.plot.Labels()))
	b.WriteString("\n\n")

	if m.cursor > 0 {
		b.WriteString(Panel.Render(m.details()))
		b.WriteString("\n")
	}

	if m.showHelp {
		b.WriteString(KeyHint.Render("←/→ move  PgUp/PgDn ±10  Home/End jump  ? help  q quit"))
	} else {
		b.WriteString(KeyHint.Render("? help  q quit"))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Explorer) details() string {
	n := m.cursor
	label, _ := m.cls.LabelFor(n)
	style := lipgloss.NewStyle().Foreground(m.colors[label]).Bold(true)

	var b strings.Builder
	row := func(k, v string) {
		b.WriteString(MetricLabel.Render(k))
		b.WriteString(v)
		b.WriteByte('\n')
	}

	row("n", MetricValue.Render(fmt.Sprintf("%d", n)))
	row("digits", analysis.FormatValue(m.cls.Map(), dynamo.Value(n)))
	row("label", style.Render(label))
	if c, ok := m.cls.Table.CycleOf(label); ok {
		row("cycle", analysis.FormatCycle(m.cls.Map(), c))
	} else {
		row("cycle", Subtle.Render(fmt.Sprintf("none within %d steps", m.cls.Params.MaxIter)))
	}

	traj := m.det.Trajectory(dynamo.Value(n), trajectorySteps)
	data := make([]float64, len(traj))
	for i, v := range traj {
		data[i] = float64(v)
	}
	b.WriteByte('\n')
	b.WriteString(asciigraph.Plot(data,
		asciigraph.Height(6),
		asciigraph.Width(min(m.width, 60)),
		asciigraph.Caption("trajectory"),
	))
	return b.String()
}

// RunExplorer starts the explorer in the alternate screen and blocks until
// the user quits.
func RunExplorer(cls *analysis.Classification) error {
	m, err := NewExplorer(cls)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
