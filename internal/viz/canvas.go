package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a Braille grid in which each cell remembers the palette index of
// the last dot drawn into it. A negative index means uncolored.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Colors        [][]int
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Colors: make([][]int, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]int, w)
	}
	c.Clear()
	return c
}

// Set lights the sub-pixel (x, y). The canvas size in sub-pixels is
// (Width*2) x (Height*4). Out-of-range points are dropped.
func (c *Canvas) Set(x, y, color int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	c.Colors[row][col] = color
}

// Lit reports whether any dot in the cell at (col, row) is set.
func (c *Canvas) Lit(col, row int) bool {
	if row < 0 || row >= c.Height || col < 0 || col >= c.Width {
		return false
	}
	return c.Grid[row][col] != blank
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Colors[i][j] = -1
		}
	}
}

// Row renders one text row, styling consecutive cells of equal color together.
func (c *Canvas) Row(row int) string {
	var b strings.Builder
	cells := c.Grid[row]
	colors := c.Colors[row]

	start := 0
	for i := 1; i <= len(cells); i++ {
		if i < len(cells) && colors[i] == colors[start] {
			continue
		}
		run := string(cells[start:i])
		if colors[start] >= 0 {
			run = lipgloss.NewStyle().Foreground(Color(colors[start])).Render(run)
		}
		b.WriteString(run)
		start = i
	}
	return b.String()
}

func (c *Canvas) String() string {
	var b strings.Builder
	for row := range c.Grid {
		b.WriteString(c.Row(row))
		b.WriteByte('\n')
	}
	return b.String()
}
