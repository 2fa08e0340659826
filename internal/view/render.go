package view

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/Alia5/gpiomap/layout"
)

const (
	defaultWidth = 80
	minRows      = 8
	maxCellWidth = 8
)

// TerminalWidth returns the column count of f, or fallback when f is not a
// terminal.
func TerminalWidth(f *os.File, fallback int) int {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return fallback
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}

var groupColors = map[layout.Group]lipgloss.Color{
	layout.GroupDpad:    lipgloss.Color("39"),
	layout.GroupMain:    lipgloss.Color("208"),
	layout.GroupAux:     lipgloss.Color("250"),
	layout.GroupTrigger: lipgloss.Color("170"),
	layout.GroupAddon:   lipgloss.Color("78"),
}

type styles struct {
	title    lipgloss.Style
	board    lipgloss.Style
	pin      lipgloss.Style
	none     lipgloss.Style
	disabled lipgloss.Style
	selected lipgloss.Style
	r        *lipgloss.Renderer
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:    r.NewStyle().Bold(true),
		board:    r.NewStyle().Border(lipgloss.RoundedBorder()),
		pin:      r.NewStyle().Foreground(lipgloss.Color("241")),
		none:     r.NewStyle().Faint(true),
		disabled: r.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("241")),
		selected: r.NewStyle().Reverse(true).Bold(true),
		r:        r,
	}
}

func (s styles) spot(sp Spot) lipgloss.Style {
	switch {
	case sp.Selected:
		return s.selected
	case sp.Disabled:
		return s.disabled
	case sp.None:
		return s.none
	}
	return s.r.NewStyle().Foreground(groupColors[sp.Position.Group])
}

// Render draws the board scaled to width columns followed by a legend with
// one line per spot.
func Render(w io.Writer, l *layout.BoardLayout, spots []Spot, width int) error {
	if width <= 0 {
		width = defaultWidth
	}
	st := newStyles(w)

	var sb strings.Builder
	sb.WriteString(st.title.Render(l.BoardLabel))
	sb.WriteString("\n")
	sb.WriteString(st.board.Render(canvas(l, spots, width-2)))
	sb.WriteString("\n")
	for _, sp := range spots {
		fmt.Fprintf(&sb, "%s %s %s\n",
			st.pin.Render(fmt.Sprintf("GP%-2d", sp.Position.Pin)),
			st.spot(sp).Render(fmt.Sprintf("%-8s", sp.ActionLabel)),
			sp.Title)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// canvas places each spot's label at its scaled board position. Terminal cells
// are about twice as tall as wide, so rows are halved.
func canvas(l *layout.BoardLayout, spots []Spot, cols int) string {
	if cols < maxCellWidth+2 {
		cols = maxCellWidth + 2
	}
	rows := cols * l.Height / l.Width / 2
	if rows < minRows {
		rows = minRows
	}

	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", cols))
	}

	for _, sp := range spots {
		cell := []rune(sp.ActionLabel)
		if len(cell) > maxCellWidth {
			cell = cell[:maxCellWidth]
		}
		col := sp.Position.X*(cols-1)/l.Width - len(cell)/2
		col = max(0, min(col, cols-len(cell)))
		row := min(sp.Position.Y*(rows-1)/l.Height, rows-1)
		copy(grid[row][col:], cell)
	}

	lines := make([]string, rows)
	for i, r := range grid {
		lines[i] = string(r)
	}
	return strings.Join(lines, "\n")
}
