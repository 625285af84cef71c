package ui

import "github.com/charmbracelet/lipgloss"

// Layout arranges panels and defines focus order.
type Layout interface {
	Panels() []Panel
	FocusOrder() []string // Tab order for focus
}

// wideLayoutWidth is the terminal width from which views go side by side.
const wideLayoutWidth = 100

// GridLayout tiles element panels in one column, or two on wide terminals,
// between a header of Top rows and a footer of Bottom rows.
type GridLayout struct {
	Top    int
	Bottom int
	panels []Panel
}

// Ensure GridLayout implements Layout.
var _ Layout = (*GridLayout)(nil)

// NewGridLayout lays out panels in document order.
func NewGridLayout(panels []*ElementPanel, top, bottom int) *GridLayout {
	g := &GridLayout{Top: top, Bottom: bottom}
	n := len(panels)
	for i, p := range panels {
		g.panels = append(g.panels, Panel{
			ID:     p.ID,
			View:   p,
			Bounds: g.cell(i, n),
		})
	}
	return g
}

// Panels implements Layout.
func (g *GridLayout) Panels() []Panel { return g.panels }

// FocusOrder implements Layout.
func (g *GridLayout) FocusOrder() []string {
	ids := make([]string, 0, len(g.panels))
	for _, p := range g.panels {
		ids = append(ids, p.ID)
	}
	return ids
}

// Columns returns how many panels share a row at the given width.
func (g *GridLayout) Columns(width int) int {
	if len(g.panels) > 1 && width >= wideLayoutWidth {
		return 2
	}
	return 1
}

// Resize sizes every panel for a width x height terminal.
func (g *GridLayout) Resize(width, height int) {
	for _, p := range g.panels {
		p.Resize(width, height)
	}
}

// Render draws the panels row by row.
func (g *GridLayout) Render(width int) string {
	cols := g.Columns(width)
	var rows []string
	for i := 0; i < len(g.panels); i += cols {
		end := min(i+cols, len(g.panels))
		cells := make([]string, 0, cols)
		for _, p := range g.panels[i:end] {
			cells = append(cells, p.View.View())
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (g *GridLayout) cell(i, n int) BoundsFunc {
	return func(width, height int) (x, y, w, h int) {
		cols := g.Columns(width)
		rows := (n + cols - 1) / cols
		avail := max(height-g.Top-g.Bottom, rows*4)
		w = width / cols
		h = avail / rows
		x = (i % cols) * w
		y = g.Top + (i/cols)*h
		return x, y, w, h
	}
}
