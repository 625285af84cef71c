package ui

// BoundsFunc returns the panel's position and size given terminal dimensions.
// Returns x, y, width, height.
type BoundsFunc func(width, height int) (x, y, w, h int)

// Panel places a View within a layout.
type Panel struct {
	ID     string
	View   View
	Bounds BoundsFunc
}

// Resize sets an ElementPanel's size from its bounds. Other views are left
// alone; they size themselves from tea.WindowSizeMsg.
func (p Panel) Resize(width, height int) {
	if p.Bounds == nil {
		return
	}
	if ep, ok := p.View.(*ElementPanel); ok {
		_, _, w, h := p.Bounds(width, height)
		ep.SetSize(w, h)
	}
}
