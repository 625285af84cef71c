package ui

import (
	"github.com/charmbracelet/lipgloss"

	"traceytext/internal/slide"
)

// PanelDocument is the player's element tree: one ElementPanel per view and
// any number of DisplayLabels, addressed by id.
type PanelDocument struct {
	highlight lipgloss.Style
	order     []string
	panels    map[string]*ElementPanel
	labels    map[string]*DisplayLabel
}

// Ensure PanelDocument implements slide.Document.
var _ slide.Document = (*PanelDocument)(nil)

// NewPanelDocument creates an empty document. highlight styles list items
// carrying the highlight class.
func NewPanelDocument(highlight lipgloss.Style) *PanelDocument {
	return &PanelDocument{
		highlight: highlight,
		panels:    make(map[string]*ElementPanel),
		labels:    make(map[string]*DisplayLabel),
	}
}

// AddPanel adds a panel for id, or returns the existing one.
func (d *PanelDocument) AddPanel(id, title string) *ElementPanel {
	if p, ok := d.panels[id]; ok {
		return p
	}
	p := NewElementPanel(id, title, d.highlight)
	d.panels[id] = p
	d.order = append(d.order, id)
	return p
}

// AddLabel adds a display label for id, or returns the existing one.
func (d *PanelDocument) AddLabel(id string) *DisplayLabel {
	if l, ok := d.labels[id]; ok {
		return l
	}
	l := &DisplayLabel{ID: id}
	d.labels[id] = l
	return l
}

// Element implements slide.Document. Panels shadow labels of the same id.
func (d *PanelDocument) Element(id string) (slide.Element, bool) {
	if p, ok := d.panels[id]; ok {
		return p, true
	}
	if l, ok := d.labels[id]; ok {
		return l, true
	}
	return nil, false
}

// Panel returns the panel for id.
func (d *PanelDocument) Panel(id string) (*ElementPanel, bool) {
	p, ok := d.panels[id]
	return p, ok
}

// Label returns the label for id.
func (d *PanelDocument) Label(id string) (*DisplayLabel, bool) {
	l, ok := d.labels[id]
	return l, ok
}

// Panels returns the panels in the order they were added.
func (d *PanelDocument) Panels() []*ElementPanel {
	out := make([]*ElementPanel, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.panels[id])
	}
	return out
}
