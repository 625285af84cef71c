package ui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"traceytext/internal/ui/textutil"
)

const (
	defaultPanelWidth  = 60
	defaultPanelHeight = 10
)

// ElementPanel is the terminal stand-in for one view's page element: a
// titled, scrollable box whose content is the view's HTML rendered by
// RenderMarkup.
type ElementPanel struct {
	ID    string
	Title string

	html      string
	highlight lipgloss.Style
	viewport  viewport.Model
	focused   bool
	// pinned keeps the panel at its bottom across resizes once
	// ScrollToBottom was asked for, until the user scrolls.
	pinned bool
	width  int
	height int
}

// Ensure ElementPanel implements View.
var _ View = (*ElementPanel)(nil)

// NewElementPanel creates an empty panel.
func NewElementPanel(id, title string, highlight lipgloss.Style) *ElementPanel {
	if title == "" {
		title = id
	}
	p := &ElementPanel{
		ID:        id,
		Title:     title,
		highlight: highlight,
		viewport:  viewport.New(defaultPanelWidth, defaultPanelHeight),
	}
	p.SetSize(defaultPanelWidth+4, defaultPanelHeight+3)
	return p
}

// SetContent implements slide.Element.
func (p *ElementPanel) SetContent(html string) {
	p.html = html
	p.refreshContent()
}

// ScrollToBottom implements slide.Element.
func (p *ElementPanel) ScrollToBottom() {
	p.pinned = true
	p.viewport.GotoBottom()
}

// HTML returns the last content set on the panel.
func (p *ElementPanel) HTML() string { return p.html }

// Text returns the rendered terminal text.
func (p *ElementPanel) Text() string { return RenderMarkup(p.html, p.highlight) }

// AtBottom reports whether the last line is visible.
func (p *ElementPanel) AtBottom() bool { return p.viewport.AtBottom() }

// YOffset returns the scroll position.
func (p *ElementPanel) YOffset() int { return p.viewport.YOffset }

// SetFocused marks the panel as the one receiving scroll keys.
func (p *ElementPanel) SetFocused(f bool) { p.focused = f }

// SetSize sets the outer size of the panel including border and title.
func (p *ElementPanel) SetSize(w, h int) {
	p.width, p.height = w, h
	// border (2) + padding (2) horizontally; border (2) + title (1) vertically
	p.viewport.Width = max(w-4, 1)
	p.viewport.Height = max(h-3, 1)
	p.refreshContent()
}

// Init implements View.
func (p *ElementPanel) Init() tea.Cmd {
	return p.viewport.Init()
}

// Update implements View. Only scroll keys reach a panel.
func (p *ElementPanel) Update(msg tea.Msg) (View, tea.Cmd) {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		p.pinned = p.viewport.AtBottom() && p.pinned
	}
	return p, cmd
}

// View implements View.
func (p *ElementPanel) View() string {
	style := Styles.Panel
	if p.focused {
		style = Styles.PanelFocused
	}
	title := Styles.PanelTitle.Render(textutil.Truncate(p.Title, p.viewport.Width))
	body := p.viewport.View()
	if p.html == "" {
		body = Styles.Empty.Render("(empty)")
	}
	return style.
		Width(p.viewport.Width + 2).
		Height(p.viewport.Height + 1).
		Render(title + "\n" + body)
}

// refreshContent re-renders the markup at the current width.
func (p *ElementPanel) refreshContent() {
	text := RenderMarkup(p.html, p.highlight)
	wrapped := lipgloss.NewStyle().Width(p.viewport.Width).Render(text)
	p.viewport.SetContent(wrapped)
	if p.pinned {
		p.viewport.GotoBottom()
	}
}

// DisplayLabel is the terminal stand-in for a "current slide" element.
type DisplayLabel struct {
	ID   string
	Text string
}

// SetContent implements slide.Element.
func (l *DisplayLabel) SetContent(s string) { l.Text = s }

// ScrollToBottom implements slide.Element. Labels do not scroll.
func (l *DisplayLabel) ScrollToBottom() {}
