package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FloatingDisplayID is the display target the control panel shows the
// current slide through.
const FloatingDisplayID = "traceyTextFloatingDisplay"

// DefaultRefresh is the control panel position refresh period.
const DefaultRefresh = 250 * time.Millisecond

// ControlPanel is the floating box with previous/next/jump controls. While
// shown it re-places itself every Interval so it stays at (FloatX, FloatY)
// and inside the window as the terminal is resized.
type ControlPanel struct {
	FloatX   int
	FloatY   int
	Interval time.Duration

	label   *DisplayLabel
	visible bool
	gen     int
	x, y    int
	width   int
	height  int
}

// Ensure ControlPanel implements View.
var _ View = (*ControlPanel)(nil)

// NewControlPanel creates a hidden panel showing the slide number held by label.
func NewControlPanel(label *DisplayLabel, floatX, floatY int, interval time.Duration) *ControlPanel {
	if interval <= 0 {
		interval = DefaultRefresh
	}
	return &ControlPanel{
		FloatX:   floatX,
		FloatY:   floatY,
		Interval: interval,
		label:    label,
	}
}

// Visible reports whether the panel is shown.
func (c *ControlPanel) Visible() bool { return c.visible }

// Position returns where the panel was last placed.
func (c *ControlPanel) Position() (x, y int) { return c.x, c.y }

// Show displays the panel and starts its refresh loop.
func (c *ControlPanel) Show() tea.Cmd {
	if c.visible {
		return nil
	}
	c.visible = true
	c.gen++
	c.reposition()
	return c.tick()
}

// Hide removes the panel. The pending tick of the running loop is ignored
// when it arrives, which ends the loop.
func (c *ControlPanel) Hide() {
	if !c.visible {
		return
	}
	c.visible = false
	c.gen++
}

// Toggle shows or hides the panel.
func (c *ControlPanel) Toggle() tea.Cmd {
	if c.visible {
		c.Hide()
		return nil
	}
	return c.Show()
}

// Init implements View.
func (c *ControlPanel) Init() tea.Cmd { return nil }

// Update implements View.
func (c *ControlPanel) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.width, c.height = msg.Width, msg.Height
	case panelTickMsg:
		if msg.gen != c.gen || !c.visible {
			return c, nil
		}
		c.reposition()
		return c, c.tick()
	}
	return c, nil
}

// View implements View.
func (c *ControlPanel) View() string {
	step := "?"
	if c.label != nil && c.label.Text != "" {
		step = c.label.Text
	}
	controls := lipgloss.JoinHorizontal(lipgloss.Top,
		Styles.Key.Render("p")+" Previous   ",
		Styles.Key.Render("n")+" Next   ",
		Styles.Key.Render("g")+" Jump",
	)
	return Styles.Floating.Render(controls + "\n" + Styles.Status.Render("Step #"+step))
}

func (c *ControlPanel) tick() tea.Cmd {
	gen := c.gen
	return tea.Tick(c.Interval, func(time.Time) tea.Msg {
		return panelTickMsg{gen: gen}
	})
}

// reposition places the panel at its float offset, pulled back inside the
// window when the window is too small to hold it there.
func (c *ControlPanel) reposition() {
	box := c.View()
	w, h := lipgloss.Width(box), lipgloss.Height(box)
	c.x, c.y = c.FloatX, c.FloatY
	if c.width > 0 {
		c.x = min(c.x, c.width-w)
	}
	if c.height > 0 {
		c.y = min(c.y, c.height-h)
	}
	c.x, c.y = max(c.x, 0), max(c.y, 0)
}
