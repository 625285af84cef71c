package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// JumpModal asks for a slide number.
type JumpModal struct {
	input textinput.Model
	max   int
}

// Ensure JumpModal implements View.
var _ View = (*JumpModal)(nil)

// NewJumpModal creates a jump prompt for a presentation of maxSlide slides.
func NewJumpModal(maxSlide int) *JumpModal {
	ti := textinput.New()
	ti.Placeholder = "slide"
	ti.CharLimit = 12
	ti.Width = 12
	ti.Focus()
	return &JumpModal{input: ti, max: maxSlide}
}

// Value returns the text typed so far.
func (m *JumpModal) Value() string { return m.input.Value() }

// Init implements View.
func (m *JumpModal) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (m *JumpModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter":
			input := m.input.Value()
			return m, func() tea.Msg { return JumpMsg{Input: input} }
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements View.
func (m *JumpModal) View() string {
	content := Styles.Title.Render(fmt.Sprintf("Jump to slide (1-%d)", m.max)) + "\n\n"
	content += m.input.View() + "\n\n"
	content += Styles.Hint.Render("Enter: jump  Esc: cancel")
	return Styles.Box.Render(content)
}
