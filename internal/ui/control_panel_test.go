package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControlPanel_TickStopsAfterHide(t *testing.T) {
	c := NewControlPanel(&DisplayLabel{Text: "3"}, 2, 1, time.Millisecond)

	cmd := c.Show()
	require.NotNil(t, cmd)
	tick := cmd()
	require.IsType(t, panelTickMsg{}, tick)

	_, next := c.Update(tick)
	assert.NotNil(t, next, "loop continues while shown")

	c.Hide()
	_, next = c.Update(tick)
	assert.Nil(t, next, "hiding ends the loop")

	// A stale tick must not revive a later loop either.
	require.NotNil(t, c.Show())
	_, next = c.Update(tick)
	assert.Nil(t, next)
}

func TestControlPanel_ToggleAndView(t *testing.T) {
	label := &DisplayLabel{}
	c := NewControlPanel(label, 0, 0, 0)
	assert.Equal(t, DefaultRefresh, c.Interval)

	assert.Contains(t, c.View(), "Step #?")
	label.SetContent("4")
	assert.Contains(t, c.View(), "Step #4")

	assert.NotNil(t, c.Toggle())
	assert.True(t, c.Visible())
	assert.Nil(t, c.Show(), "already shown")
	assert.Nil(t, c.Toggle())
	assert.False(t, c.Visible())
}

func TestControlPanel_StaysInsideWindow(t *testing.T) {
	c := NewControlPanel(&DisplayLabel{Text: "1"}, 100, 50, time.Millisecond)
	c.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	c.Show()

	x, y := c.Position()
	box := c.View()
	assert.Equal(t, 60-lipgloss.Width(box), x)
	assert.Equal(t, 20-lipgloss.Height(box), y)

	c.Update(tea.WindowSizeMsg{Width: 200, Height: 80})
	_, _ = c.Update(panelTickMsg{gen: c.gen})
	x, y = c.Position()
	assert.Equal(t, 100, x)
	assert.Equal(t, 50, y)
}
