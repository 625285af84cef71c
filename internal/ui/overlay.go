package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// Overlay is a modal view drawn centred over the player.
type Overlay struct {
	View    View
	Dismiss string // Key that dismisses (e.g. "esc")
}

// IsDismissKey returns true if the given key string should dismiss this overlay.
func (o *Overlay) IsDismissKey(key string) bool {
	return key == o.Dismiss
}

// OverlayStack manages a stack of overlays (topmost receives input first).
type OverlayStack struct {
	Stack []Overlay
}

// Push adds an overlay to the top of the stack.
func (s *OverlayStack) Push(o Overlay) {
	s.Stack = append(s.Stack, o)
}

// Pop removes and returns the top overlay.
func (s *OverlayStack) Pop() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	return top, true
}

// Peek returns the top overlay without removing it.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Len returns the number of overlays in the stack.
func (s *OverlayStack) Len() int {
	return len(s.Stack)
}

// UpdateTop passes msg to the top overlay's Update and replaces its View with the result.
// Returns the cmd from the overlay's Update. Caller must run the cmd.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	top := &s.Stack[len(s.Stack)-1]
	if km, ok := msg.(tea.KeyMsg); ok && top.IsDismissKey(km.String()) {
		s.Pop()
		return nil, true
	}
	newView, cmd := top.View.Update(msg)
	top.View = newView
	return cmd, true
}

// Render draws the top overlay centred over bg.
func (s *OverlayStack) Render(bg string, width, height int) string {
	top, ok := s.Peek()
	if !ok {
		return bg
	}
	fg := top.View.View()
	x := (width - lipgloss.Width(fg)) / 2
	y := (height - lipgloss.Height(fg)) / 2
	return PlaceOverlay(bg, fg, x, y)
}

// PlaceOverlay draws fg over bg with its top-left corner at column x, row y.
// bg is extended with blank lines if fg reaches below it.
func PlaceOverlay(bg, fg string, x, y int) string {
	x, y = max(x, 0), max(y, 0)
	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")
	fgW := lipgloss.Width(fg)
	for len(bgLines) < y+len(fgLines) {
		bgLines = append(bgLines, "")
	}
	for i, line := range fgLines {
		row := bgLines[y+i]
		rowW := xansi.StringWidth(row)
		if rowW < x {
			row += strings.Repeat(" ", x-rowW)
			rowW = x
		}
		left := xansi.Cut(row, 0, x)
		right := ""
		if rowW > x+fgW {
			right = xansi.Cut(row, x+fgW, rowW)
		}
		if n := xansi.StringWidth(line); n < fgW {
			line += strings.Repeat(" ", fgW-n)
		}
		bgLines[y+i] = left + line + right
	}
	return strings.Join(bgLines, "\n")
}
