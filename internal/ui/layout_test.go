package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPanels(ids ...string) []*ElementPanel {
	out := make([]*ElementPanel, 0, len(ids))
	for _, id := range ids {
		out = append(out, NewElementPanel(id, "", lipgloss.NewStyle()))
	}
	return out
}

func TestGridLayout_Bounds(t *testing.T) {
	g := NewGridLayout(testPanels("a", "b", "c"), 1, 1)
	require.Len(t, g.Panels(), 3)
	assert.Equal(t, []string{"a", "b", "c"}, g.FocusOrder())

	// Narrow: one column, three rows sharing 30-2 rows.
	assert.Equal(t, 1, g.Columns(80))
	x, y, w, h := g.Panels()[2].Bounds(80, 30)
	assert.Equal(t, []int{0, 1 + 2*9, 80, 9}, []int{x, y, w, h})

	// Wide: two columns.
	assert.Equal(t, 2, g.Columns(120))
	x, y, w, h = g.Panels()[1].Bounds(120, 30)
	assert.Equal(t, []int{60, 1, 60, 14}, []int{x, y, w, h})
}

func TestGridLayout_SinglePanelNeverSplits(t *testing.T) {
	g := NewGridLayout(testPanels("only"), 0, 0)
	assert.Equal(t, 1, g.Columns(300))
}

func TestGridLayout_ResizeAndRender(t *testing.T) {
	panels := testPanels("a", "b")
	g := NewGridLayout(panels, 1, 1)
	g.Resize(120, 22)

	out := g.Render(120)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 20)
	assert.Equal(t, 120, lipgloss.Width(out))
	assert.Contains(t, lines[1], "a")
	assert.Contains(t, lines[1], "b")
}

func TestFocusManager(t *testing.T) {
	var changes []string
	f := NewFocusManager([]string{"a", "b", "c"}, func(from, to string) {
		changes = append(changes, from+">"+to)
	})
	assert.Equal(t, "a", f.Current)
	assert.Equal(t, "b", f.Next())
	assert.Equal(t, "c", f.Next())
	assert.Equal(t, "a", f.Next())
	assert.Equal(t, "c", f.Prev())
	assert.True(t, f.SetFocus("b"))
	assert.False(t, f.SetFocus("zzz"))
	assert.Equal(t, []string{">a", "a>b", "b>c", "c>a", "a>c", "c>b"}, changes)

	empty := NewFocusManager(nil, nil)
	assert.Equal(t, "", empty.Next())
}

func TestPlaceOverlay(t *testing.T) {
	bg := "aaaaaa\nbbbbbb\ncccccc"
	assert.Equal(t, "aaaaaa\nbXYbbb\ncZWccc", PlaceOverlay(bg, "XY\nZW", 1, 1))

	// Overlays past the background's edge extend it.
	assert.Equal(t, "ab\n  XY", PlaceOverlay("ab", "XY", 2, 1))
}

func TestOverlayStack_DismissKey(t *testing.T) {
	var s OverlayStack
	s.Push(Overlay{View: NewJumpModal(5), Dismiss: "esc"})
	require.Equal(t, 1, s.Len())

	_, ok := s.UpdateTop(keyMsg("esc"))
	assert.True(t, ok)
	assert.Equal(t, 0, s.Len())

	_, ok = s.UpdateTop(keyMsg("x"))
	assert.False(t, ok)
}
