// Package textutil provides unicode-aware text utilities for TUI rendering.
package textutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
// s must not contain ANSI escapes; use lipgloss.Width for styled text.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate cuts s to at most maxWidth columns, ending in … when it had to cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= VisualWidth(TruncateEllipsis) {
		return TruncateEllipsis
	}
	return runewidth.Truncate(s, maxWidth, TruncateEllipsis)
}

// PadRightVisual pads s with spaces to targetWidth columns, truncating if it
// is wider.
func PadRightVisual(s string, targetWidth int) string {
	if VisualWidth(s) >= targetWidth {
		return Truncate(s, targetWidth)
	}
	return runewidth.FillRight(s, targetWidth)
}

// Spread lays out left and right on one line of width columns, left
// flush-left and right flush-right. left is truncated to make room; right
// is kept whole. Both may be styled.
func Spread(left, right string, width int) string {
	rw := lipgloss.Width(right)
	lw := lipgloss.Width(left)
	if width <= 0 {
		return left + " " + right
	}
	if lw+rw+1 > width {
		// Styled text cannot be cut by column here; drop left's styling.
		plain := xansi.Strip(left)
		left = Truncate(plain, max(width-rw-1, 0))
		lw = VisualWidth(left)
	}
	gap := max(width-lw-rw, 1)
	return left + strings.Repeat(" ", gap) + right
}
