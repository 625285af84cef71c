package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 6, "hello…"},
		{"日本語テキスト", 5, "日本…"},
		{"hello", 1, "…"},
		{"hello", 0, ""},
	}
	for _, tt := range tests {
		got := Truncate(tt.in, tt.max)
		assert.Equal(t, tt.want, got, "Truncate(%q, %d)", tt.in, tt.max)
		assert.LessOrEqual(t, VisualWidth(got), max(tt.max, 0))
	}
}

func TestPadRightVisual(t *testing.T) {
	assert.Equal(t, "ab   ", PadRightVisual("ab", 5))
	assert.Equal(t, "日本 ", PadRightVisual("日本", 5))
	assert.Equal(t, "abc…", PadRightVisual("abcdef", 4))
}

func TestSpread(t *testing.T) {
	assert.Equal(t, "left     right", Spread("left", "right", 14))
	assert.Equal(t, "l… right", Spread("left side", "right", 8))
	assert.Equal(t, "a b", Spread("a", "b", 0))
}
