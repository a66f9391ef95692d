package card

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameWidthIgnoresStyleMarkers(t *testing.T) {
	lines := []string{
		"plain line",
		"\x1b[1m\x1b[93mbold yellow styled line\x1b[0m",
		"",
		"\x1b[96mshort\x1b[0m",
	}

	maxVisible := 0
	for _, l := range lines {
		if w := ansi.PrintableRuneWidth(l); w > maxVisible {
			maxVisible = w
		}
	}

	framed := frameLines(lines, lipgloss.NewStyle())
	require.Len(t, framed, len(lines)+2)

	// Border and margins add four columns to the widest visible line.
	for i, line := range framed {
		assert.Equal(t, maxVisible+4, ansi.PrintableRuneWidth(line), "line %d misaligned", i)
	}
}

func TestFrameWidthHandlesWideGlyphs(t *testing.T) {
	lines := []string{
		"⚪ Common",
		"no emoji here at all",
	}

	framed := frameLines(lines, lipgloss.NewStyle())
	want := ansi.PrintableRuneWidth(framed[0])
	for i, line := range framed {
		assert.Equal(t, want, ansi.PrintableRuneWidth(line), "line %d misaligned", i)
	}
}

func TestFrameShape(t *testing.T) {
	framed := frameLines([]string{"ab"}, lipgloss.NewStyle())
	require.Len(t, framed, 3)

	assert.Equal(t, "┌────┐", framed[0])
	assert.Equal(t, "│ ab │", framed[1])
	assert.Equal(t, "└────┘", framed[2])
	assert.False(t, strings.Contains(framed[1], "  ab"), "content must be flush against the left margin")
}
