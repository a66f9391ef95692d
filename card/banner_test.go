package card

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradientTitleKeepsVisibleWidth(t *testing.T) {
	title := "ARCANE ARMORY"
	got := GradientTitle(title)
	assert.Equal(t, ansi.PrintableRuneWidth(title), ansi.PrintableRuneWidth(got))
}

func TestBannerUnderlineMatchesTitleWidth(t *testing.T) {
	title := "⚔️ ARCANE ARMORY ⚔️"
	lines := Banner(title, "subtitle", "hint one", "hint two")
	require.GreaterOrEqual(t, len(lines), 6)

	assert.Equal(t, runewidth.StringWidth(title), strings.Count(lines[2], "═"))
	assert.Contains(t, lines[4], "subtitle")
	assert.Contains(t, lines[5], "hint one")
}
