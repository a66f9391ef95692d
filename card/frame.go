package card

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/ansi"
)

// frameLines draws a box border around the lines. Width is computed from
// printable runes only, so embedded style sequences and wide glyphs do
// not skew the right border.
func frameLines(lines []string, border lipgloss.Style) []string {
	width := 0
	for _, line := range lines {
		if w := ansi.PrintableRuneWidth(line); w > width {
			width = w
		}
	}

	framed := make([]string, 0, len(lines)+2)
	framed = append(framed, border.Render("┌"+strings.Repeat("─", width+2)+"┐"))
	for _, line := range lines {
		pad := strings.Repeat(" ", width-ansi.PrintableRuneWidth(line))
		framed = append(framed, border.Render("│ ")+line+pad+border.Render(" │"))
	}
	framed = append(framed, border.Render("└"+strings.Repeat("─", width+2)+"┘"))
	return framed
}
