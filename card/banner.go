package card

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var gradientColors = []lipgloss.Color{
	brightMagenta,
	brightBlue,
	brightCyan,
	brightGreen,
	brightYellow,
	brightRed,
}

// GradientTitle applies a repeating color gradient across the runes of a
// title string.
func GradientTitle(text string) string {
	var b strings.Builder
	i := 0
	for _, ch := range text {
		style := lipgloss.NewStyle().Bold(true).Foreground(gradientColors[i%len(gradientColors)])
		b.WriteString(style.Render(string(ch)))
		i++
	}
	return b.String()
}

// Banner returns the startup banner lines for the given title, subtitle
// and hint lines. The rule under the title matches its terminal width.
func Banner(title, subtitle string, hints ...string) []string {
	lines := []string{
		"",
		"  " + GradientTitle(title),
		"  " + TipStyle.Render(strings.Repeat("═", runewidth.StringWidth(title))),
		"",
		"  " + FarewellStyle.Bold(true).Render(subtitle),
	}
	for _, hint := range hints {
		lines = append(lines, "  "+TipStyle.Render(hint))
	}
	lines = append(lines, "")
	return lines
}
