// Package card renders a generated item as a styled terminal card.
package card

import "github.com/charmbracelet/lipgloss"

// Bright terminal palette used across the card. Process-wide immutable.
var (
	brightBlack   = lipgloss.Color("8")
	brightRed     = lipgloss.Color("9")
	brightGreen   = lipgloss.Color("10")
	brightYellow  = lipgloss.Color("11")
	brightBlue    = lipgloss.Color("12")
	brightMagenta = lipgloss.Color("13")
	brightCyan    = lipgloss.Color("14")
	brightWhite   = lipgloss.Color("15")
)

var (
	nameStyle    = lipgloss.NewStyle().Bold(true).Foreground(brightYellow)
	labelStyle   = lipgloss.NewStyle().Bold(true).Foreground(brightCyan)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(brightMagenta)
	noteStyle    = lipgloss.NewStyle().Faint(true).Foreground(brightBlack)
	borderStyle  = lipgloss.NewStyle().Foreground(brightBlue)

	// PromptStyle and FarewellStyle are used by the interactive loop.
	PromptStyle   = lipgloss.NewStyle().Bold(true).Foreground(brightGreen)
	FarewellStyle = lipgloss.NewStyle().Foreground(brightCyan)
	TipStyle      = lipgloss.NewStyle().Foreground(brightBlack)
)

// RarityStyle is the display treatment for one rarity tier.
type RarityStyle struct {
	Style lipgloss.Style
	Emoji string
}

var rarityStyles = map[string]RarityStyle{
	"Common":    {lipgloss.NewStyle().Bold(true).Foreground(brightBlack), "⚪"},
	"Uncommon":  {lipgloss.NewStyle().Bold(true).Foreground(brightGreen), "🟢"},
	"Rare":      {lipgloss.NewStyle().Bold(true).Foreground(brightBlue), "🔵"},
	"Very Rare": {lipgloss.NewStyle().Bold(true).Foreground(brightMagenta), "🟣"},
	"Legendary": {lipgloss.NewStyle().Bold(true).Foreground(brightYellow), "🟡"},
	"Artifact":  {lipgloss.NewStyle().Bold(true).Foreground(brightRed), "🔴"},
}

// RarityStyleFor returns the display style for a rarity name, with a
// neutral fallback for names missing from the table.
func RarityStyleFor(rarity string) RarityStyle {
	if rs, ok := rarityStyles[rarity]; ok {
		return rs
	}
	return RarityStyle{lipgloss.NewStyle().Bold(true).Foreground(brightWhite), "✨"}
}
