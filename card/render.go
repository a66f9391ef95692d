package card

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"arcane-armory/forge"
)

// DefaultWrapWidth is the column the card's prose sections wrap at.
const DefaultWrapWidth = 70

// Config controls how cards are rendered.
type Config struct {
	// WrapWidth is the wrap column for prose sections. Zero means
	// DefaultWrapWidth.
	WrapWidth int
	// Framed draws a box border sized to the widest visible line.
	Framed bool
}

// Renderer turns items into display lines. Rendering is pure: the same
// item and note always produce the same lines.
type Renderer struct {
	cfg Config
}

// NewRenderer creates a renderer with the given configuration.
func NewRenderer(cfg Config) *Renderer {
	if cfg.WrapWidth <= 0 {
		cfg.WrapWidth = DefaultWrapWidth
	}
	return &Renderer{cfg: cfg}
}

// Card renders the item into an ordered sequence of display lines. The
// note, when non-empty, is appended as a dim status line.
func (r *Renderer) Card(it forge.Item, note string) []string {
	rs := RarityStyleFor(it.Rarity)

	lines := []string{
		nameStyle.Render(it.Name),
		labelStyle.Render("Rarity: ") + rs.Style.Render(rs.Emoji+" "+it.Rarity),
		labelStyle.Render("Type: ") + it.Quality + " " + it.Material + " " + it.Type,
		"",
		labelStyle.Render("Mechanic: ") + it.Effect,
		labelStyle.Render("Attunement: ") + it.Attunement,
		"",
	}

	lines = append(lines, sectionStyle.Render("📝 Lore:"))
	lines = append(lines, r.wrap(it.Lore())...)
	lines = append(lines, "")
	lines = append(lines, sectionStyle.Render("✨ Oddities:"))
	lines = append(lines, r.wrap(it.QuirkText())...)

	if it.MechanicalNote != "" {
		lines = append(lines, "")
		lines = append(lines, sectionStyle.Render("⚖️ GM Note:"))
		lines = append(lines, r.wrap(it.MechanicalNote)...)
	}

	if note != "" {
		lines = append(lines, "")
		lines = append(lines, noteStyle.Render(note))
	}

	if r.cfg.Framed {
		return frameLines(lines, borderStyle)
	}
	return lines
}

// wrap word-wraps a prose block at the configured width. The wrapper is
// ANSI-aware, so style markers never count toward the column and never
// get split mid-sequence.
func (r *Renderer) wrap(text string) []string {
	return strings.Split(wordwrap.String(text, r.cfg.WrapWidth), "\n")
}
