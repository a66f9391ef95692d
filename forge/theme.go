package forge

import "strings"

// Theme is a loose flavor category inferred from an item's text, used to
// bias mechanical-effect selection.
type Theme string

const (
	ThemeFire     Theme = "fire"
	ThemeCold     Theme = "cold"
	ThemeShadow   Theme = "shadow"
	ThemeStorm    Theme = "storm"
	ThemeFey      Theme = "fey"
	ThemeRadiant  Theme = "radiant"
	ThemeNecrotic Theme = "necrotic"
	ThemeArcane   Theme = "arcane"
	ThemeGeneric  Theme = "generic"
)

type themeRule struct {
	theme    Theme
	keywords []string
}

// themeRules are evaluated in order; the first rule with any keyword
// appearing as a substring wins.
var themeRules = []themeRule{
	{ThemeFire, []string{"flame", "fire", "ember", "ash", "inferno", "lava", "scorch", "burn", "sun"}},
	{ThemeCold, []string{"frost", "ice", "icy", "cold", "winter", "snow"}},
	{ThemeShadow, []string{"shadow", "night", "dark", "gloom", "umbral", "void", "shade", "ghost", "spectral"}},
	{ThemeStorm, []string{"storm", "lightning", "thunder", "tempest", "squall"}},
	{ThemeFey, []string{"vine", "root", "moss", "leaf", "petal", "forest", "druid", "beast", "animal", "nature", "wood", "fey"}},
	{ThemeRadiant, []string{"holy", "divine", "radiant", "saint", "angel", "celestial", "blessed", "hallowed"}},
	{ThemeNecrotic, []string{"blood", "bone", "grave", "death", "corpse", "skull", "necrotic", "wither"}},
	{ThemeArcane, []string{"arcane", "spell", "wizard", "mage", "rune", "sigil", "glyph", "scroll", "tome"}},
}

// InferTheme derives a theme from the item's material, quality and
// enchantment text. Deterministic: same inputs, same theme.
func InferTheme(material, quality, enchantment string) Theme {
	text := strings.ToLower(material + " " + quality + " " + enchantment)
	for _, rule := range themeRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.theme
			}
		}
	}
	return ThemeGeneric
}
