package forge

import (
	"math/rand"
	"strings"

	"arcane-armory/tables"
)

// namedArtifactChance is the probability of the "X of the Y" naming style.
const namedArtifactChance = 0.4

// Generator assembles items from the vocabulary tables using an injected
// randomness source.
type Generator struct {
	rng    *rand.Rand
	themed map[string][]string
}

// GeneratorConfig configures a Generator. ThemedEffects may be nil, in
// which case theme inference is skipped and effects are drawn uniformly
// from the flat table.
type GeneratorConfig struct {
	Rand          *rand.Rand
	ThemedEffects map[string][]string
}

// NewGenerator creates a theme-aware generator over the standard tables.
func NewGenerator(rng *rand.Rand) *Generator {
	return NewGeneratorWithConfig(GeneratorConfig{
		Rand:          rng,
		ThemedEffects: tables.ThemedMechanicalEffects,
	})
}

// NewGeneratorWithConfig creates a generator with explicit configuration.
func NewGeneratorWithConfig(cfg GeneratorConfig) *Generator {
	return &Generator{
		rng:    cfg.Rand,
		themed: cfg.ThemedEffects,
	}
}

// Generate assembles one fully-populated item. It cannot fail: every
// input is a static in-process table.
func (g *Generator) Generate() Item {
	rarity := g.pick(tables.Rarities)
	itemType := g.pick(tables.ItemTypes)
	material := g.pick(tables.Materials)
	quality := g.pick(tables.Qualities)
	enchantment := g.pick(tables.Enchantments)

	return Item{
		Name:        g.buildName(rarity, material, quality, itemType),
		Rarity:      rarity,
		Type:        itemType,
		Material:    material,
		Quality:     quality,
		Enchantment: enchantment,
		Origin:      g.pick(tables.Origins),
		Quirk:       g.pick(tables.Quirks),
		Attunement:  g.pick(tables.AttunementRequirements),
		Effect:      g.pickEffect(material, quality, enchantment),
	}
}

// buildName synthesizes an item name. Named-artifact style with
// probability namedArtifactChance, descriptive style otherwise.
func (g *Generator) buildName(rarity, material, quality, itemType string) string {
	if g.rng.Float64() < namedArtifactChance {
		epithet := g.pick(tables.Epithets)
		return titleCase(quality) + " " + titleCase(itemType) + " of " + epithet
	}
	return rarity + " " + quality + " " + material + " " + itemType
}

// pickEffect chooses a mechanical effect, preferring the inferred theme's
// bucket when one exists and is non-empty.
func (g *Generator) pickEffect(material, quality, enchantment string) string {
	if g.themed != nil {
		theme := InferTheme(material, quality, enchantment)
		if pool := g.themed[string(theme)]; len(pool) > 0 {
			return g.pick(pool)
		}
	}
	return g.pick(tables.MechanicalEffects)
}

func (g *Generator) pick(pool []string) string {
	return pool[g.rng.Intn(len(pool))]
}

// titleCase upper-cases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
