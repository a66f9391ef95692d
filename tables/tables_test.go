package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTablesAreNonEmpty(t *testing.T) {
	lists := map[string][]string{
		"rarities":     Rarities,
		"item types":   ItemTypes,
		"materials":    Materials,
		"qualities":    Qualities,
		"enchantments": Enchantments,
		"origins":      Origins,
		"quirks":       Quirks,
		"attunement":   AttunementRequirements,
		"effects":      MechanicalEffects,
		"epithets":     Epithets,
	}

	for name, list := range lists {
		assert.NotEmpty(t, list, "table %q must have entries", name)
		for _, entry := range list {
			assert.NotEmpty(t, entry, "table %q contains a blank entry", name)
		}
	}
}

func TestThemedEffectsBucketsAreNonEmpty(t *testing.T) {
	for theme, pool := range ThemedMechanicalEffects {
		assert.NotEmpty(t, pool, "theme %q has an empty bucket", theme)
		for _, effect := range pool {
			assert.NotEmpty(t, effect)
		}
	}

	// The generic theme resolves to the flat table, never to a bucket.
	assert.NotContains(t, ThemedMechanicalEffects, "generic")
}
