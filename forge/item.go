// Package forge assembles random magic items from the vocabulary tables.
package forge

import "strings"

// Item is one generated magic item. The required fields are always
// populated from the tables; the enhanced fields stay empty unless an
// enhancement has been merged in.
type Item struct {
	Name        string `json:"name"`
	Rarity      string `json:"rarity_name"`
	Type        string `json:"type"`
	Material    string `json:"material"`
	Quality     string `json:"quality"`
	Enchantment string `json:"enchantment"`
	Origin      string `json:"origin"`
	Quirk       string `json:"quirk"`
	Attunement  string `json:"attune"`
	Effect      string `json:"effect"`

	EnhancedLore   string `json:"enhanced_lore,omitempty"`
	EnhancedQuirk  string `json:"enhanced_quirk,omitempty"`
	MechanicalNote string `json:"mechanical_note,omitempty"`
}

// Enhancement carries the fields an external text enhancer may return.
// Any of them may be empty when the service answers partially.
type Enhancement struct {
	Name           string `json:"name"`
	EnhancedLore   string `json:"enhanced_lore"`
	EnhancedQuirk  string `json:"enhanced_quirk"`
	MechanicalNote string `json:"mechanical_note"`
}

// ApplyEnhancement merges an enhancement into the item. Base fields win
// whenever the enhanced field is absent or blank, so a partial response
// never erases generated content.
func (it *Item) ApplyEnhancement(enh *Enhancement) {
	if enh == nil {
		return
	}
	if name := strings.TrimSpace(enh.Name); name != "" {
		it.Name = name
	}
	if lore := strings.TrimSpace(enh.EnhancedLore); lore != "" {
		it.EnhancedLore = lore
	}
	if quirk := strings.TrimSpace(enh.EnhancedQuirk); quirk != "" {
		it.EnhancedQuirk = quirk
	}
	if note := strings.TrimSpace(enh.MechanicalNote); note != "" {
		it.MechanicalNote = note
	}
}

// Lore returns the text for the card's lore section: the enhanced lore
// when present, otherwise a sentence synthesized from origin and
// enchantment.
func (it Item) Lore() string {
	if it.EnhancedLore != "" {
		return it.EnhancedLore
	}
	return "Forged origin: " + it.Origin + ". Its magic is such that " + it.Enchantment + "."
}

// QuirkText returns the text for the card's oddities section.
func (it Item) QuirkText() string {
	if it.EnhancedQuirk != "" {
		return it.EnhancedQuirk
	}
	return "Quirk: " + it.Quirk + "."
}
