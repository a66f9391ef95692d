// Package llm integrates the external generative service that enriches
// generated items with elaborated lore and illustrations.
package llm

import (
	"context"

	"arcane-armory/forge"
)

// TextEnhancer asks an external text-completion service to elaborate an
// item's lore, quirks and name.
//
// Implementations return an error on any service failure; callers decide
// how to degrade. A returned Enhancement may be partially populated.
type TextEnhancer interface {
	// EnhanceItem requests richer content for the item.
	// - ctx: context for cancellation; implementations add their own
	//   bounded timeout on top of it
	EnhanceItem(ctx context.Context, item forge.Item) (*forge.Enhancement, error)

	// Close releases any resources held by the enhancer.
	Close() error
}

// ImageGenerator asks an external image-generation service for an
// illustration of the item. Returns decoded image bytes.
type ImageGenerator interface {
	GenerateArt(ctx context.Context, item forge.Item) ([]byte, error)
}
