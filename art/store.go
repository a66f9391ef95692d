// Package art persists, resizes and displays generated item illustrations.
package art

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode"
)

// slugMaxLen caps filename slugs derived from item names.
const slugMaxLen = 40

// Store writes item illustrations under a fixed directory.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. The directory is created on
// first save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Save writes image data under a slug derived from the item name and
// returns the file path.
func (s *Store) Save(itemName string, data []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", s.dir, err)
	}

	path := filepath.Join(s.dir, Slug(itemName)+".png")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write image %s: %w", path, err)
	}
	return path, nil
}

// Slug derives a filesystem-safe name from an item name: lower-cased
// letters and digits, everything else replaced with underscores, capped
// at slugMaxLen runes.
func Slug(name string) string {
	if name == "" {
		name = "item"
	}
	out := make([]rune, 0, len(name))
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			out = append(out, unicode.ToLower(r))
		} else {
			out = append(out, '_')
		}
		if len(out) == slugMaxLen {
			break
		}
	}
	return string(out)
}
