// Package config provides environment configuration for the item forge.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the full runtime configuration, loaded from environment
// variables. An absent OpenAI key is a supported state: the program runs
// in fallback mode with locally generated content only.
type Config struct {
	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`
	TextModel     string `env:"DNDGEN_TEXT_MODEL" envDefault:"gpt-5.1"`
	ImageModel    string `env:"DNDGEN_IMAGE_MODEL" envDefault:"gpt-image-1"`

	// NoInline disables inline (sixel) image display. Accepts 1/true/yes.
	NoInline string `env:"DNDGEN_NO_INLINE"`
	// ImageHeight is the target pixel height for displayed images.
	ImageHeight int `env:"DNDGEN_IMG_HEIGHT" envDefault:"350"`
	// ImageDir is the directory generated art is saved under, relative
	// to the working directory.
	ImageDir string `env:"DNDGEN_IMAGE_DIR" envDefault:"images"`

	// RequestTimeout bounds each external service call.
	RequestTimeout time.Duration `env:"DNDGEN_REQUEST_TIMEOUT" envDefault:"60s"`

	// Plain disables the box frame around cards.
	Plain bool `env:"DNDGEN_PLAIN"`
}

// LoadConfig loads configuration from the environment, reading a .env
// file first when one is present.
func LoadConfig() (Config, error) {
	// Missing .env is the normal case; only the parse can fail.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// AIConfigured reports whether the generative service credential is set.
func (c Config) AIConfigured() bool {
	return c.OpenAIAPIKey != ""
}

// InlineDisabled reports whether inline image display was switched off.
func (c Config) InlineDisabled() bool {
	switch strings.ToLower(c.NoInline) {
	case "1", "true", "yes":
		return true
	}
	return false
}
