package ai

import (
	"context"

	"github.com/AbdullahKhetran/wellness-arcade/pkg/config"
)

// fallbackGenerator serves deterministic affirmations without any
// external dependency. Used when no API key is configured.
type fallbackGenerator struct{}

func (fallbackGenerator) Generate(_ context.Context, words []string) string {
	return Fallback(words)
}

// NewGenerator picks the generator for the configuration: the
// HTTP-backed client when an API key is set, purely local generation
// otherwise.
func NewGenerator(cfg config.AIConfig) Generator {
	if cfg.APIKey == "" {
		log.Warn("No text-generation API key configured, affirmations use local fallback")
		return fallbackGenerator{}
	}
	return NewClient(cfg)
}
