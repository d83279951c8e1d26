package config

import (
	"context"
	"strings"

	"github.com/Avisha2803/resort-booking-agent/pkg/log"
	"github.com/caarlos0/env/v11"
)

type GeminiConfig struct {
	// Missing or malformed key puts the agents into degraded mode instead
	// of failing startup, so the key is not marked required.
	APIKey string `env:"GEMINI_API_KEY"`
	Model  string `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash"`
}

func NewGeminiConfig(ctx context.Context) *GeminiConfig {
	c := &GeminiConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Gemini config")
	}
	return c
}

// Usable reports whether the key looks like a real Gemini credential.
func (c GeminiConfig) Usable() bool {
	return strings.HasPrefix(c.APIKey, "AIza")
}
