package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/Avisha2803/resort-booking-agent/internal/config"
	"github.com/Avisha2803/resort-booking-agent/internal/core"
	"github.com/Avisha2803/resort-booking-agent/pkg/log"
)

// NewProvider creates the appropriate AIProvider based on configuration.
// A nil provider (without error) means the hosted model is not configured;
// agents then answer in degraded mode instead of failing startup.
func NewProvider(ctx context.Context, cfg *config.AppConfig) (core.AIProvider, error) {
	logger := log.FromCtx(ctx)

	switch cfg.LLMProvider {
	case "gemini":
		geminiCfg := config.NewGeminiConfig(ctx)
		if !geminiCfg.Usable() {
			logger.Warn().Msg("gemini api key missing or invalid, agents run in degraded mode")
			return nil, nil
		}
		logger.Info().Str("provider", "gemini").Str("model", geminiCfg.Model).Msg("starting llm provider")
		return NewGemini(geminiCfg.APIKey, geminiCfg.Model), nil
	case "custom":
		baseURL := os.Getenv("CUSTOM_OPENAI_BASE_URL")
		apiKey := os.Getenv("CUSTOM_OPENAI_API_KEY")
		model := os.Getenv("CUSTOM_OPENAI_MODEL")
		if baseURL == "" {
			logger.Warn().Msg("custom llm base url missing, agents run in degraded mode")
			return nil, nil
		}
		logger.Info().Str("provider", "custom").Str("model", model).Msg("starting llm provider")
		return NewOpenAICompatible(OpenAICompatibleConfig{
			BaseURL:    baseURL,
			APIKey:     apiKey,
			Model:      model,
			AuthHeader: "Authorization",
			AuthPrefix: "Bearer ",
		}), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.LLMProvider)
	}
}
