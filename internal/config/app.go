package config

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/Avisha2803/resort-booking-agent/pkg/log"
	"github.com/caarlos0/env/v11"
)

type AppConfig struct {
	RuntimePath string `env:"RESORT_RUNTIME_PATH" envDefault:".resort"`
	LLMProvider string `env:"LLM_PROVIDER" envDefault:"gemini"`

	// Transport flags
	EnableHTTP     bool   `env:"ENABLE_HTTP" envDefault:"true"`
	EnableTelegram bool   `env:"ENABLE_TELEGRAM" envDefault:"false"`
	HTTPAddr       string `env:"HTTP_ADDR" envDefault:":8000"`

	// Conversation memory keeps only the most recent messages per session
	HistoryWindowSize int `env:"HISTORY_WINDOW_SIZE" envDefault:"10"`

	// Boundary deadlines
	ModelTimeout time.Duration `env:"MODEL_TIMEOUT" envDefault:"60s"`
	StoreTimeout time.Duration `env:"STORE_TIMEOUT" envDefault:"5s"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	if !filepath.IsAbs(c.RuntimePath) {
		home, _ := os.UserHomeDir()
		c.RuntimePath = filepath.Join(home, c.RuntimePath)
	}
	return c
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "resort.db")
}
