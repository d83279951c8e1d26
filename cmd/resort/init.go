package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Avisha2803/resort-booking-agent/internal/config"
	"github.com/Avisha2803/resort-booking-agent/pkg/env"
	"github.com/Avisha2803/resort-booking-agent/pkg/log"
)

var initCmd = &cobra.Command{
	Use:          "init",
	Short:        "Create the runtime directory and a starter .env",
	Long:         `Creates the runtime directory and writes a .env scaffold with the current settings. Fill in GEMINI_API_KEY to leave degraded mode.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		runtimePath := config.GetRuntimePath()

		if err := os.MkdirAll(runtimePath, 0755); err != nil {
			return fmt.Errorf("failed to create runtime directory: %w", err)
		}

		envPath := filepath.Join(runtimePath, ".env")
		if _, err := os.Stat(envPath); err == nil {
			return fmt.Errorf(".env file already exists at %s", envPath)
		}

		appCfg := config.NewAppConfig(ctx)
		content, err := env.MarshalEnv(appCfg)
		if err != nil {
			return err
		}

		var b strings.Builder
		b.WriteString(content)
		b.WriteString("\n# Gemini credentials. Without a valid key the agents answer in degraded mode.\n")
		b.WriteString("#GEMINI_API_KEY=\n")
		b.WriteString("#GEMINI_MODEL=gemini-2.0-flash\n")
		b.WriteString("\n# Set ENABLE_TELEGRAM=true and fill the token to serve guests over Telegram.\n")
		b.WriteString("#TELEGRAM_TOKEN=\n")

		if err := os.WriteFile(envPath, []byte(b.String()), 0600); err != nil {
			return err
		}

		logger.Info().Str("path", envPath).Msg("wrote .env scaffold")
		logger.Info().Msg("Initialization complete! You can now run 'resort seed' and 'resort start'.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
