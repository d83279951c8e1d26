package main

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/Avisha2803/resort-booking-agent/internal/config"
	"github.com/Avisha2803/resort-booking-agent/internal/providers/llm"
	"github.com/Avisha2803/resort-booking-agent/internal/providers/tools"
	"github.com/Avisha2803/resort-booking-agent/internal/service/agent"
	"github.com/Avisha2803/resort-booking-agent/internal/service/memory"
	"github.com/Avisha2803/resort-booking-agent/internal/service/router"
	"github.com/Avisha2803/resort-booking-agent/internal/storage/sqlite"
	"github.com/Avisha2803/resort-booking-agent/internal/transport/httpapi"
	"github.com/Avisha2803/resort-booking-agent/internal/transport/telegram"
	"github.com/Avisha2803/resort-booking-agent/pkg/log"
	"github.com/Avisha2803/resort-booking-agent/pkg/srv"
)

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	// init env
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)

	// 2. Storage
	db, err := initStorage(ctx, appCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}
	services = append(services, srv.NewCleanup(db.Close))

	menuRepo := sqlite.NewMenuRepo(db)
	ordersRepo := sqlite.NewOrdersRepo(db)
	requestsRepo := sqlite.NewRequestsRepo(db)

	// 3. AI Provider
	aiProvider, err := llm.NewProvider(ctx, appCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize LLM provider")
	}

	// 4. Tools
	registry := tools.NewRegistry()
	concierge := tools.NewConcierge(menuRepo, ordersRepo, requestsRepo,
		tools.WithStoreTimeout(appCfg.StoreTimeout))
	concierge.RegisterAll(registry)

	// 5. Conversation memory, routing and the agent manager
	mem := memory.New(appCfg.HistoryWindowSize)
	rt := router.New(mem)
	manager := agent.NewManager(aiProvider, registry, mem, rt, appCfg.ModelTimeout)

	// 6. Transports
	transports, err := initTransports(ctx, appCfg, manager, mem, registry, menuRepo, ordersRepo, requestsRepo)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize transports")
	}
	services = append(services, transports...)

	return services
}

func initStorage(ctx context.Context, cfg *config.AppConfig) (*sql.DB, error) {
	return sqlite.NewDB(ctx, cfg.GetDatabasePath())
}

func initTransports(
	ctx context.Context,
	cfg *config.AppConfig,
	manager *agent.Manager,
	mem *memory.Store,
	registry *tools.Registry,
	menuRepo *sqlite.MenuRepo,
	ordersRepo *sqlite.OrdersRepo,
	requestsRepo *sqlite.RequestsRepo,
) ([]srv.Service, error) {
	var services []srv.Service

	if cfg.EnableHTTP {
		services = append(services,
			httpapi.NewServer(cfg.HTTPAddr, manager, registry, menuRepo, ordersRepo, requestsRepo))
	}

	if cfg.EnableTelegram {
		tgCfg := config.NewTelegramConfig(ctx)
		bot, err := telegram.NewBot(ctx, tgCfg, manager, mem)
		if err != nil {
			return nil, err
		}
		services = append(services, bot)
	}

	return services, nil
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
