package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	httpadapter "maildeck/internal/adapter/http"
	"maildeck/internal/adapter/postgres"
	"maildeck/internal/adapter/salesforce"
	"maildeck/internal/adapter/usecase"
	"maildeck/internal/config"
	"maildeck/internal/db"
)

// main is the entry point of the console backend. It loads configuration,
// optionally runs database migrations and seeds demo data, wires the
// repositories, usecases and the sync-service gateway, then serves the
// API until a termination signal arrives.
func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, relying on OS environment")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("migrations applied")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.SeedDemo {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo data seeded")
		}
	}

	clientRepo := postgres.NewClientRepository(pool)
	contactRepo := postgres.NewContactRepository(pool)
	folderRepo := postgres.NewFolderRepository(pool)
	templateRepo := postgres.NewTemplateRepository(pool)
	campaignRepo := postgres.NewCampaignRepository(pool)
	crmGateway := salesforce.NewClient(cfg.Sync.BaseURL, cfg.Sync.Timeout)

	handler := httpadapter.NewHandler(
		usecase.NewClientService(clientRepo),
		usecase.NewAudienceService(contactRepo),
		usecase.NewLibraryService(folderRepo, templateRepo),
		usecase.NewCampaignService(campaignRepo, contactRepo, templateRepo),
		usecase.NewSyncService(crmGateway, logger),
		logger,
	)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
