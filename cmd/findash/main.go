package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"findash/internal/backend"
	"findash/internal/config"
	apphttp "findash/internal/http"
	"findash/internal/importer/google"
	applog "findash/internal/log"
	"findash/internal/services"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := applog.New(applog.DefaultConfig())
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	result, err := backend.Build(cfg, logger.Logger)
	if err != nil {
		logger.Error("Failed to build backend", "error", err, "backend", cfg.DataBackend)
		os.Exit(1)
	}
	defer func() {
		if err := result.Cleanup(); err != nil {
			logger.Warn("Backend cleanup failed", "error", err)
		}
	}()

	var publisher services.ChangePublisher
	if result.AMQP != nil {
		publisher = result.AMQP
	}
	svc := services.NewDashboardService(result.Store, publisher)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := svc.Startup(ctx); err != nil {
		logger.Error("Failed to restore persisted ledger", "error", err)
		os.Exit(1)
	}

	// With a configured spreadsheet and no restored data, seed the ledger
	// from the sheet so the dashboard is not empty on first run.
	if cfg.SheetsEnabled() && len(svc.ProjectNames()) == 0 {
		if err := seedFromSheets(ctx, svc); err != nil {
			logger.Warn("Initial spreadsheet import failed, starting empty", "error", err)
		}
	}

	srv := apphttp.NewServer(":"+cfg.Port, svc)

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		cancel()
	}()

	logger.Info("Starting findash server", "port", cfg.Port, "backend", cfg.DataBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}

func seedFromSheets(ctx context.Context, svc *services.DashboardService) error {
	cli, err := google.NewFromEnv(ctx)
	if err != nil {
		return err
	}
	return svc.Import(ctx, cli)
}
