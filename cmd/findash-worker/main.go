package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"findash/internal/amqp"
	"findash/internal/backend"
	"findash/internal/config"
	"findash/internal/importer/google"
	applog "findash/internal/log"
	"findash/internal/worker"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := applog.New(applog.DefaultConfig())
	applog.SetDefault(logger)

	logger.Info("Starting findash-worker")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	if !cfg.AMQPEnabled() {
		logger.Error("AMQP_URL is required for the export worker")
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
	if result.AMQP == nil {
		logger.Error("Failed to connect to AMQP broker")
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Snapshot target: the configured spreadsheet, or a local CSV file.
	var writer worker.SnapshotWriter
	if cfg.SheetsEnabled() {
		cli, err := google.NewFromEnv(ctx)
		if err != nil {
			logger.Error("Failed to initialize Google Sheets client", "error", err)
			os.Exit(1)
		}
		writer = cli
		logger.Info("Snapshots will be appended to the spreadsheet",
			"spreadsheet_id", cfg.GoogleSpreadsheetID)
	} else {
		path := strings.TrimSpace(os.Getenv("SNAPSHOT_CSV_PATH"))
		if path == "" {
			path = "data/snapshots.csv"
		}
		writer = worker.NewCSVSnapshotWriter(path)
		logger.Info("Snapshots will be appended to a local file", "path", path)
	}

	exportWorker := worker.NewExportWorker(result.Store, writer)

	go func() {
		err := result.AMQP.ConsumeLedgerChanged(ctx, func(msg *amqp.LedgerChangedMessage) error {
			return exportWorker.HandleChangeMessage(ctx, msg)
		})
		if err != nil && err != context.Canceled {
			logger.Error("Message consumption failed", "error", err)
		}
		cancel()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigChan:
		logger.Info("Shutdown signal received", "signal", sig.String())
		cancel()
	case <-ctx.Done():
	}

	logger.Info("Worker stopped")
}
