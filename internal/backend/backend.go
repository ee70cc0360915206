// Package backend builds the persistence and change-feed stack from
// configuration. Each data backend produces a LedgerStore; the AMQP
// client is layered on when a broker URL is configured.
package backend

import (
	"fmt"
	"log/slog"

	"findash/internal/amqp"
	"findash/internal/config"
	"findash/internal/storage"
)

type Type string

const (
	Memory   Type = "memory"
	JSONFile Type = "jsonfile"
	SQLite   Type = "sqlite"
)

func (t Type) IsValid() bool {
	switch t {
	case Memory, JSONFile, SQLite:
		return true
	default:
		return false
	}
}

// Result bundles the built stack with its teardown function.
type Result struct {
	Store   storage.LedgerStore
	AMQP    *amqp.Client
	Cleanup func() error
}

// Build constructs the ledger store named by cfg.DataBackend and, when
// configured, the AMQP change-feed client. AMQP failures are logged and
// tolerated; a broken broker must not keep the dashboard from serving.
func Build(cfg *config.Config, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}

	t := Type(cfg.DataBackend)
	if !t.IsValid() {
		return nil, fmt.Errorf("invalid data backend: %s", cfg.DataBackend)
	}

	var (
		store storage.LedgerStore
		err   error
	)
	switch t {
	case SQLite:
		store, err = storage.NewSQLiteStore(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite store: %w", err)
		}
		logger.Info("Initialized sqlite backend", "db_path", cfg.SQLiteDBPath)
	case JSONFile:
		store, err = storage.NewJSONFileStore(cfg.JSONFilePath)
		if err != nil {
			return nil, fmt.Errorf("initialize jsonfile store: %w", err)
		}
		logger.Info("Initialized jsonfile backend", "path", cfg.JSONFilePath)
	case Memory:
		store = storage.NewMemoryStore()
		logger.Info("Initialized memory backend")
	}

	var amqpClient *amqp.Client
	if cfg.AMQPEnabled() {
		amqpClient, err = amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("Failed to initialize AMQP client, continuing without change feed", "error", err)
			amqpClient = nil
		} else {
			logger.Info("Initialized AMQP client", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
		}
	}

	cleanup := func() error {
		if amqpClient != nil {
			if err := amqpClient.Close(); err != nil {
				logger.Warn("Failed to close AMQP client", "error", err)
			}
		}
		return store.Close()
	}

	return &Result{Store: store, AMQP: amqpClient, Cleanup: cleanup}, nil
}
