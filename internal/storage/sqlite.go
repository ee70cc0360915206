package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"findash/internal/core"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps the ledger blob in a single-row sqlite table. Suits the
// interactive mode: cheap single-key upsert after every mutation.
type SQLiteStore struct {
	db *sql.DB
}

var _ LedgerStore = (*SQLiteStore)(nil)

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Load(ctx context.Context) (core.Ledger, bool, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM ledger_blobs WHERE key = ?`, BlobKey).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Ledger{}, false, nil
	}
	if err != nil {
		return core.Ledger{}, false, fmt.Errorf("load ledger blob: %w", err)
	}
	l, err := decodeLedger(payload)
	if err != nil {
		return core.Ledger{}, false, err
	}
	return l, true, nil
}

func (s *SQLiteStore) Save(ctx context.Context, l core.Ledger) error {
	payload, err := encodeLedger(l)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO ledger_blobs (key, payload, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		BlobKey, payload, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save ledger blob: %w", err)
	}

	slog.InfoContext(ctx, "Ledger saved to SQLite",
		"key", BlobKey,
		"bytes", len(payload),
		"projects", len(l.Projects))
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
