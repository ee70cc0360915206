package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"findash/internal/core"
)

// JSONFileStore writes the ledger blob to a single JSON file. The simplest
// backend with state that survives restarts; good for local use.
type JSONFileStore struct {
	filename string
}

var _ LedgerStore = (*JSONFileStore)(nil)

func NewJSONFileStore(filename string) (*JSONFileStore, error) {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &JSONFileStore{filename: filename}, nil
}

func (f *JSONFileStore) Load(_ context.Context) (core.Ledger, bool, error) {
	data, err := os.ReadFile(f.filename)
	if os.IsNotExist(err) {
		return core.Ledger{}, false, nil
	}
	if err != nil {
		return core.Ledger{}, false, fmt.Errorf("read ledger file: %w", err)
	}
	l, err := decodeLedger(data)
	if err != nil {
		return core.Ledger{}, false, err
	}
	return l, true, nil
}

func (f *JSONFileStore) Save(_ context.Context, l core.Ledger) error {
	data, err := encodeLedger(l)
	if err != nil {
		return err
	}
	// Write-then-rename so a crash mid-save never truncates the blob.
	tmp := f.filename + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write ledger file: %w", err)
	}
	if err := os.Rename(tmp, f.filename); err != nil {
		return fmt.Errorf("replace ledger file: %w", err)
	}
	return nil
}

func (f *JSONFileStore) Close() error { return nil }
