package storage

import (
	"context"
	"sync"

	"findash/internal/core"
)

// MemoryStore keeps the blob in process memory. Session-only persistence,
// used for the plain import mode and in tests.
type MemoryStore struct {
	mu    sync.Mutex
	blob  []byte
	saved bool
}

var _ LedgerStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(_ context.Context) (core.Ledger, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.saved {
		return core.Ledger{}, false, nil
	}
	l, err := decodeLedger(m.blob)
	if err != nil {
		return core.Ledger{}, false, err
	}
	return l, true, nil
}

func (m *MemoryStore) Save(_ context.Context, l core.Ledger) error {
	data, err := encodeLedger(l)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blob = data
	m.saved = true
	return nil
}

func (m *MemoryStore) Close() error { return nil }
