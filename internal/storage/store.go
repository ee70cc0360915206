// Package storage persists the ledger as one opaque blob under a fixed
// key. The core never inspects what a backend does with the blob; it only
// loads once at startup and saves after every mutation.
package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"findash/internal/core"
)

// BlobKey is the fixed identifier every backend stores the ledger under.
const BlobKey = "findash_ledger"

// LedgerStore is the persistence port. Load reports ok=false when nothing
// has been saved yet, which is not an error.
type LedgerStore interface {
	Load(ctx context.Context) (l core.Ledger, ok bool, err error)
	Save(ctx context.Context, l core.Ledger) error
	Close() error
}

// encodeLedger renders the ledger as the opaque JSON blob all backends
// share.
func encodeLedger(l core.Ledger) ([]byte, error) {
	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("encode ledger: %w", err)
	}
	return data, nil
}

func decodeLedger(data []byte) (core.Ledger, error) {
	var l core.Ledger
	if err := json.Unmarshal(data, &l); err != nil {
		return core.Ledger{}, fmt.Errorf("decode ledger: %w", err)
	}
	return l, nil
}
