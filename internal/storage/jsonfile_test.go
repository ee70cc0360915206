package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"findash/internal/core"
)

func testLedger() core.Ledger {
	return core.Ledger{Projects: []core.Project{{
		Name: "Ops",
		Transactions: []core.Transaction{{
			Date:     "2024-01-01",
			Title:    "invoice",
			Type:     core.Credit,
			Amount:   decimal.NewFromInt(100),
			Category: "Sales",
			Project:  "Ops",
		}},
	}}}
}

func assertLedger(t *testing.T, got core.Ledger) {
	t.Helper()
	if len(got.Projects) != 1 || got.Projects[0].Name != "Ops" {
		t.Fatalf("loaded ledger = %+v, want one Ops project", got)
	}
	txn := got.Projects[0].Transactions[0]
	if txn.Title != "invoice" || txn.Type != core.Credit || !txn.Amount.Equal(decimal.NewFromInt(100)) {
		t.Errorf("loaded transaction = %+v, not what was saved", txn)
	}
}

func TestJSONFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "ledger.json")
	store, err := NewJSONFileStore(path)
	if err != nil {
		t.Fatalf("NewJSONFileStore failed: %v", err)
	}
	defer store.Close()

	if _, ok, err := store.Load(ctx); err != nil || ok {
		t.Fatalf("Load before any save = ok=%v err=%v, want empty without error", ok, err)
	}

	if err := store.Save(ctx, testLedger()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, ok, err := store.Load(ctx)
	if err != nil || !ok {
		t.Fatalf("Load after save = ok=%v err=%v", ok, err)
	}
	assertLedger(t, got)
}

func TestJSONFileStoreOverwrites(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "ledger.json")
	store, err := NewJSONFileStore(path)
	if err != nil {
		t.Fatal(err)
	}

	if err := store.Save(ctx, core.Ledger{Projects: []core.Project{{Name: "Old"}}}); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(ctx, testLedger()); err != nil {
		t.Fatal(err)
	}
	got, ok, err := store.Load(ctx)
	if err != nil || !ok {
		t.Fatalf("Load = ok=%v err=%v", ok, err)
	}
	assertLedger(t, got)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if _, ok, _ := store.Load(ctx); ok {
		t.Fatal("fresh memory store should report no blob")
	}
	if err := store.Save(ctx, testLedger()); err != nil {
		t.Fatal(err)
	}
	got, ok, err := store.Load(ctx)
	if err != nil || !ok {
		t.Fatalf("Load = ok=%v err=%v", ok, err)
	}
	assertLedger(t, got)
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "findash.db")
	store, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	defer store.Close()

	if _, ok, err := store.Load(ctx); err != nil || ok {
		t.Fatalf("Load before any save = ok=%v err=%v, want empty without error", ok, err)
	}

	if err := store.Save(ctx, testLedger()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	// Second save exercises the upsert path.
	if err := store.Save(ctx, testLedger()); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}
	got, ok, err := store.Load(ctx)
	if err != nil || !ok {
		t.Fatalf("Load after save = ok=%v err=%v", ok, err)
	}
	assertLedger(t, got)
}
