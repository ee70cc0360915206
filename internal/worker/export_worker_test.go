package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"findash/internal/amqp"
	"findash/internal/core"
	"findash/internal/storage"
)

type fakeWriter struct {
	rows [][]any
	err  error
}

func (f *fakeWriter) AppendSnapshot(_ context.Context, rows [][]any) error {
	if f.err != nil {
		return f.err
	}
	f.rows = append(f.rows, rows...)
	return nil
}

func persistedLedger(t *testing.T) storage.LedgerStore {
	t.Helper()
	persist := storage.NewMemoryStore()
	l := core.Ledger{Projects: []core.Project{
		{Name: "Ops", Transactions: []core.Transaction{
			{Type: core.Credit, Amount: decimal.NewFromInt(100)},
			{Type: core.Debit, Amount: decimal.NewFromInt(40)},
		}},
		{Name: "R&D"},
	}}
	if err := persist.Save(context.Background(), l); err != nil {
		t.Fatal(err)
	}
	return persist
}

func TestHandleChangeMessageExportsOneRowPerProject(t *testing.T) {
	writer := &fakeWriter{}
	w := NewExportWorker(persistedLedger(t), writer)

	msg := amqp.NewLedgerChangedMessage(7, amqp.OpAddTransaction, "Ops")
	if err := w.HandleChangeMessage(context.Background(), msg); err != nil {
		t.Fatalf("HandleChangeMessage failed: %v", err)
	}

	if len(writer.rows) != 2 {
		t.Fatalf("exported %d rows, want 2", len(writer.rows))
	}
	row := writer.rows[0]
	if row[1] != uint64(7) || row[2] != "Ops" || row[3] != "100" || row[4] != "40" || row[5] != "60" {
		t.Errorf("Ops row = %v, want revision 7 credit 100 debit 40 profit 60", row)
	}
	if writer.rows[1][2] != "R&D" || writer.rows[1][5] != "0" {
		t.Errorf("R&D row = %v, want zero profit", writer.rows[1])
	}
}

func TestHandleChangeMessageSkipsWithoutLedger(t *testing.T) {
	writer := &fakeWriter{}
	w := NewExportWorker(storage.NewMemoryStore(), writer)

	msg := amqp.NewLedgerChangedMessage(1, amqp.OpImport, "")
	if err := w.HandleChangeMessage(context.Background(), msg); err != nil {
		t.Fatalf("missing ledger should be skipped, got %v", err)
	}
	if len(writer.rows) != 0 {
		t.Errorf("nothing should be exported, got %v", writer.rows)
	}
}

func TestHandleChangeMessagePropagatesWriterError(t *testing.T) {
	boom := errors.New("sheet unavailable")
	w := NewExportWorker(persistedLedger(t), &fakeWriter{err: boom})

	msg := amqp.NewLedgerChangedMessage(2, amqp.OpImport, "")
	if err := w.HandleChangeMessage(context.Background(), msg); !errors.Is(err, boom) {
		t.Errorf("error = %v, want writer error for requeue", err)
	}
}
