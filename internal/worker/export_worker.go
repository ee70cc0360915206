// Package worker exports dashboard snapshots in response to ledger change
// events. The worker never mutates the ledger; it reads the persisted blob
// and appends one comparison row per project to its snapshot target.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"findash/internal/aggregate"
	"findash/internal/amqp"
	"findash/internal/storage"
)

// SnapshotWriter is the outbound port the worker appends snapshot rows to.
// The Google Sheets client implements it.
type SnapshotWriter interface {
	AppendSnapshot(ctx context.Context, rows [][]any) error
}

// ExportWorker handles ledger change messages from AMQP.
type ExportWorker struct {
	persist storage.LedgerStore
	writer  SnapshotWriter
}

func NewExportWorker(persist storage.LedgerStore, writer SnapshotWriter) *ExportWorker {
	return &ExportWorker{persist: persist, writer: writer}
}

// HandleChangeMessage exports one snapshot for the revision the message
// announces. A change that arrives before anything was persisted is
// ignored rather than retried: there is nothing to export yet.
func (w *ExportWorker) HandleChangeMessage(ctx context.Context, msg *amqp.LedgerChangedMessage) error {
	slog.InfoContext(ctx, "Processing ledger change",
		"event_id", msg.ID,
		"revision", msg.Revision,
		"operation", msg.Operation)

	l, ok, err := w.persist.Load(ctx)
	if err != nil {
		return fmt.Errorf("load ledger: %w", err)
	}
	if !ok {
		slog.WarnContext(ctx, "Change message without a persisted ledger, skipping",
			"event_id", msg.ID)
		return nil
	}

	cmp := aggregate.Compare(l)
	stamp := time.Now().UTC().Format(time.RFC3339)
	rows := make([][]any, len(cmp.Projects))
	for i, name := range cmp.Projects {
		rows[i] = []any{
			stamp,
			msg.Revision,
			name,
			cmp.Credits[i].String(),
			cmp.Debits[i].String(),
			cmp.Profits[i].String(),
		}
	}

	if err := w.writer.AppendSnapshot(ctx, rows); err != nil {
		return fmt.Errorf("append snapshot for revision %d: %w", msg.Revision, err)
	}

	slog.InfoContext(ctx, "Exported snapshot",
		"revision", msg.Revision,
		"projects", len(rows))
	return nil
}
