package worker

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"sync"
)

// CSVSnapshotWriter appends snapshot rows to a local CSV file. It is the
// snapshot target when no spreadsheet is configured.
type CSVSnapshotWriter struct {
	mu   sync.Mutex
	path string
}

func NewCSVSnapshotWriter(path string) *CSVSnapshotWriter {
	return &CSVSnapshotWriter{path: path}
}

func (w *CSVSnapshotWriter) AppendSnapshot(_ context.Context, rows [][]any) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open snapshot file: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	for _, row := range rows {
		record := make([]string, len(row))
		for i, cell := range row {
			record[i] = fmt.Sprint(cell)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write snapshot row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush snapshot rows: %w", err)
	}
	return nil
}
