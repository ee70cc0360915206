// Package memory provides an in-memory DocumentSource for tests and local
// development, mirroring the shape real parsers deliver.
package memory

import (
	"context"
	"sync"

	"findash/internal/importer"
)

type Source struct {
	mu     sync.Mutex
	sheets []importer.Sheet
}

func New(sheets ...importer.Sheet) *Source {
	return &Source{sheets: sheets}
}

// Sheets returns a copy of the configured sheets.
func (s *Source) Sheets(_ context.Context) ([]importer.Sheet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]importer.Sheet, len(s.sheets))
	copy(out, s.sheets)
	return out, nil
}

// SetSheets replaces the source's content, for re-import scenarios.
func (s *Source) SetSheets(sheets ...importer.Sheet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sheets = sheets
}
