// Package importer turns spreadsheet-like documents into ledger projects.
// The spreadsheet parser itself is a collaborator behind the DocumentSource
// port; this package owns normalization and grouping.
package importer

import (
	"fmt"
	"strings"

	"findash/internal/core"
)

// Row is one imported record: a mapping of column name to raw value as the
// parser delivered it (string, number, or nothing).
type Row map[string]any

// Normalize converts a raw row into a Transaction. It never fails and never
// rejects a row: a malformed financial sheet must not abort the import.
//
// Rules, in order: the amount is coerced to a number (zero on failure), the
// type defaults to Credit when absent, the project defaults to the source
// sheet name, and date/title/category pass through verbatim.
func Normalize(r Row, sheetName string) core.Transaction {
	project := stringField(r, "project")
	if project == "" {
		project = sheetName
	}
	return core.Transaction{
		Date:     stringField(r, "date"),
		Title:    stringField(r, "title"),
		Type:     core.NormalizeType(stringField(r, "type")),
		Amount:   core.CoerceAmount(field(r, "amount")),
		Category: stringField(r, "category"),
		Project:  project,
	}
}

// field looks a column up case-insensitively; sheets disagree on header
// casing and the import contract is permissive.
func field(r Row, name string) any {
	if v, ok := r[name]; ok {
		return v
	}
	for k, v := range r {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return nil
}

func stringField(r Row, name string) string {
	v := field(r, name)
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
