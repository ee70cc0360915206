package google

import (
	"fmt"

	"findash/internal/importer"
)

// valuesToRows converts a values matrix (as returned by the Sheets API)
// into raw rows keyed by the header row. Cells beyond the header width are
// dropped; short rows simply omit the trailing columns. A sheet with only a
// header, or nothing at all, yields no rows.
func valuesToRows(values [][]interface{}) []importer.Row {
	if len(values) < 2 {
		return nil
	}
	headers := make([]string, len(values[0]))
	for i, h := range values[0] {
		headers[i] = cellString(h)
	}
	rows := make([]importer.Row, 0, len(values)-1)
	for _, line := range values[1:] {
		row := importer.Row{}
		for i, cell := range line {
			if i >= len(headers) || headers[i] == "" {
				continue
			}
			row[headers[i]] = cell
		}
		rows = append(rows, row)
	}
	return rows
}

func cellString(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
