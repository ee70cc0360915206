package google

import (
	"testing"
)

func TestValuesToRows(t *testing.T) {
	values := [][]interface{}{
		{"Date", "Title", "Type", "Amount", "Category"},
		{"2024-01-01", "invoice", "Credit", 100.0, "Sales"},
		{"2024-01-02", "rent", "Debit", "40"},
		{"2024-01-03", "extra", "Credit", 5, "Misc", "overflow cell"},
	}
	rows := valuesToRows(values)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if rows[0]["Date"] != "2024-01-01" || rows[0]["Amount"] != 100.0 {
		t.Errorf("row 0 = %v, want Date/Amount carried through", rows[0])
	}
	if _, ok := rows[1]["Category"]; ok {
		t.Error("short row must omit trailing columns, not invent them")
	}
	if len(rows[2]) != 5 {
		t.Errorf("cells beyond the header width must be dropped, got %v", rows[2])
	}
}

func TestValuesToRowsDegenerateSheets(t *testing.T) {
	if rows := valuesToRows(nil); rows != nil {
		t.Errorf("empty sheet should yield no rows, got %v", rows)
	}
	if rows := valuesToRows([][]interface{}{{"Date", "Amount"}}); rows != nil {
		t.Errorf("header-only sheet should yield no rows, got %v", rows)
	}
}

func TestValuesToRowsBlankHeaderSkipped(t *testing.T) {
	values := [][]interface{}{
		{"Date", "", "Amount"},
		{"2024-01-01", "ignored", "10"},
	}
	rows := valuesToRows(values)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if len(rows[0]) != 2 {
		t.Errorf("blank header column must be skipped, got %v", rows[0])
	}
}
