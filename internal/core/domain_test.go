package core

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNormalizeType(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want TxnType
	}{
		{"empty defaults to credit", "", Credit},
		{"whitespace defaults to credit", "   ", Credit},
		{"canonical credit", "Credit", Credit},
		{"lowercase credit", "credit", Credit},
		{"uppercase credit", "CREDIT", Credit},
		{"canonical debit", "Debit", Debit},
		{"lowercase debit", "debit", Debit},
		{"unknown counts as debit", "withdrawal", Debit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeType(tt.in); got != tt.want {
				t.Errorf("NormalizeType(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTransactionSigned(t *testing.T) {
	credit := Transaction{Type: Credit, Amount: decimal.NewFromInt(100)}
	if !credit.Signed().Equal(decimal.NewFromInt(100)) {
		t.Errorf("credit Signed() = %s, want 100", credit.Signed())
	}
	debit := Transaction{Type: Debit, Amount: decimal.NewFromInt(40)}
	if !debit.Signed().Equal(decimal.NewFromInt(-40)) {
		t.Errorf("debit Signed() = %s, want -40", debit.Signed())
	}
}

func TestLedgerProjectNamed(t *testing.T) {
	l := Ledger{Projects: []Project{{Name: "Ops"}, {Name: "R&D"}}}

	if p := l.ProjectNamed("R&D"); p == nil || p.Name != "R&D" {
		t.Fatalf("ProjectNamed(R&D) = %v, want R&D project", p)
	}
	if p := l.ProjectNamed("missing"); p != nil {
		t.Errorf("ProjectNamed(missing) = %v, want nil", p)
	}

	names := l.ProjectNames()
	if len(names) != 2 || names[0] != "Ops" || names[1] != "R&D" {
		t.Errorf("ProjectNames() = %v, want [Ops R&D]", names)
	}
}

func TestLedgerClone(t *testing.T) {
	l := Ledger{Projects: []Project{{
		Name:         "Ops",
		Transactions: []Transaction{{Title: "rent", Type: Debit, Amount: decimal.NewFromInt(10)}},
	}}}

	c := l.Clone()
	c.Projects[0].Transactions[0].Title = "changed"
	c.Projects[0].Name = "renamed"

	if l.Projects[0].Name != "Ops" {
		t.Errorf("clone mutation leaked into original project name: %q", l.Projects[0].Name)
	}
	if l.Projects[0].Transactions[0].Title != "rent" {
		t.Errorf("clone mutation leaked into original transaction: %q", l.Projects[0].Transactions[0].Title)
	}
}

func TestFilterCriteriaCacheKey(t *testing.T) {
	min := decimal.NewFromInt(5)
	a := FilterCriteria{DateStart: "2024-01-01", Categories: []string{"Travel"}, AmountMin: &min}
	b := FilterCriteria{DateStart: "2024-01-01", Categories: []string{"Travel"}, AmountMin: &min}
	if a.CacheKey() != b.CacheKey() {
		t.Errorf("equal criteria produced different cache keys: %q vs %q", a.CacheKey(), b.CacheKey())
	}
	if (FilterCriteria{}).CacheKey() == a.CacheKey() {
		t.Error("restricted criteria should not share a key with the unrestricted one")
	}
	if !(FilterCriteria{}).IsUnrestricted() {
		t.Error("zero criteria should be unrestricted")
	}
	if a.IsUnrestricted() {
		t.Error("criteria with bounds should not be unrestricted")
	}
}
