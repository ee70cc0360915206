package aggregate

import (
	"testing"

	"github.com/shopspring/decimal"

	"findash/internal/core"
)

func catTxn(category string, typ core.TxnType, amount string) core.Transaction {
	t := txn("2024-01-01", typ, amount)
	t.Category = category
	return t
}

func TestCategoryTotalsMagnitudeConvention(t *testing.T) {
	in := []core.Transaction{
		catTxn("Travel", core.Credit, "100"),
		catTxn("Travel", core.Debit, "30"),
		catTxn("Food", core.Debit, "20"),
		catTxn("", core.Credit, "5"),
	}
	got := CategoryTotals(in)
	if len(got) != 3 {
		t.Fatalf("got %d categories, want 3", len(got))
	}
	// Magnitude sum ignores type: 100 + 30, not 100 - 30.
	if got[0].Category != "Travel" || !got[0].Total.Equal(decimal.NewFromInt(130)) {
		t.Errorf("Travel = %s %s, want Travel 130", got[0].Category, got[0].Total)
	}
	if got[1].Category != "Food" || !got[1].Total.Equal(decimal.NewFromInt(20)) {
		t.Errorf("Food = %s %s, want Food 20", got[1].Category, got[1].Total)
	}
	// Uncategorized rows keep the literal empty key.
	if got[2].Category != "" || !got[2].Total.Equal(decimal.NewFromInt(5)) {
		t.Errorf("uncategorized = %q %s, want \"\" 5", got[2].Category, got[2].Total)
	}
}

func TestCashFlowSeriesKeepsEntryOrder(t *testing.T) {
	in := []core.Transaction{
		txn("2024-01-10", core.Credit, "100"),
		txn("2024-01-02", core.Debit, "40"), // out of date order on purpose
	}
	got := CashFlowSeries(in)
	if len(got) != 2 {
		t.Fatalf("got %d points, want 2", len(got))
	}
	if got[0].Date != "2024-01-10" || !got[0].Value.Equal(decimal.NewFromInt(100)) {
		t.Errorf("point 0 = %v, want 2024-01-10 +100", got[0])
	}
	if got[1].Date != "2024-01-02" || !got[1].Value.Equal(decimal.NewFromInt(-40)) {
		t.Errorf("point 1 = %v, want 2024-01-02 -40", got[1])
	}
}

func TestTimelineSeries(t *testing.T) {
	in := []core.Transaction{
		txn("2024-01-10", core.Credit, "100"),
		txn("2024-01-02", core.Debit, "40"),
		txn("2024-1-10", core.Debit, "30"), // same day as the first, different format
	}
	got := TimelineSeries(in)
	if len(got) != 2 {
		t.Fatalf("got %d points, want 2 distinct dates", len(got))
	}
	if got[0].Date != "2024-01-02" || !got[0].Net.Equal(decimal.NewFromInt(-40)) {
		t.Errorf("point 0 = %v, want 2024-01-02 net -40", got[0])
	}
	if got[1].Date != "2024-01-10" || !got[1].Net.Equal(decimal.NewFromInt(70)) {
		t.Errorf("point 1 = %v, want 2024-01-10 net 70", got[1])
	}
}

func TestCompare(t *testing.T) {
	l := core.Ledger{Projects: []core.Project{
		{Name: "Ops", Transactions: []core.Transaction{
			txn("2024-01-01", core.Credit, "100"),
			txn("2024-01-02", core.Debit, "40"),
		}},
		{Name: "R&D", Transactions: []core.Transaction{
			txn("2024-01-01", core.Debit, "25"),
		}},
		{Name: "Empty"},
	}}
	got := Compare(l)
	if len(got.Projects) != 3 || len(got.Credits) != 3 || len(got.Debits) != 3 || len(got.Profits) != 3 {
		t.Fatalf("comparison slices must all have length 3, got %d/%d/%d/%d",
			len(got.Projects), len(got.Credits), len(got.Debits), len(got.Profits))
	}
	if got.Projects[0] != "Ops" || got.Projects[1] != "R&D" || got.Projects[2] != "Empty" {
		t.Errorf("project order = %v, want ledger order", got.Projects)
	}
	if !got.Profits[0].Equal(decimal.NewFromInt(60)) {
		t.Errorf("Ops profit = %s, want 60", got.Profits[0])
	}
	if !got.Profits[1].Equal(decimal.NewFromInt(-25)) {
		t.Errorf("R&D profit = %s, want -25", got.Profits[1])
	}
	if !got.Profits[2].IsZero() {
		t.Errorf("Empty profit = %s, want 0", got.Profits[2])
	}
}

func TestBuildDashboardView(t *testing.T) {
	l := core.Ledger{Projects: []core.Project{
		{Name: "Ops", Transactions: []core.Transaction{
			txn("2024-01-01", core.Credit, "100"),
			txn("2024-01-02", core.Debit, "40"),
		}},
	}}
	view, err := BuildDashboardView(l, "Ops", core.FilterCriteria{})
	if err != nil {
		t.Fatalf("BuildDashboardView failed: %v", err)
	}
	if !view.Summary.Credit.Equal(decimal.NewFromInt(100)) ||
		!view.Summary.Debit.Equal(decimal.NewFromInt(40)) ||
		!view.Summary.Balance.Equal(decimal.NewFromInt(60)) ||
		view.Summary.Verdict != core.VerdictProfit {
		t.Errorf("summary = %+v, want credit 100 debit 40 balance 60 PROFIT", view.Summary)
	}
	if len(view.CashFlow) != 2 || len(view.Timeline) != 2 {
		t.Errorf("series lengths = %d/%d, want 2/2", len(view.CashFlow), len(view.Timeline))
	}
	if len(view.Comparison.Projects) != 1 {
		t.Errorf("comparison projects = %v, want one entry", view.Comparison.Projects)
	}

	if _, err := BuildDashboardView(l, "missing", core.FilterCriteria{}); err != core.ErrUnknownProject {
		t.Errorf("unknown project error = %v, want ErrUnknownProject", err)
	}
}
