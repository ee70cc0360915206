package aggregate

import (
	"testing"

	"github.com/shopspring/decimal"

	"findash/internal/core"
)

func txn(date string, typ core.TxnType, amount string) core.Transaction {
	return core.Transaction{Date: date, Type: typ, Amount: decimal.RequireFromString(amount)}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name    string
		txns    []core.Transaction
		credit  string
		debit   string
		balance string
		verdict string
	}{
		{
			name: "profit",
			txns: []core.Transaction{
				txn("2024-01-01", core.Credit, "100"),
				txn("2024-01-02", core.Debit, "40"),
			},
			credit: "100", debit: "40", balance: "60", verdict: core.VerdictProfit,
		},
		{
			name: "loss",
			txns: []core.Transaction{
				txn("2024-01-01", core.Credit, "10"),
				txn("2024-01-02", core.Debit, "40"),
			},
			credit: "10", debit: "40", balance: "-30", verdict: core.VerdictLoss,
		},
		{
			name: "exact zero is profit",
			txns: []core.Transaction{
				txn("2024-01-01", core.Credit, "40"),
				txn("2024-01-02", core.Debit, "40"),
			},
			credit: "40", debit: "40", balance: "0", verdict: core.VerdictProfit,
		},
		{
			name:   "empty sequence",
			txns:   nil,
			credit: "0", debit: "0", balance: "0", verdict: core.VerdictProfit,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Summarize(tt.txns)
			if !s.Credit.Equal(decimal.RequireFromString(tt.credit)) {
				t.Errorf("credit = %s, want %s", s.Credit, tt.credit)
			}
			if !s.Debit.Equal(decimal.RequireFromString(tt.debit)) {
				t.Errorf("debit = %s, want %s", s.Debit, tt.debit)
			}
			if !s.Balance.Equal(decimal.RequireFromString(tt.balance)) {
				t.Errorf("balance = %s, want %s", s.Balance, tt.balance)
			}
			if !s.Balance.Equal(s.Credit.Sub(s.Debit)) {
				t.Error("balance must equal credit minus debit")
			}
			if s.Verdict != tt.verdict {
				t.Errorf("verdict = %q, want %q", s.Verdict, tt.verdict)
			}
		})
	}
}

func TestTrendAgainstPrior(t *testing.T) {
	all := []core.Transaction{
		txn("2024-01-05", core.Credit, "50"), // prior period
		txn("2024-01-08", core.Debit, "10"),  // prior period
		txn("2024-02-01", core.Credit, "100"),
		txn("2024-02-10", core.Debit, "20"),
	}
	current := all[2:]

	// Current balance 80 vs prior 40.
	if got := TrendAgainstPrior(current, all); got != core.TrendIncreasing {
		t.Errorf("trend = %q, want increasing", got)
	}

	down := []core.Transaction{txn("2024-02-01", core.Credit, "10")}
	allDown := append(all[:2:2], down...)
	if got := TrendAgainstPrior(down, allDown); got != core.TrendDecreasing {
		t.Errorf("trend = %q, want decreasing", got)
	}

	flat := []core.Transaction{txn("2024-02-01", core.Credit, "40")}
	allFlat := append(all[:2:2], flat...)
	if got := TrendAgainstPrior(flat, allFlat); got != core.TrendStable {
		t.Errorf("trend = %q, want stable", got)
	}
}

func TestTrendNoPriorData(t *testing.T) {
	only := []core.Transaction{txn("2024-02-01", core.Credit, "100")}
	if got := TrendAgainstPrior(only, only); got != core.TrendNoPrior {
		t.Errorf("trend with no history = %q, want %q", got, core.TrendNoPrior)
	}
	if got := TrendAgainstPrior(nil, only); got != core.TrendNoPrior {
		t.Errorf("trend with empty current set = %q, want %q", got, core.TrendNoPrior)
	}
}
