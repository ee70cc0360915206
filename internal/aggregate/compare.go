package aggregate

import (
	"github.com/shopspring/decimal"

	"findash/internal/core"
)

// Compare computes credit, debit and profit for every project over the full
// unfiltered ledger. The four output slices are index-aligned to the
// ledger's project order and are recomputed from scratch on every call;
// there is no incremental contract at this data scale.
func Compare(l core.Ledger) core.Comparison {
	n := len(l.Projects)
	cmp := core.Comparison{
		Projects: make([]string, n),
		Credits:  make([]decimal.Decimal, n),
		Debits:   make([]decimal.Decimal, n),
		Profits:  make([]decimal.Decimal, n),
	}
	for i, p := range l.Projects {
		s := Summarize(p.Transactions)
		cmp.Projects[i] = p.Name
		cmp.Credits[i] = s.Credit
		cmp.Debits[i] = s.Debit
		cmp.Profits[i] = s.Balance
	}
	return cmp
}
