// Package aggregate derives the dashboard views from a transaction
// sequence. Every function here is pure: it reads its input and produces a
// fresh value, so repeated recomputation after each mutation is safe.
package aggregate

import (
	"github.com/shopspring/decimal"

	"findash/internal/core"
)

// Summarize computes the headline totals over the given sequence. Balance
// is credit minus debit and a balance of exactly zero is a PROFIT.
func Summarize(txns []core.Transaction) core.Summary {
	credit := decimal.Zero
	debit := decimal.Zero
	for _, t := range txns {
		if t.Type.IsCredit() {
			credit = credit.Add(t.Amount)
		} else {
			debit = debit.Add(t.Amount)
		}
	}
	balance := credit.Sub(debit)
	verdict := core.VerdictProfit
	if balance.IsNegative() {
		verdict = core.VerdictLoss
	}
	return core.Summary{Credit: credit, Debit: debit, Balance: balance, Verdict: verdict}
}

// TrendAgainstPrior compares the balance of the current (filtered) sequence
// against the balance over the same project's transactions dated strictly
// before the earliest date in the current set. When the current set is
// empty or there is nothing before it, the neutral no-prior state is
// reported rather than an error.
func TrendAgainstPrior(current, all []core.Transaction) string {
	if len(current) == 0 {
		return core.TrendNoPrior
	}
	earliest := core.ParseDate(current[0].Date)
	for _, t := range current[1:] {
		if d := core.ParseDate(t.Date); d.Before(earliest) {
			earliest = d
		}
	}
	prior := make([]core.Transaction, 0, len(all))
	for _, t := range all {
		if core.ParseDate(t.Date).Before(earliest) {
			prior = append(prior, t)
		}
	}
	if len(prior) == 0 {
		return core.TrendNoPrior
	}
	cur := Summarize(current).Balance
	prev := Summarize(prior).Balance
	switch cur.Cmp(prev) {
	case 1:
		return core.TrendIncreasing
	case -1:
		return core.TrendDecreasing
	default:
		return core.TrendStable
	}
}
