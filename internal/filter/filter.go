// Package filter narrows a transaction sequence to the subset matched by a
// FilterCriteria. Every downstream view consumes its output, so it never
// mutates the input and always preserves relative order.
package filter

import (
	"findash/internal/core"
)

// Apply returns the order-preserving subsequence of txns where every active
// predicate holds. An unset bound is unbounded on that side and an empty
// category set passes everything, so the zero criteria returns the whole
// input. Applying the same criteria twice is a no-op on the second pass.
func Apply(txns []core.Transaction, c core.FilterCriteria) []core.Transaction {
	out := make([]core.Transaction, 0, len(txns))
	var start, end core.Date
	if c.DateStart != "" {
		start = core.ParseDate(c.DateStart)
	}
	if c.DateEnd != "" {
		end = core.ParseDate(c.DateEnd)
	}
	for _, t := range txns {
		if !matchesDate(t, c, start, end) {
			continue
		}
		if !matchesCategory(t, c.Categories) {
			continue
		}
		if !matchesAmount(t, c) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func matchesDate(t core.Transaction, c core.FilterCriteria, start, end core.Date) bool {
	if c.DateStart == "" && c.DateEnd == "" {
		return true
	}
	d := core.ParseDate(t.Date)
	if c.DateStart != "" && d.Before(start) {
		return false
	}
	if c.DateEnd != "" && d.After(end) {
		return false
	}
	return true
}

func matchesCategory(t core.Transaction, categories []string) bool {
	if len(categories) == 0 {
		return true
	}
	for _, c := range categories {
		if t.Category == c {
			return true
		}
	}
	return false
}

func matchesAmount(t core.Transaction, c core.FilterCriteria) bool {
	if c.AmountMin != nil && t.Amount.LessThan(*c.AmountMin) {
		return false
	}
	if c.AmountMax != nil && t.Amount.GreaterThan(*c.AmountMax) {
		return false
	}
	return true
}
