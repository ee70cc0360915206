package aggregate

import (
	"sort"

	"findash/internal/core"
)

// CategoryTotals sums raw amount magnitudes per category, ignoring type.
// This matches the category breakdown the dashboard pie renders: a share of
// activity per category, not a signed net. Categories appear in first-seen
// order; transactions without a category land under the empty-string key.
func CategoryTotals(txns []core.Transaction) []core.CategoryTotal {
	totals := map[string]int{}
	out := make([]core.CategoryTotal, 0)
	for _, t := range txns {
		if i, ok := totals[t.Category]; ok {
			out[i].Total = out[i].Total.Add(t.Amount)
			continue
		}
		totals[t.Category] = len(out)
		out = append(out, core.CategoryTotal{Category: t.Category, Total: t.Amount})
	}
	return out
}

// CashFlowSeries maps each transaction, in entry order, to a point whose
// value is signed by type. The sequence is deliberately not date-sorted.
func CashFlowSeries(txns []core.Transaction) []core.SeriesPoint {
	out := make([]core.SeriesPoint, len(txns))
	for i, t := range txns {
		out[i] = core.SeriesPoint{Date: t.Date, Value: t.Signed()}
	}
	return out
}

// TimelineSeries nets all transactions per distinct date and returns the
// points in chronological ascending order. Dates that only differ in
// formatting collapse onto the same day.
func TimelineSeries(txns []core.Transaction) []core.TimelinePoint {
	type bucket struct {
		date core.Date
		idx  int
	}
	byDay := map[string]bucket{}
	out := make([]core.TimelinePoint, 0)
	for _, t := range txns {
		d := core.ParseDate(t.Date)
		key := d.String()
		if b, ok := byDay[key]; ok {
			out[b.idx].Net = out[b.idx].Net.Add(t.Signed())
			continue
		}
		byDay[key] = bucket{date: d, idx: len(out)}
		out = append(out, core.TimelinePoint{Date: key, Net: t.Signed()})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return byDay[out[i].Date].date.Before(byDay[out[j].Date].date)
	})
	return out
}
