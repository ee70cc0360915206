package aggregate

import (
	"time"

	"findash/internal/core"
	"findash/internal/filter"
)

// BuildDashboardView runs the whole derivation pipeline for one project:
// filter, summary, trend, category totals, both series, and the
// cross-project comparison over the unfiltered ledger. The unfiltered
// variant of the dashboard is just this call with the zero criteria.
func BuildDashboardView(l core.Ledger, project string, criteria core.FilterCriteria) (core.DashboardView, error) {
	p := l.ProjectNamed(project)
	if p == nil {
		return core.DashboardView{}, core.ErrUnknownProject
	}
	filtered := filter.Apply(p.Transactions, criteria)
	return core.DashboardView{
		Project:     project,
		GeneratedAt: time.Now().UTC(),
		Summary:     Summarize(filtered),
		Trend:       TrendAgainstPrior(filtered, p.Transactions),
		Categories:  CategoryTotals(filtered),
		CashFlow:    CashFlowSeries(filtered),
		Timeline:    TimelineSeries(filtered),
		Comparison:  Compare(l),
	}, nil
}
