package core

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	VerdictProfit = "PROFIT"
	VerdictLoss   = "LOSS"
)

// Trend describes how the current balance compares to the prior period.
const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"
	TrendNoPrior    = "no-prior-data"
)

type (
	// Summary holds the headline totals for one transaction sequence.
	// Balance is always Credit minus Debit; a balance of exactly zero
	// counts as PROFIT.
	Summary struct {
		Credit  decimal.Decimal `json:"credit"`
		Debit   decimal.Decimal `json:"debit"`
		Balance decimal.Decimal `json:"balance"`
		Verdict string          `json:"verdict"`
	}

	// CategoryTotal is an amount aggregated under one category key. The
	// empty string is a regular key holding uncategorized transactions.
	CategoryTotal struct {
		Category string          `json:"category"`
		Total    decimal.Decimal `json:"total"`
	}

	// SeriesPoint is one entry-order point of the cash-flow series. Value
	// is signed by transaction type.
	SeriesPoint struct {
		Date  string          `json:"date"`
		Value decimal.Decimal `json:"value"`
	}

	// TimelinePoint is the net signed sum of all transactions on one
	// distinct date; timeline series are chronologically ascending.
	TimelinePoint struct {
		Date string          `json:"date"`
		Net  decimal.Decimal `json:"net"`
	}

	// Comparison holds per-project aggregates over the full unfiltered
	// ledger. The four slices are index-aligned: entry i of each refers to
	// Projects[i].
	Comparison struct {
		Projects []string          `json:"projects"`
		Credits  []decimal.Decimal `json:"credits"`
		Debits   []decimal.Decimal `json:"debits"`
		Profits  []decimal.Decimal `json:"profits"`
	}

	// DashboardView bundles everything one recomputation derives for the
	// rendering sink.
	DashboardView struct {
		Project     string          `json:"project"`
		GeneratedAt time.Time       `json:"generated_at"`
		Summary     Summary         `json:"summary"`
		Trend       string          `json:"trend"`
		Categories  []CategoryTotal `json:"categories"`
		CashFlow    []SeriesPoint   `json:"cash_flow"`
		Timeline    []TimelinePoint `json:"timeline"`
		Comparison  Comparison      `json:"comparison"`
	}
)
