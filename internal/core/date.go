// Package core holds the ledger domain types shared by every component.
//
// This file contains the calendar value used for chronological comparison of
// transaction date strings. Import rows carry dates verbatim in whatever
// format the source sheet used, so comparisons parse first and only fall
// back to raw string order when a value is not a recognizable date.
package core

import (
	"strings"
	"time"
)

// dateLayouts are tried in order when parsing a transaction date string.
var dateLayouts = []string{
	"2006-01-02",
	"2006-1-2",
	"2006/01/02",
	"02/01/2006",
	"01/02/2006",
	"02 Jan 2006",
	"Jan 2, 2006",
	time.RFC3339,
}

// Date is a day-granularity calendar value derived from a raw date string.
// The zero Date is the empty string and compares before everything.
type Date struct {
	raw    string
	t      time.Time
	parsed bool
}

// ParseDate derives a Date from a raw transaction date string. It never
// fails: unrecognized formats yield a Date that still carries the raw
// string and compares lexically as a last resort.
func ParseDate(s string) Date {
	raw := strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return Date{raw: raw, t: t, parsed: true}
		}
	}
	return Date{raw: raw}
}

// Parsed reports whether the raw string was a recognizable calendar date.
func (d Date) Parsed() bool { return d.parsed }

// IsZero reports whether the date came from an empty string.
func (d Date) IsZero() bool { return d.raw == "" && !d.parsed }

// Time returns the canonical midnight-UTC instant of the date. Only
// meaningful when Parsed reports true.
func (d Date) Time() time.Time { return d.t }

// String returns the date in ISO-8601 form when parsed, otherwise the raw
// input.
func (d Date) String() string {
	if d.parsed {
		return d.t.Format("2006-01-02")
	}
	return d.raw
}

// Before reports whether d is chronologically before x. When either side is
// unparseable the comparison falls back to raw string order so that sorting
// and range checks stay total.
func (d Date) Before(x Date) bool {
	if d.parsed && x.parsed {
		return d.t.Before(x.t)
	}
	return d.raw < x.raw
}

// After reports whether d is chronologically after x.
func (d Date) After(x Date) bool { return x.Before(d) }

// Equal reports whether d and x denote the same day.
func (d Date) Equal(x Date) bool { return !d.Before(x) && !x.Before(d) }
