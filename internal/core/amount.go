// Package core amount coercion.
//
// Import rows deliver amounts as strings, floats or JSON numbers depending
// on the source. Coercion is deliberately permissive: anything that cannot
// be read as a number becomes zero, never an error, so a malformed sheet
// can never abort an import. Sign is preserved only when the input itself
// is negative.
package core

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// CoerceAmount converts a raw row value into a transaction amount.
//
// Accepted inputs: decimal strings with dot or comma separator, float64,
// any integer type, and json.Number. Everything else, including nil and
// unparseable strings, yields decimal.Zero.
func CoerceAmount(v any) decimal.Decimal {
	switch n := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return n
	case float64:
		return decimal.NewFromFloat(n)
	case float32:
		return decimal.NewFromFloat32(n)
	case int:
		return decimal.NewFromInt(int64(n))
	case int64:
		return decimal.NewFromInt(n)
	case json.Number:
		return parseAmountString(n.String())
	case string:
		return parseAmountString(n)
	default:
		return decimal.Zero
	}
}

func parseAmountString(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
