package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"findash/internal/core"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeLedgerError maps the ledger error taxonomy onto HTTP statuses.
func writeLedgerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrDuplicateProject):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, core.ErrUnknownProject):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, core.ErrIndexOutOfRange):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// parseCriteria builds a FilterCriteria from the request's query string.
// Absent parameters leave their axis unrestricted.
func parseCriteria(r *http.Request) (core.FilterCriteria, error) {
	q := r.URL.Query()
	c := core.FilterCriteria{
		DateStart: strings.TrimSpace(q.Get("from")),
		DateEnd:   strings.TrimSpace(q.Get("to")),
	}
	if raw := strings.TrimSpace(q.Get("categories")); raw != "" {
		for _, cat := range strings.Split(raw, ",") {
			c.Categories = append(c.Categories, strings.TrimSpace(cat))
		}
	}
	if raw := strings.TrimSpace(q.Get("min")); raw != "" {
		min, err := decimal.NewFromString(raw)
		if err != nil {
			return c, errors.New("invalid min amount")
		}
		c.AmountMin = &min
	}
	if raw := strings.TrimSpace(q.Get("max")); raw != "" {
		max, err := decimal.NewFromString(raw)
		if err != nil {
			return c, errors.New("invalid max amount")
		}
		c.AmountMax = &max
	}
	return c, nil
}
