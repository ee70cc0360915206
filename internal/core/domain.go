package core

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	Credit TxnType = "Credit"
	Debit  TxnType = "Debit"
)

type (
	// TxnType is the canonical direction of a transaction. Input is
	// case-insensitive; storage always holds the canonical form.
	TxnType string

	// Transaction is one normalized financial record. Date, Title and
	// Category are carried verbatim from the import row; Amount is always a
	// finite value whose sign comes only from explicit negative input.
	Transaction struct {
		Date     string          `json:"date"`
		Title    string          `json:"title"`
		Type     TxnType         `json:"type"`
		Amount   decimal.Decimal `json:"amount"`
		Category string          `json:"category"`
		Project  string          `json:"project"`
	}

	// Project is a named grouping of transactions in entry order. Entry
	// order is preserved as-is; it is not necessarily date-sorted.
	Project struct {
		Name         string        `json:"name"`
		Transactions []Transaction `json:"transactions"`
	}

	// Ledger is the full collection of projects, in insertion order.
	// Project names are unique within a ledger.
	Ledger struct {
		Projects []Project `json:"projects"`
	}

	// FilterCriteria is the transient predicate bundle applied before
	// aggregation. Zero-value fields mean "no restriction" on that axis.
	FilterCriteria struct {
		DateStart  string
		DateEnd    string
		Categories []string
		AmountMin  *decimal.Decimal
		AmountMax  *decimal.Decimal
	}
)

var (
	ErrDuplicateProject = errors.New("duplicate project name")
	ErrUnknownProject   = errors.New("unknown project")
	ErrIndexOutOfRange  = errors.New("transaction index out of range")
)

// NormalizeType maps arbitrary input to a canonical TxnType. Empty input
// defaults to Credit; anything that is not "credit" (case-insensitive)
// counts as Debit, matching the permissive import contract.
func NormalizeType(s string) TxnType {
	s = strings.TrimSpace(s)
	if s == "" {
		return Credit
	}
	if strings.EqualFold(s, string(Credit)) {
		return Credit
	}
	return Debit
}

// IsCredit reports whether the type counts as credit, case-insensitively.
func (t TxnType) IsCredit() bool {
	return strings.EqualFold(string(t), string(Credit))
}

// Signed returns the transaction amount signed by its type: positive for
// Credit, negative for Debit.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type.IsCredit() {
		return t.Amount
	}
	return t.Amount.Neg()
}

// ProjectNamed returns a pointer to the project with the given name, or nil
// when the ledger has no such project.
func (l *Ledger) ProjectNamed(name string) *Project {
	for i := range l.Projects {
		if l.Projects[i].Name == name {
			return &l.Projects[i]
		}
	}
	return nil
}

// ProjectNames returns all project names in insertion order.
func (l *Ledger) ProjectNames() []string {
	names := make([]string, len(l.Projects))
	for i := range l.Projects {
		names[i] = l.Projects[i].Name
	}
	return names
}

// Clone returns a deep copy of the ledger. Mutating the copy never affects
// the original; transaction slices are duplicated per project.
func (l Ledger) Clone() Ledger {
	out := Ledger{Projects: make([]Project, len(l.Projects))}
	for i, p := range l.Projects {
		txns := make([]Transaction, len(p.Transactions))
		copy(txns, p.Transactions)
		out.Projects[i] = Project{Name: p.Name, Transactions: txns}
	}
	return out
}

// IsUnrestricted reports whether the criteria passes every transaction.
func (c FilterCriteria) IsUnrestricted() bool {
	return c.DateStart == "" && c.DateEnd == "" &&
		len(c.Categories) == 0 && c.AmountMin == nil && c.AmountMax == nil
}

// CacheKey renders the criteria as a stable string for view caching.
func (c FilterCriteria) CacheKey() string {
	var b strings.Builder
	b.WriteString(c.DateStart)
	b.WriteByte('|')
	b.WriteString(c.DateEnd)
	b.WriteByte('|')
	b.WriteString(strings.Join(c.Categories, ","))
	b.WriteByte('|')
	if c.AmountMin != nil {
		b.WriteString(c.AmountMin.String())
	}
	b.WriteByte('|')
	if c.AmountMax != nil {
		b.WriteString(c.AmountMax.String())
	}
	return b.String()
}
