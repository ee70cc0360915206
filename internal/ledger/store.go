// Package ledger owns the authoritative in-memory ledger state. All reads
// hand out copies and all mutations are atomic: an operation that fails its
// precondition leaves the ledger exactly as it was.
package ledger

import (
	"fmt"
	"sync"

	"findash/internal/core"
)

// Store holds the current ledger and a monotonically increasing revision
// that bumps on every successful mutation. A single logical actor drives
// mutations, but the serving surface is concurrent at the boundary, so
// access is guarded.
type Store struct {
	mu       sync.RWMutex
	ledger   core.Ledger
	revision uint64
}

func NewStore() *Store {
	return &Store{}
}

// ReplaceAll discards the current ledger and installs the given projects.
// Used by import; insertion order of the slice becomes the ledger order.
func (s *Store) ReplaceAll(projects []core.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledger = core.Ledger{Projects: projects}.Clone()
	s.revision++
}

// Restore installs a previously persisted ledger without treating it as a
// fresh mutation. Called once at startup.
func (s *Store) Restore(l core.Ledger) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledger = l.Clone()
}

// AddProject inserts an empty project. Fails with core.ErrDuplicateProject
// when the name is already taken.
func (s *Store) AddProject(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ledger.ProjectNamed(name) != nil {
		return fmt.Errorf("add project %q: %w", name, core.ErrDuplicateProject)
	}
	s.ledger.Projects = append(s.ledger.Projects, core.Project{Name: name})
	s.revision++
	return nil
}

// AddTransaction appends txn to the named project. The transaction's
// Project field is forced to the owning project name.
func (s *Store) AddTransaction(project string, txn core.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.ledger.ProjectNamed(project)
	if p == nil {
		return fmt.Errorf("add transaction to %q: %w", project, core.ErrUnknownProject)
	}
	txn.Project = project
	p.Transactions = append(p.Transactions, txn)
	s.revision++
	return nil
}

// DeleteTransaction removes the transaction at the given positional index.
// Indices shift after deletion; callers must not cache them across
// mutations.
func (s *Store) DeleteTransaction(project string, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.ledger.ProjectNamed(project)
	if p == nil {
		return fmt.Errorf("delete transaction from %q: %w", project, core.ErrUnknownProject)
	}
	if index < 0 || index >= len(p.Transactions) {
		return fmt.Errorf("delete transaction %d of %q (%d present): %w",
			index, project, len(p.Transactions), core.ErrIndexOutOfRange)
	}
	p.Transactions = append(p.Transactions[:index], p.Transactions[index+1:]...)
	s.revision++
	return nil
}

// ListProjectNames returns project names in insertion order.
func (s *Store) ListProjectNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger.ProjectNames()
}

// Transactions returns a copy of the named project's transaction sequence.
func (s *Store) Transactions(project string) ([]core.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p := s.ledger.ProjectNamed(project)
	if p == nil {
		return nil, fmt.Errorf("list transactions of %q: %w", project, core.ErrUnknownProject)
	}
	out := make([]core.Transaction, len(p.Transactions))
	copy(out, p.Transactions)
	return out, nil
}

// Snapshot returns a deep copy of the whole ledger, for persistence and
// cross-project aggregation.
func (s *Store) Snapshot() core.Ledger {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger.Clone()
}

// Revision returns the current mutation revision.
func (s *Store) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}
