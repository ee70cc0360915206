// Package services orchestrates the pipeline around the ledger store:
// every mutation is followed, synchronously and in order, by view cache
// invalidation, a persistence save, and a change-event publish, so all
// derived views stay consistent with the ledger the next time they are
// read.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"findash/internal/aggregate"
	"findash/internal/amqp"
	"findash/internal/cache"
	"findash/internal/core"
	"findash/internal/importer"
	"findash/internal/ledger"
	"findash/internal/storage"
)

// ChangePublisher is the outbound change-feed port. The AMQP client
// implements it; a nil publisher disables the feed.
type ChangePublisher interface {
	PublishLedgerChanged(ctx context.Context, revision uint64, operation, project string) error
}

// DashboardService owns the ledger store and its collaborators.
type DashboardService struct {
	store     *ledger.Store
	persist   storage.LedgerStore
	publisher ChangePublisher
	views     cache.Cache[core.DashboardView]
}

func NewDashboardService(persist storage.LedgerStore, publisher ChangePublisher) *DashboardService {
	return &DashboardService{
		store:     ledger.NewStore(),
		persist:   persist,
		publisher: publisher,
		views:     cache.NewLRUCache[core.DashboardView](64, 5*time.Minute),
	}
}

// Startup restores the persisted ledger, if any. Called once at process
// start, before the serving surface accepts events.
func (s *DashboardService) Startup(ctx context.Context) error {
	l, ok, err := s.persist.Load(ctx)
	if err != nil {
		return fmt.Errorf("load persisted ledger: %w", err)
	}
	if !ok {
		slog.InfoContext(ctx, "No persisted ledger found, starting empty")
		return nil
	}
	s.store.Restore(l)
	slog.InfoContext(ctx, "Restored persisted ledger", "projects", len(l.Projects))
	return nil
}

// Import reads the given documents and replaces the whole ledger with
// their contents. Prior projects and transactions are discarded.
func (s *DashboardService) Import(ctx context.Context, sources ...importer.DocumentSource) error {
	projects, err := importer.ImportAll(ctx, sources...)
	if err != nil {
		return fmt.Errorf("import documents: %w", err)
	}
	s.store.ReplaceAll(projects)
	return s.afterMutation(ctx, amqp.OpImport, "")
}

// AddProject inserts an empty project into the ledger.
func (s *DashboardService) AddProject(ctx context.Context, name string) error {
	if err := s.store.AddProject(name); err != nil {
		return err
	}
	return s.afterMutation(ctx, amqp.OpAddProject, name)
}

// AddTransaction appends a transaction to the named project.
func (s *DashboardService) AddTransaction(ctx context.Context, project string, txn core.Transaction) error {
	if err := s.store.AddTransaction(project, txn); err != nil {
		return err
	}
	return s.afterMutation(ctx, amqp.OpAddTransaction, project)
}

// DeleteTransaction removes the transaction at the given positional index.
func (s *DashboardService) DeleteTransaction(ctx context.Context, project string, index int) error {
	if err := s.store.DeleteTransaction(project, index); err != nil {
		return err
	}
	return s.afterMutation(ctx, amqp.OpDeleteTransaction, project)
}

// View returns the dashboard view for one project under the given
// criteria, computing it when the cache has no fresh copy.
func (s *DashboardService) View(ctx context.Context, project string, criteria core.FilterCriteria) (core.DashboardView, error) {
	key := project + "\x00" + criteria.CacheKey()
	if view, ok := s.views.Get(key); ok {
		return view, nil
	}
	view, err := aggregate.BuildDashboardView(s.store.Snapshot(), project, criteria)
	if err != nil {
		return core.DashboardView{}, err
	}
	s.views.Set(key, view)
	return view, nil
}

// ProjectNames lists projects in insertion order.
func (s *DashboardService) ProjectNames() []string {
	return s.store.ListProjectNames()
}

// Transactions returns a copy of one project's transaction sequence.
func (s *DashboardService) Transactions(project string) ([]core.Transaction, error) {
	return s.store.Transactions(project)
}

// afterMutation runs the post-mutation chain: invalidate cached views,
// save the blob, then announce the change. The publish step is best-effort;
// the mutation and the save already succeeded.
func (s *DashboardService) afterMutation(ctx context.Context, operation, project string) error {
	s.views.Clear()

	if err := s.persist.Save(ctx, s.store.Snapshot()); err != nil {
		return fmt.Errorf("persist ledger after %s: %w", operation, err)
	}

	if s.publisher == nil {
		return nil
	}
	if err := s.publisher.PublishLedgerChanged(ctx, s.store.Revision(), operation, project); err != nil {
		slog.ErrorContext(ctx, "Failed to publish ledger change",
			"operation", operation,
			"project", project,
			"error", err)
		// Don't fail the request - the mutation is applied and persisted
	}
	return nil
}

// Close releases the persistence backend.
func (s *DashboardService) Close() error {
	if s.persist != nil {
		return s.persist.Close()
	}
	return nil
}
