package importer

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"findash/internal/core"
)

// ImportAll reads every source, normalizes all rows, and groups them into
// projects ready for a full ledger replace. Sources are read concurrently
// (reading documents is the pipeline's only suspension point) but the
// result order is deterministic: source order, then sheet order. When two
// sheets yield the same project name the later one replaces the earlier,
// matching the replace-on-import semantics.
func ImportAll(ctx context.Context, sources ...DocumentSource) ([]core.Project, error) {
	perSource := make([][]Sheet, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		g.Go(func() error {
			sheets, err := src.Sheets(gctx)
			if err != nil {
				return fmt.Errorf("read document %d: %w", i, err)
			}
			perSource[i] = sheets
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var order []string
	byName := map[string][]core.Transaction{}
	for _, sheets := range perSource {
		for _, sheet := range sheets {
			grouped := groupSheet(sheet)
			for _, name := range grouped.order {
				if _, seen := byName[name]; !seen {
					order = append(order, name)
				}
				// Later sheet with the same project name wins outright.
				byName[name] = grouped.byName[name]
			}
		}
	}

	projects := make([]core.Project, len(order))
	for i, name := range order {
		projects[i] = core.Project{Name: name, Transactions: byName[name]}
	}
	return projects, nil
}

type sheetGroups struct {
	order  []string
	byName map[string][]core.Transaction
}

// groupSheet normalizes a sheet's rows and buckets them by the project each
// row resolved to. Most rows default to the sheet name, but an explicit
// project column is honored.
func groupSheet(sheet Sheet) sheetGroups {
	g := sheetGroups{byName: map[string][]core.Transaction{}}
	if len(sheet.Rows) == 0 {
		// An empty sheet still declares its project.
		g.order = []string{sheet.Name}
		g.byName[sheet.Name] = nil
		return g
	}
	for _, row := range sheet.Rows {
		txn := Normalize(row, sheet.Name)
		if _, seen := g.byName[txn.Project]; !seen {
			g.order = append(g.order, txn.Project)
		}
		g.byName[txn.Project] = append(g.byName[txn.Project], txn)
	}
	return g
}
