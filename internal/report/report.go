// Package report runs a bug search and renders the matches as plain text.
package report

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/danielolaszy/bzquery/internal/logging"
	"github.com/danielolaszy/bzquery/pkg/models"
)

const separator = "-------------------"

// Searcher runs a filter against a bug tracker and returns every match.
type Searcher interface {
	Search(ctx context.Context, spec models.QuerySpec) ([]models.Bug, error)
}

// Result is the outcome of one search.
type Result struct {
	Bugs []models.Bug

	// Elapsed is the wall-clock time spent in the search. It is only
	// printed when Timed is set.
	Elapsed time.Duration
	Timed   bool
}

// BuildFilter returns a QuerySpec holding exactly the four given values.
func BuildFilter(product, component, subComponent, status string) models.QuerySpec {
	return models.QuerySpec{
		models.FieldProduct:      product,
		models.FieldComponent:    component,
		models.FieldSubComponent: subComponent,
		models.FieldStatus:       status,
	}
}

// Submit hands the spec to the searcher. Errors are returned as is.
func Submit(ctx context.Context, searcher Searcher, spec models.QuerySpec) ([]models.Bug, error) {
	return searcher.Search(ctx, spec)
}

// Report writes the bug count, the optional timing line and one block per bug
// in the order given.
func Report(w io.Writer, res Result) {
	fmt.Fprintf(w, "Found %d bugs with our query\n", len(res.Bugs))
	if res.Timed {
		fmt.Fprintf(w, "Query processing time: %s\n", res.Elapsed)
	}

	for _, bug := range res.Bugs {
		fmt.Fprintf(w, "Fetched bug #%d:\n", bug.ID)
		fmt.Fprintf(w, "  Product   = %s\n", bug.Product)
		fmt.Fprintf(w, "  Assigned  = %s\n", bug.AssignedTo)
		fmt.Fprintf(w, "  Component = %s\n", bug.Component)
		fmt.Fprintf(w, "  Status    = %s\n", bug.Status)
		fmt.Fprintf(w, "  Resolution= %s\n", bug.Resolution)
		fmt.Fprintf(w, "  Summary   = %s\n", bug.Summary)
		fmt.Fprintf(w, "%s\n\n", separator)
	}
}

// Reporter runs a single search and prints the result.
type Reporter struct {
	Searcher Searcher
	Out      io.Writer

	// Timing enables the "Query processing time" line.
	Timing bool

	// Now defaults to time.Now.
	Now func() time.Time
}

// Run submits spec, measures how long the search took and writes the report.
// A search failure is returned unchanged and nothing is printed.
func (r *Reporter) Run(ctx context.Context, spec models.QuerySpec) error {
	now := r.Now
	if now == nil {
		now = time.Now
	}

	logging.Info("querying bugzilla",
		"product", spec.Product(),
		"component", spec.Component(),
		"sub_component", spec.SubComponent(),
		"status", spec.Status())

	start := now()
	bugs, err := Submit(ctx, r.Searcher, spec)
	elapsed := now().Sub(start)
	if err != nil {
		return err
	}

	logging.Debug("query finished", "count", len(bugs), "elapsed", elapsed)

	Report(r.Out, Result{
		Bugs:    bugs,
		Elapsed: elapsed,
		Timed:   r.Timing,
	})
	return nil
}
