// Package allocator implements the constrained randomized assignment
// engine: for each application in input order it selects up to k
// reviewers from a shared pool, never assigning an excluded reviewer and
// keeping every reviewer's total load inside the configured band. One
// seeded random stream feeds the pool shuffle and every selection, so a
// fixed seed reproduces a run end to end.
//
// Load balance is sensitive to input ordering: early applications drain
// the under-minimum partition, and reviewers become increasingly likely
// to be skipped as more of them approach the hard cap. That is specified
// behavior, not a defect.
package allocator

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/codeGROOVE-dev/review-allocator/pkg/types"
)

// ErrConflict reports an excluded reviewer found in a committed
// selection. It signals a defect in the selector/resolver contract, not
// a data problem, and aborts the whole run.
var ErrConflict = errors.New("excluded reviewer selected")

// Config holds the engine's tunables for one run.
type Config struct {
	// ExclusionColumns are the applicant-table columns that may carry
	// conflict-of-interest reviewer identifiers.
	ExclusionColumns []string
	// PerApplication is k, the target number of reviewers per application.
	PerApplication int
	// MinLoad is the soft minimum per-reviewer load; 0 or less disables it.
	MinLoad int
	// MaxLoad is the hard maximum per-reviewer load; 0 or less disables it.
	MaxLoad int
	// Seed fixes the random stream.
	Seed int64
}

// Allocator assigns reviewers to applications one at a time, tracking
// per-reviewer load across the run. It owns the load table: selections
// read it, and only the commit step after each application mutates it.
type Allocator struct {
	rng   *rand.Rand
	loads map[types.ReviewerID]int
	cfg   Config
	pool  []types.ReviewerID
}

// New builds an allocator over the reviewer pool. The pool order is
// fixed by a single seeded shuffle; every later draw comes from the same
// stream.
func New(cfg Config, reviewers []types.ReviewerID) *Allocator {
	rng := rand.New(rand.NewSource(cfg.Seed)) //nolint:gosec // reproducibility requires a seeded PRNG, not crypto randomness
	pool := append([]types.ReviewerID(nil), reviewers...)
	shuffle(rng, pool)

	loads := make(map[types.ReviewerID]int, len(pool))
	for _, id := range pool {
		loads[id] = 0
	}
	return &Allocator{cfg: cfg, rng: rng, pool: pool, loads: loads}
}

// Run processes the applicant table in input order and returns the full
// allocation result. Each selection observes exactly the loads committed
// by earlier applications — no lookahead. A conflict between a committed
// selection and its exclusion set aborts the run with ErrConflict.
func (a *Allocator) Run(table *types.ApplicationTable) (*types.Result, error) {
	cols := ExclusionColumns(table.Columns, a.cfg.ExclusionColumns)
	result := &types.Result{Loads: a.loads}
	if len(cols) == 0 {
		const advisory = "no exclusion columns found; conflict-of-interest filtering unavailable"
		slog.Warn("Exclusion columns missing from applicant table", "candidates", a.cfg.ExclusionColumns)
		result.Advisories = append(result.Advisories, advisory)
	}

	for _, app := range table.Rows {
		excluded := Exclusions(app.Record, cols)

		eligible := make([]types.ReviewerID, 0, len(a.pool))
		for _, id := range a.pool {
			if !excluded.Contains(id) {
				eligible = append(eligible, id)
			}
		}

		picks := pickReviewers(a.rng, eligible, a.cfg.PerApplication, a.loads, a.cfg.MinLoad, a.cfg.MaxLoad)

		for _, id := range picks {
			if excluded.Contains(id) {
				return nil, fmt.Errorf("application %s: reviewer %d: %w", app.ID, id, ErrConflict)
			}
		}

		underfilled := len(picks) < a.cfg.PerApplication
		if underfilled {
			warning := fmt.Sprintf("application %s: only %d eligible reviewers (needed %d)",
				app.ID, len(picks), a.cfg.PerApplication)
			slog.Warn("Under-filled application",
				"application", app.ID, "picked", len(picks), "needed", a.cfg.PerApplication)
			result.Warnings = append(result.Warnings, warning)
		}

		// Commit: the next application's selection must see these loads.
		for _, id := range picks {
			a.loads[id]++
		}

		slog.Info("Assigned reviewers",
			"application", app.ID, "assigned", len(picks),
			"excluded", len(excluded), "eligible", len(eligible))

		result.Assignments = append(result.Assignments, types.Assignment{
			ApplicationID: app.ID,
			Reviewers:     picks,
			ExcludedCount: len(excluded),
			EligibleCount: len(eligible),
			Underfilled:   underfilled,
		})
	}
	return result, nil
}
