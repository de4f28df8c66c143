// Package types contains shared data structures used across the allocation system.
//
//nolint:revive // "types" is a standard Go package name for shared data structures
package types

// ReviewerID is the canonical reviewer identifier. Every source encoding
// (integer, float, comma-formatted string) collapses to this type at the
// input boundary; the engine never sees a raw representation.
type ReviewerID int

// Application is one row of the applicant table. ID is opaque to the
// engine: it is carried through for output labeling and diagnostics and
// never compared for equality.
type Application struct {
	ID     string
	Record map[string]string
}

// ApplicationTable is the parsed applicant table. Rows preserve input
// order, Columns preserve header order.
type ApplicationTable struct {
	Columns []string
	Rows    []Application
}

// Assignment is the allocation outcome for a single application.
type Assignment struct {
	ApplicationID string
	Reviewers     []ReviewerID
	ExcludedCount int
	EligibleCount int
	Underfilled   bool
}

// Result is the outcome of a whole allocation run.
type Result struct {
	Loads       map[ReviewerID]int
	Assignments []Assignment
	Warnings    []string
	Advisories  []string
}
