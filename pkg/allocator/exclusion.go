package allocator

import "github.com/codeGROOVE-dev/review-allocator/pkg/types"

// Set is a set of reviewer identifiers.
type Set map[types.ReviewerID]struct{}

// Contains reports whether id is in the set.
func (s Set) Contains(id types.ReviewerID) bool {
	_, ok := s[id]
	return ok
}

// ExclusionColumns returns the candidate conflict-of-interest columns
// actually present in the table schema, in candidate order.
func ExclusionColumns(schema, candidates []string) []string {
	present := make(map[string]bool, len(schema))
	for _, col := range schema {
		present[col] = true
	}
	var cols []string
	for _, col := range candidates {
		if present[col] {
			cols = append(cols, col)
		}
	}
	return cols
}

// Exclusions derives one application's excluded-reviewer set from its
// record. Missing or unparseable column values contribute nothing.
func Exclusions(record map[string]string, columns []string) Set {
	excluded := make(Set)
	for _, col := range columns {
		val, ok := record[col]
		if !ok {
			continue
		}
		if id, ok := NormalizeID(val); ok {
			excluded[id] = struct{}{}
		}
	}
	return excluded
}
