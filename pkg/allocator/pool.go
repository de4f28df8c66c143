package allocator

import (
	"errors"

	"github.com/codeGROOVE-dev/review-allocator/pkg/types"
)

// ErrEmptyPool indicates no usable reviewer identifiers survived
// normalization. A run cannot proceed without reviewers.
var ErrEmptyPool = errors.New("no valid reviewer identifiers in pool")

// BuildPool normalizes raw reviewer candidates into the run's reviewer
// universe. Values that do not normalize are dropped silently, duplicates
// collapse to their first occurrence, and first-occurrence order is kept.
func BuildPool(values []any) ([]types.ReviewerID, error) {
	seen := make(map[types.ReviewerID]bool, len(values))
	var pool []types.ReviewerID
	for _, v := range values {
		id, ok := NormalizeID(v)
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		pool = append(pool, id)
	}
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}
	return pool, nil
}
