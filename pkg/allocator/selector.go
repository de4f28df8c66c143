package allocator

import (
	"math/rand"

	"github.com/codeGROOVE-dev/review-allocator/pkg/types"
)

// pickReviewers chooses up to k reviewers from the eligible pool.
// Reviewers whose load has reached maxLoad are never candidates; when a
// soft minimum is active, reviewers still under it are exhausted before
// anyone at or above it is touched. The minimum is a preference only: a
// shortfall of under-minimum reviewers is filled from the rest, and a
// pool smaller than k yields a short result. All shuffles draw from rng,
// the run's single seeded stream.
func pickReviewers(rng *rand.Rand, eligible []types.ReviewerID, k int,
	loads map[types.ReviewerID]int, minLoad, maxLoad int,
) []types.ReviewerID {
	// Hard cap first: a reviewer at capacity is never a candidate, even
	// if that starves the application.
	pool := make([]types.ReviewerID, 0, len(eligible))
	for _, id := range eligible {
		if maxLoad > 0 && loads[id] >= maxLoad {
			continue
		}
		pool = append(pool, id)
	}
	if len(pool) == 0 {
		return nil
	}

	if minLoad <= 0 {
		// No soft minimum: uniform sample without replacement.
		shuffle(rng, pool)
		if k < len(pool) {
			pool = pool[:k]
		}
		return pool
	}

	var underMin, atOrAbove []types.ReviewerID
	for _, id := range pool {
		if loads[id] < minLoad {
			underMin = append(underMin, id)
		} else {
			atOrAbove = append(atOrAbove, id)
		}
	}
	shuffle(rng, underMin)
	shuffle(rng, atOrAbove)

	picks := make([]types.ReviewerID, 0, k)
	take := k
	if take > len(underMin) {
		take = len(underMin)
	}
	picks = append(picks, underMin[:take]...)

	if need := k - len(picks); need > 0 {
		if need > len(atOrAbove) {
			need = len(atOrAbove)
		}
		picks = append(picks, atOrAbove[:need]...)
	}
	return picks
}

func shuffle(rng *rand.Rand, ids []types.ReviewerID) {
	rng.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})
}
