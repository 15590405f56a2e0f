// Package ranking orders scored match results deterministically.
package ranking

import (
	"sort"

	"github.com/may-ank-dot/MatchingEngine/internal/types"
)

// Rank returns results ordered descending by score, with ties broken by
// ascending job ID so output is reproducible regardless of input order. A
// nil topK returns the full ranking; topK of 0 returns an empty list; a
// negative topK is rejected. The input slice is left untouched.
func Rank(results []types.MatchResult, topK *int) ([]types.MatchResult, error) {
	if topK != nil && *topK < 0 {
		return nil, &types.ValidationError{Field: "top_k", Message: "must be non-negative"}
	}

	ranked := make([]types.MatchResult, len(results))
	copy(ranked, results)

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].JobID < ranked[j].JobID
	})

	if topK != nil && *topK < len(ranked) {
		ranked = ranked[:*topK]
	}
	return ranked, nil
}
