package retrieval

import (
	"sort"

	"rag-assistant/internal/model"
)

// Merge combines per-collection hit lists and truncates to limit (limit <= 0 keeps all).
// Input slices are not modified.
func Merge(lists [][]model.RetrievalHit, strategy MergeStrategy, limit int) []model.RetrievalHit {
	total := 0
	for _, l := range lists {
		total += len(l)
	}

	merged := make([]model.RetrievalHit, 0, total)
	for _, l := range lists {
		merged = append(merged, l...)
	}

	if strategy == MergeByScore {
		sort.SliceStable(merged, func(i, j int) bool {
			return merged[i].Score < merged[j].Score
		})
	}

	if limit > 0 && len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}
