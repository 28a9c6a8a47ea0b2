package knowledge

import "github.com/agext/levenshtein"

// duplicateThreshold is the string-level similarity above which two
// results are considered the same chunk.
const duplicateThreshold = 0.95

// dedupe walks candidates in order (already sorted by vector similarity
// descending) and drops any whose Levenshtein similarity to an
// already-kept result exceeds the threshold. The earlier, higher-ranked
// result survives.
func dedupe(candidates []SearchResult, limit int) []SearchResult {
	kept := make([]SearchResult, 0, limit)
	for _, cand := range candidates {
		if len(kept) >= limit {
			break
		}
		isDup := false
		for _, k := range kept {
			if levenshtein.Similarity(cand.Content, k.Content, nil) > duplicateThreshold {
				isDup = true
				break
			}
		}
		if !isDup {
			kept = append(kept, cand)
		}
	}
	return kept
}
