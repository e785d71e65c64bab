package seqtok

import "sort"

// resolveVocab returns inputVocab sorted and de-duplicated if given, or
// else the sorted set of distinct symbols occurring in tokens. Sorted
// ascending order is the deterministic iteration order this package
// picks for every open "set(tokens)" ordering question in spec.md §9 —
// see SPEC_FULL.md's Open Question Decisions.
func resolveVocab(inputVocab, tokens []int) []int {
	if inputVocab != nil {
		return sortedDistinct(inputVocab)
	}
	return sortedDistinct(tokens)
}

func sortedDistinct(seq []int) []int {
	seen := make(map[int]bool, len(seq))
	out := make([]int, 0, len(seq))
	for _, v := range seq {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Ints(out)
	return out
}

func containsInt(set []int, v int) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
