// Package adapt lifts strings, byte buffers, and sets into the
// integer sequences that seqtok's tokenizers operate on. These are
// the external collaborators the core specifically does not own.
package adapt

import (
	"sort"

	"github.com/agentstation/seqtok/internal/primitive"
)

// Bytes lifts a byte buffer to a sequence of symbols 0..255.
func Bytes(b []byte) []int {
	return primitive.BytesToSeq(b)
}

// String lifts a string to a sequence of symbols 0..255, one per byte.
func String(s string) []int {
	return primitive.StringToSeq(s)
}

// Set lifts a set of symbols to a sequence in ascending order.
func Set(set map[int]struct{}) []int {
	ordered := make([]int, 0, len(set))
	for v := range set {
		ordered = append(ordered, v)
	}
	sort.Ints(ordered)
	return primitive.SetToSeq(ordered)
}
