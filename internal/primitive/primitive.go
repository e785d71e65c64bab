// Package primitive implements the small, allocation-light sequence
// operations that every seqtok stage is built from: pair counting,
// pair merging, and prefix testing.
package primitive

// Pair is an ordered pair of adjacent symbols.
type Pair struct {
	A, B int
}

// PairStat records how often a pair occurs and where it was first seen.
// FirstIndex breaks frequency ties deterministically (lowest index wins).
type PairStat struct {
	Count      int
	FirstIndex int
}

// PairStats counts every adjacent pair (seq[i], seq[i+1]) in seq.
// It never panics on short input: len(seq) < 2 yields an empty map.
func PairStats(seq []int) map[Pair]*PairStat {
	stats := make(map[Pair]*PairStat)
	if len(seq) < 2 {
		return stats
	}
	for i := 0; i < len(seq)-1; i++ {
		p := Pair{seq[i], seq[i+1]}
		if s, ok := stats[p]; ok {
			s.Count++
		} else {
			stats[p] = &PairStat{Count: 1, FirstIndex: i}
		}
	}
	return stats
}

// MostFrequent picks the pair with the highest count, breaking ties by
// the lowest FirstIndex. It reports ok=false for an empty stats map.
func MostFrequent(stats map[Pair]*PairStat) (p Pair, count int, ok bool) {
	best := (*PairStat)(nil)
	for cand, stat := range stats {
		if best == nil ||
			stat.Count > best.Count ||
			(stat.Count == best.Count && stat.FirstIndex < best.FirstIndex) {
			best = stat
			p = cand
		}
	}
	if best == nil {
		return Pair{}, 0, false
	}
	return p, best.Count, true
}

// MergePairs performs a left-to-right, non-overlapping replacement of
// every occurrence of (a,b) in seq with newSym. Overlapping matches
// resolve in favor of the earlier position: merging (x,x) in [x,x,x]
// yields [newSym, x], never [x, newSym].
func MergePairs(seq []int, a, b, newSym int) []int {
	out := make([]int, 0, len(seq))
	for i := 0; i < len(seq); {
		if i < len(seq)-1 && seq[i] == a && seq[i+1] == b {
			out = append(out, newSym)
			i += 2
			continue
		}
		out = append(out, seq[i])
		i++
	}
	return out
}

// IsPrefix reports whether p is a prefix of s.
func IsPrefix(s, p []int) bool {
	if len(p) > len(s) {
		return false
	}
	for i, v := range p {
		if s[i] != v {
			return false
		}
	}
	return true
}

// BytesToSeq lifts a byte buffer to a symbol sequence, byte-value extension:
// each byte maps to the symbol of the same numeric value (0..255).
func BytesToSeq(b []byte) []int {
	seq := make([]int, len(b))
	for i, v := range b {
		seq[i] = int(v)
	}
	return seq
}

// StringToSeq lifts a string to a symbol sequence by byte-value extension.
func StringToSeq(s string) []int {
	return BytesToSeq([]byte(s))
}

// SetToSeq lifts an ordered set of symbols (already in the caller's chosen
// iteration order) to a sequence; it is the identity function, kept as a
// named adapter so call sites document intent rather than reslicing inline.
func SetToSeq(set []int) []int {
	seq := make([]int, len(set))
	copy(seq, set)
	return seq
}
