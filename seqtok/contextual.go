package seqtok

import (
	"strconv"
	"strings"

	"github.com/agentstation/seqtok/internal/primitive"
)

// ContextualCoder learns, for every (prev_context, next_context) pair
// seen in training, the most frequent substring of symbols that starts
// right after an occurrence of prev_context and runs up to and including
// the next occurrence of next_context (with no prev_context in between),
// then encodes greedily by longest match under the current context's
// dictionary.
type ContextualCoder struct {
	contextMap  map[int]map[int][]int
	inputVocab  []int
	outputVocab []int
}

// NewContextualCoder constructs an untrained contextual coder.
func NewContextualCoder() *ContextualCoder {
	return &ContextualCoder{}
}

// substrStat tracks a candidate substring's occurrence count and the
// position at which it was first encountered, used to break count ties
// deterministically in favor of the substring seen earliest in training.
type substrStat struct {
	seq       []int
	count     int
	firstSeen int
}

func subSeqKey(seq []int) string {
	parts := make([]string, len(seq))
	for i, v := range seq {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// getContextStats scans tokens once, maintaining the most recent index
// of each vocabulary symbol, and for every (prev, next) pair tallies the
// substring from just after the latest prev up to and including next.
func getContextStats(tokens []int, v []int) map[int]map[int]map[string]*substrStat {
	stats := make(map[int]map[int]map[string]*substrStat, len(v))
	lastIdx := make(map[int]int, len(v))
	for _, sym := range v {
		lastIdx[sym] = -1
	}

	seen := 0
	for idx, t := range tokens {
		for _, sym := range v {
			li, ok := lastIdx[sym]
			if !ok || li < 0 {
				continue
			}
			sub := tokens[li+1 : idx+1]
			byNext, ok := stats[sym]
			if !ok {
				byNext = make(map[int]map[string]*substrStat)
				stats[sym] = byNext
			}
			bySub, ok := byNext[t]
			if !ok {
				bySub = make(map[string]*substrStat)
				byNext[t] = bySub
			}
			key := subSeqKey(sub)
			st, ok := bySub[key]
			if !ok {
				st = &substrStat{seq: append([]int(nil), sub...), firstSeen: seen}
				bySub[key] = st
				seen++
			}
			st.count++
		}
		lastIdx[t] = idx
	}
	return stats
}

func pickBestSubstring(bySub map[string]*substrStat) []int {
	var best *substrStat
	for _, st := range bySub {
		if best == nil || st.count > best.count || (st.count == best.count && st.firstSeen < best.firstSeen) {
			best = st
		}
	}
	return best.seq
}

// Learn resolves the input vocabulary, scans tokens for context
// statistics, and builds context_map: every v maps 0 to the empty
// sequence, every (v,t) maps to its most frequent intervening
// substring, and the empty context maps every v to its own singleton.
func (c *ContextualCoder) Learn(tokens []int, inputVocab []int) error {
	v := resolveVocab(inputVocab, tokens)
	stats := getContextStats(tokens, v)

	cm := make(map[int]map[int][]int, len(v)+1)
	for _, prev := range v {
		cm[prev] = map[int][]int{0: {}}
	}
	for _, prev := range v {
		for _, next := range v {
			if next == 0 {
				continue
			}
			bySub := stats[prev][next]
			if len(bySub) == 0 {
				continue
			}
			cm[prev][next] = pickBestSubstring(bySub)
		}
	}

	emptyCtx, ok := cm[0]
	if !ok {
		emptyCtx = make(map[int][]int)
		cm[0] = emptyCtx
	}
	for _, sym := range v {
		emptyCtx[sym] = []int{sym}
	}

	c.contextMap = cm
	c.inputVocab = v
	c.outputVocab = sortedDistinct(append(append([]int(nil), v...), 0))
	return nil
}

// bestCandidate finds, among context_map[ctx]'s entries, the one whose
// value is the longest prefix of rem; ties resolve to the smaller id.
func (c *ContextualCoder) bestCandidate(ctx int, rem []int) (int, []int, bool) {
	entries, ok := c.contextMap[ctx]
	if !ok {
		return 0, nil, false
	}
	bestID := 0
	var bestVal []int
	found := false
	for t, value := range entries {
		if !primitive.IsPrefix(rem, value) {
			continue
		}
		if !found || len(value) > len(bestVal) || (len(value) == len(bestVal) && t < bestID) {
			bestID = t
			bestVal = value
			found = true
		}
	}
	return bestID, bestVal, found
}

// Encode greedily matches the longest candidate under the running
// context. If no candidate is a prefix of the remainder (possible only
// when ctx is the empty context and the next symbol was never seen
// during training), it emits the zero token and resets the context; if
// that leaves the context unchanged, it drops the offending symbol to
// guarantee progress.
func (c *ContextualCoder) Encode(tokens []int) ([]int, error) {
	ctx := 0
	i := 0
	out := make([]int, 0, len(tokens))
	for i < len(tokens) {
		t, value, ok := c.bestCandidate(ctx, tokens[i:])
		if !ok {
			out = append(out, 0)
			if ctx == 0 {
				i++
			}
			ctx = 0
			continue
		}
		out = append(out, t)
		ctx = t
		i += len(value)
	}
	return out, nil
}

// Decode walks ids under the running context, exactly mirroring the
// context chain Encode built.
func (c *ContextualCoder) Decode(ids []int) ([]int, error) {
	ctx := 0
	out := make([]int, 0, len(ids))
	for _, t := range ids {
		entries, ok := c.contextMap[ctx]
		if !ok {
			return nil, newOpError("contextual", "decode", ErrUnknownToken)
		}
		val, ok := entries[t]
		if !ok {
			return nil, newOpError("contextual", "decode", ErrUnknownToken)
		}
		out = append(out, val...)
		ctx = t
	}
	return out, nil
}

// InputVocab returns the symbols this coder was trained on.
func (c *ContextualCoder) InputVocab() []int {
	return append([]int(nil), c.inputVocab...)
}

// OutputVocab returns the vocabulary plus the reserved zero token.
func (c *ContextualCoder) OutputVocab() []int {
	return append([]int(nil), c.outputVocab...)
}
