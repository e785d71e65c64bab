package seqtok

import "sort"

// hlzEmptyContext is the context key used before anything has been
// emitted, reusing the Contextual encoder's convention that 0 denotes
// "no context yet".
const hlzEmptyContext = 0

// HierarchicalCoder maintains one LZCoder per prior-context symbol.
// Sub-coders cooperate by vote to converge on shared ids for the same
// substring seen under different contexts, improving coherence of the
// shared output alphabet (spec.md §4.5).
type HierarchicalCoder struct {
	cfg    hlzConfig
	coders map[int]*LZCoder

	inputVocab []int
}

// NewHierarchicalCoder constructs an empty Hierarchical LZ coder.
func NewHierarchicalCoder(opts ...HLZOption) (*HierarchicalCoder, error) {
	cfg := hlzConfig{vocabSize: -1}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	if cfg.vocabSize == 0 {
		cfg.vocabSize = -1
	}
	return &HierarchicalCoder{cfg: cfg}, nil
}

// Learn resolves the input vocabulary, (re)seeds the empty-context
// coder with it, and runs one learning pass over tokens.
func (h *HierarchicalCoder) Learn(tokens []int, inputVocab []int) error {
	v := resolveVocab(inputVocab, tokens)
	if h.cfg.vocabSize >= 0 && len(v) > h.cfg.vocabSize {
		return newOpError("hlz", "learn", ErrConfigError)
	}
	empty, err := newLZCoder(h.cfg.vocabSize, v)
	if err != nil {
		return err
	}
	h.coders = map[int]*LZCoder{hlzEmptyContext: empty}
	h.inputVocab = v

	_, err = h.EncodeWithLearn(tokens, true)
	return err
}

// Coders exposes the per-context coder table for inspection (spec.md §6).
func (h *HierarchicalCoder) Coders() map[int]*LZCoder {
	return h.coders
}

// EncodeOne encodes the next token of rem under context ctx.
func (h *HierarchicalCoder) EncodeOne(rem []int, ctx int, learn bool) ([]int, int, error) {
	coder, ok := h.coders[ctx]
	if !ok {
		if !learn {
			return nil, 0, newOpError("hlz", "encode", ErrUnknownContext)
		}
		coder, _ = newLZCoder(h.cfg.vocabSize, nil)
		h.coders[ctx] = coder
	}

	prefix, id := coder.proposeNextToken(rem, learn)
	if coder.knownID(id) {
		return prefix, id, nil
	}
	if !learn {
		return nil, 0, newOpError("hlz", "encode", ErrLearningDisabled)
	}
	if coder.vocabSize >= 0 && coder.trie.Size() >= coder.bound() {
		return nil, 0, newOpError("hlz", "encode", ErrDictionaryFull)
	}

	chosen := h.voteForID(rem, ctx, coder, learn)
	coder.addNewToken(prefix, chosen)
	return prefix, chosen, nil
}

// voteForID implements the cross-context vote: the active coder's own
// "native" proposal (its smallest unused id) starts with tally 0.
// Every other context c' computes its own read-only proposal via
// proposeNextToken for the same remaining sequence; only proposals
// already KNOWN to c' count toward the tally (an uncommitted
// candidate id is not a vote — it reflects c' agreeing that this
// substring already deserves the shared id it assigned it). The
// highest tally wins among ids in the active coder's unused set;
// ties resolve to the native proposal, then to the smaller id.
func (h *HierarchicalCoder) voteForID(rem []int, ctx int, coder *LZCoder, learn bool) int {
	native, _ := coder.peekUnused()

	tally := make(map[int]int)
	for otherCtx, other := range h.coders {
		if otherCtx == ctx {
			continue
		}
		_, oid := other.proposeNextToken(rem, learn)
		if other.knownID(oid) {
			tally[oid]++
		}
	}

	type candidate struct {
		id    int
		count int
	}
	candidates := []candidate{{native, tally[native]}}
	for id, count := range tally {
		if id == native || !coder.unusedContains(id) {
			continue
		}
		candidates = append(candidates, candidate{id, count})
	}
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.count != b.count {
			return a.count > b.count
		}
		if a.id == native {
			return true
		}
		if b.id == native {
			return false
		}
		return a.id < b.id
	})
	return candidates[0].id
}

// EncodeWithLearn walks tokens, feeding the remaining suffix into
// EncodeOne under the running context (the previously emitted id, or
// hlzEmptyContext before anything has been emitted).
func (h *HierarchicalCoder) EncodeWithLearn(tokens []int, learn bool) ([]int, error) {
	ctx := hlzEmptyContext
	rem := tokens
	out := make([]int, 0, len(tokens))
	for len(rem) > 0 {
		prefix, id, err := h.EncodeOne(rem, ctx, learn)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
		ctx = id
		rem = rem[len(prefix):]
	}
	return out, nil
}

// Encode performs a read-only encode (learn=false).
func (h *HierarchicalCoder) Encode(tokens []int) ([]int, error) {
	return h.EncodeWithLearn(tokens, false)
}

// Decode walks ids, expanding each under the running context, exactly
// mirroring the context chain Encode built.
func (h *HierarchicalCoder) Decode(ids []int) ([]int, error) {
	ctx := hlzEmptyContext
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		coder, ok := h.coders[ctx]
		if !ok {
			return nil, newOpError("hlz", "decode", ErrUnknownContext)
		}
		vals, err := coder.DecodeOne(id)
		if err != nil {
			return nil, err
		}
		out = append(out, vals...)
		ctx = id
	}
	return out, nil
}

// InputVocab returns the symbols this coder was trained on.
func (h *HierarchicalCoder) InputVocab() []int {
	return append([]int(nil), h.inputVocab...)
}

// OutputVocab returns the union of every sub-coder's assigned ids.
func (h *HierarchicalCoder) OutputVocab() []int {
	seen := make(map[int]bool)
	var out []int
	for _, coder := range h.coders {
		for _, id := range coder.OutputVocab() {
			if !seen[id] {
				seen[id] = true
				out = append(out, id)
			}
		}
	}
	return sortedDistinct(out)
}
