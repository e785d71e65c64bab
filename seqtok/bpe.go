package seqtok

import "github.com/agentstation/seqtok/internal/primitive"

// bpeMerge is one entry of the learned merge list. A is 0 for the
// synthetic "seeding" merges appended during Learn's first pass; those
// never fire during Encode.
type bpeMerge struct {
	Pair primitive.Pair
	ID   int
}

// BPE learns an iterative most-frequent-pair merge model and replays it
// deterministically at encode time. Pair statistics are recomputed from
// scratch each training round rather than updated incrementally.
type BPE struct {
	cfg bpeConfig

	merges      []bpeMerge
	tokenValues map[int][]int
	inputVocab  []int
	outputVocab []int
	learned     bool
}

// NewBPE constructs a BPE tokenizer. At least one of WithMaxOutputVocab
// or WithMaxMerges is required; omitting both is a ConfigError.
func NewBPE(opts ...BPEOption) (*BPE, error) {
	var cfg bpeConfig
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	if cfg.maxOutputVocab == 0 && cfg.maxMerges == 0 {
		return nil, newOpError("bpe", "new", ErrConfigError)
	}
	return &BPE{cfg: cfg}, nil
}

// Learn resolves the input vocabulary (sorted ascending, whether given or
// inferred from tokens — see SPEC_FULL.md's Open Question Decisions), seeds one
// merge per vocabulary symbol, then iteratively merges the most
// frequent adjacent pair (ties broken by first occurrence) until
// max_output_vocab is reached or no pair occurs more than once.
func (b *BPE) Learn(tokens []int, inputVocab []int) error {
	v := resolveVocab(inputVocab, tokens)

	b.merges = make([]bpeMerge, 0, len(v))
	b.tokenValues = make(map[int][]int, len(v))
	for _, sym := range v {
		b.merges = append(b.merges, bpeMerge{Pair: primitive.Pair{A: 0, B: sym}, ID: sym})
		b.tokenValues[sym] = []int{sym}
	}
	b.inputVocab = v

	maxOutputVocab := b.cfg.maxOutputVocab
	if maxOutputVocab == 0 {
		maxOutputVocab = b.cfg.maxMerges + len(v)
	}

	if len(tokens) < 2 {
		b.finalize()
		return nil
	}

	working := append([]int(nil), tokens...)
	nextID := v[len(v)-1] + 1

	for len(b.merges) < maxOutputVocab {
		stats := primitive.PairStats(working)
		p, count, ok := primitive.MostFrequent(stats)
		if !ok || count == 1 {
			break
		}
		working = primitive.MergePairs(working, p.A, p.B, nextID)
		merged := make([]int, 0, len(b.tokenValues[p.A])+len(b.tokenValues[p.B]))
		merged = append(merged, b.tokenValues[p.A]...)
		merged = append(merged, b.tokenValues[p.B]...)
		b.tokenValues[nextID] = merged
		b.merges = append(b.merges, bpeMerge{Pair: p, ID: nextID})
		nextID++
	}

	b.finalize()
	return nil
}

func (b *BPE) finalize() {
	vocab := make([]int, 0, len(b.merges))
	seen := make(map[int]bool, len(b.merges))
	for _, m := range b.merges {
		if !seen[m.ID] {
			seen[m.ID] = true
			vocab = append(vocab, m.ID)
		}
	}
	b.outputVocab = vocab
	b.learned = true
}

// Encode replays each learned merge in order, skipping seeding merges,
// against the given tokens. Cost is O(|merges| * |tokens|).
func (b *BPE) Encode(tokens []int) ([]int, error) {
	working := append([]int(nil), tokens...)
	if !b.learned {
		return working, nil
	}
	for _, m := range b.merges {
		if m.Pair.A == 0 {
			continue
		}
		working = primitive.MergePairs(working, m.Pair.A, m.Pair.B, m.ID)
	}
	return working, nil
}

// Decode expands each id via token_values. Unknown ids pass through
// unchanged — defensive, should never occur for well-formed input.
func (b *BPE) Decode(ids []int) ([]int, error) {
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if vals, ok := b.tokenValues[id]; ok {
			out = append(out, vals...)
		} else {
			out = append(out, id)
		}
	}
	return out, nil
}

// InputVocab returns the symbols this BPE tokenizer was trained on.
func (b *BPE) InputVocab() []int {
	return append([]int(nil), b.inputVocab...)
}

// OutputVocab returns every id this tokenizer can emit.
func (b *BPE) OutputVocab() []int {
	return append([]int(nil), b.outputVocab...)
}
