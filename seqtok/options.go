package seqtok

// BPEOption configures a BPE tokenizer at construction time.
type BPEOption func(*bpeConfig) error

type bpeConfig struct {
	maxOutputVocab int
	maxMerges      int
}

// WithMaxOutputVocab bounds the total number of merges (seeding and
// learned) a BPE tokenizer will record.
func WithMaxOutputVocab(n int) BPEOption {
	return func(cfg *bpeConfig) error {
		if n <= 0 {
			return newOpError("bpe", "new", ErrConfigError)
		}
		cfg.maxOutputVocab = n
		return nil
	}
}

// WithMaxMerges bounds the number of *learned* merges; the effective
// max_output_vocab is computed during Learn as maxMerges+len(inputVocab).
func WithMaxMerges(n int) BPEOption {
	return func(cfg *bpeConfig) error {
		if n <= 0 {
			return newOpError("bpe", "new", ErrConfigError)
		}
		cfg.maxMerges = n
		return nil
	}
}

// LZOption configures an LZCoder at construction time.
type LZOption func(*lzConfig) error

type lzConfig struct {
	vocabSize int // -1 (default) means unbounded
}

// WithVocabSize bounds the LZ dictionary to n single-symbol + merged
// tokens. A negative or zero value means unbounded (the default).
func WithVocabSize(n int) LZOption {
	return func(cfg *lzConfig) error {
		cfg.vocabSize = n
		return nil
	}
}

// HLZOption configures a HierarchicalCoder at construction time.
type HLZOption func(*hlzConfig) error

type hlzConfig struct {
	vocabSize int
}

// WithHierarchicalVocabSize bounds every per-context LZCoder's dictionary.
func WithHierarchicalVocabSize(n int) HLZOption {
	return func(cfg *hlzConfig) error {
		cfg.vocabSize = n
		return nil
	}
}
