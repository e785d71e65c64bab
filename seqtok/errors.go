package seqtok

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Callers compare against these with errors.Is;
// each is also wrapped in an *OpError that records which stage and
// operation produced it.
var (
	// ErrConfigError indicates a tokenizer was constructed or asked to
	// learn without a valid, self-consistent configuration.
	ErrConfigError = errors.New("seqtok: invalid configuration")

	// ErrVocabFull indicates an LZ coder cannot allocate an id for a
	// new input symbol because its unused-token set is exhausted.
	ErrVocabFull = errors.New("seqtok: input vocabulary full")

	// ErrDictionaryFull indicates an LZ coder's trie cannot grow past
	// its configured vocab_size.
	ErrDictionaryFull = errors.New("seqtok: dictionary full")

	// ErrLearningDisabled indicates an encode call needed to grow the
	// model but was called with learn=false.
	ErrLearningDisabled = errors.New("seqtok: learning disabled")

	// ErrUnknownContext indicates Hierarchical LZ was asked to
	// encode/decode under a context absent from its coder table.
	ErrUnknownContext = errors.New("seqtok: unknown context")

	// ErrUnknownToken indicates a decode call received an id absent
	// from the model's dictionary or context map.
	ErrUnknownToken = errors.New("seqtok: unknown token")

	// ErrEmptySet indicates a helper was asked for the minimum element
	// of an empty integer set.
	ErrEmptySet = errors.New("seqtok: empty set")
)

// OpError wraps a sentinel error kind with the stage and operation that
// raised it.
type OpError struct {
	Stage string // tokenizer kind, e.g. "bpe", "lz", "hlz", "contextual"
	Op    string // operation that failed, e.g. "learn", "encode", "decode"
	Err   error  // one of the sentinel errors above
}

func (e *OpError) Error() string {
	return fmt.Sprintf("seqtok: %s %s: %v", e.Stage, e.Op, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

func newOpError(stage, op string, kind error) error {
	return &OpError{Stage: stage, Op: op, Err: kind}
}
