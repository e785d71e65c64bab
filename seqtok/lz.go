package seqtok

import (
	"github.com/agentstation/seqtok/internal/intset"
	"github.com/agentstation/seqtok/internal/trie"
)

// LZCoder is a trie-backed dictionary coder: it learns a mapping from
// variable-length symbol runs to output ids, allocating ids from a
// pool of unused integers (bounded by vocab_size, or an unbounded
// incrementing frontier when no bound is configured).
type LZCoder struct {
	vocabSize int // -1 means unbounded
	frontier  int // next fresh id when the unused pool is empty and unbounded

	trie         *trie.Trie
	encodedVocab map[int][]int
	unused       *intset.Set
	inputVocab   []int
}

// NewLZCoder constructs an empty LZ coder. Learn (or UpdateVocab) must
// be called before it is useful.
func NewLZCoder(opts ...LZOption) (*LZCoder, error) {
	cfg := lzConfig{vocabSize: -1}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	if cfg.vocabSize == 0 {
		cfg.vocabSize = -1
	}
	c, err := newLZCoder(cfg.vocabSize, nil)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// newLZCoder builds and initializes an LZCoder without going through
// the public option-validation path; used directly by HierarchicalCoder
// to mint per-context sub-coders.
func newLZCoder(vocabSize int, inputVocab []int) (*LZCoder, error) {
	c := &LZCoder{
		vocabSize:    vocabSize,
		trie:         trie.New(),
		encodedVocab: make(map[int][]int),
		unused:       intset.New(),
	}
	c.trie.Insert(nil, trie.NoToken)
	if err := c.initVocab(inputVocab); err != nil {
		return nil, err
	}
	return c, nil
}

// bound is the trie-size ceiling after accounting for the empty-key
// terminal the trie always carries; see DESIGN.md's LZ Open Question
// Decisions for why every trie.Size() comparison in this file uses
// bound() rather than the raw vocab_size.
func (c *LZCoder) bound() int {
	if c.vocabSize < 0 {
		return -1
	}
	return c.vocabSize + 1
}

func (c *LZCoder) initVocab(inputVocab []int) error {
	v := sortedDistinct(inputVocab)
	if c.vocabSize > 0 {
		if len(v) > c.vocabSize {
			return newOpError("lz", "new", ErrConfigError)
		}
		for i := 0; i < c.vocabSize; i++ {
			c.unused.Add(i)
		}
	}
	for _, sym := range v {
		id, ok := c.takeUnused()
		if !ok {
			return newOpError("lz", "new", ErrVocabFull)
		}
		c.addNewToken([]int{sym}, id)
	}
	c.inputVocab = v
	return nil
}

// takeUnused removes and returns the smallest unused id, allocating a
// fresh one from the frontier when unbounded and the pool is empty.
func (c *LZCoder) takeUnused() (int, bool) {
	if id, ok := c.unused.Min(); ok {
		c.unused.Remove(id)
		return id, true
	}
	if c.vocabSize >= 0 {
		return 0, false
	}
	id := c.frontier
	c.frontier++
	return id, true
}

// peekUnused reports the smallest unused id without consuming it —
// the "native proposal" Hierarchical LZ's vote needs to read without
// side effects.
func (c *LZCoder) peekUnused() (int, bool) {
	if id, ok := c.unused.Min(); ok {
		return id, true
	}
	if c.vocabSize < 0 {
		return c.frontier, true
	}
	return 0, false
}

// unusedContains reports whether id is currently allocatable by this
// coder: present in the finite pool, or (when unbounded) at or beyond
// the frontier of ids never yet handed out.
func (c *LZCoder) unusedContains(id int) bool {
	if c.unused.Contains(id) {
		return true
	}
	return c.vocabSize < 0 && id >= c.frontier
}

func (c *LZCoder) knownID(id int) bool {
	_, ok := c.encodedVocab[id]
	return ok
}

func (c *LZCoder) addNewToken(key []int, id int) {
	c.encodedVocab[id] = append([]int(nil), key...)
	c.trie.Insert(key, id)
	c.unused.Remove(id)
	if id >= c.frontier {
		c.frontier = id + 1
	}
}

// UpdateVocab registers every symbol in seq not already in the input
// vocabulary, allocating a fresh single-symbol token for each.
func (c *LZCoder) UpdateVocab(seq []int) error {
	known := make(map[int]bool, len(c.inputVocab))
	for _, v := range c.inputVocab {
		known[v] = true
	}
	for _, sym := range seq {
		if known[sym] {
			continue
		}
		if c.vocabSize >= 0 && c.trie.Size() >= c.bound() {
			return newOpError("lz", "learn", ErrVocabFull)
		}
		id, ok := c.takeUnused()
		if !ok {
			return newOpError("lz", "learn", ErrVocabFull)
		}
		c.addNewToken([]int{sym}, id)
		c.inputVocab = append(c.inputVocab, sym)
		known[sym] = true
	}
	c.inputVocab = sortedDistinct(c.inputVocab)
	return nil
}

// proposeNextToken walks the trie to the deepest terminal reachable
// from seq, and — when learn is set and there is still room — proposes
// extending that match by one symbol with a fresh candidate id. It has
// no observable side effects: nothing is committed until EncodeOne (or
// the Hierarchical LZ vote) calls addNewToken.
func (c *LZCoder) proposeNextToken(seq []int, learn bool) ([]int, int) {
	prefix, id := c.trie.LongestPrefix(seq)
	if learn && len(prefix) < len(seq) && (c.vocabSize < 0 || c.trie.Size() < c.bound()) {
		if candidate, ok := c.peekUnused(); ok {
			ext := make([]int, len(prefix)+1)
			copy(ext, prefix)
			ext[len(prefix)] = seq[len(prefix)]
			prefix = ext
			id = candidate
		}
	}
	return prefix, id
}

// EncodeOne proposes and, if necessary and permitted, commits the next
// token for seq, returning the matched prefix and its id.
func (c *LZCoder) EncodeOne(seq []int, learn bool) ([]int, int, error) {
	prefix, id := c.proposeNextToken(seq, learn)
	if c.knownID(id) {
		return prefix, id, nil
	}
	if !learn {
		return nil, 0, newOpError("lz", "encode", ErrLearningDisabled)
	}
	if c.vocabSize >= 0 && c.trie.Size() >= c.bound() {
		return nil, 0, newOpError("lz", "encode", ErrDictionaryFull)
	}
	c.addNewToken(prefix, id)
	return prefix, id, nil
}

// EncodeWithLearn repeatedly calls EncodeOne over seq, optionally
// growing the dictionary as it goes.
func (c *LZCoder) EncodeWithLearn(seq []int, learn bool) ([]int, error) {
	out := make([]int, 0, len(seq))
	rem := seq
	for len(rem) > 0 {
		prefix, id, err := c.EncodeOne(rem, learn)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
		rem = rem[len(prefix):]
	}
	return out, nil
}

// DecodeOne expands a single id back to its symbol run.
func (c *LZCoder) DecodeOne(id int) ([]int, error) {
	vals, ok := c.encodedVocab[id]
	if !ok {
		return nil, newOpError("lz", "decode", ErrUnknownToken)
	}
	return vals, nil
}

// Learn (re)initializes the coder for inputVocab (or the distinct
// symbols of tokens) and then runs one learning pass over tokens,
// growing the dictionary online.
func (c *LZCoder) Learn(tokens []int, inputVocab []int) error {
	v := resolveVocab(inputVocab, tokens)
	fresh, err := newLZCoder(c.vocabSize, v)
	if err != nil {
		return err
	}
	*c = *fresh
	_, err = c.EncodeWithLearn(tokens, true)
	return err
}

// Encode performs a read-only encode (learn=false); the model is not
// mutated.
func (c *LZCoder) Encode(tokens []int) ([]int, error) {
	return c.EncodeWithLearn(tokens, false)
}

// Decode concatenates DecodeOne(t) for every id in ids.
func (c *LZCoder) Decode(ids []int) ([]int, error) {
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		vals, err := c.DecodeOne(id)
		if err != nil {
			return nil, err
		}
		out = append(out, vals...)
	}
	return out, nil
}

// InputVocab returns the symbols this coder currently accepts.
func (c *LZCoder) InputVocab() []int {
	return append([]int(nil), c.inputVocab...)
}

// OutputVocab returns every id currently assigned in the dictionary.
func (c *LZCoder) OutputVocab() []int {
	out := make([]int, 0, len(c.encodedVocab))
	for id := range c.encodedVocab {
		out = append(out, id)
	}
	return sortedDistinct(out)
}
