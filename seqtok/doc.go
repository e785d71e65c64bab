// Package seqtok implements a library of composable sequence
// tokenizers that learn reversible mappings between integer token
// streams.
//
// # Overview
//
// Every tokenizer exposes three operations — Learn, Encode, Decode —
// such that Decode(Encode(x)) reconstructs x exactly. Four learning
// algorithms are provided:
//
//   - BPE: iterative most-frequent-pair merge learner and merge-replay
//     codec.
//   - LZCoder: trie-backed dictionary coder with online vocabulary
//     growth.
//   - HierarchicalCoder: a family of per-context LZCoders that
//     cooperate by vote to share one output-token namespace.
//   - ContextualCoder: learns, per (prev-context, next-context) pair,
//     the most frequent substring emitted by a bigram-like scan.
//
// Tokenizers implement the Stage interface and may be chained with
// Pipeline, where each stage trains on the previous stage's encoded
// output and vocabulary.
//
// # Architecture
//
//	┌──────────────┐
//	│ Training seq │
//	└──────┬───────┘
//	       │
//	       ▼
//	┌─────────────────┐     ┌─────────────────┐
//	│ internal/trie    │────▶│ internal/intset │
//	│ (prefix lookup)  │     │ (unused ids)    │
//	└────────┬─────────┘     └────────┬────────┘
//	         │                        │
//	         ▼                        ▼
//	┌──────────────┐   ┌──────────┐   ┌──────────┐
//	│ BPE          │   │ LZCoder  │──▶│ Hierarchi-│
//	│              │   │          │   │ calCoder  │
//	└──────┬───────┘   └────┬─────┘   └────┬─────┘
//	       │                │              │
//	       └────────┬───────┴──────┬───────┘
//	                ▼              ▼
//	         ┌─────────────┐ ┌──────────────┐
//	         │ Pipeline     │ │ Contextual-  │
//	         │ (stage fold) │ │ Coder        │
//	         └─────────────┘ └──────────────┘
//
// # Basic usage
//
//	b, err := seqtok.NewBPE(seqtok.WithMaxOutputVocab(256))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := b.Learn(tokens, nil); err != nil {
//	    log.Fatal(err)
//	}
//	encoded, err := b.Encode(tokens)
//
// # Concurrency
//
// Every tokenizer is single-threaded and not reentrant: Learn rewrites
// state from scratch, and Encode with online learning mutates the
// trie and the unused-token set. Callers sharing a tokenizer across
// goroutines must serialize access themselves.
package seqtok
