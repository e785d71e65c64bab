package seqtok

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewBPERequiresBound(t *testing.T) {
	_, err := NewBPE()
	if !errors.Is(err, ErrConfigError) {
		t.Fatalf("NewBPE() without bounds = %v, want ErrConfigError", err)
	}
}

func TestBPEMaxMergesSetsEffectiveVocab(t *testing.T) {
	b, err := NewBPE(WithMaxMerges(2))
	if err != nil {
		t.Fatal(err)
	}
	tokens := []int{1, 1, 1, 2}
	if err := b.Learn(tokens, nil); err != nil {
		t.Fatal(err)
	}
	// input vocab {1,2}; max_output_vocab = maxMerges(2) + len(V)(2) = 4
	if len(b.merges) > 4 {
		t.Fatalf("len(merges) = %d, want <= 4", len(b.merges))
	}
}

func TestBPEScenario1MostFrequentPairFirst(t *testing.T) {
	tokens := []int{97, 97, 97, 98, 100, 97, 97, 97, 98, 97, 99}
	b, err := NewBPE(WithMaxOutputVocab(10))
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Learn(tokens, nil); err != nil {
		t.Fatal(err)
	}
	// input vocab has 4 symbols {97,98,99,100}; first learned merge
	// should be (97,97), the most frequent adjacent pair.
	if len(b.merges) <= 4 {
		t.Fatalf("expected at least one learned merge, got %d total merges", len(b.merges))
	}
	first := b.merges[4]
	if first.Pair.A != 97 || first.Pair.B != 97 {
		t.Fatalf("first learned merge = %+v, want (97,97)", first.Pair)
	}

	encoded, err := b.Encode(tokens)
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := b.Decode(encoded)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(decoded, tokens) {
		t.Fatalf("round trip failed: got %v, want %v", decoded, tokens)
	}
	if len(encoded) > len(tokens) {
		t.Fatalf("encode must not grow the sequence: len(encoded)=%d > len(tokens)=%d", len(encoded), len(tokens))
	}
}

func TestBPERoundTripRandomish(t *testing.T) {
	tokens := []int{1, 2, 3, 1, 2, 4, 1, 2, 3, 1, 2, 3, 4, 4, 4, 1, 2}
	b, err := NewBPE(WithMaxOutputVocab(12))
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Learn(tokens, nil); err != nil {
		t.Fatal(err)
	}
	encoded, err := b.Encode(tokens)
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range encoded {
		if !containsInt(b.OutputVocab(), id) {
			t.Fatalf("encoded id %d not in output vocab %v", id, b.OutputVocab())
		}
	}
	decoded, err := b.Decode(encoded)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(decoded, tokens) {
		t.Fatalf("round trip failed: got %v, want %v", decoded, tokens)
	}
}

func TestBPELearnIdempotent(t *testing.T) {
	tokens := []int{1, 1, 2, 1, 1, 2, 3}
	b1, _ := NewBPE(WithMaxOutputVocab(10))
	b2, _ := NewBPE(WithMaxOutputVocab(10))
	if err := b1.Learn(tokens, nil); err != nil {
		t.Fatal(err)
	}
	if err := b2.Learn(tokens, nil); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(b1.outputVocab, b2.outputVocab) {
		t.Fatalf("Learn not deterministic across runs: %v vs %v", b1.outputVocab, b2.outputVocab)
	}
}

func TestBPEShortInputFinalizesWithoutMerging(t *testing.T) {
	b, _ := NewBPE(WithMaxOutputVocab(10))
	if err := b.Learn([]int{5}, nil); err != nil {
		t.Fatal(err)
	}
	if len(b.merges) != 1 {
		t.Fatalf("len(merges) = %d, want 1 (seed only)", len(b.merges))
	}
	decoded, err := b.Decode([]int{5})
	if err != nil || !reflect.DeepEqual(decoded, []int{5}) {
		t.Fatalf("Decode = %v, %v; want [5], nil", decoded, err)
	}
}

func TestBPEUntrainedEncodeDecodeIsIdentity(t *testing.T) {
	b, _ := NewBPE(WithMaxOutputVocab(10))
	tokens := []int{1, 2, 3}
	encoded, err := b.Encode(tokens)
	if err != nil || !reflect.DeepEqual(encoded, tokens) {
		t.Fatalf("Encode on untrained BPE = %v, %v; want %v, nil", encoded, err, tokens)
	}
	decoded, err := b.Decode(tokens)
	if err != nil || !reflect.DeepEqual(decoded, tokens) {
		t.Fatalf("Decode on untrained BPE = %v, %v; want %v, nil", decoded, err, tokens)
	}
}
