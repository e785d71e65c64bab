package seqtok

import (
	"errors"
	"reflect"
	"testing"
)

func TestContextualScenario4RoundTrip(t *testing.T) {
	c := NewContextualCoder()
	tokens := []int{1, 2, 1, 3, 1, 2, 1, 3}
	if err := c.Learn(tokens, nil); err != nil {
		t.Fatal(err)
	}
	encoded, err := c.Encode(tokens)
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := c.Decode(encoded)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(decoded, tokens) {
		t.Fatalf("round trip failed: got %v, want %v", decoded, tokens)
	}
}

func TestContextualInvariants(t *testing.T) {
	c := NewContextualCoder()
	tokens := []int{1, 2, 1, 3, 1, 2, 1, 3}
	if err := c.Learn(tokens, nil); err != nil {
		t.Fatal(err)
	}
	for _, v := range c.inputVocab {
		if got, ok := c.contextMap[v][0]; !ok || len(got) != 0 {
			t.Fatalf("context_map[%d][0] = %v, %v; want [], true", v, got, ok)
		}
		if got, ok := c.contextMap[0][v]; !ok || !reflect.DeepEqual(got, []int{v}) {
			t.Fatalf("context_map[0][%d] = %v, %v; want [%d], true", v, got, ok, v)
		}
	}
}

func TestContextualMostFrequentSubstringWins(t *testing.T) {
	c := NewContextualCoder()
	tokens := []int{1, 2, 1, 3, 1, 2, 1, 3}
	if err := c.Learn(tokens, nil); err != nil {
		t.Fatal(err)
	}
	// between consecutive 1's, "2,1" occurs twice and "3,1" once.
	if !reflect.DeepEqual(c.contextMap[1][1], []int{2, 1}) {
		t.Fatalf("context_map[1][1] = %v, want [2 1]", c.contextMap[1][1])
	}
}

func TestContextualDecodeUnknownTokenFails(t *testing.T) {
	c := NewContextualCoder()
	if err := c.Learn([]int{1, 2, 1, 2}, nil); err != nil {
		t.Fatal(err)
	}
	_, err := c.Decode([]int{99})
	if !errors.Is(err, ErrUnknownToken) {
		t.Fatalf("Decode with unknown id, err = %v, want ErrUnknownToken", err)
	}
}

func TestContextualOutputVocabIncludesZero(t *testing.T) {
	c := NewContextualCoder()
	if err := c.Learn([]int{1, 2, 1, 2}, nil); err != nil {
		t.Fatal(err)
	}
	if !containsInt(c.OutputVocab(), 0) {
		t.Fatalf("OutputVocab() = %v, want to contain 0", c.OutputVocab())
	}
}
