package seqtokcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/seqtok/seqtok"
)

var hlzVocabSize int

func newHLZCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hlz [tokens...]",
		Short: "Learn and apply a hierarchical LZ tokenizer",
		Long: `Learn a per-context family of LZ dictionaries that vote on shared ids.

Tokens are provided as arguments or piped from stdin, whitespace- or
comma-separated integers.`,
		Example: `  seqtok hlz --vocab-size 16 1 2 1 2 1 2`,
		RunE:    runHLZ,
	}
	cmd.Flags().IntVar(&hlzVocabSize, "vocab-size", -1, "per-context output vocabulary bound (negative for unbounded)")
	return cmd
}

func runHLZ(_ *cobra.Command, args []string) error {
	tokens, err := readTokens(args)
	if err != nil {
		return err
	}

	var opts []seqtok.HLZOption
	if hlzVocabSize > 0 {
		opts = append(opts, seqtok.WithHierarchicalVocabSize(hlzVocabSize))
	}
	h, err := seqtok.NewHierarchicalCoder(opts...)
	if err != nil {
		return fmt.Errorf("hlz: %w", err)
	}
	if err := h.Learn(tokens, nil); err != nil {
		return fmt.Errorf("hlz: learn: %w", err)
	}
	encoded, err := h.Encode(tokens)
	if err != nil {
		return fmt.Errorf("hlz: encode: %w", err)
	}
	decoded, err := h.Decode(encoded)
	if err != nil {
		return fmt.Errorf("hlz: decode: %w", err)
	}
	if !equalInts(decoded, tokens) {
		return fmt.Errorf("hlz: round trip mismatch: got %v, want %v", decoded, tokens)
	}

	printTokens(encoded)
	fmt.Printf("contexts: %d\n", len(h.Coders()))
	return nil
}
