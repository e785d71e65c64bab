package seqtokcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/seqtok/seqtok"
)

var lzVocabSize int

func newLZCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lz [tokens...]",
		Short: "Learn and apply an LZ dictionary tokenizer",
		Long: `Learn a trie-backed LZ dictionary from a training sequence and encode it.

Tokens are provided as arguments or piped from stdin, whitespace- or
comma-separated integers. Omit --vocab-size for an unbounded dictionary.`,
		Example: `  seqtok lz --vocab-size 8 1 2 1 2 3
  echo "1 1 2 1 1 2 3" | seqtok lz --vocab-size 16`,
		RunE: runLZ,
	}
	cmd.Flags().IntVar(&lzVocabSize, "vocab-size", -1, "output vocabulary bound (negative for unbounded)")
	return cmd
}

func runLZ(_ *cobra.Command, args []string) error {
	tokens, err := readTokens(args)
	if err != nil {
		return err
	}

	var opts []seqtok.LZOption
	if lzVocabSize > 0 {
		opts = append(opts, seqtok.WithVocabSize(lzVocabSize))
	}
	c, err := seqtok.NewLZCoder(opts...)
	if err != nil {
		return fmt.Errorf("lz: %w", err)
	}
	if err := c.Learn(tokens, nil); err != nil {
		return fmt.Errorf("lz: learn: %w", err)
	}
	encoded, err := c.Encode(tokens)
	if err != nil {
		return fmt.Errorf("lz: encode: %w", err)
	}
	decoded, err := c.Decode(encoded)
	if err != nil {
		return fmt.Errorf("lz: decode: %w", err)
	}
	if !equalInts(decoded, tokens) {
		return fmt.Errorf("lz: round trip mismatch: got %v, want %v", decoded, tokens)
	}

	printTokens(encoded)
	return nil
}
