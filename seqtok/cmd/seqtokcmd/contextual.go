package seqtokcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/seqtok/seqtok"
)

func newContextualCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contextual [tokens...]",
		Short: "Learn and apply a contextual dictionary tokenizer",
		Long: `Learn a per-(prev-context, next-context) dictionary of maximal
substrings and encode greedily by longest match.

Tokens are provided as arguments or piped from stdin, whitespace- or
comma-separated integers.`,
		Example: `  seqtok contextual 1 2 1 3 1 2 1 3`,
		RunE:    runContextual,
	}
	return cmd
}

func runContextual(_ *cobra.Command, args []string) error {
	tokens, err := readTokens(args)
	if err != nil {
		return err
	}

	c := seqtok.NewContextualCoder()
	if err := c.Learn(tokens, nil); err != nil {
		return fmt.Errorf("contextual: learn: %w", err)
	}
	encoded, err := c.Encode(tokens)
	if err != nil {
		return fmt.Errorf("contextual: encode: %w", err)
	}
	decoded, err := c.Decode(encoded)
	if err != nil {
		return fmt.Errorf("contextual: decode: %w", err)
	}
	if !equalInts(decoded, tokens) {
		return fmt.Errorf("contextual: round trip mismatch: got %v, want %v", decoded, tokens)
	}

	printTokens(encoded)
	return nil
}
