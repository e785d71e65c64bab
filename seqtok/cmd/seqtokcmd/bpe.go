package seqtokcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/seqtok/seqtok"
)

var (
	bpeMaxOutputVocab int
	bpeMaxMerges      int
)

func newBPECmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bpe [tokens...]",
		Short: "Learn and apply a byte-pair-encoding tokenizer",
		Long: `Learn a BPE merge model from a training sequence and encode it.

Tokens are provided as arguments or piped from stdin, whitespace- or
comma-separated integers. The same sequence is used to learn and then
encode; the round trip through decode is verified before printing.`,
		Example: `  seqtok bpe --max-output-vocab 10 97 97 97 98 100 97 97 97 98 97 99
  echo "1,1,1,2" | seqtok bpe --max-merges 4`,
		RunE: runBPE,
	}
	cmd.Flags().IntVar(&bpeMaxOutputVocab, "max-output-vocab", 0, "maximum output vocabulary size")
	cmd.Flags().IntVar(&bpeMaxMerges, "max-merges", 0, "maximum number of merges to learn")
	return cmd
}

func runBPE(_ *cobra.Command, args []string) error {
	tokens, err := readTokens(args)
	if err != nil {
		return err
	}

	var opts []seqtok.BPEOption
	if bpeMaxOutputVocab > 0 {
		opts = append(opts, seqtok.WithMaxOutputVocab(bpeMaxOutputVocab))
	}
	if bpeMaxMerges > 0 {
		opts = append(opts, seqtok.WithMaxMerges(bpeMaxMerges))
	}
	b, err := seqtok.NewBPE(opts...)
	if err != nil {
		return fmt.Errorf("bpe: %w", err)
	}
	if err := b.Learn(tokens, nil); err != nil {
		return fmt.Errorf("bpe: learn: %w", err)
	}
	encoded, err := b.Encode(tokens)
	if err != nil {
		return fmt.Errorf("bpe: encode: %w", err)
	}
	decoded, err := b.Decode(encoded)
	if err != nil {
		return fmt.Errorf("bpe: decode: %w", err)
	}
	if !equalInts(decoded, tokens) {
		return fmt.Errorf("bpe: round trip mismatch: got %v, want %v", decoded, tokens)
	}

	printTokens(encoded)
	return nil
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
