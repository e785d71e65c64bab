package seqtokcmd

import (
	"github.com/spf13/cobra"
)

// Command returns the seqtok command tree for the CLI.
// This command provides bpe, lz, hlz, and contextual subcommands for
// exercising the composable sequence tokenizers from a shell.
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seqtok",
		Short: "Composable sequence tokenizer operations",
		Long: `Learn and apply integer-sequence tokenizers.

Each subcommand learns a model from a training sequence, encodes that
same sequence, and verifies the round trip through decode before
printing the encoded tokens.

Available commands:
  bpe         - Byte-pair-encoding merge tokenizer
  lz          - Trie-backed LZ dictionary tokenizer
  hlz         - Hierarchical LZ with cross-context voting
  contextual  - Per-context maximal-substring tokenizer`,
		Example: `  # Learn and encode with BPE
  seqtok bpe --max-output-vocab 10 97 97 97 98 100 97 97 97 98 97 99

  # Learn and encode with LZ
  seqtok lz --vocab-size 8 1 2 1 2 3`,
	}

	cmd.AddCommand(
		newBPECmd(),
		newLZCmd(),
		newHLZCmd(),
		newContextualCmd(),
	)

	return cmd
}
