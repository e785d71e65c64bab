package main

import (
	"fmt"

	"github.com/spf13/cobra"

	seqtokcmd "github.com/agentstation/seqtok/seqtok/cmd/seqtokcmd"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "seqtok",
	Short: "A composable sequence tokenizer CLI tool",
	Long: `Seqtok is a CLI tool for learning and applying composable integer
sequence tokenizers.

This tool provides a unified interface for the library's tokenizer
kinds. Each kind is available as a subcommand that learns a model from
a training sequence and encodes it.

Currently supported tokenizer kinds:
  - bpe:        byte-pair-encoding merge tokenizer
  - lz:         trie-backed LZ dictionary tokenizer
  - hlz:        hierarchical LZ with cross-context voting
  - contextual: per-context maximal-substring tokenizer`,
	Example: `  # Learn and encode with BPE
  seqtok bpe --max-output-vocab 10 97 97 97 98 100 97 97 97 98 97 99

  # Learn and encode with LZ
  seqtok lz --vocab-size 8 1 2 1 2 3`,
	SilenceUsage: true,
}

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("seqtok version %s\n", version)
		if commit != "none" {
			fmt.Printf("  commit:     %s\n", commit)
		}
		if buildDate != "unknown" {
			fmt.Printf("  built:      %s\n", buildDate)
		}
		if goVersion != "unknown" {
			fmt.Printf("  go version: %s\n", goVersion)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	for _, sub := range seqtokcmd.Command().Commands() {
		rootCmd.AddCommand(sub)
	}
}
