// Package seqtokcmd provides the seqtok command tree for the CLI.
package seqtokcmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// readTokens parses integer tokens from args (joined and split on
// whitespace or commas) or, if no args are given, from stdin.
func readTokens(args []string) ([]int, error) {
	var fields []string
	if len(args) > 0 {
		joined := strings.Join(args, " ")
		fields = strings.FieldsFunc(joined, func(r rune) bool {
			return r == ' ' || r == ',' || r == '\t' || r == '\n'
		})
	} else {
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Split(bufio.ScanWords)
		for scanner.Scan() {
			fields = append(fields, strings.Split(scanner.Text(), ",")...)
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read from stdin: %w", err)
		}
	}

	tokens := make([]int, 0, len(fields))
	for _, f := range fields {
		if f == "" {
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid token %q: %w", f, err)
		}
		tokens = append(tokens, v)
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("no tokens provided")
	}
	return tokens, nil
}

func printTokens(tokens []int) {
	for i, t := range tokens {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Print(t)
	}
	fmt.Println()
}
