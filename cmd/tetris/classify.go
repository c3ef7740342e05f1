package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/voice-tetris/internal/voice"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <text...>",
	Short: "Show which command a transcript maps to",
	Long: `Runs a transcript through the same classifier the game uses and prints
the resulting command, or "none" when nothing matches.

Examples:
  tetris classify left
  tetris classify "please go right"
  tetris classify ఎడమ`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

func runClassify(cmd *cobra.Command, args []string) error {
	catalog, err := voice.LoadCatalog(flagPhrases)
	if err != nil {
		return err
	}

	text := strings.Join(args, " ")
	out := cmd.OutOrStdout()

	c, ok := voice.NewClassifier(catalog).Classify(text)
	if !ok {
		fmt.Fprintf(out, "%q -> none\n", voice.Normalize(text))
		return nil
	}
	fmt.Fprintf(out, "%q -> %s (%s)\n", voice.Normalize(text), c, c.Key())
	return nil
}
