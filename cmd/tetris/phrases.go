package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/vovakirdan/voice-tetris/internal/voice"
)

var (
	flagLang string
	flagRaw  bool
)

var (
	commandStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	langStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

var phrasesCmd = &cobra.Command{
	Use:   "phrases",
	Short: "Print the phrase catalog",
	Long: `Lists the spoken phrases recognized for each command, grouped by
language. Commands are matched top to bottom; the first match wins.

Examples:
  tetris phrases
  tetris phrases --lang hi-IN
  tetris phrases --raw > my-phrases.yaml`,
	Args: cobra.NoArgs,
	RunE: runPhrases,
}

func init() {
	phrasesCmd.Flags().StringVar(&flagLang, "lang", "", "Only show this language (BCP 47 tag, e.g. te-IN)")
	phrasesCmd.Flags().BoolVar(&flagRaw, "raw", false, "Print the embedded catalog YAML")
}

func runPhrases(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if flagRaw {
		_, err := out.Write(voice.DefaultPhrasesYAML())
		return err
	}

	catalog, err := voice.LoadCatalog(flagPhrases)
	if err != nil {
		return err
	}

	var only *language.Tag
	if flagLang != "" {
		tag, err := language.Parse(flagLang)
		if err != nil {
			return fmt.Errorf("invalid --lang: %w", err)
		}
		only = &tag
	}

	for _, entry := range catalog.Entries() {
		fmt.Fprintln(out, commandStyle.Render(fmt.Sprintf("%s (%s)", entry.Command, entry.Command.Key())))
		for _, tag := range catalog.Languages() {
			if only != nil && tag != *only {
				continue
			}
			phrases := entry.Phrases[tag]
			if len(phrases) == 0 {
				continue
			}
			fmt.Fprintf(out, "  %s  %s\n", langStyle.Render(fmt.Sprintf("%-6s", tag)), strings.Join(phrases, ", "))
		}
	}
	return nil
}
