// tetris is a falling-block puzzle for the terminal that can be steered by
// voice as well as by keyboard.
//
// Usage:
//
//	tetris [play]               - Play (default command)
//	tetris menu                 - Pick a difficulty between games
//	tetris list                 - List registered games
//	tetris classify <text...>   - Show which command a transcript maps to
//	tetris phrases              - Print the phrase catalog
//	tetris config               - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--phrases <path>  - Use a custom phrase catalog
//	--log <path>      - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/voice-tetris/internal/games/tetris"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagPhrases  string
	flagLog      string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Voice-controlled Tetris in your terminal",
	Long: `Falling-block puzzle for the terminal. Pieces can be moved with the
keyboard or with spoken commands in English, Telugu or Hindi, fed in as
transcripts by an external speech-to-text process.

Available commands:
  play      - Start a game (default)
  menu      - Pick a difficulty, play, repeat
  list      - Show registered games
  classify  - Test how a transcript is understood
  phrases   - Show the phrase catalog
  config    - Show the effective configuration

Examples:
  tetris
  tetris play --difficulty hard
  tetris play --voice /tmp/tetris.fifo --log tetris.log
  tetris classify "move left"
  tetris phrases --lang te-IN`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagPhrases, "phrases", "", "Path to a custom phrase catalog YAML")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Write logs to this file (default: discard)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(phrasesCmd)
	rootCmd.AddCommand(configCmd)
}

// openLogger returns a logger writing to path, or a discarding logger when
// path is empty. Logs never go to the terminal the game is drawn on.
func openLogger(path, level string) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	if path == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
		Level:           lvl,
	})
	return logger, f, nil
}
