package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/voice-tetris/internal/config"
	"github.com/vovakirdan/voice-tetris/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty, play, and come back for another round",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to choose a difficulty and Enter to play. Quitting
a game returns to the menu with the last score shown. The voice listener
keeps running between games.

Examples:
  tetris menu
  tetris menu --voice /tmp/tetris.fifo`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	addPlayFlags(menuCmd)
	rootCmd.AddCommand(menuCmd)
}

func runMenu(cmd *cobra.Command, _ []string) error {
	sess, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer sess.Close()

	current, _ := config.ParseDifficultyPreset(flagDifficulty)
	lastScore := 0

	for {
		preset, ok, err := tui.RunDifficultySelector(sess.cfg, current, lastScore)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		current = preset

		lastScore, err = sess.play(string(preset))
		if err != nil {
			return err
		}
	}
}
