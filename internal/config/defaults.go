package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default Tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Rows: 20,
			Cols: 10,
		},
		Gravity: GravityConfig{
			BaseMs:       500,
			StepMs:       50,
			StepEverySec: 30,
			FloorMs:      100,
		},
		Scoring: ScoringConfig{
			PointsPerLine: 100,
		},
		Difficulty: DifficultyConfig{
			Enabled:     true,
			Progression: ProgressionTime,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tetris":
		return defaultTetrisYAML
	default:
		return nil
	}
}
