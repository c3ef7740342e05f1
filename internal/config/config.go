// Package config provides YAML-based game configuration loading and the
// gravity schedule that controls how fast pieces fall.
package config

import "fmt"

// TetrisConfig contains all configuration for the Tetris game.
type TetrisConfig struct {
	Board      BoardConfig      `yaml:"board" envPrefix:"BOARD_"`
	Gravity    GravityConfig    `yaml:"gravity" envPrefix:"GRAVITY_"`
	Scoring    ScoringConfig    `yaml:"scoring" envPrefix:"SCORING_"`
	Difficulty DifficultyConfig `yaml:"difficulty" envPrefix:"DIFFICULTY_"`
}

// BoardConfig defines the playfield dimensions.
type BoardConfig struct {
	Rows int `yaml:"rows" env:"ROWS"`
	Cols int `yaml:"cols" env:"COLS"`
}

// GravityConfig defines the fall cadence. The delay between gravity steps
// starts at BaseMs and drops by StepMs every StepEverySec seconds of play,
// never going below FloorMs.
type GravityConfig struct {
	BaseMs       int `yaml:"base_ms" env:"BASE_MS"`
	StepMs       int `yaml:"step_ms" env:"STEP_MS"`
	StepEverySec int `yaml:"step_every_sec" env:"STEP_EVERY_SEC"`
	FloorMs      int `yaml:"floor_ms" env:"FLOOR_MS"`
}

// ScoringConfig defines score awards.
type ScoringConfig struct {
	PointsPerLine int `yaml:"points_per_line" env:"POINTS_PER_LINE"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled     bool   `yaml:"enabled" env:"ENABLED"`
	Progression string `yaml:"progression" env:"PROGRESSION"` // "time" or "none"
}

// Validate checks that the configuration describes a playable game.
func (c TetrisConfig) Validate() error {
	if c.Board.Rows < 4 {
		return fmt.Errorf("config: board.rows must be at least 4, got %d", c.Board.Rows)
	}
	if c.Board.Cols < 4 {
		return fmt.Errorf("config: board.cols must be at least 4, got %d", c.Board.Cols)
	}
	if c.Gravity.FloorMs <= 0 {
		return fmt.Errorf("config: gravity.floor_ms must be positive, got %d", c.Gravity.FloorMs)
	}
	if c.Gravity.BaseMs < c.Gravity.FloorMs {
		return fmt.Errorf("config: gravity.base_ms (%d) is below floor_ms (%d)", c.Gravity.BaseMs, c.Gravity.FloorMs)
	}
	if c.Gravity.StepMs < 0 || c.Gravity.StepEverySec < 0 {
		return fmt.Errorf("config: gravity step values must not be negative")
	}
	if c.Scoring.PointsPerLine < 0 {
		return fmt.Errorf("config: scoring.points_per_line must not be negative, got %d", c.Scoring.PointsPerLine)
	}
	switch c.Difficulty.Progression {
	case "", ProgressionTime, ProgressionNone:
	default:
		return fmt.Errorf("config: unknown difficulty.progression %q", c.Difficulty.Progression)
	}
	return nil
}

// Progression types.
const (
	ProgressionTime = "time"
	ProgressionNone = "none"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset maps a CLI value to a preset. The empty string
// means "use the config as loaded".
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// BaseDelayForPreset returns the starting fall delay for a preset.
func BaseDelayForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 700
	case DifficultyHard:
		return 300
	default:
		return 500
	}
}
