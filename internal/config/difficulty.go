package config

import "time"

// GravitySchedule computes the delay between gravity steps from elapsed
// play time.
type GravitySchedule struct {
	cfg     GravityConfig
	enabled bool
}

// NewGravitySchedule creates a schedule. Progression is active only when the
// difficulty config is enabled with the "time" progression.
func NewGravitySchedule(g GravityConfig, d DifficultyConfig) *GravitySchedule {
	return &GravitySchedule{
		cfg:     g,
		enabled: d.Enabled && (d.Progression == ProgressionTime || d.Progression == ""),
	}
}

// IsEnabled returns whether the fall speed ramps up over time.
func (s *GravitySchedule) IsEnabled() bool {
	return s.enabled && s.cfg.StepMs > 0 && s.cfg.StepEverySec > 0
}

// maxLevel is the number of speed-ups needed to reach the floor.
func (s *GravitySchedule) maxLevel() int {
	span := s.cfg.BaseMs - s.cfg.FloorMs
	if span <= 0 {
		return 0
	}
	return (span + s.cfg.StepMs - 1) / s.cfg.StepMs
}

// Level returns how many speed-ups have been applied after elapsed play time,
// capped once the floor is reached.
func (s *GravitySchedule) Level(elapsed time.Duration) int {
	if !s.IsEnabled() || elapsed <= 0 {
		return 0
	}
	steps := int(elapsed/time.Second) / s.cfg.StepEverySec
	return min(steps, s.maxLevel())
}

// FallDelay returns the delay between gravity steps after elapsed play time.
func (s *GravitySchedule) FallDelay(elapsed time.Duration) time.Duration {
	ms := s.cfg.BaseMs - s.Level(elapsed)*s.cfg.StepMs
	ms = max(ms, s.cfg.FloorMs)
	return time.Duration(ms) * time.Millisecond
}
