package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/voice-tetris/internal/config"
	"github.com/vovakirdan/voice-tetris/internal/core"
	"github.com/vovakirdan/voice-tetris/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown values clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficultyPreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// Game drives an Engine at the platform tick rate: it maps input actions to
// commands, applies gravity on the configured schedule, and renders.
type Game struct {
	engine   *Engine
	rng      *rand.Rand
	runtime  core.RuntimeConfig
	cfg      config.TetrisConfig
	schedule *config.GravitySchedule
	fixedCfg *config.TetrisConfig // set by NewWithConfig, bypasses file loading

	tick        uint64
	elapsedMs   int // simulated play time, excluding pauses
	fallTimerMs int // time since the last gravity step
	paused      bool
	tooSmall    bool
}

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that always uses cfg.
func NewWithConfig(cfg config.TetrisConfig) *Game {
	return &Game{fixedCfg: &cfg}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()
	g.schedule = config.NewGravitySchedule(g.cfg.Gravity, g.cfg.Difficulty)

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.engine = NewEngine(g.cfg.Board.Rows, g.cfg.Board.Cols, g.rng,
		WithPointsPerLine(g.cfg.Scoring.PointsPerLine))

	g.tick = 0
	g.elapsedMs = 0
	g.fallTimerMs = 0
	g.paused = false
	g.checkScreenSize()
}

func (g *Game) loadConfig() config.TetrisConfig {
	if g.fixedCfg != nil {
		return *g.fixedCfg
	}
	cfg, err := config.LoadTetris(configPath)
	if err != nil {
		cfg = config.DefaultTetrisConfig()
	}
	config.ApplyTetrisPreset(&cfg, difficultyPreset)
	return cfg
}

// checkScreenSize flags screens that cannot hold the board and sidebar.
// A zero size means the platform has not reported one yet.
func (g *Game) checkScreenSize() {
	if g.runtime.ScreenW == 0 && g.runtime.ScreenH == 0 {
		g.tooSmall = false
		return
	}
	minW, minH := g.minScreenSize()
	g.tooSmall = g.runtime.ScreenW < minW || g.runtime.ScreenH < minH
}

// Resize adopts a new screen size without restarting the game.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.checkScreenSize()
}

// Engine exposes the rule engine for read-only inspection.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Elapsed returns the simulated play time.
func (g *Game) Elapsed() time.Duration {
	return time.Duration(g.elapsedMs) * time.Millisecond
}

// FallDelay returns the current delay between gravity steps.
func (g *Game) FallDelay() time.Duration {
	return g.schedule.FallDelay(g.Elapsed())
}

// Level returns the 1-based speed level.
func (g *Game) Level() int {
	return g.schedule.Level(g.Elapsed()) + 1
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	// Handle restart
	if in.Has(core.ActionRestart) && g.engine.GameOver() {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.runtime.ScreenW,
			ScreenH:  g.runtime.ScreenH,
			TickRate: g.runtime.TickRate,
		})
		return core.StepResult{State: g.State()}
	}

	if g.engine.GameOver() || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	dt := g.runtime.MillisPerTick()
	g.elapsedMs += dt

	var result core.StepResult
	for _, cmd := range Commands() {
		if in.Has(cmd.Action()) {
			record(&result, g.engine.Apply(cmd))
		}
	}

	g.fallTimerMs += dt
	if time.Duration(g.fallTimerMs)*time.Millisecond > g.FallDelay() {
		g.fallTimerMs = 0
		record(&result, g.engine.Step())
	}

	result.State = g.State()
	return result
}

// record folds an engine outcome into the tick result.
func record(result *core.StepResult, out Outcome) {
	if out.Locked {
		result.Locked = true
		result.RowsCleared += out.RowsCleared
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: g.engine.GameOver(),
		Paused:   g.paused || g.tooSmall,
	}
}

// GameSnapshot extends the engine snapshot with driver state.
type GameSnapshot struct {
	Snapshot
	Tick      uint64
	ElapsedMs int
	FallDelay time.Duration
	Level     int
	Paused    bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() GameSnapshot {
	return GameSnapshot{
		Snapshot:  g.engine.Snapshot(),
		Tick:      g.tick,
		ElapsedMs: g.elapsedMs,
		FallDelay: g.FallDelay(),
		Level:     g.Level(),
		Paused:    g.paused,
	}
}
