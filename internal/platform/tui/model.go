package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/voice-tetris/internal/core"
	"github.com/vovakirdan/voice-tetris/internal/registry"
	"github.com/vovakirdan/voice-tetris/internal/voice"
)

// statusLines is the number of rows below the game reserved for the
// voice status and the short help bar.
const statusLines = 1

// Options carries the collaborators of a game session. Zero values are
// replaced with working defaults.
type Options struct {
	// Mailbox receives commands from the voice listener. The model drains
	// at most one per tick.
	Mailbox *voice.Mailbox
	// Classifier turns simulated phrases from the debug keys into commands.
	Classifier *voice.Classifier
	Logger     *log.Logger
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	mailbox    *voice.Mailbox
	classifier *voice.Classifier
	logger     *log.Logger
	lastVoice  string // last voice command applied, shown in the status line
	quitting   bool
	overLogged bool // whether the current game over has been logged
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Mailbox == nil {
		opts.Mailbox = &voice.Mailbox{}
	}
	if opts.Classifier == nil {
		opts.Classifier = voice.NewClassifier(nil)
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       h,
		mailbox:    opts.Mailbox,
		classifier: opts.Classifier,
		logger:     opts.Logger,
	}
}

func gameHeight(screenH int) int {
	return max(screenH-statusLines, 0)
}

// gameConfig is the runtime config the game sees: the terminal minus the
// status line.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = gameHeight(cfg.ScreenH)
	return cfg
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	if phrase, ok := VoicePhrase(msg); ok {
		m.simulateVoice(phrase)
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionRestart && !m.gameState.GameOver {
		return m, nil
	}
	m.inputFrame.Set(action)
	return m, nil
}

// simulateVoice routes a phrase through the same path a spoken one takes.
func (m Model) simulateVoice(phrase string) {
	cmd, ok := m.classifier.Classify(phrase)
	if !ok {
		m.logger.Debug("simulated phrase matched nothing", "phrase", phrase)
		return
	}
	m.mailbox.Post(cmd)
	m.logger.Debug("simulated voice", "phrase", phrase, "command", cmd)
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameHeight(msg.Height))
	m.help.Width = msg.Width

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, gameHeight(msg.Height))
		return m, nil
	}
	// Games that cannot follow a resize start over, unless the player is
	// looking at a final score.
	if !m.gameState.GameOver {
		m.game.Reset(m.gameConfig())
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if cmd, ok := m.mailbox.Take(); ok {
		m.inputFrame.Set(cmd.Action())
		m.lastVoice = cmd.String()
	}

	restarting := m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if restarting && !m.gameState.GameOver {
		m.overLogged = false
		m.lastVoice = ""
		m.logger.Info("game restarted")
	}
	if result.RowsCleared > 0 {
		m.logger.Debug("rows cleared", "rows", result.RowsCleared, "score", m.gameState.Score)
	}
	if m.gameState.GameOver && !m.overLogged {
		m.logger.Info("game over", "score", m.gameState.Score)
		m.overLogged = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current screen as plain text under
// ~/.tetris/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".tetris", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.statusLine()
}

func (m Model) statusLine() string {
	line := m.help.View(m.keys)
	if m.lastVoice != "" {
		line = voiceStyle.Render("voice: "+m.lastVoice) + statusStyle.Render("  ") + line
	}
	return line
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
