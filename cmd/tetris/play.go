package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/voice-tetris/internal/config"
	"github.com/vovakirdan/voice-tetris/internal/core"
	"github.com/vovakirdan/voice-tetris/internal/games/tetris"
	"github.com/vovakirdan/voice-tetris/internal/platform/tui"
	"github.com/vovakirdan/voice-tetris/internal/registry"
	"github.com/vovakirdan/voice-tetris/internal/voice"
)

var (
	flagConfig       string
	flagDifficulty   string
	flagVoice        string
	flagVoiceTimeout time.Duration
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Tetris",
	Long: `Start a game of Tetris.

Controls:
  Left/H, Right/L  - Move
  Up/K             - Rotate
  Down/J           - Soft drop
  Space            - Hard drop
  P/Esc            - Pause
  R                - Restart (after game over)
  1-5              - Simulate the voice phrases left, right, rotate, down, drop
  Q/Ctrl+C         - Quit

Voice input:
  --voice reads one transcript per line from a file or named pipe. Any
  speech-to-text tool that prints what it hears can drive the game:

    mkfifo /tmp/tetris.fifo
    my-stt-tool > /tmp/tetris.fifo &
    tetris play --voice /tmp/tetris.fifo

Difficulty options:
  easy   - Slow start (700ms), speeds up over time
  normal - Default start (500ms), speeds up over time
  hard   - Fast start (300ms), speeds up over time
  fixed  - No speed-up, stays at the configured delay

Examples:
  tetris play
  tetris play --difficulty easy
  tetris play --config ./my-tetris.yaml
  tetris play --voice /tmp/tetris.fifo --log tetris.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&flagVoice, "voice", "", "File or named pipe to read voice transcripts from")
	cmd.Flags().DurationVar(&flagVoiceTimeout, "voice-timeout", 5*time.Second, "Listen timeout per phrase (0 = wait forever)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	sess, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer sess.Close()

	_, err = sess.play(flagDifficulty)
	return err
}

// session holds what outlives a single game: the logger, the voice
// pipeline, and the terminal size.
type session struct {
	cfg        core.RuntimeConfig
	logger     *log.Logger
	closer     io.Closer
	classifier *voice.Classifier
	mailbox    *voice.Mailbox
	cancel     context.CancelFunc
}

// openSession validates the flags, opens the log and starts the voice
// listener when --voice is set.
func openSession(ctx context.Context) (*session, error) {
	// Fail fast on bad settings instead of silently falling back in-game
	if _, err := config.ParseDifficultyPreset(flagDifficulty); err != nil {
		return nil, err
	}
	if _, err := config.LoadTetris(flagConfig); err != nil {
		return nil, err
	}
	catalog, err := voice.LoadCatalog(flagPhrases)
	if err != nil {
		return nil, err
	}

	logger, closer, err := openLogger(flagLog, flagLogLevel)
	if err != nil {
		return nil, err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	s := &session{
		cfg: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		logger:     logger,
		closer:     closer,
		classifier: voice.NewClassifier(catalog),
		mailbox:    &voice.Mailbox{},
	}

	ctx, s.cancel = context.WithCancel(ctx)
	if flagVoice != "" {
		go listen(ctx, flagVoice, flagVoiceTimeout, s.classifier, s.mailbox, logger.WithPrefix("voice"))
	}
	return s, nil
}

// play runs one game with the given difficulty preset and returns the
// final score.
func (s *session) play(difficulty string) (int, error) {
	tetris.SetConfigPath(flagConfig)
	tetris.SetDifficultyPreset(difficulty)

	game, err := registry.Create("tetris")
	if err != nil {
		return 0, fmt.Errorf("creating game: %w", err)
	}

	runErr := tui.Run(game, s.cfg, tui.Options{
		Mailbox:    s.mailbox,
		Classifier: s.classifier,
		Logger:     s.logger,
	})

	score := game.State().Score
	posted, replaced := s.mailbox.Stats()
	s.logger.Info("game ended", "score", score, "difficulty", difficulty,
		"voice_commands", posted, "voice_replaced", replaced)

	if runErr != nil {
		return score, fmt.Errorf("running game: %w", runErr)
	}
	return score, nil
}

// Close stops the listener and closes the log.
func (s *session) Close() error {
	s.cancel()
	return s.closer.Close()
}

// listen feeds transcripts from path into the mailbox until ctx is done.
// Opening a named pipe blocks until a writer connects, so it happens here
// rather than before the game starts.
func listen(ctx context.Context, path string, timeout time.Duration, cls *voice.Classifier, mb *voice.Mailbox, logger *log.Logger) {
	f, err := os.Open(path)
	if err != nil {
		logger.Error("cannot open voice source", "path", path, "error", err)
		return
	}
	defer f.Close()

	rec := voice.NewLineRecognizer(f, timeout)
	defer rec.Close()

	if err := voice.NewListener(rec, cls, mb, logger).Run(ctx); err != nil {
		logger.Error("listener stopped", "error", err)
	}
}
