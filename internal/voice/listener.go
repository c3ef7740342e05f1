package voice

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/voice-tetris/internal/games/tetris"
)

// Listener runs a Recognizer in a loop and posts every classified command
// to a Mailbox. Failures never reach the game: they are logged and the
// loop keeps listening.
type Listener struct {
	recognizer Recognizer
	classifier *Classifier
	mailbox    *Mailbox
	logger     *log.Logger

	// OnCommand, when set, is called after each command is posted.
	OnCommand func(text string, cmd tetris.Command)
}

// NewListener wires a recognizer to a mailbox. A nil classifier uses the
// default catalog and a nil logger discards output.
func NewListener(rec Recognizer, cls *Classifier, mb *Mailbox, logger *log.Logger) *Listener {
	if cls == nil {
		cls = NewClassifier(nil)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Listener{
		recognizer: rec,
		classifier: cls,
		mailbox:    mb,
		logger:     logger,
	}
}

// Run listens until ctx is cancelled or the recognizer reports io.EOF.
// Both end the loop without error.
func (l *Listener) Run(ctx context.Context) error {
	l.logger.Info("listening")
	defer l.logger.Info("stopped listening")

	for {
		if ctx.Err() != nil {
			return nil
		}

		text, err := l.recognizer.Recognize(ctx)
		switch {
		case err == nil:
		case ctx.Err() != nil:
			return nil
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, ErrNoSpeech):
			l.logger.Debug("listen timed out")
			continue
		case errors.Is(err, ErrUnrecognized):
			l.logger.Debug("could not understand audio")
			continue
		default:
			l.logger.Warn("recognizer failed", "error", err)
			continue
		}

		l.handle(text)
	}
}

func (l *Listener) handle(text string) {
	cmd, ok := l.classifier.Classify(text)
	if !ok {
		l.logger.Info("no command matched", "heard", text)
		return
	}

	if l.mailbox.Post(cmd) {
		l.logger.Debug("replaced pending command", "command", cmd)
	}
	l.logger.Info("command", "heard", text, "command", cmd)

	if l.OnCommand != nil {
		l.OnCommand(text, cmd)
	}
}
