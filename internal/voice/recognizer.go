package voice

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"time"
)

var (
	// ErrNoSpeech means nothing was heard before the listen timeout.
	ErrNoSpeech = errors.New("voice: no speech")
	// ErrUnrecognized means audio was captured but could not be transcribed.
	ErrUnrecognized = errors.New("voice: speech not recognized")
)

// Recognizer produces one transcript per call. Implementations block until
// a transcript is ready, the context is done, or the source is exhausted,
// in which case they return io.EOF.
type Recognizer interface {
	Recognize(ctx context.Context) (string, error)
}

// RecognizerFunc adapts a function to the Recognizer interface.
type RecognizerFunc func(ctx context.Context) (string, error)

// Recognize calls f(ctx).
func (f RecognizerFunc) Recognize(ctx context.Context) (string, error) {
	return f(ctx)
}

type lineResult struct {
	text string
	err  error
}

// LineRecognizer reads one transcript per line from a stream, typically a
// FIFO that an external speech-to-text process writes into. Blank lines are
// reported as ErrUnrecognized.
type LineRecognizer struct {
	lines   chan lineResult
	done    chan struct{}
	once    sync.Once
	timeout time.Duration
}

// NewLineRecognizer starts reading r in the background. A positive timeout
// makes Recognize return ErrNoSpeech when no line arrives in time.
func NewLineRecognizer(r io.Reader, timeout time.Duration) *LineRecognizer {
	lr := &LineRecognizer{
		lines:   make(chan lineResult),
		done:    make(chan struct{}),
		timeout: timeout,
	}
	go lr.scan(r)
	return lr
}

func (lr *LineRecognizer) scan(r io.Reader) {
	defer close(lr.lines)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		select {
		case lr.lines <- lineResult{text: sc.Text()}:
		case <-lr.done:
			return
		}
	}
	if err := sc.Err(); err != nil {
		select {
		case lr.lines <- lineResult{err: err}:
		case <-lr.done:
		}
	}
}

// Recognize returns the next line.
func (lr *LineRecognizer) Recognize(ctx context.Context) (string, error) {
	var timeout <-chan time.Time
	if lr.timeout > 0 {
		t := time.NewTimer(lr.timeout)
		defer t.Stop()
		timeout = t.C
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-timeout:
		return "", ErrNoSpeech
	case res, ok := <-lr.lines:
		if !ok {
			return "", io.EOF
		}
		if res.err != nil {
			return "", res.err
		}
		if strings.TrimSpace(res.text) == "" {
			return "", ErrUnrecognized
		}
		return res.text, nil
	}
}

// Close stops the background reader once its current read returns.
// Closing the underlying reader unblocks a pending read.
func (lr *LineRecognizer) Close() error {
	lr.once.Do(func() { close(lr.done) })
	return nil
}
