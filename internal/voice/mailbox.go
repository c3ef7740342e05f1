package voice

import (
	"sync"

	"github.com/vovakirdan/voice-tetris/internal/games/tetris"
)

// Mailbox is a single-slot, last-write-wins handoff between a producer
// goroutine and the game loop. The zero value is empty and ready to use.
type Mailbox struct {
	mu       sync.Mutex
	cmd      tetris.Command
	full     bool
	posted   uint64
	replaced uint64
}

// Post stores cmd, replacing any command that has not been taken yet.
// It reports whether an earlier command was overwritten.
func (m *Mailbox) Post(cmd tetris.Command) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	replaced := m.full
	if replaced {
		m.replaced++
	}
	m.cmd = cmd
	m.full = true
	m.posted++
	return replaced
}

// Take removes and returns the pending command, if there is one.
func (m *Mailbox) Take() (tetris.Command, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.full {
		return 0, false
	}
	cmd := m.cmd
	m.cmd = 0
	m.full = false
	return cmd, true
}

// Stats returns how many commands were posted and how many of those were
// overwritten before being taken.
func (m *Mailbox) Stats() (posted, replaced uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.posted, m.replaced
}
