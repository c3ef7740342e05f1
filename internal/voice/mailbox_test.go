package voice

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/voice-tetris/internal/games/tetris"
)

func TestMailboxEmpty(t *testing.T) {
	var mb Mailbox
	_, ok := mb.Take()
	assert.False(t, ok)
}

func TestMailboxLastWriteWins(t *testing.T) {
	var mb Mailbox

	assert.False(t, mb.Post(tetris.MoveLeft))
	assert.True(t, mb.Post(tetris.Rotate))
	assert.True(t, mb.Post(tetris.HardDrop))

	cmd, ok := mb.Take()
	require.True(t, ok)
	assert.Equal(t, tetris.HardDrop, cmd)

	_, ok = mb.Take()
	assert.False(t, ok, "take must clear the slot")

	posted, replaced := mb.Stats()
	assert.Equal(t, uint64(3), posted)
	assert.Equal(t, uint64(2), replaced)
}

func TestMailboxConcurrent(t *testing.T) {
	var mb Mailbox
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := range 1000 {
			mb.Post(tetris.Commands()[i%5])
		}
	}()

	taken := 0
	for range 1000 {
		if cmd, ok := mb.Take(); ok {
			require.True(t, cmd.Valid())
			taken++
		}
	}
	wg.Wait()

	if _, ok := mb.Take(); ok {
		taken++
	}
	posted, replaced := mb.Stats()
	assert.Equal(t, uint64(1000), posted)
	assert.Equal(t, posted, uint64(taken)+replaced)
}
