package tetris

import "github.com/vovakirdan/voice-tetris/internal/core"

// Snapshot is a deep copy of the engine's observable state, used by
// renderers and by determinism tests.
type Snapshot struct {
	Board    [][]core.Color
	Active   Piece
	Next     Piece
	Score    int
	Lines    int
	Pieces   int
	State    State
	GameOver bool
}

// Snapshot captures the current engine state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Board:    e.board.Cells(),
		Active:   e.Active(),
		Next:     e.Next(),
		Score:    e.score,
		Lines:    e.lines,
		Pieces:   e.pieces,
		State:    e.State(),
		GameOver: e.gameOver,
	}
}
