// Package tetris implements the falling-block puzzle: the board, the piece
// catalog, the rule engine, and a registry.Game adapter that adds gravity
// timing and rendering on top of it.
package tetris

// DefaultPointsPerLine is the score awarded per cleared row.
const DefaultPointsPerLine = 100

// State is the externally observable engine state.
type State int

const (
	StatePlaying State = iota
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	if s == StateGameOver {
		return "game_over"
	}
	return "playing"
}

// Outcome describes what a single engine operation did.
type Outcome struct {
	Applied     bool // the piece moved, rotated, or was dropped
	Locked      bool // the piece was written into the board
	RowsCleared int  // rows removed by the lock
}

// Engine owns one board, the active and next pieces, the score, and the
// game-over flag. It is synchronous and not safe for concurrent use: a
// single driver must make every call.
type Engine struct {
	board         *Board
	active        Piece
	next          Piece
	rng           Rand
	score         int
	lines         int
	pieces        int
	pointsPerLine int
	gameOver      bool
}

// Option customizes an Engine.
type Option func(*Engine)

// WithPointsPerLine overrides the per-row score award.
func WithPointsPerLine(points int) Option {
	return func(e *Engine) {
		if points >= 0 {
			e.pointsPerLine = points
		}
	}
}

// NewEngine creates an engine with an empty rows×cols board and draws the
// active and next pieces from rng.
func NewEngine(rows, cols int, rng Rand, opts ...Option) *Engine {
	e := &Engine{
		board:         NewBoard(rows, cols),
		rng:           rng,
		pointsPerLine: DefaultPointsPerLine,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.active = SpawnPiece(rng, cols)
	e.next = SpawnPiece(rng, cols)
	// Only a board narrower than the widest shape can block the first spawn.
	e.gameOver = !e.fits(e.active)
	return e
}

// Board returns the live board. Callers must treat it as read-only.
func (e *Engine) Board() *Board {
	return e.board
}

// Active returns a copy of the falling piece.
func (e *Engine) Active() Piece {
	return e.active.Clone()
}

// Next returns a copy of the on-deck piece.
func (e *Engine) Next() Piece {
	return e.next.Clone()
}

// Score returns the accumulated score.
func (e *Engine) Score() int {
	return e.score
}

// Lines returns the total number of rows cleared.
func (e *Engine) Lines() int {
	return e.lines
}

// Pieces returns the number of pieces locked so far.
func (e *Engine) Pieces() int {
	return e.pieces
}

// GameOver reports whether a spawn has been blocked. Once true it stays true.
func (e *Engine) GameOver() bool {
	return e.gameOver
}

// State returns StateGameOver once the game has ended, StatePlaying otherwise.
func (e *Engine) State() State {
	if e.gameOver {
		return StateGameOver
	}
	return StatePlaying
}

// Fits reports whether shape placed with its top-left cell at (x, y) stays
// inside the walls, above the floor, and off every locked cell. Cells above
// row 0 are only checked against the walls.
func (e *Engine) Fits(shape Shape, x, y int) bool {
	rows, cols := e.board.Rows(), e.board.Cols()
	for _, pt := range shape.Cells() {
		col, row := x+pt.Col, y+pt.Row
		if col < 0 || col >= cols || row >= rows {
			return false
		}
		if row >= 0 && !e.board.IsEmpty(row, col) {
			return false
		}
	}
	return true
}

func (e *Engine) fits(p Piece) bool {
	return e.Fits(p.Shape, p.X, p.Y)
}

// Move shifts the active piece horizontally by dx when the result fits.
// Returns whether the piece moved.
func (e *Engine) Move(dx int) bool {
	if e.gameOver {
		return false
	}
	moved := e.active.Moved(dx, 0)
	if !e.fits(moved) {
		return false
	}
	e.active = moved
	return true
}

// Rotate turns the active piece clockwise in place when the result fits.
// No offsets are tried. Returns whether the piece rotated.
func (e *Engine) Rotate() bool {
	if e.gameOver {
		return false
	}
	rotated := e.active.Rotated()
	if !e.fits(rotated) {
		return false
	}
	e.active = rotated
	return true
}

// Step moves the active piece down one row, or locks it when it cannot move.
// Serves as both the gravity tick and the soft-drop command.
func (e *Engine) Step() Outcome {
	if e.gameOver {
		return Outcome{}
	}
	down := e.active.Moved(0, 1)
	if e.fits(down) {
		e.active = down
		return Outcome{Applied: true}
	}
	return e.lock()
}

// DropY returns the lowest row the active piece can reach from its current
// position by falling straight down.
func (e *Engine) DropY() int {
	y := e.active.Y
	for e.Fits(e.active.Shape, e.active.X, y+1) {
		y++
	}
	return y
}

// HardDrop drops the active piece to its landing row and locks it.
func (e *Engine) HardDrop() Outcome {
	if e.gameOver {
		return Outcome{}
	}
	e.active.Y = e.DropY()
	out := e.lock()
	out.Applied = true
	return out
}

// Apply dispatches a command to the matching operation.
// Invalid commands and illegal moves leave the state unchanged.
func (e *Engine) Apply(cmd Command) Outcome {
	switch cmd {
	case MoveLeft:
		return Outcome{Applied: e.Move(-1)}
	case MoveRight:
		return Outcome{Applied: e.Move(1)}
	case Rotate:
		return Outcome{Applied: e.Rotate()}
	case SoftDrop:
		return e.Step()
	case HardDrop:
		return e.HardDrop()
	default:
		return Outcome{}
	}
}

// lock writes the active piece into the board, clears rows, scores them,
// promotes the next piece, and checks for a blocked spawn.
func (e *Engine) lock() Outcome {
	p := e.active
	for _, pt := range p.Shape.Cells() {
		row := p.Y + pt.Row
		if row < 0 {
			continue
		}
		e.board.SetCell(row, p.X+pt.Col, p.Color)
	}
	e.pieces++

	cleared := e.board.ClearCompletedRows()
	e.lines += cleared
	e.score += cleared * e.pointsPerLine

	e.active = e.next
	e.next = SpawnPiece(e.rng, e.board.Cols())
	if !e.fits(e.active) {
		e.gameOver = true
	}

	return Outcome{Locked: true, RowsCleared: cleared}
}
