package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/voice-tetris/internal/core"
)

func newTestEngine(names ...ShapeName) *Engine {
	return NewEngine(DefaultRows, DefaultCols, shapeRand(names...))
}

func TestNewEngineSpawn(t *testing.T) {
	e := newTestEngine(ShapeT, ShapeI)

	active := e.Active()
	assert.Equal(t, ShapeT, active.Name)
	assert.Equal(t, SpawnX(DefaultCols), active.X)
	assert.Equal(t, 0, active.Y)
	assert.Equal(t, ShapeI, e.Next().Name)
	assert.Equal(t, StatePlaying, e.State())
	assert.Equal(t, 0, e.Score())
}

func TestFits(t *testing.T) {
	e := newTestEngine(ShapeO)
	e.board.SetCell(0, 0, core.ColorRed)
	vertical := Template(ShapeI).Rotate()

	tests := []struct {
		name  string
		shape Shape
		x, y  int
		want  bool
	}{
		{"inside", Template(ShapeO), 4, 5, true},
		{"left wall", Template(ShapeO), -1, 5, false},
		{"right wall", Template(ShapeO), 9, 5, false},
		{"floor", Template(ShapeO), 4, 19, false},
		{"resting on floor", Template(ShapeO), 4, 18, true},
		{"overlap", Template(ShapeO), 0, 0, false},
		{"above board", vertical, 0, -4, true},
		{"partly above board overlapping", vertical, 0, -3, false},
		{"above board still walled", vertical, -1, -4, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, e.Fits(tc.shape, tc.x, tc.y))
		})
	}
}

func TestMove(t *testing.T) {
	e := newTestEngine(ShapeO)
	start := e.Active().X

	require.True(t, e.Move(-1))
	assert.Equal(t, start-1, e.Active().X)
	require.True(t, e.Move(1))
	assert.Equal(t, start, e.Active().X)
}

func TestMoveBlockedIsNoOp(t *testing.T) {
	e := newTestEngine(ShapeO)
	e.active = NewPiece(ShapeO, core.ColorCyan, 0, 0)
	before := e.Snapshot()

	assert.False(t, e.Move(-1))
	assert.Equal(t, before, e.Snapshot())

	// Locked cell to the right
	e.board.SetCell(1, 2, core.ColorRed)
	before = e.Snapshot()
	assert.False(t, e.Move(1))
	assert.Equal(t, before, e.Snapshot())
}

func TestRotate(t *testing.T) {
	e := newTestEngine(ShapeI)
	require.Equal(t, "####", e.Active().Shape.String())

	require.True(t, e.Rotate())
	assert.Equal(t, "#\n#\n#\n#", e.Active().Shape.String())
	assert.Equal(t, SpawnX(DefaultCols), e.Active().X)
	assert.Equal(t, 0, e.Active().Y)
}

func TestRotateBlockedIsNoOp(t *testing.T) {
	e := newTestEngine(ShapeI)
	// The vertical I would cover column 3, rows 0..3
	e.board.SetCell(2, 3, core.ColorRed)
	before := e.Snapshot()

	assert.False(t, e.Rotate())
	assert.Equal(t, before, e.Snapshot())
}

func TestRotateAtWallHasNoKick(t *testing.T) {
	e := newTestEngine(ShapeI)
	// Vertical I against the right wall; turning it back to horizontal
	// would need a kick.
	e.active = Piece{X: 9, Y: 5, Name: ShapeI, Shape: Template(ShapeI).Rotate(), Color: core.ColorCyan}
	before := e.Snapshot()

	assert.False(t, e.Rotate())
	assert.Equal(t, before, e.Snapshot())
}

func TestStepFallsThenLocks(t *testing.T) {
	e := newTestEngine(ShapeO, ShapeT)
	e.active = NewPiece(ShapeO, core.ColorCyan, 4, 17)

	out := e.Step()
	assert.Equal(t, Outcome{Applied: true}, out)
	assert.Equal(t, 18, e.Active().Y)

	out = e.Step()
	assert.True(t, out.Locked)
	assert.Equal(t, 0, out.RowsCleared)
	assert.Equal(t, 1, e.Pieces())
	assert.Equal(t, core.ColorCyan, e.board.CellAt(18, 4))
	assert.Equal(t, core.ColorCyan, e.board.CellAt(19, 5))
}

func TestDropY(t *testing.T) {
	e := newTestEngine(ShapeO)
	e.active = NewPiece(ShapeO, core.ColorCyan, 4, 0)
	assert.Equal(t, 18, e.DropY())

	e.board.SetCell(10, 5, core.ColorRed)
	assert.Equal(t, 8, e.DropY())
}

func TestHardDropOnEmptyBoard(t *testing.T) {
	e := newTestEngine(ShapeO, ShapeT)
	e.active = NewPiece(ShapeO, core.ColorYellow, 4, 0)
	next := e.Next()

	out := e.HardDrop()
	assert.Equal(t, Outcome{Applied: true, Locked: true}, out)

	for row := range DefaultRows {
		for col := range DefaultCols {
			occupied := (row == 18 || row == 19) && (col == 4 || col == 5)
			assert.Equal(t, occupied, !e.board.IsEmpty(row, col), "cell (%d, %d)", row, col)
		}
	}
	assert.Equal(t, 0, e.Score())
	assert.Equal(t, next, e.Active())
	assert.False(t, e.GameOver())
}

func TestHardDropClearsLine(t *testing.T) {
	e := newTestEngine(ShapeO)
	fillRow(e.board, 19, 4, 5)
	e.active = NewPiece(ShapeO, core.ColorYellow, 4, 0)

	out := e.HardDrop()
	assert.True(t, out.Locked)
	assert.Equal(t, 1, out.RowsCleared)
	assert.Equal(t, 100, e.Score())
	assert.Equal(t, 1, e.Lines())

	// The cleared row is gone and an empty row was inserted on top;
	// the upper half of the O fell into the bottom row.
	for col := range DefaultCols {
		assert.True(t, e.board.IsEmpty(0, col))
		assert.True(t, e.board.IsEmpty(18, col))
		assert.Equal(t, col == 4 || col == 5, !e.board.IsEmpty(19, col), "col %d", col)
	}
}

func TestMultiLineClearScores(t *testing.T) {
	e := newTestEngine(ShapeI)
	for row := 16; row < 20; row++ {
		fillRow(e.board, row, 0)
	}
	e.active = Piece{X: 0, Y: 0, Name: ShapeI, Shape: Template(ShapeI).Rotate(), Color: core.ColorCyan}

	out := e.HardDrop()
	assert.Equal(t, 4, out.RowsCleared)
	assert.Equal(t, 400, e.Score())
	for row := range DefaultRows {
		for col := range DefaultCols {
			require.True(t, e.board.IsEmpty(row, col))
		}
	}
}

func TestPointsPerLineOption(t *testing.T) {
	e := NewEngine(DefaultRows, DefaultCols, shapeRand(ShapeO), WithPointsPerLine(40))
	fillRow(e.board, 19, 4, 5)
	e.active = NewPiece(ShapeO, core.ColorYellow, 4, 0)

	e.HardDrop()
	assert.Equal(t, 40, e.Score())
}

func TestLockSkipsCellsAboveBoard(t *testing.T) {
	e := newTestEngine(ShapeO)
	e.board.SetCell(2, 0, core.ColorRed)
	e.active = Piece{X: 0, Y: -2, Name: ShapeI, Shape: Template(ShapeI).Rotate(), Color: core.ColorCyan}

	out := e.Step()
	require.True(t, out.Locked)
	assert.Equal(t, core.ColorCyan, e.board.CellAt(0, 0))
	assert.Equal(t, core.ColorCyan, e.board.CellAt(1, 0))
	assert.False(t, e.GameOver())
}

func TestGameOverWhenSpawnBlocked(t *testing.T) {
	e := newTestEngine(ShapeO)
	// Blocks the spawn column so the first O lands at the top.
	e.board.SetCell(2, 3, core.ColorRed)

	out := e.HardDrop()
	require.True(t, out.Locked)
	assert.True(t, e.GameOver())
	assert.Equal(t, StateGameOver, e.State())

	before := e.Snapshot()
	assert.False(t, e.Move(1))
	assert.False(t, e.Move(-1))
	assert.False(t, e.Rotate())
	assert.Equal(t, Outcome{}, e.Step())
	assert.Equal(t, Outcome{}, e.HardDrop())
	for _, cmd := range Commands() {
		assert.Equal(t, Outcome{}, e.Apply(cmd))
	}
	assert.Equal(t, before, e.Snapshot())
	assert.True(t, e.GameOver())
}

func TestNarrowBoardStartsOver(t *testing.T) {
	e := NewEngine(DefaultRows, 3, shapeRand(ShapeI))
	assert.True(t, e.GameOver())
}

func TestApplyInvalidCommand(t *testing.T) {
	e := newTestEngine(ShapeT)
	before := e.Snapshot()

	assert.Equal(t, Outcome{}, e.Apply(Command(0)))
	assert.Equal(t, Outcome{}, e.Apply(Command(42)))
	assert.Equal(t, before, e.Snapshot())
}

func TestApplyDispatch(t *testing.T) {
	e := newTestEngine(ShapeT)
	x := e.Active().X

	assert.True(t, e.Apply(MoveLeft).Applied)
	assert.Equal(t, x-1, e.Active().X)
	assert.True(t, e.Apply(MoveRight).Applied)
	assert.Equal(t, x, e.Active().X)
	assert.True(t, e.Apply(SoftDrop).Applied)
	assert.Equal(t, 1, e.Active().Y)
	assert.True(t, e.Apply(Rotate).Applied)
	assert.True(t, e.Apply(HardDrop).Locked)
	assert.Equal(t, 1, e.Pieces())
}

func TestScoreIsMonotonic(t *testing.T) {
	e := NewEngine(DefaultRows, DefaultCols, &scriptedRand{vals: []int{0, 3, 1, 2, 6, 4, 2, 1, 5, 0}})
	last := 0
	for i := 0; i < 500 && !e.GameOver(); i++ {
		e.Apply(Commands()[i%len(Commands())])
		require.GreaterOrEqual(t, e.Score(), last)
		require.Zero(t, e.Score()%DefaultPointsPerLine)
		last = e.Score()
	}
}

func TestSnapshotIsIsolated(t *testing.T) {
	e := newTestEngine(ShapeT)
	snap := e.Snapshot()
	snap.Board[19][0] = core.ColorRed
	snap.Active.Shape[0][0] = true

	assert.True(t, e.board.IsEmpty(19, 0))
	assert.Equal(t, ".#.\n###", e.Active().Shape.String())
}

func TestCommandRoundTrip(t *testing.T) {
	for _, c := range Commands() {
		assert.True(t, c.Valid())

		parsed, err := ParseCommand(c.Key())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)

		back, ok := CommandForAction(c.Action())
		require.True(t, ok)
		assert.Equal(t, c, back)
	}

	_, err := ParseCommand("jump")
	assert.Error(t, err)
	_, ok := CommandForAction(core.ActionPause)
	assert.False(t, ok)
}
