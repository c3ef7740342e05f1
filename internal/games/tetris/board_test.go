package tetris

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/voice-tetris/internal/core"
)

func TestNewBoardIsEmpty(t *testing.T) {
	b := NewBoard(DefaultRows, DefaultCols)

	assert.Equal(t, 20, b.Rows())
	assert.Equal(t, 10, b.Cols())
	for row := range b.Rows() {
		for col := range b.Cols() {
			require.True(t, b.IsEmpty(row, col), "cell (%d, %d)", row, col)
		}
	}
}

func TestBoardSetCellBounds(t *testing.T) {
	b := NewBoard(4, 4)

	b.SetCell(1, 2, core.ColorRed)
	assert.Equal(t, core.ColorRed, b.CellAt(1, 2))

	// Out of range writes are ignored and reads return Empty
	b.SetCell(-1, 0, core.ColorRed)
	b.SetCell(4, 0, core.ColorRed)
	b.SetCell(0, 4, core.ColorRed)
	assert.Equal(t, Empty, b.CellAt(-1, 0))
	assert.Equal(t, Empty, b.CellAt(0, 4))
}

func TestClearCompletedRowsNone(t *testing.T) {
	b := NewBoard(4, 4)
	fillRow(b, 3, 0)
	before := b.Cells()

	assert.Equal(t, 0, b.ClearCompletedRows())
	assert.Equal(t, before, b.Cells())
}

func TestClearCompletedRowsCompacts(t *testing.T) {
	b := NewBoard(5, 3)
	// Row layout, top to bottom:
	// 0: ...
	// 1: R..   (kept)
	// 2: ###   (cleared)
	// 3: .G.   (kept)
	// 4: ###   (cleared)
	b.SetCell(1, 0, core.ColorRed)
	fillRow(b, 2)
	b.SetCell(3, 1, core.ColorGreen)
	fillRow(b, 4)

	require.Equal(t, 2, b.ClearCompletedRows())

	expected := [][]core.Color{
		{Empty, Empty, Empty},
		{Empty, Empty, Empty},
		{Empty, Empty, Empty},
		{core.ColorRed, Empty, Empty},
		{Empty, core.ColorGreen, Empty},
	}
	assert.Equal(t, expected, b.Cells())
}

func TestClearCompletedRowsAllFull(t *testing.T) {
	b := NewBoard(3, 3)
	for row := range 3 {
		fillRow(b, row)
	}

	assert.Equal(t, 3, b.ClearCompletedRows())
	for row := range 3 {
		assert.False(t, b.RowComplete(row))
	}
}

// A row is cleared iff it is complete, and survivors keep their order.
func TestClearCompletedRowsProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := range 200 {
		b := NewBoard(8, 4)
		for row := range b.Rows() {
			// Bias toward full rows so clears actually happen
			density := 3
			if rng.Intn(2) == 0 {
				density = 100
			}
			for col := range b.Cols() {
				if rng.Intn(4) < density {
					b.SetCell(row, col, PieceColors[rng.Intn(len(PieceColors))])
				}
			}
		}

		survivors := [][]core.Color{}
		for row, cells := range b.Cells() {
			if !b.RowComplete(row) {
				survivors = append(survivors, cells)
			}
		}

		cleared := b.ClearCompletedRows()
		require.Equal(t, b.Rows()-len(survivors), cleared, "trial %d", trial)

		after := b.Cells()
		for row := range cleared {
			for col := range b.Cols() {
				require.Equal(t, Empty, after[row][col], "trial %d: inserted row %d", trial, row)
			}
		}
		assert.Equal(t, survivors, after[cleared:], "trial %d", trial)
	}
}

func TestBoardCellsIsACopy(t *testing.T) {
	b := NewBoard(2, 2)
	cells := b.Cells()
	cells[0][0] = core.ColorRed

	assert.True(t, b.IsEmpty(0, 0))

	clone := b.Clone()
	clone.SetCell(1, 1, core.ColorBlue)
	assert.True(t, b.IsEmpty(1, 1))
}
