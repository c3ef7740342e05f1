package tetris

import "github.com/vovakirdan/voice-tetris/internal/core"

// Empty marks an unoccupied board cell.
const Empty = core.ColorDefault

// Default playfield dimensions.
const (
	DefaultRows = 20
	DefaultCols = 10
)

// Board is the fixed-size grid of locked cells. Row 0 is the top row.
// Dimensions never change after construction.
type Board struct {
	rows  int
	cols  int
	cells [][]core.Color
}

// NewBoard creates an empty board with the given dimensions.
func NewBoard(rows, cols int) *Board {
	b := &Board{rows: rows, cols: cols}
	b.cells = make([][]core.Color, rows)
	for r := range b.cells {
		b.cells[r] = b.emptyRow()
	}
	return b
}

func (b *Board) emptyRow() []core.Color {
	// A fresh slice is all Empty since Empty is the zero Color.
	return make([]core.Color, b.cols)
}

// Rows returns the number of rows.
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the number of columns.
func (b *Board) Cols() int {
	return b.cols
}

// InBounds reports whether (row, col) addresses a cell on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// CellAt returns the cell color at (row, col). Callers bounds-check first;
// out-of-range coordinates read as Empty.
func (b *Board) CellAt(row, col int) core.Color {
	if !b.InBounds(row, col) {
		return Empty
	}
	return b.cells[row][col]
}

// IsEmpty reports whether the cell at (row, col) is unoccupied.
func (b *Board) IsEmpty(row, col int) bool {
	return b.CellAt(row, col) == Empty
}

// SetCell stores a color at (row, col). Out-of-range writes are ignored.
func (b *Board) SetCell(row, col int, c core.Color) {
	if !b.InBounds(row, col) {
		return
	}
	b.cells[row][col] = c
}

// RowComplete reports whether every cell of the row is occupied.
func (b *Board) RowComplete(row int) bool {
	if row < 0 || row >= b.rows {
		return false
	}
	for _, c := range b.cells[row] {
		if c == Empty {
			return false
		}
	}
	return true
}

// ClearCompletedRows removes every complete row in a single pass.
// Remaining rows keep their relative order and shift down to fill the gaps;
// one empty row per removed row is inserted at the top.
// Returns the number of rows removed.
func (b *Board) ClearCompletedRows() int {
	kept := make([][]core.Color, 0, b.rows)
	for r := range b.rows {
		if !b.RowComplete(r) {
			kept = append(kept, b.cells[r])
		}
	}

	cleared := b.rows - len(kept)
	if cleared == 0 {
		return 0
	}

	cells := make([][]core.Color, 0, b.rows)
	for range cleared {
		cells = append(cells, b.emptyRow())
	}
	b.cells = append(cells, kept...)
	return cleared
}

// Cells returns a deep copy of the grid, indexed [row][col].
func (b *Board) Cells() [][]core.Color {
	out := make([][]core.Color, b.rows)
	for r, row := range b.cells {
		out[r] = append([]core.Color(nil), row...)
	}
	return out
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	return &Board{rows: b.rows, cols: b.cols, cells: b.Cells()}
}
