package tetris

import "github.com/vovakirdan/voice-tetris/internal/core"

// PieceColors is the palette a spawned piece draws its color from.
var PieceColors = []core.Color{
	core.ColorCyan,
	core.ColorRed,
	core.ColorGreen,
	core.ColorYellow,
	core.ColorOrange,
}

// Rand is the random source used for spawning. *rand.Rand satisfies it,
// and tests can supply a scripted sequence.
type Rand interface {
	Intn(n int) int
}

// Piece is a falling or on-deck tetromino. X and Y are the board
// coordinates of the shape matrix's top-left cell.
type Piece struct {
	X, Y  int
	Name  ShapeName
	Shape Shape
	Color core.Color
}

// SpawnX returns the horizontal spawn origin for a board of the given width.
func SpawnX(cols int) int {
	return cols/2 - 2
}

// SpawnPiece picks a shape uniformly from the catalog, then a color from
// PieceColors, and places it at the spawn origin of a cols-wide board.
func SpawnPiece(rng Rand, cols int) Piece {
	name := ShapeNames[rng.Intn(len(ShapeNames))]
	color := PieceColors[rng.Intn(len(PieceColors))]
	return NewPiece(name, color, SpawnX(cols), 0)
}

// NewPiece creates a piece with the canonical matrix for name at (x, y).
func NewPiece(name ShapeName, color core.Color, x, y int) Piece {
	return Piece{
		X:     x,
		Y:     y,
		Name:  name,
		Shape: Template(name),
		Color: color,
	}
}

// Moved returns a copy shifted by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns a copy whose matrix is turned 90° clockwise.
func (p Piece) Rotated() Piece {
	p.Shape = p.Shape.Rotate()
	return p
}

// Clone returns a copy that shares no memory with p.
func (p Piece) Clone() Piece {
	p.Shape = p.Shape.Clone()
	return p
}
