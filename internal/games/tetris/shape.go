package tetris

import (
	"fmt"
	"strings"
)

// ShapeName identifies one of the seven tetromino templates.
type ShapeName byte

// The shape catalog.
const (
	ShapeI ShapeName = 'I'
	ShapeO ShapeName = 'O'
	ShapeT ShapeName = 'T'
	ShapeS ShapeName = 'S'
	ShapeZ ShapeName = 'Z'
	ShapeJ ShapeName = 'J'
	ShapeL ShapeName = 'L'
)

// ShapeNames lists the catalog in a fixed order; spawn indexes into it.
var ShapeNames = [...]ShapeName{ShapeI, ShapeO, ShapeT, ShapeS, ShapeZ, ShapeJ, ShapeL}

// String returns the single-letter name.
func (n ShapeName) String() string {
	return string(rune(n))
}

// ParseShapeName converts a letter such as "T" into a ShapeName.
func ParseShapeName(s string) (ShapeName, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, n := range ShapeNames {
		if s == n.String() {
			return n, nil
		}
	}
	return 0, fmt.Errorf("tetris: unknown shape %q", s)
}

// Shape is a boolean occupancy matrix indexed [row][col].
type Shape [][]bool

// Point addresses a cell inside a shape matrix.
type Point struct {
	Row, Col int
}

// templates holds the canonical spawn matrices. Never hand these out directly.
var templates = map[ShapeName]Shape{
	ShapeI: parseShape("####"),
	ShapeO: parseShape("##", "##"),
	ShapeT: parseShape(".#.", "###"),
	ShapeS: parseShape(".##", "##."),
	ShapeZ: parseShape("##.", ".##"),
	ShapeJ: parseShape("#..", "###"),
	ShapeL: parseShape("..#", "###"),
}

// parseShape builds a matrix from rows where '#' marks an occupied cell.
func parseShape(rows ...string) Shape {
	s := make(Shape, len(rows))
	for i, row := range rows {
		s[i] = make([]bool, len(row))
		for j, ch := range row {
			s[i][j] = ch == '#'
		}
	}
	return s
}

// Template returns a fresh copy of the canonical matrix for name.
// Unknown names yield nil.
func Template(name ShapeName) Shape {
	t, ok := templates[name]
	if !ok {
		return nil
	}
	return t.Clone()
}

// Height returns the number of rows.
func (s Shape) Height() int {
	return len(s)
}

// Width returns the number of columns.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Clone returns a deep copy of the matrix.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	out := make(Shape, len(s))
	for i, row := range s {
		out[i] = append([]bool(nil), row...)
	}
	return out
}

// Rotate returns the matrix turned 90° clockwise: the row order is reversed
// and the result transposed. The receiver is left untouched.
func (s Shape) Rotate() Shape {
	h, w := s.Height(), s.Width()
	out := make(Shape, w)
	for j := range w {
		out[j] = make([]bool, h)
		for k := range h {
			out[j][k] = s[h-1-k][j]
		}
	}
	return out
}

// Cells returns the coordinates of every occupied cell in row-major order.
func (s Shape) Cells() []Point {
	var pts []Point
	for i, row := range s {
		for j, filled := range row {
			if filled {
				pts = append(pts, Point{Row: i, Col: j})
			}
		}
	}
	return pts
}

// Equal reports whether two matrices have identical dimensions and cells.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if len(s[i]) != len(other[i]) {
			return false
		}
		for j := range s[i] {
			if s[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}

// String renders the matrix with '#' and '.', one line per row.
func (s Shape) String() string {
	var sb strings.Builder
	for i, row := range s {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, filled := range row {
			if filled {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
