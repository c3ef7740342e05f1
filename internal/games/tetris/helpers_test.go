package tetris

import "github.com/vovakirdan/voice-tetris/internal/core"

// scriptedRand replays a fixed sequence of values, cycling when exhausted.
type scriptedRand struct {
	vals []int
	i    int
}

func (r *scriptedRand) Intn(n int) int {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

// shapeRand yields the given shapes in order (cycling), always with the
// first palette color.
func shapeRand(names ...ShapeName) *scriptedRand {
	var vals []int
	for _, name := range names {
		for i, n := range ShapeNames {
			if n == name {
				vals = append(vals, i, 0)
			}
		}
	}
	return &scriptedRand{vals: vals}
}

// fillRow occupies every cell of row except the listed columns.
func fillRow(b *Board, row int, except ...int) {
	skip := make(map[int]bool, len(except))
	for _, c := range except {
		skip[c] = true
	}
	for col := range b.Cols() {
		if !skip[col] {
			b.SetCell(row, col, core.ColorGray)
		}
	}
}
