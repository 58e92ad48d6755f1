// Package tetris implements the falling-block game engine: the piece model,
// the board, the game state machine and the tick scheduling that drives it.
// It has no terminal or storage dependencies; drivers feed it ticks and
// player commands from a single goroutine.
package tetris

import "strings"

// Kind identifies one of the seven tetrominoes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindL
	KindJ
	KindS
	KindZ
)

// Kinds lists every tetromino in spawn-table order.
var Kinds = []Kind{KindI, KindO, KindT, KindL, KindJ, KindS, KindZ}

// String returns the conventional letter for the kind.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindL:
		return "L"
	case KindJ:
		return "J"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	default:
		return "?"
	}
}

// Shape is an immutable occupancy matrix. Rows are indexed first.
// The zero value is an empty shape.
type Shape struct {
	cells [][]bool
}

// NewShape builds a shape from rows of 0/1 values. The input is copied.
func NewShape(rows [][]int) Shape {
	cells := make([][]bool, len(rows))
	for y, row := range rows {
		cells[y] = make([]bool, len(row))
		for x, v := range row {
			cells[y][x] = v != 0
		}
	}
	return Shape{cells: cells}
}

var shapeTable = map[Kind]Shape{
	KindI: NewShape([][]int{{1, 1, 1, 1}}),
	KindO: NewShape([][]int{{1, 1}, {1, 1}}),
	KindT: NewShape([][]int{{0, 1, 0}, {1, 1, 1}}),
	KindL: NewShape([][]int{{1, 0, 0}, {1, 1, 1}}),
	KindJ: NewShape([][]int{{0, 0, 1}, {1, 1, 1}}),
	KindS: NewShape([][]int{{1, 1, 0}, {0, 1, 1}}),
	KindZ: NewShape([][]int{{0, 1, 1}, {1, 1, 0}}),
}

// ShapeOf returns the spawn orientation of a tetromino.
func ShapeOf(k Kind) Shape {
	return shapeTable[k]
}

// Height returns the number of rows.
func (s Shape) Height() int {
	return len(s.cells)
}

// Width returns the number of columns.
func (s Shape) Width() int {
	if len(s.cells) == 0 {
		return 0
	}
	return len(s.cells[0])
}

// Filled reports whether the cell at column x, row y is occupied.
// Coordinates outside the matrix are unoccupied.
func (s Shape) Filled(x, y int) bool {
	if y < 0 || y >= len(s.cells) || x < 0 || x >= len(s.cells[y]) {
		return false
	}
	return s.cells[y][x]
}

// Each calls fn for every occupied cell.
func (s Shape) Each(fn func(x, y int)) {
	for y, row := range s.cells {
		for x, filled := range row {
			if filled {
				fn(x, y)
			}
		}
	}
}

// Rotate returns the shape turned 90 degrees clockwise.
// An h×w shape becomes w×h with out[x][h-1-y] = src[y][x].
func (s Shape) Rotate() Shape {
	h, w := s.Height(), s.Width()
	out := make([][]bool, w)
	for x := range out {
		out[x] = make([]bool, h)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out[x][h-1-y] = s.cells[y][x]
		}
	}
	return Shape{cells: out}
}

// Equal reports whether two shapes have the same dimensions and occupancy.
func (s Shape) Equal(o Shape) bool {
	if s.Height() != o.Height() || s.Width() != o.Width() {
		return false
	}
	for y := range s.cells {
		for x := range s.cells[y] {
			if s.cells[y][x] != o.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// String draws the shape with '#' for occupied and '.' for empty cells.
func (s Shape) String() string {
	var b strings.Builder
	for y, row := range s.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, filled := range row {
			if filled {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}
