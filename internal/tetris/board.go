package tetris

import (
	"strings"

	"github.com/vovakirdan/puzzgame/internal/core"
)

// Cell is the content of one board position: a piece color, or Empty.
type Cell = core.Color

// Empty is the color of an unoccupied board cell.
const Empty = core.ColorDefault

// Board is a fixed grid of cells. Row 0 is the top of the visible area.
type Board struct {
	cols  int
	rows  int
	cells [][]core.Color
}

// NewBoard creates an empty board with the given dimensions.
func NewBoard(cols, rows int) *Board {
	b := &Board{cols: cols, rows: rows}
	b.Reset()
	return b
}

// Reset empties every cell.
func (b *Board) Reset() {
	b.cells = make([][]core.Color, b.rows)
	for y := range b.cells {
		b.cells[y] = make([]core.Color, b.cols)
	}
}

// Cols returns the board width.
func (b *Board) Cols() int {
	return b.cols
}

// Rows returns the board height.
func (b *Board) Rows() int {
	return b.rows
}

// At returns the color at (x, y), or Empty outside the grid.
func (b *Board) At(x, y int) core.Color {
	if x < 0 || x >= b.cols || y < 0 || y >= b.rows {
		return Empty
	}
	return b.cells[y][x]
}

// Set writes a color into (x, y). Out-of-range writes are ignored.
func (b *Board) Set(x, y int, c core.Color) {
	if x < 0 || x >= b.cols || y < 0 || y >= b.rows {
		return
	}
	b.cells[y][x] = c
}

// Collides reports whether p shifted by (dx, dy) would leave the side or
// bottom walls or overlap an occupied cell.
func (b *Board) Collides(p Piece, dx, dy int) bool {
	return b.CollidesShape(p, dx, dy, p.Shape)
}

// CollidesShape is Collides with the piece's shape replaced by s.
// Cells above the board (row < 0) only collide with the side walls.
func (b *Board) CollidesShape(p Piece, dx, dy int, s Shape) bool {
	collides := false
	s.Each(func(x, y int) {
		if collides {
			return
		}
		nx := p.X + x + dx
		ny := p.Y + y + dy
		if nx < 0 || nx >= b.cols || ny >= b.rows {
			collides = true
			return
		}
		if ny >= 0 && b.cells[ny][nx] != Empty {
			collides = true
		}
	})
	return collides
}

// Merge writes the piece's color into the cells it covers.
// Cells still above the board are dropped.
func (b *Board) Merge(p Piece) {
	p.Shape.Each(func(x, y int) {
		gy := p.Y + y
		if gy >= 0 {
			b.Set(p.X+x, gy, p.Color)
		}
	})
}

// ClearFullLines removes every fully occupied row, shifting the rows above
// it down and inserting an empty row at the top. The scan runs bottom-up and
// re-checks the same index after a removal. Returns the number of rows removed.
func (b *Board) ClearFullLines() int {
	cleared := 0
	for y := b.rows - 1; y >= 0; {
		if !b.rowFull(y) {
			y--
			continue
		}
		copy(b.cells[1:y+1], b.cells[:y])
		b.cells[0] = make([]core.Color, b.cols)
		cleared++
	}
	return cleared
}

func (b *Board) rowFull(y int) bool {
	for _, c := range b.cells[y] {
		if c == Empty {
			return false
		}
	}
	return true
}

// Cells returns a copy of the grid, indexed [row][col].
func (b *Board) Cells() [][]core.Color {
	out := make([][]core.Color, b.rows)
	for y := range b.cells {
		out[y] = make([]core.Color, b.cols)
		copy(out[y], b.cells[y])
	}
	return out
}

// String renders the board with '#' for occupied and '.' for empty cells.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.cols + 1) * b.rows)
	for y := 0; y < b.rows; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.cols; x++ {
			if b.cells[y][x] == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('#')
			}
		}
	}
	return sb.String()
}
