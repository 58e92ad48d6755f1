package tetris

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emptyRows(cols, rows int) string {
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = strings.Repeat(".", cols)
	}
	return strings.Join(lines, "\n")
}

func TestClearFullLines(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(b *Board)
		cleared int
		want    string
	}{
		{
			name:    "empty board",
			setup:   func(b *Board) {},
			cleared: 0,
			want:    emptyRows(4, 5),
		},
		{
			name: "partial rows stay",
			setup: func(b *Board) {
				fillRow(b, 4, 3)
			},
			cleared: 0,
			want:    "....\n....\n....\n....\n###.",
		},
		{
			name: "separated full rows",
			setup: func(b *Board) {
				b.Set(1, 1, DefaultPalette[0])
				fillRow(b, 2)
				b.Set(0, 3, DefaultPalette[0])
				fillRow(b, 4)
			},
			cleared: 2,
			want:    "....\n....\n....\n.#..\n#...",
		},
		{
			name: "consecutive full rows",
			setup: func(b *Board) {
				b.Set(2, 1, DefaultPalette[0])
				fillRow(b, 2)
				fillRow(b, 3)
				fillRow(b, 4)
			},
			cleared: 3,
			want:    "....\n....\n....\n....\n..#.",
		},
		{
			name: "more than four rows are all counted",
			setup: func(b *Board) {
				for y := 0; y < 5; y++ {
					fillRow(b, y)
				}
			},
			cleared: 5,
			want:    emptyRows(4, 5),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBoard(4, 5)
			tc.setup(b)

			assert.Equal(t, tc.cleared, b.ClearFullLines())
			assert.Equal(t, tc.want, b.String())

			cells := b.Cells()
			require.Len(t, cells, 5)
			for y, row := range cells {
				assert.Len(t, row, 4, "row %d width", y)
			}
		})
	}
}

func TestClearFullLinesKeepsColors(t *testing.T) {
	b := NewBoard(3, 3)
	b.Set(1, 0, DefaultPalette[3])
	fillRow(b, 1)
	b.Set(0, 2, DefaultPalette[5])

	require.Equal(t, 1, b.ClearFullLines())
	assert.Equal(t, DefaultPalette[3], b.At(1, 1))
	assert.Equal(t, DefaultPalette[5], b.At(0, 2))
	assert.Equal(t, Empty, b.At(1, 0))
}

func TestCollides(t *testing.T) {
	b := NewBoard(6, 6)
	b.Set(2, 5, DefaultPalette[0])
	b.Set(0, 0, DefaultPalette[0])

	o := Piece{Shape: ShapeOf(KindO)}

	tests := []struct {
		name   string
		x, y   int
		dx, dy int
		want   bool
	}{
		{"free space", 2, 2, 0, 0, false},
		{"left wall", 0, 2, -1, 0, true},
		{"right wall", 4, 2, 1, 0, true},
		{"floor", 3, 4, 0, 1, true},
		{"occupied cell", 1, 3, 0, 1, true},
		{"above board is free", 2, -2, 0, 0, false},
		{"above board ignores row contents", 0, -3, 0, 1, false},
		{"above board still hits side walls", -1, -2, 0, 0, true},
		{"straddling top edge hits occupied row 0", 0, -1, 0, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o.X, o.Y = tc.x, tc.y
			assert.Equal(t, tc.want, b.Collides(o, tc.dx, tc.dy))
		})
	}
}

func TestCollidesShapeUsesReplacement(t *testing.T) {
	b := NewBoard(6, 6)
	p := Piece{Shape: ShapeOf(KindI).Rotate(), X: 5, Y: 0}

	require.False(t, b.Collides(p, 0, 0))
	assert.True(t, b.CollidesShape(p, 0, 0, ShapeOf(KindI)))
	assert.False(t, b.CollidesShape(p, -3, 0, ShapeOf(KindI)))
}

func TestMergeDiscardsAboveBoard(t *testing.T) {
	b := NewBoard(4, 4)
	b.Merge(Piece{Shape: ShapeOf(KindO), Color: DefaultPalette[2], X: 1, Y: -1})

	assert.Equal(t, ".##.\n....\n....\n....", b.String())
	assert.Equal(t, DefaultPalette[2], b.At(1, 0))
	assert.Equal(t, DefaultPalette[2], b.At(2, 0))
}

func TestBoardOutOfRange(t *testing.T) {
	b := NewBoard(3, 3)
	b.Set(-1, 0, DefaultPalette[0])
	b.Set(3, 3, DefaultPalette[0])

	assert.Equal(t, emptyRows(3, 3), b.String())
	assert.Equal(t, Empty, b.At(10, 10))
}

func TestCellsIsCopy(t *testing.T) {
	b := NewBoard(3, 3)
	cells := b.Cells()
	cells[0][0] = DefaultPalette[1]

	assert.Equal(t, Empty, b.At(0, 0))
}
