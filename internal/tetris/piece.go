package tetris

import "github.com/vovakirdan/puzzgame/internal/core"

// Rand is the source of randomness used for spawning.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// DefaultPalette is the set of colors a spawned piece may take.
var DefaultPalette = []core.Color{
	core.ColorBrightCyan,
	core.ColorOrange,
	core.ColorBrightRed,
	core.ColorMagenta,
	core.ColorGreen,
	core.ColorBrightBlue,
	core.ColorBrightMagenta,
	core.ColorBrightGreen,
}

// Piece is a tetromino with a color and a position on the board.
// X and Y locate the top-left corner of the shape matrix; Y is negative
// while the piece is still above the visible board.
type Piece struct {
	Kind  Kind
	Shape Shape
	Color core.Color
	X, Y  int
}

// Spawn picks a kind and then a color uniformly at random and places the
// piece horizontally centered with its lowest row just above row 0.
func Spawn(rng Rand, cols int, palette []core.Color) Piece {
	kind := Kinds[rng.Intn(len(Kinds))]
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	color := palette[rng.Intn(len(palette))]
	shape := ShapeOf(kind)

	return Piece{
		Kind:  kind,
		Shape: shape,
		Color: color,
		X:     (cols - shape.Width()) / 2,
		Y:     -shape.Height(),
	}
}

// Cells returns the absolute board coordinates of every occupied cell.
func (p Piece) Cells() [][2]int {
	var out [][2]int
	p.Shape.Each(func(x, y int) {
		out = append(out, [2]int{p.X + x, p.Y + y})
	})
	return out
}
