// Package core holds the terminal-independent building blocks shared by the
// game and its renderers: colors, actions, rectangles and the character
// buffer the board is drawn into. It does not import Bubble Tea.
package core

// Rect is an axis-aligned area of the screen.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Inner returns the area inside a one-cell border.
func (r Rect) Inner() Rect {
	return Rect{X: r.X + 1, Y: r.Y + 1, W: max(r.W-2, 0), H: max(r.H-2, 0)}
}

// CenterX returns the column at which text of width w starts when centered.
func (r Rect) CenterX(w int) int {
	return r.X + (r.W-w)/2
}
