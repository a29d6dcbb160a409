// Package core provides fundamental types and utilities shared by the
// simulation and the frontends. It contains no external dependencies
// (especially no Bubble Tea or Ebitengine) to keep game logic pure and testable.
package core

import "math"

// Rect is an integer cell rectangle used by the character screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Vec is a point in play-area units.
type Vec struct {
	X, Y float64
}

// Add returns v translated by o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Delta returns the absolute per-axis distance between two points.
func (v Vec) Delta(o Vec) (dx, dy float64) {
	return math.Abs(v.X - o.X), math.Abs(v.Y - o.Y)
}

// ToCell maps a play-area point onto a cols x rows character grid.
func ToCell(v Vec, cols, rows int) (int, int) {
	cx := int(math.Floor(v.X * float64(cols) / PlayWidth))
	cy := int(math.Floor(v.Y * float64(rows) / PlayHeight))
	return cx, cy
}
