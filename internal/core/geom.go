// Package core provides the small building blocks shared by the farm
// simulation and the terminal platform: geometry, the input snapshot and
// the character screen buffer. It has no external dependencies so the game
// logic stays pure and testable.
package core

// Point is an integer position in pixel space.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned box in pixel (or cell) space.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
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

// Contains returns true if the point (x, y) is inside this rectangle.
// The left/top edges are inclusive and the right/bottom edges exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Zone is an open rectangle: a point on any edge is outside.
// Bounds are float64 so half-tile edges are represented exactly.
type Zone struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Contains reports whether p lies strictly inside the zone on both axes.
func (z Zone) Contains(p Point) bool {
	x, y := float64(p.X), float64(p.Y)
	return x > z.MinX && x < z.MaxX && y > z.MinY && y < z.MaxY
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
