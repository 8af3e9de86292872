// Package core provides fundamental types and utilities for the game platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec2 is a point or extent in world space.
// World space is centred on the field with Y pointing up.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Box is an axis-aligned bounding box described by its centre and full size.
type Box struct {
	Center Vec2
	Size   Vec2
}

// Overlaps reports whether the two boxes share interior area.
// Boxes that only touch along an edge do not overlap.
func (b Box) Overlaps(other Box) bool {
	return Overlaps(b.Center, b.Size, other.Center, other.Size)
}

// Overlaps reports whether two axis-aligned boxes, each given by centre and
// full size, overlap on both axes.
func Overlaps(centerA, sizeA, centerB, sizeB Vec2) bool {
	if math.Abs(centerA.X-centerB.X) >= (sizeA.X+sizeB.X)/2 {
		return false
	}
	return math.Abs(centerA.Y-centerB.Y) < (sizeA.Y+sizeB.Y)/2
}

// Rect represents an integer screen-space rectangle used for drawing.
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

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
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

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
