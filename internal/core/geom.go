// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect is a screen-space rectangle in character cells, used for HUD boxes.
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
// Vec3 is a point or direction in world space.
// X runs across the lane, Y is height, Z grows toward the camera.
type Vec3 struct {
	X, Y, Z float64
}

// V3 creates a new Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Sub returns the vector difference a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// DistSq returns the squared distance between a and b.
func (a Vec3) DistSq(b Vec3) float64 {
	d := a.Sub(b)
	return d.X*d.X + d.Y*d.Y + d.Z*d.Z
}

// DistXZSq returns the squared distance on the horizontal plane.
func (a Vec3) DistXZSq(b Vec3) float64 {
	dx := a.X - b.X
	dz := a.Z - b.Z
	return dx*dx + dz*dz
}

// Box3 is an axis-aligned box described by its center and half extents.
type Box3 struct {
	Center Vec3
	Half   Vec3
}

// Overlaps reports whether two boxes overlap on all three axes.
// Touching faces do not count as overlap.
func (b Box3) Overlaps(o Box3) bool {
	if math.Abs(b.Center.X-o.Center.X) >= b.Half.X+o.Half.X {
		return false
	}
	if math.Abs(b.Center.Y-o.Center.Y) >= b.Half.Y+o.Half.Y {
		return false
	}
	if math.Abs(b.Center.Z-o.Center.Z) >= b.Half.Z+o.Half.Z {
		return false
	}
	return true
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
