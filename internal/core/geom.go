// Package core holds the types shared by games and the terminal frontend:
// vectors, the cell screen, input frames, and runtime config. It does not
// import Bubble Tea.
package core

import "math"

// Vec2 is a point or displacement in world units.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Angle returns the angle of v measured from the +X axis (screen coordinates, Y down).
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Polar returns the point at distance r from center along angle a.
func Polar(center Vec2, r, a float64) Vec2 {
	return Vec2{center.X + r*math.Cos(a), center.Y + r*math.Sin(a)}
}

// Heading returns the rotation that makes a sprite pointing "up" face along v.
// A zero vector yields 0.
func Heading(v Vec2) float64 {
	return math.Atan2(v.X, -v.Y)
}

// CirclesOverlap reports whether two circles intersect.
// Touching circles (distance == r1+r2) do not overlap.
func CirclesOverlap(a Vec2, ra float64, b Vec2, rb float64) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	rr := ra + rb
	return dx*dx+dy*dy < rr*rr
}

// Bounds is a play field measured in world units with its origin at the top-left.
type Bounds struct {
	W, H float64
}

// Inside reports whether p lies within the bounds grown by margin on every side.
func (b Bounds) Inside(p Vec2, margin float64) bool {
	return p.X >= -margin && p.X <= b.W+margin && p.Y >= -margin && p.Y <= b.H+margin
}
