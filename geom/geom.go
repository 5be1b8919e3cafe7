// SPDX-License-Identifier: MIT
// Package: streetgen/geom
//
// geom.go — Point and Rect value types.
//
// Contract:
//   - All types are plain values; copying is cheap and always safe.
//   - Rect is anchored at the origin: the valid area is [0,W]×[0,H].
//   - No method mutates its receiver.
//
// Complexity: every operation here is O(1) time and space.

package geom

import "math"

// Point is a single 2D coordinate in map units.
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Rect is an axis-aligned rectangle spanning [0,Width]×[0,Height].
type Rect struct {
	Width, Height float64
}

// Square returns a Rect with equal sides.
func Square(side float64) Rect {
	return Rect{Width: side, Height: side}
}

// Contains reports whether p lies inside the rectangle, borders included.
func (r Rect) Contains(p Point) bool {
	return p.X >= 0 && p.X <= r.Width && p.Y >= 0 && p.Y <= r.Height
}

// Center returns the rectangle's midpoint.
func (r Rect) Center() Point {
	return Point{X: r.Width / 2, Y: r.Height / 2}
}

// MaxCenterDist returns the distance from the center to any corner, the
// largest center distance a contained point can have.
func (r Rect) MaxCenterDist() float64 {
	c := r.Center()
	return math.Sqrt(c.X*c.X + c.Y*c.Y)
}
