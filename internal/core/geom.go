// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec2 is a point in world coordinates.
// The world origin is at its centre and +Y points toward the finish line.
type Vec2 struct {
	X, Y float64
}

// V creates a new point.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Distance returns the Euclidean distance between two points.
func (v Vec2) Distance(o Vec2) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}
