// Package terrain defines the vertex store a brush edits, and provides Plane,
// a subdivided ground plane of vertex entities.
package terrain

import (
	"github.com/borkshop/terrabrush/selection"
	"github.com/borkshop/terrabrush/vec"
)

// ID identifies a vertex within its store.
type ID = selection.ID

// Vertex is a snapshot of one terrain vertex.
type Vertex struct {
	ID ID

	// Local is the vertex position relative to its mesh; brushes write
	// its Y component.
	Local vec.Vec3

	// Global is the world space position, maintained by whatever places
	// the mesh in the world.
	Global vec.Vec3

	// Radius is the vertex footprint, half its grid spacing.
	Radius float32

	Color Color
}

// Store holds terrain vertices.
//
// Each must visit vertices in the same order on every call, and the set of
// vertices must not change while a brush stroke is in progress. Brushes
// never call SetHeight or SetColor from within Each.
type Store interface {
	Each(fn func(Vertex))
	SetHeight(id ID, y float32)
	SetColor(id ID, c Color)
}

// Color is linear RGBA with channels in [0, 1].
type Color [4]float32

// RGBA is a convenience constructor.
func RGBA(r, g, b, a float32) Color {
	return Color{r, g, b, a}
}

// White is opaque white.
var White = Color{1, 1, 1, 1}

// Clamp returns a copy with every channel clamped into [0, 1]; NaN becomes 0.
func (c Color) Clamp() Color {
	for i, v := range c {
		switch {
		case !(v >= 0):
			c[i] = 0
		case v > 1:
			c[i] = 1
		}
	}
	return c
}

// Lerp interpolates every channel from the receiver to the argument by t.
func (c Color) Lerp(b Color, t float32) Color {
	for i := range c {
		c[i] += (b[i] - c[i]) * t
	}
	return c
}
