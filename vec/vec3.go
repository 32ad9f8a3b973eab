// Package vec provides the small amount of float32 vector math the brush
// engine needs to place vertices and strokes in world space.
package vec

// Vec3 is a 3-dimensional world space vector; Y is up.
type Vec3 struct {
	X, Y, Z float32
}

// V3 is a convenience constructor.
func V3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// Add the argument to a copy of the receiver, returning the sum.
func (v Vec3) Add(b Vec3) Vec3 {
	v.X += b.X
	v.Y += b.Y
	v.Z += b.Z
	return v
}

// Subtract the argument from a copy of the receiver, returning the difference.
func (v Vec3) Subtract(b Vec3) Vec3 {
	v.X -= b.X
	v.Y -= b.Y
	v.Z -= b.Z
	return v
}

// Scale returns a copy of the receiver scaled by the given factor.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Lerp interpolates from the receiver to the argument by t.
func (v Vec3) Lerp(b Vec3, t float32) Vec3 {
	return v.Add(b.Subtract(v).Scale(t))
}

// XZ projects the vector onto the ground plane, dropping the vertical axis.
func (v Vec3) XZ() Vec2 {
	return Vec2{v.X, v.Z}
}

// WithY returns a copy of the receiver with its height replaced.
func (v Vec3) WithY(y float32) Vec3 {
	v.Y = y
	return v
}
