package vec

import "github.com/chewxy/math32"

// Vec2 is a point on the ground plane, X and Z of a Vec3.
type Vec2 struct {
	X, Z float32
}

// Subtract the argument from a copy of the receiver, returning the difference.
func (v Vec2) Subtract(b Vec2) Vec2 {
	v.X -= b.X
	v.Z -= b.Z
	return v
}

// SquaredDistance computes the squared euclidian distance between the receiver
// and argument vectors.
func (v Vec2) SquaredDistance(b Vec2) float32 {
	d := b.Subtract(v)
	return d.X*d.X + d.Z*d.Z
}

// Distance computes the euclidian distance between the receiver and argument
// vectors.
func (v Vec2) Distance(b Vec2) float32 {
	return math32.Sqrt(v.SquaredDistance(b))
}
