// SPDX-License-Identifier: MIT

package vector

import "math"

// Vec2 is a 2-component value vector.
type Vec2 struct {
	X, Y float64
}

// Vec3 is a 3-component value vector.
type Vec3 struct {
	X, Y, Z float64
}

var (
	Zero2 = Vec2{}
	One2  = Vec2{1, 1}
	Zero3 = Vec3{}
	One3  = Vec3{1, 1, 1}
)

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 { return Vec2{v.X + w.X, v.Y + w.Y} }

// Sub returns v - w.
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{v.X - w.X, v.Y - w.Y} }

// Scale returns s ⋅ v.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{s * v.X, s * v.Y} }

// Dot returns v ⋅ w.
func (v Vec2) Dot(w Vec2) float64 { return v.X*w.X + v.Y*w.Y }

// Length returns the length of v.
func (v Vec2) Length() float64 { return math.Sqrt(v.Dot(v)) }

// Normalize returns v normalized.
// Errors: ErrZeroVector.
func (v Vec2) Normalize() (Vec2, error) {
	l := v.Length()
	if l == 0 {
		return Vec2{}, vectorErrorf(opNormalize, ErrZeroVector)
	}

	return Vec2{v.X / l, v.Y / l}, nil
}

// Vec3 lifts v into 3D with Z = 0.
func (v Vec2) Vec3() Vec3 { return Vec3{v.X, v.Y, 0} }

// Vector returns v as a size-2 Vector.
func (v Vec2) Vector() *Vector { return Of(v.X, v.Y) }

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 { return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }

// Scale returns s ⋅ v.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{s * v.X, s * v.Y, s * v.Z} }

// Dot returns v ⋅ w.
func (v Vec3) Dot(w Vec3) float64 { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }

// Length returns the length of v.
func (v Vec3) Length() float64 { return math.Sqrt(v.Dot(v)) }

// Normalize returns v normalized.
// Errors: ErrZeroVector.
func (v Vec3) Normalize() (Vec3, error) {
	l := v.Length()
	if l == 0 {
		return Vec3{}, vectorErrorf(opNormalize, ErrZeroVector)
	}

	return Vec3{v.X / l, v.Y / l, v.Z / l}, nil
}

// Cross returns v × w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// Vector returns v as a size-3 Vector.
func (v Vec3) Vector() *Vector { return Of(v.X, v.Y, v.Z) }
