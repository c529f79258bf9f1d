// SPDX-License-Identifier: MIT

// Package vector provides fixed-size float64 vectors and the 2D/3D value
// types Vec2 and Vec3.
//
// A Vector's size is fixed at construction. Binary operations require equal
// sizes and report ErrDimensionMismatch otherwise; every non-InPlace
// operation returns a fresh Vector and leaves its operands untouched.
//
// Equality is exact (==, no tolerance), like matrix.Equal.
package vector

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	opNew        = "New"
	opAt         = "At"
	opSet        = "Set"
	opAdd        = "Add"
	opSub        = "Sub"
	opAddInPlace = "AddInPlace"
	opSubInPlace = "SubInPlace"
	opDot        = "Dot"
	opNormalize  = "Normalize"
	opAngle      = "Angle"
	opAsVec2     = "AsVec2"
	opAsVec3     = "AsVec3"
)

// Vector is a fixed-size sequence of float64 components.
type Vector struct {
	data []float64
}

var _ fmt.Stringer = (*Vector)(nil)

// New returns a zero vector of the given size.
// Errors: ErrInvalidDimensions for size < 0.
func New(size int) (*Vector, error) {
	if size < 0 {
		return nil, fmt.Errorf("%s(%d): %w", opNew, size, ErrInvalidDimensions)
	}

	return &Vector{data: make([]float64, size)}, nil
}

// Of returns a vector holding a copy of values.
func Of(values ...float64) *Vector {
	data := make([]float64, len(values))
	copy(data, values)

	return &Vector{data: data}
}

// OfInts returns a vector of integers widened to float64.
func OfInts(values ...int) *Vector {
	data := make([]float64, len(values))
	for i, v := range values {
		data[i] = float64(v)
	}

	return &Vector{data: data}
}

// Copy returns a deep copy of v.
func (v *Vector) Copy() *Vector { return Of(v.data...) }

// Len returns the number of components.
func (v *Vector) Len() int { return len(v.data) }

// At returns component i.
// Errors: ErrOutOfRange.
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, fmt.Errorf("%s(%d): %w", opAt, i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Set assigns component i.
// Errors: ErrOutOfRange.
func (v *Vector) Set(i int, value float64) error {
	if i < 0 || i >= len(v.data) {
		return fmt.Errorf("%s(%d): %w", opSet, i, ErrOutOfRange)
	}
	v.data[i] = value

	return nil
}

// Fill sets every component to value.
func (v *Vector) Fill(value float64) {
	for i := range v.data {
		v.data[i] = value
	}
}

// Components returns a copy of the components in order.
func (v *Vector) Components() []float64 {
	out := make([]float64, len(v.data))
	copy(out, v.data)

	return out
}

// Equal reports whether v and w have the same size and equal components.
// Two nil vectors are equal.
func (v *Vector) Equal(w *Vector) bool {
	if v == nil || w == nil {
		return v == nil && w == nil
	}
	if len(v.data) != len(w.data) {
		return false
	}
	for i := range v.data {
		if v.data[i] != w.data[i] {
			return false
		}
	}

	return true
}

// String renders the vector as "(1, 2.5, -3)".
func (v *Vector) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, x := range v.data {
		if i > 0 {
			b.WriteString(", ")
		}
		if x == 0 {
			x = 0 // -0 prints as 0
		}
		b.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	b.WriteByte(')')

	return b.String()
}

// sameSize validates a binary operand pair.
func sameSize(tag string, v, w *Vector) error {
	if v == nil || w == nil {
		return vectorErrorf(tag, ErrNilVector)
	}
	if len(v.data) != len(w.data) {
		return vectorErrorf(tag, fmt.Errorf("%d vs %d: %w", len(v.data), len(w.data), ErrDimensionMismatch))
	}

	return nil
}

// Add returns v + w.
// Errors: ErrDimensionMismatch.
func (v *Vector) Add(w *Vector) (*Vector, error) {
	if err := sameSize(opAdd, v, w); err != nil {
		return nil, err
	}
	out := v.Copy()
	for i := range out.data {
		out.data[i] += w.data[i]
	}

	return out, nil
}

// Sub returns v - w.
// Errors: ErrDimensionMismatch.
func (v *Vector) Sub(w *Vector) (*Vector, error) {
	if err := sameSize(opSub, v, w); err != nil {
		return nil, err
	}
	out := v.Copy()
	for i := range out.data {
		out.data[i] -= w.data[i]
	}

	return out, nil
}

// AddInPlace performs v += w. On error v is untouched.
func (v *Vector) AddInPlace(w *Vector) error {
	if err := sameSize(opAddInPlace, v, w); err != nil {
		return err
	}
	for i := range v.data {
		v.data[i] += w.data[i]
	}

	return nil
}

// SubInPlace performs v -= w. On error v is untouched.
func (v *Vector) SubInPlace(w *Vector) error {
	if err := sameSize(opSubInPlace, v, w); err != nil {
		return err
	}
	for i := range v.data {
		v.data[i] -= w.data[i]
	}

	return nil
}

// Scale returns s·v.
func (v *Vector) Scale(s float64) *Vector {
	out := v.Copy()
	out.ScaleInPlace(s)

	return out
}

// ScaleInPlace performs v *= s.
func (v *Vector) ScaleInPlace(s float64) {
	for i := range v.data {
		v.data[i] *= s
	}
}

// Div returns v / d. Division by zero follows IEEE-754 (±Inf or NaN components).
func (v *Vector) Div(d float64) *Vector {
	out := v.Copy()
	out.DivInPlace(d)

	return out
}

// DivInPlace performs v /= d.
func (v *Vector) DivInPlace(d float64) {
	for i := range v.data {
		v.data[i] /= d
	}
}

// Negate returns -v.
func (v *Vector) Negate() *Vector { return v.Scale(-1) }

// Dot returns the scalar product v·w.
// Errors: ErrDimensionMismatch.
func (v *Vector) Dot(w *Vector) (float64, error) {
	if err := sameSize(opDot, v, w); err != nil {
		return 0, err
	}

	return dot(v.data, w.data), nil
}

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}

// Length returns the Euclidean norm of v.
func (v *Vector) Length() float64 {
	return math.Sqrt(dot(v.data, v.data))
}

// Magnitude is an alias of Length.
func (v *Vector) Magnitude() float64 { return v.Length() }

// Normalize returns v scaled to unit length.
// Errors: ErrZeroVector when Length() == 0.
func (v *Vector) Normalize() (*Vector, error) {
	l := v.Length()
	if l == 0 {
		return nil, vectorErrorf(opNormalize, ErrZeroVector)
	}

	return v.Div(l), nil
}

// Angle returns the angle between v and w in radians, in [0, π].
// The cosine is clamped to [-1, 1] so rounding cannot produce NaN for
// (anti)parallel vectors.
// Errors: ErrDimensionMismatch, ErrZeroVector when either operand has zero length.
func (v *Vector) Angle(w *Vector) (float64, error) {
	d, err := v.Dot(w)
	if err != nil {
		return 0, vectorErrorf(opAngle, err)
	}
	l := v.Length() * w.Length()
	if l == 0 {
		return 0, vectorErrorf(opAngle, ErrZeroVector)
	}

	return math.Acos(math.Max(-1, math.Min(1, d/l))), nil
}

// AsVec2 converts a size-2 vector.
// Errors: ErrDimensionMismatch.
func (v *Vector) AsVec2() (Vec2, error) {
	if len(v.data) != 2 {
		return Vec2{}, vectorErrorf(opAsVec2, ErrDimensionMismatch)
	}

	return Vec2{X: v.data[0], Y: v.data[1]}, nil
}

// AsVec3 converts a size-3 vector.
// Errors: ErrDimensionMismatch.
func (v *Vector) AsVec3() (Vec3, error) {
	if len(v.data) != 3 {
		return Vec3{}, vectorErrorf(opAsVec3, ErrDimensionMismatch)
	}

	return Vec3{X: v.data[0], Y: v.data[1], Z: v.data[2]}, nil
}
