// Copyright (c) 2020, The PBRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"fmt"

	"github.com/DveloperY0115/PBRT/base/check"
)

// Vector2 is a 2D direction or displacement with X and Y components.
// The zero value is the zero vector.
type Vector2[T Scalar] struct {
	X T
	Y T
}

// Vec2 returns a new [Vector2] with the given x and y components.
// Neither component may be NaN.
func Vec2[T Scalar](x, y T) Vector2[T] {
	v := Vector2[T]{X: x, Y: y}
	if check.Enabled && v.HasNaNs() {
		check.Fail(check.ErrNaN, "Vec2%v", v)
	}
	return v
}

// Vector2Scalar returns a new [Vector2] with both components set to the given scalar value.
func Vector2Scalar[T Scalar](s T) Vector2[T] {
	return Vec2(s, s)
}

// HasNaNs returns whether any component of the vector is NaN.
func (v Vector2[T]) HasNaNs() bool {
	return isNaN(v.X) || isNaN(v.Y)
}

// Set sets this vector X and Y components.
func (v *Vector2[T]) Set(x, y T) {
	*v = Vec2(x, y)
}

// SetScalar sets both vector components to same scalar value.
func (v *Vector2[T]) SetScalar(s T) {
	v.Set(s, s)
}

// SetZero sets this vector X and Y components to be zero.
func (v *Vector2[T]) SetZero() {
	*v = Vector2[T]{}
}

// Dim returns this vector component.
func (v Vector2[T]) Dim(dim Dims) T {
	switch dim {
	case X:
		return v.X
	case Y:
		return v.Y
	}
	check.Fail(check.ErrIndexRange, "Vector2.Dim(%v)", dim)
	return 0
}

// DimPtr returns a pointer to this vector component.
// An out of range dim with checks disabled gives a detached zero.
func (v *Vector2[T]) DimPtr(dim Dims) *T {
	switch dim {
	case X:
		return &v.X
	case Y:
		return &v.Y
	}
	check.Fail(check.ErrIndexRange, "Vector2.DimPtr(%v)", dim)
	return new(T)
}

// SetDim sets this vector component value by dimension index.
func (v *Vector2[T]) SetDim(dim Dims, value T) {
	*v.DimPtr(dim) = value
}

// String returns the vector as "(x, y)".
func (v Vector2[T]) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}

// Add adds other vector to this one and returns result in a new vector.
func (v Vector2[T]) Add(other Vector2[T]) Vector2[T] {
	return Vec2(v.X+other.X, v.Y+other.Y)
}

// SetAdd sets this to addition with other vector.
func (v *Vector2[T]) SetAdd(other Vector2[T]) {
	v.X += other.X
	v.Y += other.Y
}

// Sub subtracts other vector from this one and returns result in new vector.
func (v Vector2[T]) Sub(other Vector2[T]) Vector2[T] {
	return Vec2(v.X-other.X, v.Y-other.Y)
}

// SetSub sets this to subtraction with other vector.
func (v *Vector2[T]) SetSub(other Vector2[T]) {
	v.X -= other.X
	v.Y -= other.Y
}

// Mul multiplies each component of this vector by the corresponding one from other.
func (v Vector2[T]) Mul(other Vector2[T]) Vector2[T] {
	return Vec2(v.X*other.X, v.Y*other.Y)
}

// MulScalar multiplies each component of this vector by the scalar s.
func (v Vector2[T]) MulScalar(s T) Vector2[T] {
	return Vec2(s*v.X, s*v.Y)
}

// SetMulScalar sets this to multiplication by scalar.
func (v *Vector2[T]) SetMulScalar(s T) {
	v.X *= s
	v.Y *= s
}

// DivScalar divides each component of this vector by the non-zero scalar s.
// Integer components are scaled through float64, so int64 values
// beyond 2^53 lose precision unless s is 1 or -1.
func (v Vector2[T]) DivScalar(s T) Vector2[T] {
	if check.Enabled && s == 0 {
		check.Fail(check.ErrDivideByZero, "%v.DivScalar(0)", v)
	}
	return Vec2(divBy(v.X, s), divBy(v.Y, s))
}

// SetDivScalar sets this to division by the non-zero scalar s.
func (v *Vector2[T]) SetDivScalar(s T) {
	if check.Enabled && s == 0 {
		check.Fail(check.ErrDivideByZero, "%v.SetDivScalar(0)", *v)
	}
	v.X = divBy(v.X, s)
	v.Y = divBy(v.Y, s)
}

// Negate returns vector with each component negated.
func (v Vector2[T]) Negate() Vector2[T] {
	return Vector2[T]{-v.X, -v.Y}
}

// SetNegate negates each of this vector's components.
func (v *Vector2[T]) SetNegate() {
	v.X = -v.X
	v.Y = -v.Y
}

// IsEqual returns if this vector is equal to other.
func (v Vector2[T]) IsEqual(other Vector2[T]) bool {
	return (other.X == v.X) && (other.Y == v.Y)
}

// LengthSquared returns the length squared of this vector.
func (v Vector2[T]) LengthSquared() T {
	return v.X*v.X + v.Y*v.Y
}

// Length returns the length of this vector.
// For integer scalars the length is truncated toward zero.
func (v Vector2[T]) Length() T {
	return sqrt(v.LengthSquared())
}

// Scale2 returns v multiplied by the scalar s, with the scalar on the left.
func Scale2[T Scalar](s T, v Vector2[T]) Vector2[T] {
	return v.MulScalar(s)
}

// Abs2 returns the component-wise absolute value of v.
func Abs2[T Scalar](v Vector2[T]) Vector2[T] {
	return Vec2(abs(v.X), abs(v.Y))
}

// Dot2 returns the dot product of v1 and v2.
func Dot2[T Scalar](v1, v2 Vector2[T]) T {
	return v1.X*v2.X + v1.Y*v2.Y
}

// AbsDot2 returns the absolute value of the dot product of v1 and v2.
func AbsDot2[T Scalar](v1, v2 Vector2[T]) T {
	return abs(Dot2(v1, v2))
}

// Normalize2 returns v divided by its length. v must not be zero length.
func Normalize2[T Scalar](v Vector2[T]) Vector2[T] {
	return v.DivScalar(v.Length())
}

// Min2 returns the component-wise minimum of v1 and v2.
func Min2[T Scalar](v1, v2 Vector2[T]) Vector2[T] {
	return Vec2(min(v1.X, v2.X), min(v1.Y, v2.Y))
}

// Max2 returns the component-wise maximum of v1 and v2.
func Max2[T Scalar](v1, v2 Vector2[T]) Vector2[T] {
	return Vec2(max(v1.X, v2.X), max(v1.Y, v2.Y))
}
