// Copyright (c) 2020, The PBRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"fmt"

	"github.com/DveloperY0115/PBRT/base/check"
)

// Vector3 is a 3D direction or displacement with X, Y and Z components.
// The zero value is the zero vector.
type Vector3[T Scalar] struct {
	X T
	Y T
	Z T
}

// Vec3 returns a new [Vector3] with the given x, y and z components.
// No component may be NaN.
func Vec3[T Scalar](x, y, z T) Vector3[T] {
	v := Vector3[T]{X: x, Y: y, Z: z}
	if check.Enabled && v.HasNaNs() {
		check.Fail(check.ErrNaN, "Vec3%v", v)
	}
	return v
}

// Vector3Scalar returns a new [Vector3] with all components set to the given scalar value.
func Vector3Scalar[T Scalar](s T) Vector3[T] {
	return Vec3(s, s, s)
}

// ConvertVector3 returns v with its components converted to scalar type U.
func ConvertVector3[U, T Scalar](v Vector3[T]) Vector3[U] {
	return Vec3(U(v.X), U(v.Y), U(v.Z))
}

// HasNaNs returns whether any component of the vector is NaN.
func (v Vector3[T]) HasNaNs() bool {
	return isNaN(v.X) || isNaN(v.Y) || isNaN(v.Z)
}

// Set sets this vector X, Y and Z components.
func (v *Vector3[T]) Set(x, y, z T) {
	*v = Vec3(x, y, z)
}

// SetScalar sets all vector X, Y and Z components to same scalar value.
func (v *Vector3[T]) SetScalar(s T) {
	v.Set(s, s, s)
}

// SetZero sets this vector X, Y and Z components to be zero.
func (v *Vector3[T]) SetZero() {
	*v = Vector3[T]{}
}

// Dim returns this vector component.
func (v Vector3[T]) Dim(dim Dims) T {
	switch dim {
	case X:
		return v.X
	case Y:
		return v.Y
	case Z:
		return v.Z
	}
	check.Fail(check.ErrIndexRange, "Vector3.Dim(%v)", dim)
	return 0
}

// DimPtr returns a pointer to this vector component, for
// updating it in place. With checks disabled, an out of range
// dim gives a pointer to a detached zero, so writes through it
// are dropped and [Vector3.Dim] returns 0.
func (v *Vector3[T]) DimPtr(dim Dims) *T {
	switch dim {
	case X:
		return &v.X
	case Y:
		return &v.Y
	case Z:
		return &v.Z
	}
	check.Fail(check.ErrIndexRange, "Vector3.DimPtr(%v)", dim)
	return new(T)
}

// SetDim sets this vector component value by dimension index.
func (v *Vector3[T]) SetDim(dim Dims, value T) {
	*v.DimPtr(dim) = value
}

// String returns the vector as "(x, y, z)".
func (v Vector3[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}

///////////////////////////////////////////////////////////////////////
//  Basic math operations

// Add adds other vector to this one and returns result in a new vector.
func (v Vector3[T]) Add(other Vector3[T]) Vector3[T] {
	return Vec3(v.X+other.X, v.Y+other.Y, v.Z+other.Z)
}

// SetAdd sets this to addition with other vector (i.e., += or plus-equals).
func (v *Vector3[T]) SetAdd(other Vector3[T]) {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
}

// Sub subtracts other vector from this one and returns result in new vector.
func (v Vector3[T]) Sub(other Vector3[T]) Vector3[T] {
	return Vec3(v.X-other.X, v.Y-other.Y, v.Z-other.Z)
}

// SetSub sets this to subtraction with other vector (i.e., -= or minus-equals).
func (v *Vector3[T]) SetSub(other Vector3[T]) {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
}

// Mul multiplies each component of this vector by the corresponding one from other
// and returns resulting vector.
func (v Vector3[T]) Mul(other Vector3[T]) Vector3[T] {
	return Vec3(v.X*other.X, v.Y*other.Y, v.Z*other.Z)
}

// MulScalar multiplies each component of this vector by the scalar s and returns resulting vector.
func (v Vector3[T]) MulScalar(s T) Vector3[T] {
	return Vec3(s*v.X, s*v.Y, s*v.Z)
}

// SetMulScalar sets this to multiplication by scalar.
func (v *Vector3[T]) SetMulScalar(s T) {
	v.X *= s
	v.Y *= s
	v.Z *= s
}

// DivScalar divides each component of this vector by the scalar s and returns resulting vector.
// The scalar must not be zero.
// Integer components are scaled through float64, so int64 values
// beyond 2^53 lose precision unless s is 1 or -1.
func (v Vector3[T]) DivScalar(s T) Vector3[T] {
	if check.Enabled && s == 0 {
		check.Fail(check.ErrDivideByZero, "%v.DivScalar(0)", v)
	}
	return Vec3(divBy(v.X, s), divBy(v.Y, s), divBy(v.Z, s))
}

// SetDivScalar sets this to division by scalar.
// The scalar must not be zero.
func (v *Vector3[T]) SetDivScalar(s T) {
	if check.Enabled && s == 0 {
		check.Fail(check.ErrDivideByZero, "%v.SetDivScalar(0)", *v)
	}
	v.X = divBy(v.X, s)
	v.Y = divBy(v.Y, s)
	v.Z = divBy(v.Z, s)
}

// Negate returns vector with each component negated.
func (v Vector3[T]) Negate() Vector3[T] {
	return Vector3[T]{-v.X, -v.Y, -v.Z}
}

// SetNegate negates each of this vector's components.
func (v *Vector3[T]) SetNegate() {
	v.X = -v.X
	v.Y = -v.Y
	v.Z = -v.Z
}

// IsEqual returns if this vector is equal to other.
func (v Vector3[T]) IsEqual(other Vector3[T]) bool {
	return (other.X == v.X) && (other.Y == v.Y) && (other.Z == v.Z)
}

// LengthSquared returns the length squared of this vector.
// LengthSquared can be used to compare the lengths of vectors
// without the need to perform a square root.
func (v Vector3[T]) LengthSquared() T {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the length of this vector.
// For integer scalars the length is truncated toward zero,
// so Vec3[int32](1, 1, 1).Length() is 1.
func (v Vector3[T]) Length() T {
	return sqrt(v.LengthSquared())
}

// Dot returns the dot product of this vector with other.
func (v Vector3[T]) Dot(other Vector3[T]) T {
	return Dot(v, other)
}

// Cross returns the cross product of this vector with other.
func (v Vector3[T]) Cross(other Vector3[T]) Vector3[T] {
	return Cross(v, other)
}

// Normal returns this vector divided by its length (its unit vector).
func (v Vector3[T]) Normal() Vector3[T] {
	return Normalize(v)
}

// Scale returns v multiplied by the scalar s, with the scalar on
// the left; it is the same as v.MulScalar(s).
func Scale[T Scalar](s T, v Vector3[T]) Vector3[T] {
	return v.MulScalar(s)
}
