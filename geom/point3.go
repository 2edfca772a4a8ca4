// Copyright (c) 2020, The PBRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"fmt"

	"github.com/DveloperY0115/PBRT/base/check"
)

// Point3 is a position in 3D space with X, Y and Z components.
// The zero value is the origin.
//
// Points translate under affine transforms while vectors do not,
// so the two are kept apart: subtracting points gives a [Vector3],
// and adding a [Vector3] to a point gives a point.
type Point3[T Scalar] struct {
	X T
	Y T
	Z T
}

// Pt3 returns a new [Point3] with the given x, y and z components.
// No component may be NaN.
func Pt3[T Scalar](x, y, z T) Point3[T] {
	p := Point3[T]{X: x, Y: y, Z: z}
	if check.Enabled && p.HasNaNs() {
		check.Fail(check.ErrNaN, "Pt3%v", p)
	}
	return p
}

// ConvertPoint3 returns p with its components converted to scalar type U.
func ConvertPoint3[U, T Scalar](p Point3[T]) Point3[U] {
	return Pt3(U(p.X), U(p.Y), U(p.Z))
}

// Point3ToVector3 returns the vector from the origin to p,
// with components converted to scalar type U.
func Point3ToVector3[U, T Scalar](p Point3[T]) Vector3[U] {
	return Vec3(U(p.X), U(p.Y), U(p.Z))
}

// Vector3ToPoint3 returns the point at offset v from the origin,
// with components converted to scalar type U.
func Vector3ToPoint3[U, T Scalar](v Vector3[T]) Point3[U] {
	return Pt3(U(v.X), U(v.Y), U(v.Z))
}

// HasNaNs returns whether any component of the point is NaN.
func (p Point3[T]) HasNaNs() bool {
	return isNaN(p.X) || isNaN(p.Y) || isNaN(p.Z)
}

// Set sets this point X, Y and Z components.
func (p *Point3[T]) Set(x, y, z T) {
	*p = Pt3(x, y, z)
}

// Dim returns this point component.
func (p Point3[T]) Dim(dim Dims) T {
	switch dim {
	case X:
		return p.X
	case Y:
		return p.Y
	case Z:
		return p.Z
	}
	check.Fail(check.ErrIndexRange, "Point3.Dim(%v)", dim)
	return 0
}

// DimPtr returns a pointer to this point component.
// An out of range dim with checks disabled gives a detached zero.
func (p *Point3[T]) DimPtr(dim Dims) *T {
	switch dim {
	case X:
		return &p.X
	case Y:
		return &p.Y
	case Z:
		return &p.Z
	}
	check.Fail(check.ErrIndexRange, "Point3.DimPtr(%v)", dim)
	return new(T)
}

// SetDim sets this point component value by dimension index.
func (p *Point3[T]) SetDim(dim Dims, value T) {
	*p.DimPtr(dim) = value
}

// String returns the point as "[x, y, z]".
func (p Point3[T]) String() string {
	return fmt.Sprintf("[%v, %v, %v]", p.X, p.Y, p.Z)
}

// IsEqual returns if this point is equal to other.
func (p Point3[T]) IsEqual(other Point3[T]) bool {
	return (other.X == p.X) && (other.Y == p.Y) && (other.Z == p.Z)
}

// Sub returns the displacement from other to this point.
func (p Point3[T]) Sub(other Point3[T]) Vector3[T] {
	return Vec3(p.X-other.X, p.Y-other.Y, p.Z-other.Z)
}

// AddVector returns this point translated by v.
func (p Point3[T]) AddVector(v Vector3[T]) Point3[T] {
	return Pt3(p.X+v.X, p.Y+v.Y, p.Z+v.Z)
}

// SetAddVector translates this point by v.
func (p *Point3[T]) SetAddVector(v Vector3[T]) {
	p.X += v.X
	p.Y += v.Y
	p.Z += v.Z
}

// SubVector returns this point translated by the negation of v.
func (p Point3[T]) SubVector(v Vector3[T]) Point3[T] {
	return Pt3(p.X-v.X, p.Y-v.Y, p.Z-v.Z)
}

// SetSubVector translates this point by the negation of v.
func (p *Point3[T]) SetSubVector(v Vector3[T]) {
	p.X -= v.X
	p.Y -= v.Y
	p.Z -= v.Z
}

// Add returns the component-wise sum of two points. It is only
// meaningful for weighted sums whose weights add up to one,
// such as [Lerp].
func (p Point3[T]) Add(other Point3[T]) Point3[T] {
	return Pt3(p.X+other.X, p.Y+other.Y, p.Z+other.Z)
}

// MulScalar returns this point with each component multiplied by s.
func (p Point3[T]) MulScalar(s T) Point3[T] {
	return Pt3(s*p.X, s*p.Y, s*p.Z)
}

// SetMulScalar multiplies each component of this point by s.
func (p *Point3[T]) SetMulScalar(s T) {
	p.X *= s
	p.Y *= s
	p.Z *= s
}

// DivScalar returns this point with each component divided by the
// non-zero scalar s.
// Integer components are scaled through float64, so int64 values
// beyond 2^53 lose precision unless s is 1 or -1.
func (p Point3[T]) DivScalar(s T) Point3[T] {
	if check.Enabled && s == 0 {
		check.Fail(check.ErrDivideByZero, "%v.DivScalar(0)", p)
	}
	return Pt3(divBy(p.X, s), divBy(p.Y, s), divBy(p.Z, s))
}

// SetDivScalar divides each component of this point by the
// non-zero scalar s.
func (p *Point3[T]) SetDivScalar(s T) {
	if check.Enabled && s == 0 {
		check.Fail(check.ErrDivideByZero, "%v.SetDivScalar(0)", *p)
	}
	p.X = divBy(p.X, s)
	p.Y = divBy(p.Y, s)
	p.Z = divBy(p.Z, s)
}

// DistanceTo returns the distance between this point and other.
func (p Point3[T]) DistanceTo(other Point3[T]) T {
	return Distance(p, other)
}

// Distance returns the distance between p1 and p2.
// For integer scalars the distance is truncated toward zero; compare
// [DistanceSquared] values instead when that matters.
func Distance[T Scalar](p1, p2 Point3[T]) T {
	return p1.Sub(p2).Length()
}

// DistanceSquared returns the squared distance between p1 and p2.
// It avoids the square root of [Distance] when only comparing distances.
func DistanceSquared[T Scalar](p1, p2 Point3[T]) T {
	return p1.Sub(p2).LengthSquared()
}

// Lerp returns the point a fraction t of the way from p0 to p1.
func Lerp[T Scalar](t T, p0, p1 Point3[T]) Point3[T] {
	return p0.MulScalar(1 - t).Add(p1.MulScalar(t))
}
