// Copyright (c) 2020, The PBRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"fmt"

	"github.com/DveloperY0115/PBRT/base/check"
)

// Point2 is a position in 2D space with X and Y components,
// such as a sample on the film or on a texture.
type Point2[T Scalar] struct {
	X T
	Y T
}

// Pt2 returns a new [Point2] with the given x and y components.
// Neither component may be NaN.
func Pt2[T Scalar](x, y T) Point2[T] {
	p := Point2[T]{X: x, Y: y}
	if check.Enabled && p.HasNaNs() {
		check.Fail(check.ErrNaN, "Pt2%v", p)
	}
	return p
}

// Point2FromPoint3 returns the X and Y components of p as a [Point2].
func Point2FromPoint3[T Scalar](p Point3[T]) Point2[T] {
	return Pt2(p.X, p.Y)
}

// HasNaNs returns whether any component of the point is NaN.
func (p Point2[T]) HasNaNs() bool {
	return isNaN(p.X) || isNaN(p.Y)
}

// Set sets this point X and Y components.
func (p *Point2[T]) Set(x, y T) {
	*p = Pt2(x, y)
}

// Dim returns this point component.
func (p Point2[T]) Dim(dim Dims) T {
	switch dim {
	case X:
		return p.X
	case Y:
		return p.Y
	}
	check.Fail(check.ErrIndexRange, "Point2.Dim(%v)", dim)
	return 0
}

// DimPtr returns a pointer to this point component.
// An out of range dim with checks disabled gives a detached zero.
func (p *Point2[T]) DimPtr(dim Dims) *T {
	switch dim {
	case X:
		return &p.X
	case Y:
		return &p.Y
	}
	check.Fail(check.ErrIndexRange, "Point2.DimPtr(%v)", dim)
	return new(T)
}

// SetDim sets this point component value by dimension index.
func (p *Point2[T]) SetDim(dim Dims, value T) {
	*p.DimPtr(dim) = value
}

// String returns the point as "[x, y]".
func (p Point2[T]) String() string {
	return fmt.Sprintf("[%v, %v]", p.X, p.Y)
}

// IsEqual returns if this point is equal to other.
func (p Point2[T]) IsEqual(other Point2[T]) bool {
	return (other.X == p.X) && (other.Y == p.Y)
}

// Sub returns the displacement from other to this point.
func (p Point2[T]) Sub(other Point2[T]) Vector2[T] {
	return Vec2(p.X-other.X, p.Y-other.Y)
}

// AddVector returns this point translated by v.
func (p Point2[T]) AddVector(v Vector2[T]) Point2[T] {
	return Pt2(p.X+v.X, p.Y+v.Y)
}

// SetAddVector translates this point by v.
func (p *Point2[T]) SetAddVector(v Vector2[T]) {
	p.X += v.X
	p.Y += v.Y
}

// SubVector returns this point translated by the negation of v.
func (p Point2[T]) SubVector(v Vector2[T]) Point2[T] {
	return Pt2(p.X-v.X, p.Y-v.Y)
}

// SetSubVector translates this point by the negation of v.
func (p *Point2[T]) SetSubVector(v Vector2[T]) {
	p.X -= v.X
	p.Y -= v.Y
}

// Add returns the component-wise sum of two points, for weighted sums.
func (p Point2[T]) Add(other Point2[T]) Point2[T] {
	return Pt2(p.X+other.X, p.Y+other.Y)
}

// MulScalar returns this point with each component multiplied by s.
func (p Point2[T]) MulScalar(s T) Point2[T] {
	return Pt2(s*p.X, s*p.Y)
}

// SetMulScalar multiplies each component of this point by s.
func (p *Point2[T]) SetMulScalar(s T) {
	p.X *= s
	p.Y *= s
}

// DivScalar returns this point with each component divided by the
// non-zero scalar s.
// Integer components are scaled through float64, so int64 values
// beyond 2^53 lose precision unless s is 1 or -1.
func (p Point2[T]) DivScalar(s T) Point2[T] {
	if check.Enabled && s == 0 {
		check.Fail(check.ErrDivideByZero, "%v.DivScalar(0)", p)
	}
	return Pt2(divBy(p.X, s), divBy(p.Y, s))
}

// SetDivScalar divides each component of this point by the
// non-zero scalar s.
func (p *Point2[T]) SetDivScalar(s T) {
	if check.Enabled && s == 0 {
		check.Fail(check.ErrDivideByZero, "%v.SetDivScalar(0)", *p)
	}
	p.X = divBy(p.X, s)
	p.Y = divBy(p.Y, s)
}

// Distance2 returns the distance between p1 and p2.
// For integer scalars the distance is truncated toward zero.
func Distance2[T Scalar](p1, p2 Point2[T]) T {
	return p1.Sub(p2).Length()
}

// DistanceSquared2 returns the squared distance between p1 and p2.
func DistanceSquared2[T Scalar](p1, p2 Point2[T]) T {
	return p1.Sub(p2).LengthSquared()
}
