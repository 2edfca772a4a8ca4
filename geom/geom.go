// Copyright (c) 2020, The PBRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom provides the vector and point types that the
// renderer builds its shapes, transforms, and cameras on:
// [Vector2], [Vector3], [Point2] and [Point3], generic over a
// [Scalar] component type, together with the free functions of
// vector algebra ([Dot], [Cross], [Normalize], [CoordinateSystem], ...).
//
// Points and vectors share a representation but are distinct types,
// since they transform differently: a point minus a point is a
// vector, and a point plus a vector is a point.
//
// Constructors, component access, and scalar division check their
// invariants (no NaN components, dims in range, non-zero divisors)
// through package check, and panic with a *check.Violation when
// one is broken. Build with the nocheck tag to drop the checks.
package geom

//go:generate stringer -type=Dims

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Scalar is a constraint for the component types of the
// vectors and points in this package.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Dims is a list of vector dimension (component) indexes.
type Dims int32

const (
	X Dims = iota
	Y
	Z
	DimsN
)

// Commonly used instantiations.
type (
	Vector2f = Vector2[float32]
	Vector2i = Vector2[int32]
	Vector3f = Vector3[float32]
	Vector3i = Vector3[int32]
	Point2f  = Point2[float32]
	Point2i  = Point2[int32]
	Point3f  = Point3[float32]
	Point3i  = Point3[int32]
)

// isNaN reports whether x is a NaN. It is always false for
// integer scalars.
func isNaN[T Scalar](x T) bool {
	// NaN is the only value not equal to itself.
	return x != x
}

// isFloat reports whether T is a floating point type.
func isFloat[T Scalar]() bool {
	var half T = 1
	half /= 2
	return half != 0
}

// sqrt returns the square root of x, computed in float32 for
// float32 scalars and in float64 otherwise.
func sqrt[T Scalar](x T) T {
	if f, ok := any(x).(float32); ok {
		return T(math32.Sqrt(f))
	}
	return T(math.Sqrt(float64(x)))
}

// abs returns the absolute value of x.
func abs[T Scalar](x T) T {
	switch f := any(x).(type) {
	case float32:
		return T(math32.Abs(f))
	case float64:
		return T(math.Abs(f))
	}
	if x < 0 {
		return -x
	}
	return x
}

// divBy returns x multiplied by the reciprocal of f.
// Integer scalars are scaled in float64 and truncated, except
// for f of 1 or -1, which are applied exactly.
func divBy[T Scalar](x, f T) T {
	if isFloat[T]() {
		return x * (1 / f)
	}
	one := T(1)
	switch {
	case f == one:
		return x
	case -one < 0 && f == -one:
		return -x
	}
	return T(float64(x) * (1 / float64(f)))
}
