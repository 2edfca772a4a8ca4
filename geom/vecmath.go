// Copyright (c) 2020, The PBRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

// Abs returns the component-wise absolute value of v.
func Abs[T Scalar](v Vector3[T]) Vector3[T] {
	return Vec3(abs(v.X), abs(v.Y), abs(v.Z))
}

// Dot returns the dot (inner) product of v1 and v2.
func Dot[T Scalar](v1, v2 Vector3[T]) T {
	return v1.X*v2.X + v1.Y*v2.Y + v1.Z*v2.Z
}

// AbsDot returns the absolute value of the dot product of v1 and v2,
// for when only the magnitude of their alignment matters.
func AbsDot[T Scalar](v1, v2 Vector3[T]) T {
	return abs(Dot(v1, v2))
}

// Cross returns the right-handed cross product of v1 and v2.
// The products are formed in float64 to avoid catastrophic
// cancellation, and narrowed back to T.
func Cross[T Scalar](v1, v2 Vector3[T]) Vector3[T] {
	v1x, v1y, v1z := float64(v1.X), float64(v1.Y), float64(v1.Z)
	v2x, v2y, v2z := float64(v2.X), float64(v2.Y), float64(v2.Z)
	return Vec3(
		T((v1y*v2z)-(v1z*v2y)),
		T((v1z*v2x)-(v1x*v2z)),
		T((v1x*v2y)-(v1y*v2x)))
}

// Normalize returns v divided by its length.
// The caller must make sure v is not zero length: with checks
// enabled that is a division by zero violation, and without them
// the result has infinite or NaN components.
func Normalize[T Scalar](v Vector3[T]) Vector3[T] {
	return v.DivScalar(v.Length())
}

// MinComponent returns the smallest component of v.
func MinComponent[T Scalar](v Vector3[T]) T {
	return min(v.X, min(v.Y, v.Z))
}

// MaxComponent returns the largest component of v.
func MaxComponent[T Scalar](v Vector3[T]) T {
	return max(v.X, max(v.Y, v.Z))
}

// MaxDimension returns the dimension of the largest component of v.
// X wins only when it is strictly larger than both Y and Z, and Y
// only when strictly larger than Z after losing to X, so ties go to
// the later dimension: (5, 5, 1) gives Y and (2, 1, 2) gives Z.
func MaxDimension[T Scalar](v Vector3[T]) Dims {
	if v.X > v.Y {
		if v.X > v.Z {
			return X
		}
		return Z
	}
	if v.Y > v.Z {
		return Y
	}
	return Z
}

// Min returns the component-wise minimum of v1 and v2.
func Min[T Scalar](v1, v2 Vector3[T]) Vector3[T] {
	return Vec3(min(v1.X, v2.X), min(v1.Y, v2.Y), min(v1.Z, v2.Z))
}

// Max returns the component-wise maximum of v1 and v2.
func Max[T Scalar](v1, v2 Vector3[T]) Vector3[T] {
	return Vec3(max(v1.X, v2.X), max(v1.Y, v2.Y), max(v1.Z, v2.Z))
}

// Permute returns a vector whose X, Y and Z components are
// the x, y and z dimensions of v.
func Permute[T Scalar](v Vector3[T], x, y, z Dims) Vector3[T] {
	return Vec3(v.Dim(x), v.Dim(y), v.Dim(z))
}

// CoordinateSystem returns two vectors that together with the
// normalized vector v1 form a right-handed orthonormal basis.
// v2 is taken perpendicular to v1 in the plane that drops the
// smaller of its X and Y components, which keeps v2 away from
// zero length when v1 is close to an axis.
func CoordinateSystem[T Scalar](v1 Vector3[T]) (v2, v3 Vector3[T]) {
	if abs(v1.X) > abs(v1.Y) {
		v2 = Normalize(Vec3(-v1.Z, 0, v1.X))
	} else {
		v2 = Normalize(Vec3(0, v1.Z, -v1.Y))
	}
	v3 = Cross(v1, v2)
	return
}
