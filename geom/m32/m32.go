// Copyright (c) 2020, The PBRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package m32 converts between the float32 geometry types of
// package geom and those of cogentcore.org/core/math32, which the
// Cogent Core GPU and 3D scene packages use.
//
// math32 has a single vector type for both points and directions,
// so every conversion names which of the two geom types it means.
// Conversions into geom validate their components like the geom
// constructors do.
package m32

import (
	"cogentcore.org/core/math32"
	"github.com/DveloperY0115/PBRT/geom"
)

// FromVector3 returns v as a direction.
func FromVector3(v math32.Vector3) geom.Vector3f {
	return geom.Vec3(v.X, v.Y, v.Z)
}

// ToVector3 returns the direction v as a math32 vector.
func ToVector3(v geom.Vector3f) math32.Vector3 {
	return math32.Vec3(v.X, v.Y, v.Z)
}

// PointFromVector3 returns v as a position.
func PointFromVector3(v math32.Vector3) geom.Point3f {
	return geom.Pt3(v.X, v.Y, v.Z)
}

// PointToVector3 returns the position p as a math32 vector.
func PointToVector3(p geom.Point3f) math32.Vector3 {
	return math32.Vec3(p.X, p.Y, p.Z)
}

// FromVector2 returns v as a 2D direction.
func FromVector2(v math32.Vector2) geom.Vector2f {
	return geom.Vec2(v.X, v.Y)
}

// ToVector2 returns the 2D direction v as a math32 vector.
func ToVector2(v geom.Vector2f) math32.Vector2 {
	return math32.Vec2(v.X, v.Y)
}

// Point2FromVector2 returns v as a 2D position.
func Point2FromVector2(v math32.Vector2) geom.Point2f {
	return geom.Pt2(v.X, v.Y)
}

// Point2ToVector2 returns the 2D position p as a math32 vector.
func Point2ToVector2(p geom.Point2f) math32.Vector2 {
	return math32.Vec2(p.X, p.Y)
}

// Vectors3 converts a slice of math32 directions, as found in
// mesh normal buffers.
func Vectors3(vs []math32.Vector3) []geom.Vector3f {
	res := make([]geom.Vector3f, len(vs))
	for i, v := range vs {
		res[i] = FromVector3(v)
	}
	return res
}

// Points3 converts a slice of math32 positions, as found in
// mesh vertex buffers.
func Points3(vs []math32.Vector3) []geom.Point3f {
	res := make([]geom.Point3f, len(vs))
	for i, v := range vs {
		res[i] = PointFromVector3(v)
	}
	return res
}
