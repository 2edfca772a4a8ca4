// Copyright (c) 2020, The PBRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"github.com/stretchr/testify/assert"
)

var testPoints = []Point3f{
	{0, 0, 0},
	{1, 2, 13},
	{2, -1.5, 7.2},
	{-4, 0.5, 3},
	{10, 10, -10},
}

func TestPoint3Zero(t *testing.T) {
	var p Point3f
	assert.Equal(t, Pt3[float32](0, 0, 0), p)
	var pi Point3i
	assert.Equal(t, Pt3[int32](0, 0, 0), pi)
}

func TestPoint3(t *testing.T) {
	p1 := Pt3[float32](1, 2, 13)
	p2 := Pt3[float32](2, -1.5, 7.2)
	v := Vec3[float32](2, -1.5, 7.2)

	var d Vector3f = p1.Sub(p2)
	assert.Equal(t, Vec3[float32](-1, 3.5, 5.8), d)

	var q Point3f = p1.AddVector(v)
	assert.Equal(t, Pt3[float32](3, 0.5, 20.2), q)
	assert.Equal(t, Pt3[float32](-1, 3.5, 5.8), p1.SubVector(v))

	assert.Equal(t, Pt3[float32](3, 6, 39), p1.MulScalar(3))
	assert.Equal(t, Pt3[float32](0.5, 1, 6.5), p1.DivScalar(2))
	assert.Equal(t, Pt3[float32](3, 0.5, 20.2), p1.Add(p2))
	assert.Equal(t, "[1, 2, 13]", p1.String())

	assert.Equal(t, float32(13), p1.Dim(Z))
	p := p1
	p.SetDim(X, 4)
	*p.DimPtr(Y) -= 2
	assert.Equal(t, Pt3[float32](4, 0, 13), p)

	p = p1
	p.SetAddVector(v)
	assert.Equal(t, q, p)
	p.SetSubVector(v)
	TolAssertEqualPoint(t, NormalTol, p1, p)

	p = p1
	w := Vec3[float32](2, -1.5, 7.25)
	p.SetAddVector(w)
	assert.Equal(t, Pt3[float32](3, 0.5, 20.25), p)
	p.SetSubVector(w)
	assert.Equal(t, p1, p)
	p.SetMulScalar(2)
	assert.Equal(t, Pt3[float32](2, 4, 26), p)
	p.SetDivScalar(2)
	assert.True(t, p.IsEqual(p1))
	p.Set(0, 1, 2)
	assert.Equal(t, Pt3[float32](0, 1, 2), p)
}

func TestPointVectorClosure(t *testing.T) {
	for _, p := range testPoints {
		for _, v := range testVectors {
			TolAssertEqualVector(t, NormalTol, v, p.AddVector(v).Sub(p))
			TolAssertEqualVector(t, NormalTol, v.Negate(), p.SubVector(v).Sub(p))
		}
		for _, q := range testPoints {
			assert.Equal(t, p.Sub(q).Negate(), q.Sub(p))
		}
	}
}

func TestDistance(t *testing.T) {
	p1 := Pt3[float32](1, 2, 3)
	p2 := Pt3[float32](4, 6, 3)
	assert.Equal(t, float32(5), Distance(p1, p2))
	assert.Equal(t, float32(25), DistanceSquared(p1, p2))
	assert.Equal(t, float32(5), p1.DistanceTo(p2))

	for _, p := range testPoints {
		for _, q := range testPoints {
			d := Distance(p, q)
			tolassert.EqualTol(t, d*d, DistanceSquared(p, q), 1e-5*max(1, d*d))
			assert.Equal(t, Distance(p, q), Distance(q, p))
		}
		assert.Equal(t, float32(0), Distance(p, p))
	}
}

func TestLerp(t *testing.T) {
	p0 := Pt3[float32](0, 0, 0)
	p1 := Pt3[float32](2, 4, -8)
	assert.Equal(t, p0, Lerp(0, p0, p1))
	assert.Equal(t, p1, Lerp(1, p0, p1))
	assert.Equal(t, Pt3[float32](1, 2, -4), Lerp(0.5, p0, p1))
}

func TestPoint3Conversions(t *testing.T) {
	p := Pt3[float32](1.5, -2.5, 3)
	assert.Equal(t, Pt3(1.5, -2.5, 3.0), ConvertPoint3[float64](p))
	assert.Equal(t, Pt3[int32](1, -2, 3), ConvertPoint3[int32](p))
	assert.Equal(t, Vec3[float32](1.5, -2.5, 3), Point3ToVector3[float32](p))
	assert.Equal(t, Vec3(1.5, -2.5, 3.0), Point3ToVector3[float64](p))
	assert.Equal(t, p, Vector3ToPoint3[float32](Point3ToVector3[float64](p)))
	assert.Equal(t, Pt2[float32](1.5, -2.5), Point2FromPoint3(p))
}

func TestPoint2(t *testing.T) {
	p1 := Pt2[float32](1, 2)
	p2 := Pt2[float32](4, -2)
	v := Vec2[float32](0.5, 0.25)

	var d Vector2f = p2.Sub(p1)
	assert.Equal(t, Vec2[float32](3, -4), d)
	assert.Equal(t, float32(5), Distance2(p1, p2))
	assert.Equal(t, float32(25), DistanceSquared2(p1, p2))

	assert.Equal(t, Pt2[float32](1.5, 2.25), p1.AddVector(v))
	assert.Equal(t, Pt2[float32](0.5, 1.75), p1.SubVector(v))
	assert.Equal(t, v, p1.AddVector(v).Sub(p1))
	assert.Equal(t, Pt2[float32](5, 0), p1.Add(p2))
	assert.Equal(t, Pt2[float32](2, 4), p1.MulScalar(2))
	assert.Equal(t, Pt2[float32](0.5, 1), p1.DivScalar(2))
	assert.Equal(t, "[1, 2]", p1.String())
	assert.Equal(t, float32(2), p1.Dim(Y))

	p := p1
	p.SetAddVector(v)
	p.SetSubVector(v)
	assert.Equal(t, p1, p)
	p.SetMulScalar(8)
	p.SetDivScalar(8)
	assert.True(t, p.IsEqual(p1))
	p.SetDim(X, 9)
	*p.DimPtr(Y) = 3
	assert.Equal(t, Pt2[float32](9, 3), p)
	p.Set(0, 0)
	assert.Equal(t, Point2f{}, p)
}
