// Copyright (c) 2020, The PBRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !nocheck

package geom

import (
	"math"
	"testing"

	"github.com/DveloperY0115/PBRT/base/check"
	"github.com/stretchr/testify/assert"
)

var nan32 = float32(math.NaN())

func TestNaNViolation(t *testing.T) {
	tests := map[string]func(){
		"Vec2":    func() { Vec2(nan32, 0) },
		"Vec3":    func() { Vec3(0, 0, nan32) },
		"Vec3d":   func() { Vec3(math.NaN(), 1, 2) },
		"Pt2":     func() { Pt2(1, nan32) },
		"Pt3":     func() { Pt3(1, nan32, 0) },
		"Set":     func() { var v Vector3f; v.Set(nan32, 0, 0) },
		"Scalar":  func() { Vector3Scalar(nan32) },
		"InfMul":  func() { Vec3(float32(math.Inf(1)), 0, 0).MulScalar(0) },
		"Convert": func() { ConvertPoint3[float32](Point3[float64]{X: math.NaN()}) },
	}
	for name, fn := range tests {
		assert.ErrorIs(t, check.Recover(fn), check.ErrNaN, name)
	}
}

func TestIndexViolation(t *testing.T) {
	v2 := Vec2[float32](1, 2)
	v3 := Vec3[float32](1, 2, 3)
	p2 := Pt2[float32](1, 2)
	p3 := Pt3[float32](1, 2, 3)
	tests := map[string]func(){
		"Vector2.Dim":    func() { v2.Dim(Z) },
		"Vector2.SetDim": func() { v2.SetDim(-1, 0) },
		"Vector3.Dim":    func() { v3.Dim(DimsN) },
		"Vector3.DimPtr": func() { v3.DimPtr(3) },
		"Point2.Dim":     func() { p2.Dim(Z) },
		"Point2.SetDim":  func() { p2.SetDim(5, 1) },
		"Point3.Dim":     func() { p3.Dim(-1) },
		"Point3.SetDim":  func() { p3.SetDim(DimsN, 1) },
		"Permute":        func() { Permute(v3, X, Y, 3) },
	}
	for name, fn := range tests {
		assert.ErrorIs(t, check.Recover(fn), check.ErrIndexRange, name)
	}
	assert.Equal(t, Vec2[float32](1, 2), v2)
	assert.Equal(t, Vec3[float32](1, 2, 3), v3)
}

func TestDivideByZeroViolation(t *testing.T) {
	v2 := Vec2[float32](1, 2)
	v3 := Vec3[float32](1, 2, 3)
	p2 := Pt2[float32](1, 2)
	p3 := Pt3[float32](1, 2, 3)
	tests := map[string]func(){
		"Vector2.DivScalar":    func() { v2.DivScalar(0) },
		"Vector2.SetDivScalar": func() { v2.SetDivScalar(0) },
		"Vector3.DivScalar":    func() { v3.DivScalar(0) },
		"Vector3.SetDivScalar": func() { v3.SetDivScalar(0) },
		"Vector3i.DivScalar":   func() { Vec3[int32](1, 2, 3).DivScalar(0) },
		"Point2.DivScalar":     func() { p2.DivScalar(0) },
		"Point2.SetDivScalar":  func() { p2.SetDivScalar(0) },
		"Point3.DivScalar":     func() { p3.DivScalar(0) },
		"Point3.SetDivScalar":  func() { p3.SetDivScalar(0) },
		"Normalize":            func() { Normalize(Vector3f{}) },
		"Normalize2":           func() { Normalize2(Vector2f{}) },
	}
	for name, fn := range tests {
		assert.ErrorIs(t, check.Recover(fn), check.ErrDivideByZero, name)
	}
	// the in-place forms fail before touching the value
	assert.Equal(t, Vec3[float32](1, 2, 3), v3)
	assert.Equal(t, Pt3[float32](1, 2, 3), p3)
}

func TestViolationPanics(t *testing.T) {
	assert.Panics(t, func() { Vec3(nan32, nan32, nan32) })
	assert.Panics(t, func() { Vec3[float32](1, 2, 3).Dim(Dims(3)) })
	assert.Panics(t, func() { Pt3[float32](1, 2, 3).DivScalar(0) })
	assert.NotPanics(t, func() { Vec3[float32](1, 2, 3).DivScalar(1e-30) })
}
