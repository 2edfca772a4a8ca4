// Copyright (c) 2020, The PBRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build nocheck

package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDimOutOfRangeUnchecked(t *testing.T) {
	v3 := Vec3[float32](1, 2, 3)
	assert.NotPanics(t, func() { v3.SetDim(DimsN, 9) })
	assert.NotPanics(t, func() { *v3.DimPtr(-1) = 9 })
	assert.Equal(t, Vec3[float32](1, 2, 3), v3)
	assert.Equal(t, float32(0), v3.Dim(DimsN))

	v2 := Vec2[float32](1, 2)
	assert.NotPanics(t, func() { v2.SetDim(Z, 9) })
	assert.Equal(t, Vec2[float32](1, 2), v2)
	assert.Equal(t, float32(0), v2.Dim(Z))

	p3 := Pt3[float32](1, 2, 3)
	assert.NotPanics(t, func() { p3.SetDim(DimsN, 9) })
	assert.Equal(t, Pt3[float32](1, 2, 3), p3)

	p2 := Pt2[float32](1, 2)
	assert.NotPanics(t, func() { p2.SetDim(Z, 9) })
	assert.Equal(t, Pt2[float32](1, 2), p2)
	assert.Equal(t, float32(0), p2.Dim(Z))
}
