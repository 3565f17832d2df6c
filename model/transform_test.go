// Copyright (c) 2025, The Armature Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

const tol = 1.0e-5

func assertVec3(t *testing.T, want, got math32.Vector3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol)
	assert.InDelta(t, want.Y, got.Y, tol)
	assert.InDelta(t, want.Z, got.Z, tol)
}

func TestTransformIdentity(t *testing.T) {
	id := Identity()
	assert.True(t, id.IsIdentity())

	xf := Transform{Pos: math32.Vec3(1, 2, 3)}
	xf.Defaults()
	assert.False(t, xf.IsIdentity())
	assert.Equal(t, id, id.Mul(Identity()))
	assert.Equal(t, xf.Pos, id.Mul(xf).Pos)
}

func TestTransformMul(t *testing.T) {
	par := Identity()
	par.Quat.SetFromAxisAngle(math32.Vec3(0, 0, 1), math32.DegToRad(90))
	par.Pos = math32.Vec3(1, 0, 0)

	rel := Identity()
	rel.Pos = math32.Vec3(1, 0, 0)

	// rel's x offset rotates onto y, then par translates along x
	comp := par.Mul(rel)
	assertVec3(t, math32.Vec3(1, 1, 0), comp.Pos)

	// composed rotation takes x onto y as well
	assertVec3(t, math32.Vec3(1, 2, 0), comp.MulVector3(math32.Vec3(1, 0, 0)))
}

func TestTransformMulNonCommuting(t *testing.T) {
	par := Identity()
	par.Quat.SetFromAxisAngle(math32.Vec3(0, 0, 1), math32.DegToRad(90))

	rel := Identity()
	rel.Quat.SetFromAxisAngle(math32.Vec3(1, 0, 0), math32.DegToRad(90))

	// composing must agree with applying rel then par in sequence
	comp := par.Mul(rel)
	for _, v := range []math32.Vector3{
		math32.Vec3(0, 0, 1),
		math32.Vec3(0, 1, 0),
		math32.Vec3(1, 2, 3),
	} {
		assertVec3(t, par.MulVector3(rel.MulVector3(v)), comp.MulVector3(v))
	}

	// z maps to -y under the x rotation, then -y maps to x under z
	assertVec3(t, math32.Vec3(1, 0, 0), comp.MulVector3(math32.Vec3(0, 0, 1)))
}

func TestTransformMulVector3(t *testing.T) {
	xf := Identity()
	xf.Pos = math32.Vec3(0, 1, 0)
	assertVec3(t, math32.Vec3(2, 1, 0), xf.MulVector3(math32.Vec3(2, 0, 0)))

	xf.Quat.SetFromAxisAngle(math32.Vec3(0, 1, 0), math32.DegToRad(180))
	assertVec3(t, math32.Vec3(-2, 1, 0), xf.MulVector3(math32.Vec3(2, 0, 0)))
}
