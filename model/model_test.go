// Copyright (c) 2025, The Armature Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodyIndexAssignment(t *testing.T) {
	m := New("test")
	b1 := m.AddBody(NewBody("thigh"))
	b2 := m.AddBody(NewBody("shank"))
	require.NoError(t, m.ConnectAll())

	assert.Equal(t, GroundIndex, m.Ground.BodyIndex())
	assert.Equal(t, BodyIndex(1), b1.BodyIndex())
	assert.Equal(t, BodyIndex(2), b2.BodyIndex())
	assert.Equal(t, 3, m.NumBodies)
}

func TestBuild(t *testing.T) {
	m := New("test")
	bd := m.AddBody(NewBody("thigh"))
	NewOffsetFrame("knee", bd, Transform{})
	require.NoError(t, m.Build())
	assert.Equal(t, 2, m.NumBodies)
}

func TestFrameRegistry(t *testing.T) {
	m := New("test")
	bd := m.AddBody(NewBody("thigh"))
	NewOffsetFrame("knee", bd, Transform{})
	require.NoError(t, m.ConnectAll())

	fr, err := m.FrameByName("knee")
	require.NoError(t, err)
	assert.Equal(t, "knee", fr.AsComponentBase().Name())

	_, err = m.FrameByName("elbow")
	assert.Error(t, err)
}

func TestConnectDuplicateFrameName(t *testing.T) {
	m := New("test")
	m.AddBody(NewBody("thigh"))
	m.AddBody(NewBody("thigh"))
	err := m.ConnectAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "thigh")
}

func TestOffsetFrameBaseResolution(t *testing.T) {
	m := New("test")
	bd := m.AddBody(NewBody("thigh"))
	f1 := NewOffsetFrame("upper", bd, Transform{})
	f1.SetTranslation(0, 1, 0)
	f2 := NewOffsetFrame("lower", f1, Transform{})
	f2.SetTranslation(0, 1, 0)
	require.NoError(t, m.ConnectAll())

	assert.Equal(t, Frame(bd), f2.FindBaseFrame())
	assertVec3(t, math32.Vec3(0, 2, 0), f2.FindTransformInBaseFrame().Pos)
}

func TestOffsetFrameRotationChain(t *testing.T) {
	m := New("test")
	bd := m.AddBody(NewBody("thigh"))
	f1 := NewOffsetFrame("bent", bd, Transform{})
	f1.SetAxisRotation(math32.Vec3(0, 0, 1), math32.DegToRad(90))
	f2 := NewOffsetFrame("tip", f1, Transform{})
	f2.SetTranslation(1, 0, 0)
	require.NoError(t, m.ConnectAll())

	// the x offset of tip is rotated onto y by the bent frame
	xf := f2.FindTransformInBaseFrame()
	assertVec3(t, math32.Vec3(0, 1, 0), xf.Pos)
}

func TestOffsetFrameChainedRotations(t *testing.T) {
	m := New("test")
	bd := m.AddBody(NewBody("thigh"))
	f1 := NewOffsetFrame("twist", bd, Transform{})
	f1.SetAxisRotation(math32.Vec3(0, 0, 1), math32.DegToRad(90))
	f2 := NewOffsetFrame("bend", f1, Transform{})
	f2.SetAxisRotation(math32.Vec3(1, 0, 0), math32.DegToRad(90))
	require.NoError(t, m.ConnectAll())

	// the rotations do not commute: applying bend then twist in
	// sequence must agree with the composed transform
	xf := f2.FindTransformInBaseFrame()
	v := math32.Vec3(0, 0, 1)
	seq := f1.Offset.MulVector3(f2.Offset.MulVector3(v))
	assertVec3(t, seq, xf.MulVector3(v))
	assertVec3(t, math32.Vec3(1, 0, 0), xf.MulVector3(v))
}

func TestOffsetFrameNoParent(t *testing.T) {
	m := New("test")
	of := &OffsetFrame{}
	of.InitName(of, "floating")
	m.AddChild(of)
	err := m.ConnectAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "floating")
}

func TestRootModel(t *testing.T) {
	m := New("test")
	bd := m.AddBody(NewBody("thigh"))
	fr := NewOffsetFrame("knee", bd, Transform{})
	assert.Equal(t, m, RootModel(fr))
	assert.Equal(t, m, RootModel(m))

	orphan := NewBody("orphan")
	assert.Nil(t, RootModel(orphan))
}

func TestWalkDownOrder(t *testing.T) {
	m := New("test")
	bd := m.AddBody(NewBody("thigh"))
	NewOffsetFrame("knee", bd, Transform{})
	var names []string
	WalkDown(m, func(c Component) bool {
		names = append(names, c.AsComponentBase().Name())
		return true
	})
	assert.Equal(t, []string{"test", "ground", "thigh", "knee"}, names)
}

func TestTransformFunc(t *testing.T) {
	var tf TransformFunc
	assert.False(t, tf.IsConnected())

	tf = func(st *State) Transform {
		xf := Identity()
		xf.Pos = math32.Vec3(st.Time, 0, 0)
		return xf
	}
	assert.True(t, tf.IsConnected())
	assertVec3(t, math32.Vec3(2, 0, 0), tf.Value(&State{Time: 2}).Pos)
}
