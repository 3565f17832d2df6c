// Copyright (c) 2025, The Armature Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// BodyIndex identifies a mobilized body within an assembled model.
// Indices are assigned by [Model.ConnectAll] in tree order, with the
// ground body always [GroundIndex].
type BodyIndex int

// GroundIndex is the body index of the universal ground body.
const GroundIndex BodyIndex = 0

// Frame is a named rigid reference pose attached, directly or through a
// chain of offsets, to a body in the model hierarchy.
type Frame interface {
	Component

	// FindBaseFrame follows frame-to-frame offsets and returns the frame
	// expressed directly in a body's local coordinates, with no further
	// intermediate indirection.
	FindBaseFrame() Frame

	// FindTransformInBaseFrame returns the transform of this frame
	// expressed in its base frame.
	FindTransformInBaseFrame() Transform
}

// PhysicalFrame is a [Frame] backed by a mobilized body.
type PhysicalFrame interface {
	Frame

	// BodyIndex returns the mobilized body index of the body carrying
	// this frame.  Only valid after [Model.ConnectAll].
	BodyIndex() BodyIndex
}

// Body is a rigid body in the model.  Its frame is its own base frame,
// and it carries a mobilized body index assigned at connect time.
type Body struct {
	ComponentBase

	// Mass is the body mass.  It does not affect decoration generation.
	Mass float32

	// Idx is the mobilized body index, assigned by [Model.ConnectAll].
	Idx BodyIndex
}

// NewBody returns a new body with the given name.
func NewBody(name string) *Body {
	bd := &Body{}
	bd.InitName(bd, name)
	return bd
}

func (bd *Body) FindBaseFrame() Frame { return bd.This.(Frame) }

func (bd *Body) FindTransformInBaseFrame() Transform { return Identity() }

func (bd *Body) BodyIndex() BodyIndex { return bd.Idx }

// OffsetFrame is a frame defined by a fixed transform offset relative to a
// parent frame, which may itself be an offset frame.
type OffsetFrame struct {
	ComponentBase

	// ParentFrame is the frame this one is offset from.
	ParentFrame Frame

	// Offset is the fixed transform of this frame in its parent frame.
	Offset Transform
}

// NewOffsetFrame returns a new offset frame with the given name, parent
// frame, and offset, added as a child of the parent frame.
func NewOffsetFrame(name string, parent Frame, offset Transform) *OffsetFrame {
	of := &OffsetFrame{ParentFrame: parent, Offset: offset}
	of.Offset.Defaults()
	of.InitName(of, name)
	if parent != nil {
		parent.AsComponentBase().AddChild(of)
	}
	return of
}

// SetTranslation sets the offset translation.
func (of *OffsetFrame) SetTranslation(x, y, z float32) *OffsetFrame {
	of.Offset.Pos = math32.Vec3(x, y, z)
	return of
}

// SetAxisRotation sets the offset rotation from an axis and angle in radians.
func (of *OffsetFrame) SetAxisRotation(axis math32.Vector3, angle float32) *OffsetFrame {
	of.Offset.Quat.SetFromAxisAngle(axis, angle)
	return of
}

func (of *OffsetFrame) Connect(root *Model) error {
	if of.ParentFrame == nil {
		return fmt.Errorf("model.OffsetFrame: %q has no parent frame", of.Name())
	}
	return nil
}

func (of *OffsetFrame) FindBaseFrame() Frame {
	return of.ParentFrame.FindBaseFrame()
}

func (of *OffsetFrame) FindTransformInBaseFrame() Transform {
	return of.ParentFrame.FindTransformInBaseFrame().Mul(of.Offset)
}
