// Copyright (c) 2025, The Armature Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import "cogentcore.org/core/math32"

// Transform is a rigid spatial transform: a rotation specified as a
// quaternion, plus a translation.  The zero value has a nil (all-zero)
// quaternion; use [Identity] or [Transform.Defaults] to get a proper
// identity rotation.
type Transform struct {

	// Quat is the rotation component.
	Quat math32.Quat

	// Pos is the translation component.
	Pos math32.Vector3
}

// Identity returns the identity transform.
func Identity() Transform {
	t := Transform{}
	t.Quat.SetIdentity()
	return t
}

// Defaults sets the identity rotation if the quaternion is nil.
func (t *Transform) Defaults() {
	if t.Quat.IsNil() {
		t.Quat.SetIdentity()
	}
}

// Mul returns the composition of this transform followed by the given
// relative transform, i.e., rel expressed in t's parent coordinates.
// Quat.Mul is the Hamilton product this*other, so the parent rotation
// goes on the left.
func (t Transform) Mul(rel Transform) Transform {
	return Transform{
		Quat: t.Quat.Mul(rel.Quat),
		Pos:  rel.Pos.MulQuat(t.Quat).Add(t.Pos),
	}
}

// MulVector3 returns the given point, expressed in this transform's local
// coordinates, transformed into parent coordinates.
func (t Transform) MulVector3(v math32.Vector3) math32.Vector3 {
	return v.MulQuat(t.Quat).Add(t.Pos)
}

// IsIdentity reports whether this transform is exactly the identity.
func (t Transform) IsIdentity() bool {
	return t == Identity()
}
