// Copyright (c) 2025, The Armature Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package decor defines the renderable primitives produced by decoration
// generation: shape descriptors stamped with a resolved placement and
// appearance, consumed by an external renderer.
package decor

import (
	"cogentcore.org/core/math32"

	"github.com/armaturekit/armature/meshfile"
	"github.com/armaturekit/armature/model"
)

// Decoration is a single renderable primitive: a shape descriptor plus the
// placement and appearance stamped onto it by the decoration pipeline.
// Decorations are ephemeral, produced fresh each render call.
type Decoration interface {
	// AsDecorationBase returns the [DecorationBase] for this decoration,
	// which holds the placement and appearance common to all shapes.
	AsDecorationBase() *DecorationBase
}

// DecorationBase holds the placement and appearance common to every
// decoration shape.
type DecorationBase struct {

	// Body is the mobilized body this decoration is placed on.
	Body model.BodyIndex

	// Transform places the decoration in the body's local frame.
	Transform model.Transform

	// IndexOnBody is the ordinal position of this decoration among those
	// appended for the same geometry, giving deterministic per-shape
	// addressing on a body carrying multiple shapes.
	IndexOnBody int

	// Scale is the per-axis scale factor applied to the shape.
	Scale math32.Vector3

	// Appearance is the display attributes for this decoration.
	Appearance Appearance
}

func (db *DecorationBase) AsDecorationBase() *DecorationBase { return db }

// Sphere is a sphere of a given radius.
type Sphere struct {
	DecorationBase
	Radius float32
}

// Cylinder is a cylinder with a given radius and half-height, centered at
// the origin with its axis along Y.
type Cylinder struct {
	DecorationBase
	Radius     float32
	HalfHeight float32
}

// Cone is a cone from an origin point along a unit direction.
type Cone struct {
	DecorationBase
	Origin     math32.Vector3
	Direction  math32.Vector3
	Height     float32
	BaseRadius float32
}

// Line is a line segment between two points.
type Line struct {
	DecorationBase
	Start math32.Vector3
	End   math32.Vector3
}

// Arrow is an arrow from Start to End with a given line thickness.
type Arrow struct {
	DecorationBase
	Start         math32.Vector3
	End           math32.Vector3
	LineThickness float32
}

// Ellipsoid is an ellipsoid with three radii.
type Ellipsoid struct {
	DecorationBase
	Radii math32.Vector3
}

// Box is a rectangular solid with three half-lengths.
type Box struct {
	DecorationBase
	HalfLengths math32.Vector3
}

// Axes is a coordinate triad glyph with a given axis length, drawn with
// lines of the given thickness.
type Axes struct {
	DecorationBase
	AxisLength    float32
	LineThickness float32
}

// TriMesh is an arbitrary polygonal mesh.  The mesh is shared with the
// producing geometry's cache and must not be modified by the renderer.
type TriMesh struct {
	DecorationBase
	Mesh *meshfile.Mesh
}
