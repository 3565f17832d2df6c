// Copyright (c) 2025, The Armature Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geometry implements the renderable shapes attached to an
// articulated model.  Each geometry is bound to exactly one placement
// source, either a static [model.Frame] or a dynamic [model.TransformInput],
// and produces [decor.Decoration] primitives on each render call.
package geometry

import (
	"fmt"
	"image/color"

	"cogentcore.org/core/math32"

	"github.com/armaturekit/armature/decor"
	"github.com/armaturekit/armature/model"
)

// Geometry is a shape attached to a model that produces render decorations.
type Geometry interface {
	model.Component

	// AsGeometryBase returns the [GeometryBase] for this geometry,
	// which provides attachment, placement, and the decoration pipeline.
	AsGeometryBase() *GeometryBase

	// BuildShapes returns the untransformed decorations for this shape,
	// with only the shape parameters and scale factors set.  Placement and
	// appearance are stamped on by [GeometryBase.GenerateDecorations].
	BuildShapes() []decor.Decoration
}

// GeometryBase provides the common functionality of all geometry variants:
// the placement binding, scale factors, appearance, and the decoration
// generation pipeline.
type GeometryBase struct {
	model.ComponentBase

	// Frame is the static frame this geometry is attached to.
	// Exactly one of Frame and TransformInput must be set once the model
	// is connected.
	Frame model.Frame

	// TransformInput supplies a dynamically computed transform each render
	// call, instead of a static frame attachment.  Geometry placed this way
	// floats with respect to ground rather than being fixed to a body.
	TransformInput model.TransformInput

	// ScaleFactors is the per-axis scale applied to the shape.
	ScaleFactors math32.Vector3

	// Appearance is the display attributes copied onto every decoration
	// this geometry produces.
	Appearance decor.Appearance
}

func (gb *GeometryBase) AsGeometryBase() *GeometryBase { return gb }

// Defaults sets unit scale factors and the default appearance.
func (gb *GeometryBase) Defaults() {
	gb.ScaleFactors = math32.Vec3(1, 1, 1)
	gb.Appearance.Defaults()
}

// SetFrame attaches this geometry to the given static frame.
func (gb *GeometryBase) SetFrame(fr model.Frame) {
	gb.Frame = fr
}

// SetTransformInput binds this geometry to a dynamic transform source.
func (gb *GeometryBase) SetTransformInput(in model.TransformInput) {
	gb.TransformInput = in
}

// SetScale sets the per-axis scale factors.
func (gb *GeometryBase) SetScale(x, y, z float32) {
	gb.ScaleFactors = math32.Vec3(x, y, z)
}

// SetColor sets the appearance color.
func (gb *GeometryBase) SetColor(clr color.RGBA) {
	gb.Appearance.Color = clr
}

// SetOpacity sets the appearance opacity, in [0, 1].
func (gb *GeometryBase) SetOpacity(op float32) {
	gb.Appearance.Opacity = op
}

// hasTransformInput reports whether a dynamic transform source is wired in.
func (gb *GeometryBase) hasTransformInput() bool {
	return gb.TransformInput != nil && gb.TransformInput.IsConnected()
}

// Connect validates the placement binding: a geometry must be attached to a
// frame or have its transform input set, but not both.
func (gb *GeometryBase) Connect(root *model.Model) error {
	attached := gb.Frame != nil
	hasInput := gb.hasTransformInput()
	if attached && hasInput {
		return fmt.Errorf("geometry: %q cannot be attached to a Frame and have its transform input set", gb.Name())
	}
	if !attached && !hasInput {
		return fmt.Errorf("geometry: %q must be attached to a Frame or have its transform input set", gb.Name())
	}
	return nil
}

// ResolvePlacement determines the current transform and owning body for
// this geometry.  A transform input is evaluated at the given state and
// anchors to ground; otherwise the frame's base frame must be a
// [model.PhysicalFrame], yielding its body and the frame's transform in it.
func (gb *GeometryBase) ResolvePlacement(st *model.State) (model.Transform, model.BodyIndex, error) {
	if gb.hasTransformInput() {
		return gb.TransformInput.Value(st), model.GroundIndex, nil
	}
	base := gb.Frame.FindBaseFrame()
	pf, ok := base.(model.PhysicalFrame)
	if !ok {
		return model.Transform{}, 0, fmt.Errorf("geometry: Frame for %q is not attached to a physical frame", gb.Name())
	}
	return gb.Frame.FindTransformInBaseFrame(), pf.BodyIndex(), nil
}

// GenerateDecorations produces this geometry's decorations for one render
// pass and appends them to out.  Frame-attached geometry participates only
// in the fixed pass, so a downstream renderer can cache it; transform-fed
// geometry participates only in non-fixed passes and is recomputed every
// tick.  Each decoration is stamped with the resolved body, transform, and
// its ordinal index, and the geometry's appearance.  The call is read-only
// with respect to the geometry.
func (gb *GeometryBase) GenerateDecorations(fixed bool, hints *Hints, st *model.State, out *[]decor.Decoration) error {
	hasInput := gb.hasTransformInput()
	if fixed && hasInput {
		return nil
	}
	if !fixed && !hasInput {
		return nil
	}
	decos := gb.This.(Geometry).BuildShapes()
	if len(decos) == 0 {
		return nil
	}
	xf, body, err := gb.ResolvePlacement(st)
	if err != nil {
		return err
	}
	for i, d := range decos {
		db := d.AsDecorationBase()
		db.Body = body
		db.Transform = xf
		db.IndexOnBody = i
		db.Appearance = gb.Appearance
		*out = append(*out, d)
	}
	return nil
}
