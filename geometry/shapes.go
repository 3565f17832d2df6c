// Copyright (c) 2025, The Armature Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"cogentcore.org/core/math32"

	"github.com/armaturekit/armature/decor"
)

// ArrowLineThickness is the fixed line thickness used for arrow geometry.
const ArrowLineThickness = 0.05

// AxesLength is the fixed axis length of the coordinate triad drawn for
// frame geometry; use the scale factors to resize it.
const AxesLength = 1

// Shape parameters are passed to the builders unchecked: negative or zero
// values are not rejected here, matching the renderer-side handling.

// Sphere is a spherical geometry with a radius.
type Sphere struct {
	GeometryBase

	// Radius is the sphere radius.
	Radius float32
}

// NewSphere returns a new sphere geometry with the given name and radius.
func NewSphere(name string, radius float32) *Sphere {
	sp := &Sphere{Radius: radius}
	sp.InitName(sp, name)
	sp.Defaults()
	return sp
}

func (sp *Sphere) BuildShapes() []decor.Decoration {
	d := &decor.Sphere{Radius: sp.Radius}
	d.Scale = sp.ScaleFactors
	return []decor.Decoration{d}
}

// Cylinder is a cylinder geometry with a radius and half-height.
type Cylinder struct {
	GeometryBase

	// Radius is the cylinder radius.
	Radius float32

	// HalfHeight is half the cylinder height along its axis.
	HalfHeight float32
}

// NewCylinder returns a new cylinder geometry with the given name, radius,
// and half-height.
func NewCylinder(name string, radius, halfHeight float32) *Cylinder {
	cy := &Cylinder{Radius: radius, HalfHeight: halfHeight}
	cy.InitName(cy, name)
	cy.Defaults()
	return cy
}

func (cy *Cylinder) BuildShapes() []decor.Decoration {
	d := &decor.Cylinder{Radius: cy.Radius, HalfHeight: cy.HalfHeight}
	d.Scale = cy.ScaleFactors
	return []decor.Decoration{d}
}

// Cone is a cone geometry from an origin point along a direction.
type Cone struct {
	GeometryBase

	// Origin is the cone origin offset.
	Origin math32.Vector3

	// Direction is the cone direction; normalized when building.
	Direction math32.Vector3

	// Height is the cone height along Direction.
	Height float32

	// BaseRadius is the radius of the cone base.
	BaseRadius float32
}

// NewCone returns a new cone geometry with the given name and parameters.
func NewCone(name string, origin, dir math32.Vector3, height, baseRadius float32) *Cone {
	cn := &Cone{Origin: origin, Direction: dir, Height: height, BaseRadius: baseRadius}
	cn.InitName(cn, name)
	cn.Defaults()
	return cn
}

func (cn *Cone) BuildShapes() []decor.Decoration {
	d := &decor.Cone{Origin: cn.Origin, Direction: cn.Direction.Normal(), Height: cn.Height, BaseRadius: cn.BaseRadius}
	d.Scale = cn.ScaleFactors
	return []decor.Decoration{d}
}

// Line is a line segment geometry between two points.
type Line struct {
	GeometryBase

	// Start is the start point.
	Start math32.Vector3

	// End is the end point.
	End math32.Vector3
}

// NewLine returns a new line geometry with the given name and endpoints.
func NewLine(name string, start, end math32.Vector3) *Line {
	ln := &Line{Start: start, End: end}
	ln.InitName(ln, name)
	ln.Defaults()
	return ln
}

func (ln *Line) BuildShapes() []decor.Decoration {
	d := &decor.Line{Start: ln.Start, End: ln.End}
	d.Scale = ln.ScaleFactors
	return []decor.Decoration{d}
}

// Arrow is an arrow geometry from the origin along a direction.
type Arrow struct {
	GeometryBase

	// Length is the arrow length.
	Length float32

	// Direction is the arrow direction.
	Direction math32.Vector3
}

// NewArrow returns a new arrow geometry with the given name, length, and
// direction.
func NewArrow(name string, length float32, dir math32.Vector3) *Arrow {
	ar := &Arrow{Length: length, Direction: dir}
	ar.InitName(ar, name)
	ar.Defaults()
	return ar
}

func (ar *Arrow) BuildShapes() []decor.Decoration {
	end := ar.Direction.MulScalar(ar.Length)
	d := &decor.Arrow{End: end, LineThickness: ArrowLineThickness}
	d.Scale = ar.ScaleFactors
	return []decor.Decoration{d}
}

// Ellipsoid is an ellipsoid geometry with three radii.
type Ellipsoid struct {
	GeometryBase

	// Radii is the per-axis radii.
	Radii math32.Vector3
}

// NewEllipsoid returns a new ellipsoid geometry with the given name and radii.
func NewEllipsoid(name string, radii math32.Vector3) *Ellipsoid {
	el := &Ellipsoid{Radii: radii}
	el.InitName(el, name)
	el.Defaults()
	return el
}

func (el *Ellipsoid) BuildShapes() []decor.Decoration {
	d := &decor.Ellipsoid{Radii: el.Radii}
	d.Scale = el.ScaleFactors
	return []decor.Decoration{d}
}

// Brick is a rectangular solid geometry with three half-lengths.
type Brick struct {
	GeometryBase

	// HalfLengths is the per-axis half-lengths.
	HalfLengths math32.Vector3
}

// NewBrick returns a new brick geometry with the given name and half-lengths.
func NewBrick(name string, halfLengths math32.Vector3) *Brick {
	br := &Brick{HalfLengths: halfLengths}
	br.InitName(br, name)
	br.Defaults()
	return br
}

func (br *Brick) BuildShapes() []decor.Decoration {
	d := &decor.Box{HalfLengths: br.HalfLengths}
	d.Scale = br.ScaleFactors
	return []decor.Decoration{d}
}

// FrameGeometry draws a coordinate triad glyph marking a frame's pose.
type FrameGeometry struct {
	GeometryBase

	// DisplayRadius is drawn as the line thickness of the triad.
	DisplayRadius float32
}

// NewFrameGeometry returns a new frame glyph geometry with the given name
// and display radius.
func NewFrameGeometry(name string, displayRadius float32) *FrameGeometry {
	fg := &FrameGeometry{DisplayRadius: displayRadius}
	fg.InitName(fg, name)
	fg.Defaults()
	return fg
}

func (fg *FrameGeometry) BuildShapes() []decor.Decoration {
	d := &decor.Axes{AxisLength: AxesLength, LineThickness: fg.DisplayRadius}
	d.Scale = fg.ScaleFactors
	return []decor.Decoration{d}
}
