// Copyright (c) 2025, The Armature Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decor

import "image/color"

// Representation specifies how a decoration's surface is drawn.
type Representation int32

const (
	// DrawDefault defers to the renderer's default representation.
	DrawDefault Representation = iota

	// DrawPoints draws only the vertices.
	DrawPoints

	// DrawWireframe draws the edges as lines.
	DrawWireframe

	// DrawSurface draws filled, shaded surfaces.
	DrawSurface
)

func (r Representation) String() string {
	switch r {
	case DrawPoints:
		return "points"
	case DrawWireframe:
		return "wireframe"
	case DrawSurface:
		return "surface"
	default:
		return "default"
	}
}

// Appearance is the display attributes applied to every decoration a
// geometry produces.  It is pass-through: the pipeline copies it onto each
// decoration without interpreting it.
type Appearance struct {

	// Visible is whether the decoration is displayed at all.
	Visible bool

	// Color is the surface color.
	Color color.RGBA

	// Opacity is the surface opacity in [0, 1].
	Opacity float32

	// Representation is how the surface is drawn.
	Representation Representation
}

// Defaults sets a visible, opaque, neutral gray appearance.
func (ap *Appearance) Defaults() {
	ap.Visible = true
	ap.Color = color.RGBA{179, 179, 179, 255}
	ap.Opacity = 1
	ap.Representation = DrawDefault
}
