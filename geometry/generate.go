// Copyright (c) 2025, The Armature Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"github.com/armaturekit/armature/decor"
	"github.com/armaturekit/armature/model"
)

// Hints carries display preferences passed through decoration generation.
// Geometry itself does not interpret them; they are forwarded for renderers
// and higher-level generators.
type Hints struct {

	// ShowFrames requests a coordinate triad at every frame.
	ShowFrames bool

	// ShowWireframe requests wireframe surface representation.
	ShowWireframe bool
}

// Generate walks the model tree and generates decorations for every
// geometry in it, appending to out.  The model must be connected and
// finalized.  The first structural error aborts the walk.
func Generate(m *model.Model, fixed bool, hints *Hints, st *model.State, out *[]decor.Decoration) error {
	var err error
	model.WalkDown(m, func(c model.Component) bool {
		g, ok := c.(Geometry)
		if !ok {
			return true
		}
		err = g.AsGeometryBase().GenerateDecorations(fixed, hints, st, out)
		return err == nil
	})
	return err
}
