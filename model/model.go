// Copyright (c) 2025, The Armature Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"fmt"

	"cogentcore.org/core/base/ordmap"
)

// Model is the root component of an articulated model.  It owns the ground
// body and all other components as tree descendants, and drives the
// two-phase assembly lifecycle: [Model.ConnectAll] resolves references and
// assigns body indices, then [Model.FinalizeAll] performs one-time setup such
// as loading mesh files.  Both phases must complete before decorations are
// generated.
type Model struct {
	ComponentBase

	// FileName is the path of the file this model was loaded from, if any.
	// The directory of this file anchors relative geometry file searches.
	FileName string

	// Ground is the universal ground body, always [GroundIndex].
	Ground *Body

	// Frames is the registry of all frames in the model, keyed by name.
	// Populated during [Model.ConnectAll].
	Frames ordmap.Map[string, Frame]

	// NumBodies is the number of mobilized bodies, including ground.
	// Valid after [Model.ConnectAll].
	NumBodies int
}

// New returns a new model with the given name and a ground body.
func New(name string) *Model {
	m := &Model{}
	m.InitName(m, name)
	m.Ground = NewBody("ground")
	m.AddChild(m.Ground)
	return m
}

// AddBody adds the given body as a child of the model.
func (m *Model) AddBody(bd *Body) *Body {
	m.AddChild(bd)
	return bd
}

// FrameByName returns the named frame, or an error if not found.
// Only valid after [Model.ConnectAll].
func (m *Model) FrameByName(name string) (Frame, error) {
	fr, ok := m.Frames.ValueByKeyTry(name)
	if !ok {
		return nil, fmt.Errorf("model.FrameByName: frame %q not found in model %q", name, m.Name())
	}
	return fr, nil
}

// ConnectAll assembles the model: it assigns mobilized body indices in tree
// order (ground first), registers all frames by name, and calls Connect on
// every component.  The first structural error aborts assembly.
// It is named distinctly from the per-component [Component.Connect] hook,
// which *Model inherits as a no-op from [ComponentBase].
func (m *Model) ConnectAll() error {
	m.Frames.Reset()
	var comps []Component
	nbod := BodyIndex(0)
	WalkDown(m, func(c Component) bool {
		comps = append(comps, c)
		if bd, ok := c.(*Body); ok {
			bd.Idx = nbod
			nbod++
		}
		return true
	})
	m.NumBodies = int(nbod)
	for _, c := range comps {
		if fr, ok := c.(Frame); ok {
			nm := fr.AsComponentBase().Name()
			if _, has := m.Frames.ValueByKeyTry(nm); has {
				return fmt.Errorf("model.Connect: duplicate frame name %q in model %q", nm, m.Name())
			}
			m.Frames.Add(nm, fr)
		}
	}
	for _, c := range comps {
		if err := c.Connect(m); err != nil {
			return err
		}
	}
	return nil
}

// FinalizeAll calls Finalize on every component in tree order.  It must be
// called after [Model.ConnectAll] and before decorations are generated.
// The first error aborts; resource-level failures (e.g., a missing mesh
// file) are soft and do not produce errors here.
func (m *Model) FinalizeAll() error {
	var err error
	WalkDown(m, func(c Component) bool {
		if err != nil {
			return false
		}
		err = c.Finalize()
		return err == nil
	})
	return err
}

// Build runs [Model.ConnectAll] then [Model.FinalizeAll].
func (m *Model) Build() error {
	if err := m.ConnectAll(); err != nil {
		return err
	}
	return m.FinalizeAll()
}
