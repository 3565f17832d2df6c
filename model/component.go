// Copyright (c) 2025, The Armature Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package model provides the articulated model tree: components, bodies,
// frames, rigid transforms, and the two-phase Connect / Finalize lifecycle
// that assembles a model before any rendering or simulation takes place.
package model

// Component is a named element of the model tree.  All concrete model
// elements (bodies, frames, attached geometry) embed [ComponentBase]
// and are owned as descendants of a [Model] root.
type Component interface {
	// AsComponentBase returns the [ComponentBase] for this component,
	// which provides the core tree functionality.
	AsComponentBase() *ComponentBase

	// Connect resolves references to other components against the given
	// root model.  It is called once per component during [Model.ConnectAll],
	// after the tree structure is in place.  A returned error indicates a
	// structurally malformed model and aborts assembly.
	Connect(root *Model) error

	// Finalize performs one-time setup that depends on declared parameters,
	// such as loading external resources.  It is called once per component
	// during [Model.FinalizeAll], after Connect has succeeded on all components.
	Finalize() error
}

// ComponentBase implements the [Component] interface and provides parent,
// children, and naming.  It must be initialized with [ComponentBase.InitName]
// so that This points to the concrete outer type.
type ComponentBase struct {

	// Nm is the name of this component, used in diagnostics and for
	// frame lookup by name.
	Nm string

	// This is the component as its true underlying type.
	This Component

	// Par is the parent of this component; nil for the root.
	Par Component

	// Kids is the list of children of this component.
	Kids []Component
}

func (cb *ComponentBase) AsComponentBase() *ComponentBase { return cb }

func (cb *ComponentBase) Connect(root *Model) error { return nil }

func (cb *ComponentBase) Finalize() error { return nil }

// InitName initializes this component with its concrete type and name.
func (cb *ComponentBase) InitName(c Component, name string) {
	cb.This = c
	cb.Nm = name
}

// Name returns the name of this component.
func (cb *ComponentBase) Name() string { return cb.Nm }

// HasParent reports whether this component has a parent.
func (cb *ComponentBase) HasParent() bool { return cb.Par != nil }

// Parent returns the parent component, or nil for the root.
func (cb *ComponentBase) Parent() Component { return cb.Par }

// AddChild adds the given component as a child of this one, setting its
// parent accordingly.
func (cb *ComponentBase) AddChild(kid Component) {
	kid.AsComponentBase().Par = cb.This
	cb.Kids = append(cb.Kids, kid)
}

// Path returns the slash-separated path from the root to this component,
// used in diagnostics.
func (cb *ComponentBase) Path() string {
	if cb.Par == nil {
		return "/" + cb.Nm
	}
	return cb.Par.AsComponentBase().Path() + "/" + cb.Nm
}

// WalkDown calls fun on the given component and then its children,
// depth-first in child order.  If fun returns false, the walk does not
// descend into that component's children.
func WalkDown(c Component, fun func(c Component) bool) {
	if !fun(c) {
		return
	}
	for _, kid := range c.AsComponentBase().Kids {
		WalkDown(kid, fun)
	}
}

// RootModel walks up the parent chain from the given component and returns
// the first [Model] found, or nil if the component is not part of a model.
// The walk terminates at the first component with no parent.
func RootModel(c Component) *Model {
	for p := c; p != nil; p = p.AsComponentBase().Par {
		if m, ok := p.(*Model); ok {
			return m
		}
	}
	return nil
}
