// Copyright (c) 2025, The Armature Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

// State is the simulation state passed through decoration generation.
// The decoration pipeline treats it as opaque: it is only handed to
// [TransformInput.Value] to evaluate dynamic transforms.
type State struct {

	// Time is the current simulation time in seconds.
	Time float32
}

// TransformInput supplies a dynamically computed rigid transform for each
// render call, used instead of a static frame attachment.
type TransformInput interface {
	// IsConnected reports whether a transform source is actually wired in.
	IsConnected() bool

	// Value evaluates the transform at the given simulation state.
	Value(st *State) Transform
}

// TransformFunc adapts a function to the [TransformInput] interface.
type TransformFunc func(st *State) Transform

func (tf TransformFunc) IsConnected() bool { return tf != nil }

func (tf TransformFunc) Value(st *State) Transform { return tf(st) }
