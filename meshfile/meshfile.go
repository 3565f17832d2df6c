// Copyright (c) 2025, The Armature Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package meshfile provides the polygonal mesh type for mesh-based
// decorations, and a registry of file-format decoders for loading meshes
// from disk.  Decoders for specific formats live in subpackages (obj, stl,
// vtp) and register themselves on import.
package meshfile

import "cogentcore.org/core/math32"

// Mesh is a polygonal mesh: a list of vertex positions and a list of faces,
// each face an ordered list of vertex indices.  Faces are not required to
// be triangles.
type Mesh struct {

	// Vertices is the vertex positions.
	Vertices []math32.Vector3

	// Faces is the list of faces, each an ordered list of indices into
	// Vertices.
	Faces [][]int
}

// NumVertices returns the number of vertices.
func (ms *Mesh) NumVertices() int { return len(ms.Vertices) }

// NumFaces returns the number of faces.
func (ms *Mesh) NumFaces() int { return len(ms.Faces) }

// AddVertex appends a vertex and returns its index.
func (ms *Mesh) AddVertex(v math32.Vector3) int {
	ms.Vertices = append(ms.Vertices, v)
	return len(ms.Vertices) - 1
}

// AddFace appends a face with the given vertex indices.
func (ms *Mesh) AddFace(idxs ...int) {
	ms.Faces = append(ms.Faces, idxs)
}
