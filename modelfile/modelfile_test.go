// Copyright (c) 2025, The Armature Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package modelfile

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/armaturekit/armature/decor"
	"github.com/armaturekit/armature/geometry"
	"github.com/armaturekit/armature/model"
)

const pendulumYAML = `
name: pendulum
bodies:
  - name: rod
    mass: 1.0
frames:
  - name: bob
    parent: rod
    translation: [0, -0.5, 0]
geometry:
  - name: ball
    frame: bob
    shape: sphere
    radius: 0.08
    color: "#ff0000"
  - name: shaft
    frame: rod
    shape: cylinder
    radius: 0.02
    halfHeight: 0.25
    opacity: 0.5
`

func TestReadPendulum(t *testing.T) {
	m, err := Read([]byte(pendulumYAML), "")
	require.NoError(t, err)
	assert.Equal(t, "pendulum", m.Name())
	assert.Equal(t, 2, m.NumBodies)

	fr, err := m.FrameByName("bob")
	require.NoError(t, err)
	assert.Equal(t, math32.Vec3(0, -0.5, 0), fr.FindTransformInBaseFrame().Pos)

	var out []decor.Decoration
	require.NoError(t, geometry.Generate(m, true, &geometry.Hints{}, &model.State{}, &out))
	require.Len(t, out, 2)

	ball := out[0].(*decor.Sphere)
	assert.Equal(t, float32(0.08), ball.Radius)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, ball.Appearance.Color)
	assert.Equal(t, math32.Vec3(0, -0.5, 0), ball.Transform.Pos)

	shaft := out[1].(*decor.Cylinder)
	assert.Equal(t, float32(0.5), shaft.Appearance.Opacity)
	assert.Equal(t, model.BodyIndex(1), shaft.Body)
}

func TestReadFrameRotation(t *testing.T) {
	doc := `
bodies:
  - name: rod
frames:
  - name: tip
    parent: rod
    translation: [1, 0, 0]
  - name: bent
    parent: tip
    axis: [0, 0, 1]
    angle: 90
geometry:
  - name: marker
    frame: bent
    shape: frame
    displayRadius: 0.004
`
	m, err := Read([]byte(doc), "")
	require.NoError(t, err)
	fr, err := m.FrameByName("bent")
	require.NoError(t, err)
	xf := fr.FindTransformInBaseFrame()
	assert.InDelta(t, 1, xf.Pos.X, 1.0e-5)
	assert.False(t, xf.IsIdentity())
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"bad yaml", ":\n  - ["},
		{"unknown shape", "bodies: [{name: b}]\ngeometry: [{name: g, frame: b, shape: blob}]"},
		{"unknown frame", "geometry: [{name: g, frame: nope, shape: sphere}]"},
		{"unknown parent", "frames: [{name: f, parent: nope}]"},
		{"duplicate body", "bodies: [{name: b}, {name: b}]"},
		{"bad color", "bodies: [{name: b}]\ngeometry: [{name: g, frame: b, shape: sphere, color: nonsense}]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read([]byte(tt.doc), "")
			assert.Error(t, err)
		})
	}
}

func TestOpenResolvesMeshRelativeToModel(t *testing.T) {
	dir := t.TempDir()
	obj := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "skin.obj"), []byte(obj), 0666))
	doc := `
bodies:
  - name: torso
geometry:
  - name: skin
    frame: torso
    shape: mesh
    file: skin.obj
`
	path := filepath.Join(dir, "model.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0666))

	m, err := Open(path)
	require.NoError(t, err)

	var out []decor.Decoration
	require.NoError(t, geometry.Generate(m, true, &geometry.Hints{}, &model.State{}, &out))
	require.Len(t, out, 1)
	tm := out[0].(*decor.TriMesh)
	assert.Equal(t, 3, tm.Mesh.NumVertices())
}
