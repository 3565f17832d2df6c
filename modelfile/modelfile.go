// Copyright (c) 2025, The Armature Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package modelfile loads armature models from YAML files: bodies, offset
// frames, and attached geometry with shape parameters and appearance.
// The loaded model is fully built (connected and finalized), so mesh
// geometry resolves its files relative to the model file's directory.
package modelfile

import (
	"fmt"
	"os"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"gopkg.in/yaml.v3"

	"github.com/armaturekit/armature/geometry"
	"github.com/armaturekit/armature/model"
)

// modelDoc is the YAML document structure for a model file.
type modelDoc struct {
	Name     string     `yaml:"name"`
	Bodies   []bodyDoc  `yaml:"bodies"`
	Frames   []frameDoc `yaml:"frames"`
	Geometry []geomDoc  `yaml:"geometry"`
}

type bodyDoc struct {
	Name string  `yaml:"name"`
	Mass float32 `yaml:"mass"`
}

// frameDoc declares an offset frame: a translation and an axis-angle
// rotation (degrees) relative to a previously declared frame or body.
type frameDoc struct {
	Name        string     `yaml:"name"`
	Parent      string     `yaml:"parent"`
	Translation [3]float32 `yaml:"translation"`
	Axis        [3]float32 `yaml:"axis"`
	Angle       float32    `yaml:"angle"`
}

type geomDoc struct {
	Name  string `yaml:"name"`
	Frame string `yaml:"frame"`
	Shape string `yaml:"shape"`

	Radius        float32    `yaml:"radius"`
	HalfHeight    float32    `yaml:"halfHeight"`
	Origin        [3]float32 `yaml:"origin"`
	Direction     [3]float32 `yaml:"direction"`
	Height        float32    `yaml:"height"`
	BaseRadius    float32    `yaml:"baseRadius"`
	Start         [3]float32 `yaml:"start"`
	End           [3]float32 `yaml:"end"`
	Length        float32    `yaml:"length"`
	Radii         [3]float32 `yaml:"radii"`
	HalfLengths   [3]float32 `yaml:"halfLengths"`
	DisplayRadius float32    `yaml:"displayRadius"`
	File          string     `yaml:"file"`

	Scale   *[3]float32 `yaml:"scale"`
	Color   string      `yaml:"color"`
	Opacity *float32    `yaml:"opacity"`
}

// Open loads, parses, and builds a model from the given YAML file.
func Open(path string) (*model.Model, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Read(b, path)
}

// Read parses and builds a model from YAML data.  fileName records where
// the data came from and anchors relative geometry file searches; it may
// be empty.
func Read(b []byte, fileName string) (*model.Model, error) {
	var doc modelDoc
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("modelfile.Read: %w", err)
	}
	if doc.Name == "" {
		doc.Name = "model"
	}
	m := model.New(doc.Name)
	m.FileName = fileName

	// frames must be resolvable by name before Connect runs,
	// so track them while building.
	frames := map[string]model.Frame{"ground": m.Ground}
	for _, bd := range doc.Bodies {
		if _, has := frames[bd.Name]; has {
			return nil, fmt.Errorf("modelfile.Read: duplicate frame name %q", bd.Name)
		}
		body := model.NewBody(bd.Name)
		body.Mass = bd.Mass
		m.AddBody(body)
		frames[bd.Name] = body
	}
	for _, fd := range doc.Frames {
		par, has := frames[fd.Parent]
		if !has {
			return nil, fmt.Errorf("modelfile.Read: frame %q: parent %q not declared", fd.Name, fd.Parent)
		}
		if _, has := frames[fd.Name]; has {
			return nil, fmt.Errorf("modelfile.Read: duplicate frame name %q", fd.Name)
		}
		xf := model.Identity()
		xf.Pos = vec3(fd.Translation)
		if fd.Axis != [3]float32{} {
			xf.Quat.SetFromAxisAngle(vec3(fd.Axis).Normal(), math32.DegToRad(fd.Angle))
		}
		frames[fd.Name] = model.NewOffsetFrame(fd.Name, par, xf)
	}

	for _, gd := range doc.Geometry {
		g, err := buildGeometry(&gd)
		if err != nil {
			return nil, err
		}
		gb := g.AsGeometryBase()
		fr, has := frames[gd.Frame]
		if !has {
			return nil, fmt.Errorf("modelfile.Read: geometry %q: frame %q not declared", gd.Name, gd.Frame)
		}
		gb.SetFrame(fr)
		fr.AsComponentBase().AddChild(g)
		if gd.Scale != nil {
			gb.SetScale(gd.Scale[0], gd.Scale[1], gd.Scale[2])
		}
		if gd.Color != "" {
			clr, err := colors.FromString(gd.Color)
			if err != nil {
				return nil, fmt.Errorf("modelfile.Read: geometry %q: %w", gd.Name, err)
			}
			gb.SetColor(clr)
		}
		if gd.Opacity != nil {
			gb.SetOpacity(*gd.Opacity)
		}
	}

	if err := m.Build(); err != nil {
		return nil, err
	}
	return m, nil
}

func buildGeometry(gd *geomDoc) (geometry.Geometry, error) {
	switch gd.Shape {
	case "sphere":
		return geometry.NewSphere(gd.Name, gd.Radius), nil
	case "cylinder":
		return geometry.NewCylinder(gd.Name, gd.Radius, gd.HalfHeight), nil
	case "cone":
		return geometry.NewCone(gd.Name, vec3(gd.Origin), vec3(gd.Direction), gd.Height, gd.BaseRadius), nil
	case "line":
		return geometry.NewLine(gd.Name, vec3(gd.Start), vec3(gd.End)), nil
	case "arrow":
		return geometry.NewArrow(gd.Name, gd.Length, vec3(gd.Direction)), nil
	case "ellipsoid":
		return geometry.NewEllipsoid(gd.Name, vec3(gd.Radii)), nil
	case "brick":
		return geometry.NewBrick(gd.Name, vec3(gd.HalfLengths)), nil
	case "frame":
		return geometry.NewFrameGeometry(gd.Name, gd.DisplayRadius), nil
	case "mesh":
		return geometry.NewMesh(gd.Name, gd.File), nil
	default:
		return nil, fmt.Errorf("modelfile: geometry %q: unknown shape %q", gd.Name, gd.Shape)
	}
}

func vec3(v [3]float32) math32.Vector3 {
	return math32.Vec3(v[0], v[1], v[2])
}
