// Copyright (c) 2025, The Armature Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package obj parses the Wavefront OBJ file format (*.obj) into a polygonal
// mesh.  Only vertex positions and faces are used; normals, texture
// coordinates, materials, and groups are skipped.  Basic format info:
// https://en.wikipedia.org/wiki/Wavefront_.obj_file
package obj

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cogentcore.org/core/math32"

	"github.com/armaturekit/armature/meshfile"
)

func init() {
	meshfile.Decoders[".obj"] = &Decoder{}
}

// Decoder parses Wavefront OBJ data.  An instance is registered to handle
// .obj files in the [meshfile.Decoders] list.
type Decoder struct {
	ms   *meshfile.Mesh
	line int
}

func (dec *Decoder) New() meshfile.Decoder {
	return &Decoder{ms: &meshfile.Mesh{}, line: 1}
}

func (dec *Decoder) Desc() string {
	return "Wavefront OBJ format"
}

func (dec *Decoder) Decode(r io.Reader) (*meshfile.Mesh, error) {
	bufin := bufio.NewReader(r)
	for {
		line, err := bufin.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if perr := dec.parseLine(strings.TrimSpace(line)); perr != nil {
			return nil, perr
		}
		if err == io.EOF {
			break
		}
		dec.line++
	}
	return dec.ms, nil
}

// parseLine parses one obj file line, dispatching to specific parsers.
func (dec *Decoder) parseLine(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	ltype := fields[0]
	if strings.HasPrefix(ltype, "#") {
		return nil
	}
	switch ltype {
	case "v":
		return dec.parseVertex(fields[1:])
	case "f":
		return dec.parseFace(fields[1:])
	}
	// normals, uvs, materials, objects, groups, smoothing: not needed
	return nil
}

// parseVertex parses a vertex position line:
// v <x> <y> <z>
func (dec *Decoder) parseVertex(fields []string) error {
	if len(fields) < 3 {
		return dec.formatError("less than 3 coordinates in 'v' line")
	}
	var v math32.Vector3
	for i, f := range fields[:3] {
		val, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return err
		}
		switch i {
		case 0:
			v.X = float32(val)
		case 1:
			v.Y = float32(val)
		case 2:
			v.Z = float32(val)
		}
	}
	dec.ms.AddVertex(v)
	return nil
}

// parseFace parses a face line, keeping only the vertex indices:
// f <v1>[/vt1][/vn1] <v2>[/vt2][/vn2] ...
func (dec *Decoder) parseFace(fields []string) error {
	if len(fields) < 3 {
		return dec.formatError("face line with less than 3 fields")
	}
	idxs := make([]int, len(fields))
	for pos, f := range fields {
		vfields := strings.Split(f, "/")
		if len(vfields) < 1 || vfields[0] == "" {
			return dec.formatError("face field with no vertex index")
		}
		val, err := strconv.ParseInt(vfields[0], 10, 32)
		if err != nil {
			return err
		}
		switch {
		case val > 0: // positive index is absolute
			idxs[pos] = int(val - 1)
		case val < 0: // negative index is relative to the last parsed vertex
			idxs[pos] = dec.ms.NumVertices() + int(val)
		default:
			return dec.formatError("face vertex index value equal to 0")
		}
		if idxs[pos] < 0 || idxs[pos] >= dec.ms.NumVertices() {
			return dec.formatError(fmt.Sprintf("face vertex index %d out of range", val))
		}
	}
	dec.ms.AddFace(idxs...)
	return nil
}

func (dec *Decoder) formatError(msg string) error {
	return errors.New("obj: " + msg + fmt.Sprintf(" [line %d]", dec.line))
}
