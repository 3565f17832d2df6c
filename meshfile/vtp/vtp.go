// Copyright (c) 2025, The Armature Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vtp parses the VTK XML PolyData file format (*.vtp) into a
// polygonal mesh.  Only ascii-format data arrays are supported; appended or
// base64 binary data is an error.  Format info:
// https://docs.vtk.org/en/latest/design_documents/VTKFileFormats.html
package vtp

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cogentcore.org/core/math32"

	"github.com/armaturekit/armature/meshfile"
)

func init() {
	meshfile.Decoders[".vtp"] = &Decoder{}
}

// Decoder parses VTK XML PolyData.  An instance is registered to handle
// .vtp files in the [meshfile.Decoders] list.
type Decoder struct{}

func (dec *Decoder) New() meshfile.Decoder {
	return &Decoder{}
}

func (dec *Decoder) Desc() string {
	return "VTK XML PolyData format (ascii)"
}

type vtkFile struct {
	Type     string   `xml:"type,attr"`
	PolyData polyData `xml:"PolyData"`
}

type polyData struct {
	Piece piece `xml:"Piece"`
}

type piece struct {
	NumberOfPoints int       `xml:"NumberOfPoints,attr"`
	NumberOfPolys  int       `xml:"NumberOfPolys,attr"`
	Points         dataBlock `xml:"Points"`
	Polys          dataBlock `xml:"Polys"`
}

type dataBlock struct {
	Arrays []dataArray `xml:"DataArray"`
}

type dataArray struct {
	Name   string `xml:"Name,attr"`
	Format string `xml:"format,attr"`
	Data   string `xml:",chardata"`
}

func (dec *Decoder) Decode(r io.Reader) (*meshfile.Mesh, error) {
	var vf vtkFile
	if err := xml.NewDecoder(r).Decode(&vf); err != nil {
		return nil, fmt.Errorf("vtp: %w", err)
	}
	if vf.Type != "PolyData" {
		return nil, fmt.Errorf("vtp: VTKFile type is %q, not PolyData", vf.Type)
	}
	pc := vf.PolyData.Piece

	pts, err := pc.Points.array("")
	if err != nil {
		return nil, err
	}
	coords, err := parseFloats(pts)
	if err != nil {
		return nil, err
	}
	if len(coords) != 3*pc.NumberOfPoints {
		return nil, fmt.Errorf("vtp: %d point coordinates for %d declared points", len(coords), pc.NumberOfPoints)
	}

	conn, err := pc.Polys.intArray("connectivity")
	if err != nil {
		return nil, err
	}
	offs, err := pc.Polys.intArray("offsets")
	if err != nil {
		return nil, err
	}
	if len(offs) != pc.NumberOfPolys {
		return nil, fmt.Errorf("vtp: %d offsets for %d declared polys", len(offs), pc.NumberOfPolys)
	}

	ms := &meshfile.Mesh{}
	for i := 0; i < pc.NumberOfPoints; i++ {
		ms.AddVertex(math32.Vec3(coords[3*i], coords[3*i+1], coords[3*i+2]))
	}
	start := 0
	for _, end := range offs {
		if end < start || end > len(conn) {
			return nil, fmt.Errorf("vtp: poly offset %d out of range", end)
		}
		face := make([]int, 0, end-start)
		for _, vi := range conn[start:end] {
			if vi < 0 || vi >= pc.NumberOfPoints {
				return nil, fmt.Errorf("vtp: connectivity index %d out of range", vi)
			}
			face = append(face, vi)
		}
		ms.AddFace(face...)
		start = end
	}
	return ms, nil
}

// array returns the ascii text of the data array with the given Name
// (or the first array if name is empty).
func (db *dataBlock) array(name string) (string, error) {
	for _, da := range db.Arrays {
		if name != "" && da.Name != name {
			continue
		}
		if da.Format != "" && da.Format != "ascii" {
			return "", fmt.Errorf("vtp: DataArray format %q not supported; only ascii", da.Format)
		}
		return da.Data, nil
	}
	if name == "" {
		return "", errors.New("vtp: missing DataArray")
	}
	return "", fmt.Errorf("vtp: missing DataArray %q", name)
}

func (db *dataBlock) intArray(name string) ([]int, error) {
	txt, err := db.array(name)
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(txt)
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("vtp: bad integer %q in %s: %w", f, name, err)
		}
		out[i] = v
	}
	return out, nil
}

func parseFloats(txt string) ([]float32, error) {
	fields := strings.Fields(txt)
	out := make([]float32, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return nil, fmt.Errorf("vtp: bad coordinate %q: %w", f, err)
		}
		out[i] = float32(v)
	}
	return out, nil
}
