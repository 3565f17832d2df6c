// Copyright (c) 2025, The Armature Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stl parses the STL stereolithography file format (*.stl), in both
// its ascii ("solid ... facet ...") and binary (80-byte header + triangle
// records) encodings.  All faces are triangles.
package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"cogentcore.org/core/math32"

	"github.com/armaturekit/armature/meshfile"
)

func init() {
	meshfile.Decoders[".stl"] = &Decoder{}
}

// Decoder parses STL data.  An instance is registered to handle .stl files
// in the [meshfile.Decoders] list.
type Decoder struct{}

func (dec *Decoder) New() meshfile.Decoder {
	return &Decoder{}
}

func (dec *Decoder) Desc() string {
	return "STL stereolithography format (ascii or binary)"
}

func (dec *Decoder) Decode(r io.Reader) (*meshfile.Mesh, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if isASCII(b) {
		return decodeASCII(b)
	}
	return decodeBinary(b)
}

// isASCII distinguishes the two encodings.  A binary file may also begin
// with "solid", so require an actual facet keyword in the body.
func isASCII(b []byte) bool {
	if !bytes.HasPrefix(bytes.TrimLeft(b, " \t\r\n"), []byte("solid")) {
		return false
	}
	head := b
	if len(head) > 512 {
		head = head[:512]
	}
	return bytes.Contains(head, []byte("facet"))
}

func decodeASCII(b []byte) (*meshfile.Mesh, error) {
	ms := &meshfile.Mesh{}
	sc := bufio.NewScanner(bytes.NewReader(b))
	var tri []int
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "vertex":
			if len(fields) < 4 {
				return nil, fmt.Errorf("stl: vertex line with less than 3 coordinates [line %d]", line)
			}
			var v math32.Vector3
			for i := 0; i < 3; i++ {
				val, err := strconv.ParseFloat(fields[i+1], 32)
				if err != nil {
					return nil, err
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
			tri = append(tri, ms.AddVertex(v))
		case "endfacet":
			if len(tri) != 3 {
				return nil, fmt.Errorf("stl: facet with %d vertices [line %d]", len(tri), line)
			}
			ms.AddFace(tri...)
			tri = nil
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(tri) != 0 {
		return nil, errors.New("stl: unterminated facet")
	}
	return ms, nil
}

// binary layout: 80-byte header, uint32 triangle count, then per triangle
// a normal and three vertices as float32 triples plus a 2-byte attribute.
const (
	binHeaderSize   = 80
	binTriangleSize = 50
)

func decodeBinary(b []byte) (*meshfile.Mesh, error) {
	if len(b) < binHeaderSize+4 {
		return nil, errors.New("stl: binary file too short for header")
	}
	n := binary.LittleEndian.Uint32(b[binHeaderSize:])
	data := b[binHeaderSize+4:]
	if uint64(len(data)) < uint64(n)*binTriangleSize {
		return nil, fmt.Errorf("stl: binary file truncated: %d triangles declared, %d bytes of data", n, len(data))
	}
	ms := &meshfile.Mesh{}
	for i := uint32(0); i < n; i++ {
		rec := data[i*binTriangleSize:]
		tri := make([]int, 3)
		for vi := 0; vi < 3; vi++ {
			off := 12 + vi*12 // skip the normal
			x := float32frombytes(rec[off:])
			y := float32frombytes(rec[off+4:])
			z := float32frombytes(rec[off+8:])
			tri[vi] = ms.AddVertex(math32.Vec3(x, y, z))
		}
		ms.AddFace(tri...)
	}
	return ms, nil
}

func float32frombytes(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
