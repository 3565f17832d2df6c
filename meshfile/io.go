// Copyright (c) 2025, The Armature Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshfile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Decoder parses a mesh file format.  This interface is implemented by the
// different format-specific decoders.
type Decoder interface {
	// New returns a new instance of the decoder used for a specific decoding.
	New() Decoder

	// Desc returns the description of this decoder.
	Desc() string

	// Decode reads the given data and returns the decoded mesh.
	Decode(r io.Reader) (*Mesh, error)
}

// Decoders is the master list of decoders, indexed by the primary, lower-case
// extension including the dot.  Decoder subpackages add themselves here on
// import.
var Decoders = map[string]Decoder{}

// Supported reports whether the given file extension (case-insensitive,
// including the dot) has a registered decoder.
func Supported(ext string) bool {
	_, has := Decoders[strings.ToLower(ext)]
	return has
}

// Extensions returns the registered decoder extensions, sorted.
func Extensions() []string {
	exts := make([]string, 0, len(Decoders))
	for ext := range Decoders {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Decode decodes mesh data from the given reader, using the decoder
// registered for the given extension.
func Decode(r io.Reader, ext string) (*Mesh, error) {
	dt, has := Decoders[strings.ToLower(ext)]
	if !has {
		return nil, fmt.Errorf("meshfile.Decode: file extension %q not found in Decoders list", ext)
	}
	return dt.New().Decode(r)
}

// DecodeFile decodes the given mesh file using a decoder based on the file
// extension.  Supported formats include .obj (Wavefront object),
// .stl (stereolithography, ascii or binary), and .vtp (VTK XML PolyData).
func DecodeFile(fname string) (*Mesh, error) {
	ext := filepath.Ext(fname)
	if !Supported(ext) {
		return nil, fmt.Errorf("meshfile.DecodeFile: file extension %q not found in Decoders list for file %v", ext, fname)
	}
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f, ext)
}
