// Copyright (c) 2025, The Armature Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/armaturekit/armature/decor"
	"github.com/armaturekit/armature/meshfile"
	"github.com/armaturekit/armature/model"

	_ "github.com/armaturekit/armature/meshfile/obj"
	_ "github.com/armaturekit/armature/meshfile/stl"
	_ "github.com/armaturekit/armature/meshfile/vtp"
)

// Mesh renders a polygonal mesh loaded from a file.  The file is located
// and parsed once, when the owning model is finalized; render calls only
// consult the cached mesh and never touch the disk.  If the file cannot be
// found or parsed, the failure is logged and this geometry renders nothing.
type Mesh struct {
	GeometryBase

	// File is the mesh file path, absolute or relative to the model file.
	// Set via [Mesh.SetFile] to invalidate the cache.
	File string

	// cached is the parsed mesh, populated by Finalize.  Nil if the file
	// has not been resolved successfully.
	cached *meshfile.Mesh

	// upToDate is whether Finalize has already run for the current File.
	upToDate bool
}

// NewMesh returns a new mesh geometry with the given name and file path.
func NewMesh(name, file string) *Mesh {
	ms := &Mesh{File: file}
	ms.InitName(ms, name)
	ms.Defaults()
	return ms
}

// SetFile sets the mesh file path and invalidates the cached mesh, so the
// next Finalize resolves it again.
func (ms *Mesh) SetFile(file string) {
	ms.File = file
	ms.cached = nil
	ms.upToDate = false
}

// CachedMesh returns the parsed mesh, or nil if the file has not been
// resolved.
func (ms *Mesh) CachedMesh() *meshfile.Mesh { return ms.cached }

// Finalize locates and parses the mesh file, caching the result.  It is
// idempotent: re-running on an up-to-date instance does nothing, so render
// traffic never causes repeated disk reads.  All failures here are soft:
// they are logged and leave the cache empty, and this geometry then
// produces zero decorations.
func (ms *Mesh) Finalize() error {
	if ms.upToDate {
		return nil
	}
	ms.upToDate = true

	if !ms.HasParent() {
		slog.Warn("geometry.Mesh: not connected to a model; ignoring", "file", ms.File)
		return nil
	}
	m := model.RootModel(ms.This)
	if m == nil {
		slog.Warn("geometry.Mesh: not connected to a model; ignoring", "file", ms.File)
		return nil
	}

	ext := strings.ToLower(filepath.Ext(ms.File))
	if !meshfile.Supported(ext) {
		slog.Warn("geometry.Mesh: ignoring file; extension not supported",
			"file", ms.File, "supported", meshfile.Extensions())
		return nil
	}

	isAbs := filepath.IsAbs(ms.File)
	found, attempts := FindGeometryFile(m, ms.File, isAbs)
	if !found {
		slog.Warn("geometry.Mesh: couldn't find file", "file", ms.File, "tried", attempts)
		if !isAbs && os.Getenv(GeometryHomeEnv) == "" {
			slog.Warn("set environment variable " + GeometryHomeEnv +
				" to search $" + GeometryHomeEnv + "/Geometry")
		}
		return nil
	}

	resolved := attempts[len(attempts)-1]
	pm, err := meshfile.DecodeFile(resolved)
	if err != nil {
		slog.Error("geometry.Mesh: couldn't read file", "file", resolved, "error", err)
		return nil
	}
	ms.cached = pm
	return nil
}

func (ms *Mesh) BuildShapes() []decor.Decoration {
	if ms.cached == nil {
		return nil
	}
	d := &decor.TriMesh{Mesh: ms.cached}
	d.Scale = ms.ScaleFactors
	return []decor.Decoration{d}
}
