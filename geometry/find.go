// Copyright (c) 2025, The Armature Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"os"
	"path/filepath"

	"github.com/armaturekit/armature/model"
)

// GeometryHomeEnv is the environment variable naming the install root;
// its Geometry subdirectory is searched for relative mesh file paths.
const GeometryHomeEnv = "ARMATURE_HOME"

// FindGeometryFile attempts to locate the given geometry file for the given
// model.  An absolute path is tried as-is.  A relative path is tried against
// the model file's directory, its Geometry subdirectory, the current
// directory, and $ARMATURE_HOME/Geometry when that variable is set.
// It returns whether the file was found and every path attempted, in order;
// when found, the last attempt is the resolved path.
func FindGeometryFile(m *model.Model, file string, isAbsolute bool) (found bool, attempts []string) {
	try := func(p string) bool {
		attempts = append(attempts, p)
		info, err := os.Stat(p)
		return err == nil && !info.IsDir()
	}
	if isAbsolute {
		return try(file), attempts
	}
	var dirs []string
	if m != nil && m.FileName != "" {
		md := filepath.Dir(m.FileName)
		dirs = append(dirs, md, filepath.Join(md, "Geometry"))
	}
	dirs = append(dirs, ".")
	if home := os.Getenv(GeometryHomeEnv); home != "" {
		dirs = append(dirs, filepath.Join(home, "Geometry"))
	}
	for _, d := range dirs {
		if try(filepath.Join(d, file)) {
			return true, attempts
		}
	}
	return false, attempts
}
