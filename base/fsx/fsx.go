// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsx provides small filesystem helpers.
package fsx

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Roger5006/Agent-to-Generate-Inkscape-Graphics/base/errors"
)

// FileExists checks whether the given file exists, returning true if so,
// false if not, and error if there is an error in accessing the file.
func FileExists(filePath string) (bool, error) {
	fileInfo, err := os.Stat(filePath)
	if err == nil {
		return !fileInfo.IsDir(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Filenames returns the base filenames of all the files in the given
// directory that have the given extension (e.g., ".svg"), sorted in
// directory order. If no extension is given, all files are returned.
func Filenames(path string, exts ...string) []string {
	files, err := os.ReadDir(path)
	if err != nil {
		return nil
	}
	var fns []string
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		fn := f.Name()
		if len(exts) == 0 {
			fns = append(fns, fn)
			continue
		}
		for _, ext := range exts {
			if strings.EqualFold(filepath.Ext(fn), ext) {
				fns = append(fns, fn)
				break
			}
		}
	}
	return fns
}
