// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tomlx reads and writes values to and from TOML files.
package tomlx

import (
	"bufio"
	"io"
	"os"

	"github.com/Roger5006/Agent-to-Generate-Inkscape-Graphics/base/errors"
	"github.com/pelletier/go-toml/v2"
)

// Open reads the given value from the given TOML file.
func Open(v any, filename string) error {
	fp, err := os.Open(filename)
	if err != nil {
		return errors.Wrap(err)
	}
	defer fp.Close()
	return Read(v, bufio.NewReader(fp))
}

// OpenFiles reads the given value from the given TOML files, in order,
// so that later files override settings from earlier ones.
func OpenFiles(v any, filenames ...string) error {
	for _, fn := range filenames {
		if err := Open(v, fn); err != nil {
			return err
		}
	}
	return nil
}

// Read reads the given value from the given reader in TOML encoding.
func Read(v any, reader io.Reader) error {
	return errors.Wrap(toml.NewDecoder(reader).Decode(v))
}

// Save writes the given value to the given TOML file.
func Save(v any, filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err)
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if err := Write(v, bw); err != nil {
		return err
	}
	return errors.Wrap(bw.Flush())
}

// Write writes the given value to the given writer in TOML encoding.
func Write(v any, writer io.Writer) error {
	return errors.Wrap(toml.NewEncoder(writer).Encode(v))
}
