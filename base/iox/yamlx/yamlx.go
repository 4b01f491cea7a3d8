// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package yamlx reads and writes values to and from YAML files.
package yamlx

import (
	"bufio"
	"io"
	"os"

	"github.com/Roger5006/Agent-to-Generate-Inkscape-Graphics/base/errors"
	"gopkg.in/yaml.v3"
)

// Open reads the given value from the given YAML file.
func Open(v any, filename string) error {
	fp, err := os.Open(filename)
	if err != nil {
		return errors.Wrap(err)
	}
	defer fp.Close()
	return Read(v, bufio.NewReader(fp))
}

// OpenFiles reads the given value from the given YAML files, in order,
// so that later files override settings from earlier ones.
func OpenFiles(v any, filenames ...string) error {
	for _, fn := range filenames {
		if err := Open(v, fn); err != nil {
			return err
		}
	}
	return nil
}

// Read reads the given value from the given reader in YAML encoding.
func Read(v any, reader io.Reader) error {
	return errors.Wrap(yaml.NewDecoder(reader).Decode(v))
}

// Save writes the given value to the given YAML file.
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

// Write writes the given value to the given writer in YAML encoding.
func Write(v any, writer io.Writer) error {
	enc := yaml.NewEncoder(writer)
	if err := errors.Wrap(enc.Encode(v)); err != nil {
		return err
	}
	return errors.Wrap(enc.Close())
}
