// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"github.com/Roger5006/Agent-to-Generate-Inkscape-Graphics/ppath"
)

// Path is an arbitrary SVG path element, which can represent
// just about anything.
type Path struct {
	NodeBase

	// Path data using the [ppath.Path] representation.
	Data ppath.Path `xml:"-"`

	// string version of the path data
	DataStr string `xml:"d"`
}

// NewPath returns a new [Path] with the given optional parent.
func NewPath(parent ...Node) *Path { return New[Path](parent...) }

func (g *Path) SVGName() string { return "path" }

// SetData sets the path data to the given string, parsing it into
// the [ppath.Path] form used for geometry.
func (g *Path) SetData(data string) error {
	g.DataStr = data
	var err error
	g.Data, err = ppath.ParseSVGPath(data)
	return err
}

// UpdatePathString sets [Path.DataStr] from the current [Path.Data].
func (g *Path) UpdatePathString() {
	g.DataStr = g.Data.ToSVG()
}

// PathData returns the geometry of this path. It implements the
// capability interface that path combining operations check for.
func (g *Path) PathData() ppath.Path {
	return g.Data
}

// PathDataString returns the raw path data attribute string.
func (g *Path) PathDataString() string {
	return g.DataStr
}
