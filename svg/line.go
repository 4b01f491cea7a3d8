// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"github.com/Roger5006/Agent-to-Generate-Inkscape-Graphics/math32"
)

// Line is an SVG line.
type Line struct {
	NodeBase

	// position of the start of the line
	Start math32.Vector2 `xml:"{x1,y1}"`

	// position of the end of the line
	End math32.Vector2 `xml:"{x2,y2}"`
}

// NewLine returns a new [Line] with the given optional parent.
func NewLine(parent ...Node) *Line { return New[Line](parent...) }

func (g *Line) SVGName() string { return "line" }

func (g *Line) Init() {
	g.NodeBase.Init()
	g.End.Set(1, 1)
}
