// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"github.com/Roger5006/Agent-to-Generate-Inkscape-Graphics/math32"
)

// Ellipse is an SVG ellipse.
type Ellipse struct {
	NodeBase

	// position of the center of the ellipse
	Pos math32.Vector2 `xml:"{cx,cy}"`

	// radii of the ellipse in the horizontal, vertical axes
	Radii math32.Vector2 `xml:"{rx,ry}"`
}

// NewEllipse returns a new [Ellipse] with the given optional parent.
func NewEllipse(parent ...Node) *Ellipse { return New[Ellipse](parent...) }

func (g *Ellipse) SVGName() string { return "ellipse" }

func (g *Ellipse) Init() {
	g.NodeBase.Init()
	g.Radii.Set(1, 1)
}
