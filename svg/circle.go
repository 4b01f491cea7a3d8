// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"github.com/Roger5006/Agent-to-Generate-Inkscape-Graphics/math32"
)

// Circle is an SVG circle.
type Circle struct {
	NodeBase

	// position of the center of the circle
	Pos math32.Vector2 `xml:"{cx,cy}"`

	// radius of the circle
	Radius float32 `xml:"r"`
}

// NewCircle returns a new [Circle] with the given optional parent.
func NewCircle(parent ...Node) *Circle { return New[Circle](parent...) }

func (g *Circle) SVGName() string { return "circle" }

func (g *Circle) Init() {
	g.NodeBase.Init()
	g.Radius = 1
}
