// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"github.com/Roger5006/Agent-to-Generate-Inkscape-Graphics/math32"
)

// Rect is an SVG rectangle, optionally with rounded corners.
type Rect struct {
	NodeBase

	// position of the top-left of the rectangle
	Pos math32.Vector2 `xml:"{x,y}"`

	// size of the rectangle
	Size math32.Vector2 `xml:"{width,height}"`

	// radii for curved corners
	Radius math32.Vector2 `xml:"{rx,ry}"`
}

// NewRect returns a new [Rect] with the given optional parent.
func NewRect(parent ...Node) *Rect { return New[Rect](parent...) }

func (g *Rect) SVGName() string { return "rect" }
