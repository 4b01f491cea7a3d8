// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"github.com/Roger5006/Agent-to-Generate-Inkscape-Graphics/math32"
)

// Polyline is an SVG multi-line shape.
type Polyline struct {
	NodeBase

	// the coordinates to draw -- does a moveto on the first, then lineto for all the rest
	Points []math32.Vector2 `xml:"points"`
}

// NewPolyline returns a new [Polyline] with the given optional parent.
func NewPolyline(parent ...Node) *Polyline { return New[Polyline](parent...) }

func (g *Polyline) SVGName() string { return "polyline" }
