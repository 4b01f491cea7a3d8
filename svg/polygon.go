// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

// Polygon is an SVG polygon: a closed [Polyline].
type Polygon struct {
	Polyline
}

// NewPolygon returns a new [Polygon] with the given optional parent.
func NewPolygon(parent ...Node) *Polygon { return New[Polygon](parent...) }

func (g *Polygon) SVGName() string { return "polygon" }
