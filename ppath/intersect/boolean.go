// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package intersect computes boolean intersections of paths by flattening
// them into polygons and clipping those.
package intersect

import (
	polyclip "github.com/akavel/polyclip-go"

	"github.com/Roger5006/Agent-to-Generate-Inkscape-Graphics/ppath"
)

// Intersect returns the region covered by both p and q, as a path of closed
// subpaths. The inputs are interpreted as closed regions: open subpaths are
// implicitly closed, and Bézier curves and arcs are flattened into line
// segments within tolerance. An empty path is returned when the paths do
// not overlap.
func Intersect(p, q ppath.Path, tolerance float32) ppath.Path {
	cp := ToPolygon(p, tolerance)
	cq := ToPolygon(q, tolerance)
	if len(cp) == 0 || len(cq) == 0 {
		return ppath.Path{}
	}
	return FromPolygon(cp.Construct(polyclip.INTERSECTION, cq))
}

// ToPolygon flattens each subpath of p into a polygon contour.
// Subpaths with fewer than three distinct points carry no area
// and are dropped.
func ToPolygon(p ppath.Path, tolerance float32) polyclip.Polygon {
	var poly polyclip.Polygon
	for _, pi := range p.Split() {
		flat := Flatten(pi, tolerance)
		var ct polyclip.Contour
		for i := 0; i < len(flat); {
			cmd := flat[i]
			switch cmd {
			case ppath.MoveTo, ppath.LineTo:
				ct = append(ct, polyclip.Point{X: float64(flat[i+1]), Y: float64(flat[i+2])})
			}
			i += ppath.CmdLen(cmd)
		}
		if 1 < len(ct) && ct[0] == ct[len(ct)-1] {
			ct = ct[:len(ct)-1]
		}
		if 3 <= len(ct) {
			poly = append(poly, ct)
		}
	}
	return poly
}

// FromPolygon converts polygon contours back into a path of closed subpaths.
func FromPolygon(poly polyclip.Polygon) ppath.Path {
	p := ppath.Path{}
	for _, ct := range poly {
		if len(ct) == 0 {
			continue
		}
		p.MoveTo(float32(ct[0].X), float32(ct[0].Y))
		for _, pt := range ct[1:] {
			p.LineTo(float32(pt.X), float32(pt.Y))
		}
		p.Close()
	}
	return p
}
