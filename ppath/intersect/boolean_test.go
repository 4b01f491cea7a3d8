// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intersect

import (
	"math"
	"testing"

	polyclip "github.com/akavel/polyclip-go"

	"github.com/Roger5006/Agent-to-Generate-Inkscape-Graphics/math32"
	"github.com/Roger5006/Agent-to-Generate-Inkscape-Graphics/ppath"
	"github.com/stretchr/testify/assert"
)

func polygonArea(poly polyclip.Polygon) float64 {
	a := 0.0
	for _, ct := range poly {
		s := 0.0
		for i := range ct {
			j := (i + 1) % len(ct)
			s += ct[i].X*ct[j].Y - ct[j].X*ct[i].Y
		}
		a += math.Abs(s) / 2.0
	}
	return a
}

func pathBounds(p ppath.Path) (min, max math32.Vector2) {
	min = math32.Vec2(math32.Inf(1), math32.Inf(1))
	max = math32.Vec2(math32.Inf(-1), math32.Inf(-1))
	for _, c := range p.Coords() {
		min.X = math32.Min(min.X, c.X)
		min.Y = math32.Min(min.Y, c.Y)
		max.X = math32.Max(max.X, c.X)
		max.Y = math32.Max(max.Y, c.Y)
	}
	return min, max
}

func TestIntersectRectangles(t *testing.T) {
	p := ppath.MustParseSVGPath("M0 0L10 0L10 10L0 10z")
	q := ppath.MustParseSVGPath("M5 5L15 5L15 15L5 15z")
	r := Intersect(p, q, 0.01)

	assert.True(t, !r.Empty())
	assert.True(t, r.Closed())
	assert.InDelta(t, 25.0, polygonArea(ToPolygon(r, 0.01)), 1.0e-9)

	min, max := pathBounds(r)
	assert.InDelta(t, 5.0, float64(min.X), 1.0e-6)
	assert.InDelta(t, 5.0, float64(min.Y), 1.0e-6)
	assert.InDelta(t, 10.0, float64(max.X), 1.0e-6)
	assert.InDelta(t, 10.0, float64(max.Y), 1.0e-6)
}

func TestIntersectContained(t *testing.T) {
	p := ppath.MustParseSVGPath("M0 0L10 0L10 10L0 10z")
	q := ppath.MustParseSVGPath("M2 2L8 2L8 8L2 8z")
	r := Intersect(p, q, 0.01)

	assert.InDelta(t, 36.0, polygonArea(ToPolygon(r, 0.01)), 1.0e-9)

	min, max := pathBounds(r)
	assert.InDelta(t, 2.0, float64(min.X), 1.0e-6)
	assert.InDelta(t, 2.0, float64(min.Y), 1.0e-6)
	assert.InDelta(t, 8.0, float64(max.X), 1.0e-6)
	assert.InDelta(t, 8.0, float64(max.Y), 1.0e-6)
}

func TestIntersectDisjoint(t *testing.T) {
	p := ppath.MustParseSVGPath("M0 0L10 0L10 10L0 10z")
	q := ppath.MustParseSVGPath("M20 20L30 20L30 30L20 30z")
	assert.True(t, Intersect(p, q, 0.01).Empty())
}

func TestIntersectDegenerate(t *testing.T) {
	line := ppath.MustParseSVGPath("M0 0L10 0")
	square := ppath.MustParseSVGPath("M0 0L10 0L10 10L0 10z")
	assert.True(t, Intersect(line, square, 0.01).Empty())
	assert.True(t, Intersect(ppath.Path{}, square, 0.01).Empty())
	assert.True(t, Intersect(square, ppath.Path{}, 0.01).Empty())
}

func TestIntersectCurved(t *testing.T) {
	circle := ppath.MustParseSVGPath("M10 5A5 5 0 0 1 0 5A5 5 0 0 1 10 5z")
	square := ppath.MustParseSVGPath("M-10 -10L20 -10L20 20L-10 20z")
	r := Intersect(circle, square, 0.01)
	assert.InDelta(t, math.Pi*25.0, polygonArea(ToPolygon(r, 0.01)), 1.0)
}

func TestToPolygon(t *testing.T) {
	poly := ToPolygon(ppath.MustParseSVGPath("M0 0L10 0L0 10z"), 0.01)
	assert.Equal(t, 1, len(poly))
	assert.Equal(t, polyclip.Contour{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}}, poly[0])

	// subpaths without area are dropped
	assert.Equal(t, 0, len(ToPolygon(ppath.MustParseSVGPath("M0 0L10 0"), 0.01)))
	assert.Equal(t, 0, len(ToPolygon(ppath.Path{}, 0.01)))
}

func TestFromPolygon(t *testing.T) {
	p := FromPolygon(polyclip.Polygon{{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}}})
	assert.Equal(t, ppath.MustParseSVGPath("L10 0L0 10z"), p)
}
