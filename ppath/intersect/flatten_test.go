// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intersect

import (
	"testing"

	"github.com/Roger5006/Agent-to-Generate-Inkscape-Graphics/math32"
	"github.com/Roger5006/Agent-to-Generate-Inkscape-Graphics/ppath"
	"github.com/stretchr/testify/assert"
)

func TestFlattenLines(t *testing.T) {
	p := ppath.MustParseSVGPath("M0 0L10 0L10 10z")
	assert.Equal(t, p, Flatten(p, 0.01))
}

func TestFlattenCubicBezier(t *testing.T) {
	// collinear control points flatten to a single line
	p := FlattenCubicBezier(math32.Vec2(0, 0), math32.Vec2(3, 3), math32.Vec2(6, 6), math32.Vec2(10, 10), 0.01)
	assert.Equal(t, ppath.MustParseSVGPath("L10 10"), p)

	p = Flatten(ppath.MustParseSVGPath("C0 10 10 10 10 0"), 0.1)
	assert.True(t, 8 < len(p))
	assert.Equal(t, math32.Vec2(10, 0), p.Pos())
	for i := 0; i < len(p); i += ppath.CmdLen(p[i]) {
		cmd := p[i]
		assert.True(t, cmd == ppath.MoveTo || cmd == ppath.LineTo)
	}
}

func TestFlattenQuadraticBezier(t *testing.T) {
	p := FlattenQuadraticBezier(math32.Vec2(0, 0), math32.Vec2(5, 10), math32.Vec2(10, 0), 0.1)
	assert.True(t, 8 < len(p))
	assert.Equal(t, math32.Vec2(10, 0), p.Pos())
	for i := 0; i < len(p); i += ppath.CmdLen(p[i]) {
		cmd := p[i]
		assert.True(t, cmd == ppath.MoveTo || cmd == ppath.LineTo)
	}
}

func TestFlattenEllipticArc(t *testing.T) {
	p := FlattenEllipticArc(math32.Vec2(0, 0), 10, 10, 0, false, true, math32.Vec2(20, 0), 0.1)
	assert.Equal(t, math32.Vec2(20, 0), p.Pos())

	// all points stay within tolerance of the circle around (10,0)
	center := math32.Vec2(10, 0)
	n := 0
	for i := ppath.CmdLen(ppath.MoveTo); i < len(p); i += ppath.CmdLen(p[i]) {
		assert.Equal(t, ppath.LineTo, p[i])
		pos := math32.Vec2(p[i+1], p[i+2])
		assert.InDelta(t, 10.0, float64(pos.Sub(center).Length()), 0.12)
		n++
	}
	assert.True(t, 3 < n)
}
