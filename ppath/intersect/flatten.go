// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is adapted from https://github.com/tdewolff/canvas
// Copyright (c) 2015 Taco de Wolff, under an MIT License.

package intersect

import (
	"github.com/Roger5006/Agent-to-Generate-Inkscape-Graphics/math32"
	"github.com/Roger5006/Agent-to-Generate-Inkscape-Graphics/ppath"
)

// Flatten flattens all Bézier and arc curves into linear segments
// and returns a new path. It uses tolerance as the maximum deviation.
func Flatten(p ppath.Path, tolerance float32) ppath.Path {
	quad := func(p0, p1, p2 math32.Vector2) ppath.Path {
		return FlattenQuadraticBezier(p0, p1, p2, tolerance)
	}
	cube := func(p0, p1, p2, p3 math32.Vector2) ppath.Path {
		return FlattenCubicBezier(p0, p1, p2, p3, tolerance)
	}
	arc := func(start math32.Vector2, rx, ry, phi float32, large, sweep bool, end math32.Vector2) ppath.Path {
		return FlattenEllipticArc(start, rx, ry, phi, large, sweep, end, tolerance)
	}
	return p.Replace(nil, quad, cube, arc)
}

// FlattenEllipticArc flattens an elliptic arc into line segments staying
// within tolerance of the arc.
func FlattenEllipticArc(start math32.Vector2, rx, ry, phi float32, large, sweep bool, end math32.Vector2, tolerance float32) ppath.Path {
	if ppath.Equal(rx, ry) {
		// circle
		r := rx
		cx, cy, theta0, theta1 := ppath.EllipseToCenter(start.X, start.Y, rx, ry, phi, large, sweep, end.X, end.Y)
		theta0 += phi
		theta1 += phi

		// draw line segments from arc+tolerance to arc+tolerance, touching arc-tolerance in between
		// we start and end at the arc itself
		dtheta := math32.Abs(theta1 - theta0)
		thetaEnd := math32.Acos((r - tolerance) / r)               // half angle of first/last segment
		thetaMid := math32.Acos((r - tolerance) / (r + tolerance)) // half angle of middle segments
		n := math32.Ceil((dtheta - thetaEnd*2.0) / (thetaMid * 2.0))

		// evenly space out points along arc
		ratio := dtheta / (thetaEnd*2.0 + thetaMid*2.0*n)
		thetaEnd *= ratio
		thetaMid *= ratio

		// adjust distance from arc to lower total deviation area, add points on the outer circle
		// of the tolerance since the middle of the line segment touches the inner circle and thus
		// even out. Ratio < 1 is when the line segments are shorter (and thus not touch the inner
		// tolerance circle).
		r += ratio * tolerance

		p := ppath.Path{}
		p.MoveTo(start.X, start.Y)
		theta := thetaEnd + thetaMid
		for i := 0; i < int(n); i++ {
			t := theta0 + math32.Copysign(theta, theta1-theta0)
			pos := math32.Vector2Polar(t, r).Add(math32.Vector2{X: cx, Y: cy})
			p.LineTo(pos.X, pos.Y)
			theta += 2.0 * thetaMid
		}
		p.LineTo(end.X, end.Y)
		return p
	}
	return Flatten(ppath.ArcToCube(start, rx, ry, phi, large, sweep, end), tolerance)
}

// FlattenQuadraticBezier flattens a quadratic Bézier into line segments,
// see Flat, precise flattening of cubic Bézier path and offset curves, by
// T.F. Hain et al., 2005, https://www.sciencedirect.com/science/article/pii/S0097849305001287
func FlattenQuadraticBezier(p0, p1, p2 math32.Vector2, tolerance float32) ppath.Path {
	t := float32(0.0)
	p := ppath.Path{}
	p.MoveTo(p0.X, p0.Y)
	for t < 1.0 {
		D := p1.Sub(p0)
		if ppath.EqualPoint(p0, p1) {
			// p0 == p1, curve is a straight line from p0 to p2
			break
		}
		denom := math32.Hypot(D.X, D.Y) // equal to r1
		s2nom := D.Cross(p2.Sub(p0))
		t = 2.0 * math32.Sqrt(tolerance*math32.Abs(denom/s2nom))
		if t >= 1.0 {
			break
		}

		_, _, _, p0, p1, p2 = quadraticBezierSplit(p0, p1, p2, t)
		p.LineTo(p0.X, p0.Y)
	}
	p.LineTo(p2.X, p2.Y)
	return p
}

// FlattenCubicBezier flattens a cubic Bézier into line segments by recursive
// halving until both control points deviate from the chord by no more than
// tolerance.
func FlattenCubicBezier(p0, p1, p2, p3 math32.Vector2, tolerance float32) ppath.Path {
	tolerance = math32.Max(tolerance, ppath.Epsilon) // prevent infinite subdivision if tolerance is zero
	p := ppath.Path{}
	p.MoveTo(p0.X, p0.Y)
	flattenCubicBezier(&p, p0, p1, p2, p3, tolerance, 0)
	return p
}

// maxFlattenDepth bounds the recursive subdivision of a cubic Bézier.
const maxFlattenDepth = 16

func flattenCubicBezier(p *ppath.Path, p0, p1, p2, p3 math32.Vector2, tolerance float32, depth int) {
	if depth == maxFlattenDepth ||
		distPointToLine(p1, p0, p3) <= tolerance && distPointToLine(p2, p0, p3) <= tolerance {
		p.LineTo(p3.X, p3.Y)
		return
	}
	q1, q2, q3, r0, r1, r2 := splitCubicHalves(p0, p1, p2, p3)
	flattenCubicBezier(p, p0, q1, q2, q3, tolerance, depth+1)
	flattenCubicBezier(p, r0, r1, r2, p3, tolerance, depth+1)
}

// splitCubicHalves subdivides the cubic Bézier at its middle,
// returning the three remaining control points of each half.
func splitCubicHalves(p0, p1, p2, p3 math32.Vector2) (q1, q2, q3, r0, r1, r2 math32.Vector2) {
	q1 = p0.Lerp(p1, 0.5)
	m := p1.Lerp(p2, 0.5)
	r2 = p2.Lerp(p3, 0.5)
	q2 = q1.Lerp(m, 0.5)
	r1 = m.Lerp(r2, 0.5)
	q3 = q2.Lerp(r1, 0.5)
	r0 = q3
	return
}

// quadraticBezierSplit splits the quadratic Bézier at parameter t,
// returning the control points of both subcurves.
func quadraticBezierSplit(p0, p1, p2 math32.Vector2, t float32) (math32.Vector2, math32.Vector2, math32.Vector2, math32.Vector2, math32.Vector2, math32.Vector2) {
	q1 := p0.Lerp(p1, t)
	r1 := p1.Lerp(p2, t)
	mid := q1.Lerp(r1, t)
	return p0, q1, mid, mid, r1, p2
}

// distPointToLine returns the distance from p to the infinite line through a and b.
func distPointToLine(p, a, b math32.Vector2) float32 {
	ab := b.Sub(a)
	length := ab.Length()
	if ppath.Equal(length, 0.0) {
		return p.Sub(a).Length()
	}
	return math32.Abs(ab.Cross(p.Sub(a))) / length
}
