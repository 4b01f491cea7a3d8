// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathops_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Roger5006/Agent-to-Generate-Inkscape-Graphics/base/tolassert"
	"github.com/Roger5006/Agent-to-Generate-Inkscape-Graphics/math32"
	"github.com/Roger5006/Agent-to-Generate-Inkscape-Graphics/pathops"
	"github.com/Roger5006/Agent-to-Generate-Inkscape-Graphics/ppath"
	"github.com/Roger5006/Agent-to-Generate-Inkscape-Graphics/svg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	rect1 = "M0,0 L10,0 L10,10 L0,10 Z"
	rect2 = "M5,5 L15,5 L15,15 L5,15 Z"

	docRects = `<svg width="100" height="100" viewBox="0 0 100 100" xmlns="http://www.w3.org/2000/svg">
  <path id="p1" d="M0,0 L10,0 L10,10 L0,10 Z" style="fill:#ff0000;stroke:none" />
  <path id="p2" d="M5,5 L15,5 L15,15 L5,15 Z" style="fill:#0000ff" />
</svg>`

	docMixed = `<svg viewBox="0 0 100 100" xmlns="http://www.w3.org/2000/svg">
  <rect id="r1" x="0" y="0" width="10" height="10" />
  <path id="p1" d="M0,0 L10,0 L10,10 L0,10 Z" style="fill:#ff0000" />
  <path id="p2" d="M5,5 L15,5 L15,15 L5,15 Z" />
</svg>`

	docGrouped = `<svg viewBox="0 0 100 100" xmlns="http://www.w3.org/2000/svg">
  <g id="grp" transform="translate(5,5)">
    <path id="p1" d="M0,0 L10,0 L10,10 L0,10 Z" style="fill:#ff0000" />
  </g>
  <path id="p2" d="M5,5 L15,5 L15,15 L5,15 Z" />
</svg>`

	docDisjoint = `<svg viewBox="0 0 100 100" xmlns="http://www.w3.org/2000/svg">
  <path id="p1" d="M0,0 L10,0 L10,10 L0,10 Z" />
  <path id="p2" d="M50,50 L60,50 L60,60 L50,60 Z" />
</svg>`

	docLayered = `<svg viewBox="0 0 210 297" xmlns:inkscape="http://www.inkscape.org/namespaces/inkscape" xmlns:sodipodi="http://sodipodi.sourceforge.net/DTD/sodipodi-0.dtd" xmlns="http://www.w3.org/2000/svg">
  <sodipodi:namedview id="base" inkscape:current-layer="layer1" />
  <g inkscape:label="Layer 1" inkscape:groupmode="layer" id="layer1">
    <path id="path10" d="M10,10 L20,10 L20,20 Z" style="fill:#00ff00" />
    <path id="path11" d="M30,30 L40,30 L40,40 Z" style="fill:#00ffff" />
  </g>
</svg>`
)

func readDoc(t *testing.T, doc string) *svg.SVG {
	sv := svg.NewSVG()
	require.NoError(t, sv.ReadXML(strings.NewReader(doc)))
	return sv
}

func writeDoc(t *testing.T, sv *svg.SVG) string {
	var b bytes.Buffer
	require.NoError(t, sv.WriteXML(&b, false))
	return b.String()
}

// collectPaths returns all path elements under the given node,
// in document order.
func collectPaths(n svg.Node) []*svg.Path {
	var paths []*svg.Path
	n.AsNodeBase().WalkDown(func(cn svg.Node) bool {
		if p, ok := cn.(*svg.Path); ok {
			paths = append(paths, p)
		}
		return svg.Continue
	})
	return paths
}

// resultOf returns the single path left in the document after a
// successful operation.
func resultOf(t *testing.T, sv *svg.SVG) *svg.Path {
	paths := collectPaths(sv.Root)
	require.Len(t, paths, 1)
	return paths[0]
}

// dataBounds returns the bounding box of the end points in the
// given path data.
func dataBounds(p ppath.Path) (min, max math32.Vector2) {
	min = math32.Vec2(math32.Infinity, math32.Infinity)
	max = min.Negate()
	for i := 0; i < len(p); i += ppath.CmdLen(p[i]) {
		cmd := p[i]
		if cmd == ppath.MoveTo || cmd == ppath.LineTo || cmd == ppath.Close {
			pt := math32.Vec2(p[i+1], p[i+2])
			min = min.Min(pt)
			max = max.Max(pt)
		}
	}
	return min, max
}

func TestUnion(t *testing.T) {
	sv := readDoc(t, docRects)
	require.NoError(t, pathops.Run(sv, pathops.OpUnion, []string{"p1", "p2"}))

	assert.Nil(t, sv.FindNamedElement("p1"))
	assert.Nil(t, sv.FindNamedElement("p2"))

	res := resultOf(t, sv)
	expected := ppath.MustParseSVGPath(rect1).ToSVG() + ppath.MustParseSVGPath(rect2).ToSVG()
	assert.Equal(t, expected, res.DataStr)

	// the result carries the style of the first input
	assert.Equal(t, "#ff0000", res.Property("fill"))
	assert.Equal(t, "none", res.Property("stroke"))

	assert.True(t, strings.HasPrefix(res.Name, "path"))
	assert.Equal(t, sv.Root.This, res.Parent)
}

func TestUnionOrder(t *testing.T) {
	sv := readDoc(t, docRects)
	require.NoError(t, pathops.Run(sv, pathops.OpUnion, []string{"p2", "p1"}))

	res := resultOf(t, sv)
	expected := ppath.MustParseSVGPath(rect2).ToSVG() + ppath.MustParseSVGPath(rect1).ToSVG()
	assert.Equal(t, expected, res.DataStr)
	assert.Equal(t, "#0000ff", res.Property("fill"))
	assert.Nil(t, res.Property("stroke"))
}

func TestUnionDefaultOperation(t *testing.T) {
	sv := readDoc(t, docRects)
	require.NoError(t, pathops.Run(sv, "", []string{"p1", "p2"}))
	res := resultOf(t, sv)
	expected := ppath.MustParseSVGPath(rect1).ToSVG() + ppath.MustParseSVGPath(rect2).ToSVG()
	assert.Equal(t, expected, res.DataStr)
}

func TestUnionTransform(t *testing.T) {
	sv := readDoc(t, docGrouped)
	require.NoError(t, pathops.Run(sv, pathops.OpUnion, []string{"p1", "p2"}))

	res := resultOf(t, sv)
	expected := ppath.MustParseSVGPath(rect1).Transform(math32.Translate2D(5, 5)).ToSVG() +
		ppath.MustParseSVGPath(rect2).ToSVG()
	assert.Equal(t, expected, res.DataStr)

	// the group itself is not part of the selection and survives
	assert.NotNil(t, sv.FindNamedElement("grp"))
	assert.Equal(t, sv.Root.This, res.Parent)
}

func TestUnionSkipsNonPaths(t *testing.T) {
	sv := readDoc(t, docMixed)
	require.NoError(t, pathops.Run(sv, pathops.OpUnion, []string{"r1", "p1", "p2"}))

	// the rect is ignored, not consumed
	assert.NotNil(t, sv.FindNamedElement("r1"))
	res := resultOf(t, sv)
	assert.Equal(t, "#ff0000", res.Property("fill"), "style comes from the first path, not the rect")
}

func TestUnionMissingID(t *testing.T) {
	sv := readDoc(t, docRects)
	require.NoError(t, pathops.Run(sv, pathops.OpUnion, []string{"ghost", "p1", "p2"}))
	resultOf(t, sv)
}

func TestSelectionErrors(t *testing.T) {
	sv := readDoc(t, docMixed)
	before := writeDoc(t, sv)

	err := pathops.Run(sv, pathops.OpUnion, []string{"p1"})
	assert.EqualError(t, err, "Please select at least two paths to operate on.")

	err = pathops.Run(sv, pathops.OpUnion, []string{"r1", "p1"})
	assert.EqualError(t, err, "Please select at least two path objects to operate on. Ensure objects are converted to paths.")

	assert.Equal(t, before, writeDoc(t, sv), "failed operations leave the document unchanged")
}

func TestUnionNoData(t *testing.T) {
	sv := readDoc(t, `<svg xmlns="http://www.w3.org/2000/svg">
  <path id="nod" />
  <path id="p2" d="M5,5 L15,5 L15,15 L5,15 Z" />
</svg>`)
	before := writeDoc(t, sv)

	err := pathops.Run(sv, pathops.OpUnion, []string{"nod", "p2"})
	assert.EqualError(t, err, "Path with id 'nod' has no path data.")
	assert.Equal(t, before, writeDoc(t, sv))
}

func TestUnionBadData(t *testing.T) {
	sv := readDoc(t, `<svg xmlns="http://www.w3.org/2000/svg">
  <path id="bad" d="garbage" />
  <path id="p2" d="M5,5 L15,5 L15,15 L5,15 Z" />
</svg>`)
	before := writeDoc(t, sv)

	err := pathops.Run(sv, pathops.OpUnion, []string{"bad", "p2"})
	assert.ErrorContains(t, err, "Error processing first path:")

	err = pathops.Run(sv, pathops.OpUnion, []string{"p2", "bad"})
	assert.ErrorContains(t, err, "Error processing path with id 'bad':")

	assert.Equal(t, before, writeDoc(t, sv))
}

func TestIntersect(t *testing.T) {
	sv := readDoc(t, docRects)
	require.NoError(t, pathops.Run(sv, pathops.OpIntersect, []string{"p1", "p2"}))

	assert.Nil(t, sv.FindNamedElement("p1"))
	assert.Nil(t, sv.FindNamedElement("p2"))

	res := resultOf(t, sv)
	require.False(t, res.Data.Empty())
	min, max := dataBounds(res.Data)
	tolassert.Equal(t, float32(5), min.X)
	tolassert.Equal(t, float32(5), min.Y)
	tolassert.Equal(t, float32(10), max.X)
	tolassert.Equal(t, float32(10), max.Y)

	assert.Equal(t, "#ff0000", res.Property("fill"))
}

func TestIntersectDisjoint(t *testing.T) {
	sv := readDoc(t, docDisjoint)
	before := writeDoc(t, sv)

	err := pathops.Run(sv, pathops.OpIntersect, []string{"p1", "p2"})
	assert.EqualError(t, err, "Intersection resulted in an empty path.")
	assert.Equal(t, before, writeDoc(t, sv))
}

func TestIntersectRequiresTwo(t *testing.T) {
	sv := readDoc(t, docRects)
	p1, ok := sv.FindNamedElement("p1").(pathops.PathNode)
	require.True(t, ok)
	_, err := pathops.Intersect(sv, []pathops.PathNode{p1})
	assert.EqualError(t, err, "Intersection requires at least two paths.")
}

func TestUnknownOperation(t *testing.T) {
	sv := readDoc(t, docRects)
	before := writeDoc(t, sv)

	err := pathops.Run(sv, "difference", []string{"p1", "p2"})
	assert.EqualError(t, err, "Unknown operation: difference.  Use 'union' or 'intersect'.")
	assert.Equal(t, before, writeDoc(t, sv))
}

func TestCommitToCurrentLayer(t *testing.T) {
	sv := readDoc(t, docLayered)
	require.NoError(t, pathops.Run(sv, pathops.OpUnion, []string{"path10", "path11"}))

	layer := sv.CurrentLayer()
	require.NotNil(t, layer)
	assert.Equal(t, "layer1", layer.AsNodeBase().Name)

	// the result is appended to the layer, not the root
	lp := collectPaths(layer)
	require.Len(t, lp, 1)
	res := lp[0]
	assert.Equal(t, layer, res.Parent)
	assert.Len(t, sv.Root.Children, 2) // namedview and the layer

	// the fresh id never reuses an input id
	assert.NotEqual(t, "path10", res.Name)
	assert.NotEqual(t, "path11", res.Name)
	assert.True(t, strings.HasPrefix(res.Name, "path"))
}

func TestValidateSelection(t *testing.T) {
	sv := readDoc(t, docMixed)
	paths, err := pathops.ValidateSelection(sv, []string{"p2", "r1", "p1"})
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, "p2", paths[0].AsNodeBase().Name)
	assert.Equal(t, "p1", paths[1].AsNodeBase().Name)
}
