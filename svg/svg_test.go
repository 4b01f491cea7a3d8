// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Roger5006/Agent-to-Generate-Inkscape-Graphics/base/fsx"
	"github.com/Roger5006/Agent-to-Generate-Inkscape-Graphics/base/tolassert"
	"github.com/Roger5006/Agent-to-Generate-Inkscape-Graphics/math32"
	. "github.com/Roger5006/Agent-to-Generate-Inkscape-Graphics/svg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestFile(t *testing.T, fname string) *SVG {
	sv := NewSVG()
	err := sv.OpenXML(filepath.Join("testdata", fname))
	require.NoError(t, err, fname)
	return sv
}

func writeString(t *testing.T, sv *SVG) string {
	var b bytes.Buffer
	require.NoError(t, sv.WriteXML(&b, true))
	return b.String()
}

// TestReadWriteStable checks that writing a document and reading the
// result back reproduces the same output for every testdata file:
// the writer is deterministic and loses nothing it wrote.
func TestReadWriteStable(t *testing.T) {
	files := fsx.Filenames("testdata", ".svg")
	require.NotEmpty(t, files)
	for _, fn := range files {
		sv := openTestFile(t, fn)
		first := writeString(t, sv)
		again := NewSVG()
		require.NoError(t, again.ReadXML(strings.NewReader(first)), fn)
		second := writeString(t, again)
		assert.Equal(t, first, second, fn)
	}
}

func TestDialectRetention(t *testing.T) {
	sv := openTestFile(t, "dialect.svg")

	nv := sv.NamedView()
	require.NotNil(t, nv)
	assert.Equal(t, "sodipodi:namedview", nv.Class)
	assert.Equal(t, "layer1", nv.Property("inkscape:current-layer"))
	assert.Equal(t, "Dialect sample", sv.Title)
	assert.Equal(t, "4in", sv.PhysicalWidth)

	out := writeString(t, sv)
	for _, frag := range []string{
		`<sodipodi:namedview`,
		`inkscape:current-layer="layer1"`,
		`inkscape:groupmode="layer"`,
		`xmlns:sodipodi="http://sodipodi.sourceforge.net/DTD/sodipodi-0.dtd"`,
		`xmlns:inkscape="http://www.inkscape.org/namespaces/inkscape"`,
		`<title>Dialect sample</title>`,
		`<dc:format`,
		`image/svg+xml`,
		`sodipodi:docname="dialect.svg"`,
	} {
		assert.Contains(t, out, frag)
	}
}

func TestOpaqueMetadata(t *testing.T) {
	sv := openTestFile(t, "dialect.svg")
	var format *MetaData
	sv.Root.WalkDown(func(n Node) bool {
		if md, ok := n.(*MetaData); ok && md.Class == "dc:format" {
			format = md
			return Break
		}
		return Continue
	})
	require.NotNil(t, format)
	assert.Equal(t, "image/svg+xml", format.MetaData)
}

func TestCurrentLayer(t *testing.T) {
	sv := openTestFile(t, "layered.svg")
	layer := sv.CurrentLayer()
	require.NotNil(t, layer)
	assert.Equal(t, "layer1", layer.AsNodeBase().Name)
	assert.True(t, IsLayer(layer))

	// no namedview: the root is the current layer
	sv = openTestFile(t, "two-rects.svg")
	assert.Equal(t, sv.Root.This, sv.CurrentLayer())

	// namedview referencing a missing group: fall back to the root
	sv = openTestFile(t, "dangling-layer.svg")
	assert.Equal(t, sv.Root.This, sv.CurrentLayer())
}

func TestIsLayer(t *testing.T) {
	sv := openTestFile(t, "layered.svg")
	assert.True(t, IsLayer(sv.FindNamedElement("layer1")))

	sv = openTestFile(t, "nested-groups.svg")
	assert.False(t, IsLayer(sv.FindNamedElement("outer")))
	assert.False(t, IsLayer(nil))
}

func TestParentTransform(t *testing.T) {
	sv := openTestFile(t, "nested-groups.svg")
	deep := sv.FindNamedElement("deep")
	require.NotNil(t, deep)
	p, ok := deep.(*Path)
	require.True(t, ok)
	assert.False(t, p.Data.Empty())

	// scale(2) of translate(10,5) of the path's own translate(1,0)
	xf := p.ParentTransform(true)
	pt := xf.MulVector2AsPoint(math32.Vec2(0, 0))
	tolassert.Equal(t, float32(22), pt.X)
	tolassert.Equal(t, float32(10), pt.Y)
	pt = xf.MulVector2AsPoint(math32.Vec2(1, 1))
	tolassert.Equal(t, float32(24), pt.X)
	tolassert.Equal(t, float32(12), pt.Y)

	// without the node's own transform
	xf = p.ParentTransform(false)
	pt = xf.MulVector2AsPoint(math32.Vec2(0, 0))
	tolassert.Equal(t, float32(20), pt.X)
	tolassert.Equal(t, float32(10), pt.Y)
}

func TestFindNamedElement(t *testing.T) {
	sv := openTestFile(t, "two-rects.svg")
	p1 := sv.FindNamedElement("p1")
	require.NotNil(t, p1)
	assert.Equal(t, p1, sv.FindNamedElement("#p1"))
	assert.Equal(t, p1, sv.FindNamedElement("url(#p1)"))
	assert.Nil(t, sv.FindNamedElement("nope"))

	sv = openTestFile(t, "dialect.svg")
	assert.NotNil(t, sv.FindNamedElement("clipRect"), "defs elements are found")
}

func TestUniqueIds(t *testing.T) {
	sv := openTestFile(t, "layered.svg")
	sv.GatherIDs()

	// gathering never renames existing elements
	assert.NotNil(t, sv.FindNamedElement("path10"))
	assert.NotNil(t, sv.FindNamedElement("path11"))

	fresh := NewPath()
	sv.NodeEnsureUniqueID(fresh)
	assert.True(t, strings.HasPrefix(fresh.Name, "path"))
	assert.NotEqual(t, "path10", fresh.Name)
	assert.NotEqual(t, "path11", fresh.Name)

	second := NewPath()
	sv.NodeEnsureUniqueID(second)
	assert.NotEqual(t, fresh.Name, second.Name)
}

func TestStyleProperties(t *testing.T) {
	var props map[string]any
	SetStylePropertiesXML("fill:#ff0000; stroke:none;", &props)
	assert.Equal(t, "#ff0000", props["fill"])
	assert.Equal(t, "none", props["stroke"])

	props["transform"] = "translate(1,2)"
	props["inkscape:label"] = "L1"
	assert.Equal(t, "fill:#ff0000;stroke:none;", StylePropertiesXML(props))
}

func TestNodeStyleProperties(t *testing.T) {
	sv := openTestFile(t, "layered.svg")
	p, ok := sv.FindNamedElement("path10").(*Path)
	require.True(t, ok)
	sp := p.StyleProperties()
	assert.Equal(t, "#00ff00", sp["fill"])
	layer, ok := sv.FindNamedElement("layer1").(*Group)
	require.True(t, ok)
	assert.NotContains(t, layer.StyleProperties(), "inkscape:groupmode")
}

func TestViewBox(t *testing.T) {
	var vb ViewBox
	require.NoError(t, vb.SetString("0 0 100 50"))
	tolassert.Equal(t, float32(100), vb.Size.X)
	tolassert.Equal(t, float32(50), vb.Size.Y)
	assert.Equal(t, "0 0 100 50", vb.String())
	assert.Error(t, vb.SetString("1 2 3"))
}

func TestClone(t *testing.T) {
	sv := openTestFile(t, "two-rects.svg")
	p1, ok := sv.FindNamedElement("p1").(*Path)
	require.True(t, ok)
	cln, ok := p1.Clone().(*Path)
	require.True(t, ok)
	assert.Equal(t, p1.DataStr, cln.DataStr)
	assert.Equal(t, p1.Property("fill"), cln.Property("fill"))

	// the clone is independent of the original
	cln.SetProperty("fill", "#123456")
	assert.NotEqual(t, p1.Property("fill"), cln.Property("fill"))
}
