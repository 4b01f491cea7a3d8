// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import "github.com/Roger5006/Agent-to-Generate-Inkscape-Graphics/math32"

// SVG is an SVG document object model, with a tree of [Node] elements
// under [SVG.Root], read and written by [SVG.ReadXML] and [SVG.WriteXML].
type SVG struct {
	// Name is the name of the SVG -- e.g., the filename if loaded
	Name string

	// the title of the svg
	Title string `xml:"title"`

	// the description of the svg
	Desc string `xml:"desc"`

	// PhysicalWidth is the physical width of the drawing, e.g., when
	// printed, as the raw width attribute value ("210mm", "4in").
	// Does not affect geometry; metadata.
	PhysicalWidth string

	// PhysicalHeight is the physical height of the drawing,
	// as the raw height attribute value.
	PhysicalHeight string

	// Defs is where all defs defined elements go
	// (gradients, markers, symbols, etc).
	Defs *Group

	// Root is the root of the svg tree, carrying the top-level
	// viewBox and document attributes.
	Root *Root

	// map of def names to index. uses starting index to find element.
	// always updated after each search.
	DefIndexes map[string]int `json:"-" xml:"-"`

	// map of unique numeric ids for all elements.
	// Used for allocating new unique id numbers, appended to end of elements.
	// See [SVG.NewUniqueID], [SVG.GatherIDs].
	UniqueIds map[int]struct{} `json:"-" xml:"-"`
}

// NewSVG creates a new empty SVG document.
func NewSVG() *SVG {
	sv := &SVG{}
	sv.Root = New[Root]()
	sv.Root.SetName("svg")
	sv.Defs = New[Group]()
	sv.Defs.SetName("defs")
	sv.Defs.isDef = true
	return sv
}

// DeleteAll deletes any existing elements in this svg,
// including the defs, and resets the document metadata.
func (sv *SVG) DeleteAll() {
	if sv.Root == nil || sv.Root.This == nil {
		return
	}
	sv.Root.DeleteChildren()
	sv.Root.SetName("svg")
	sv.Root.Class = ""
	sv.Root.Properties = nil
	sv.Root.Transform = math32.Identity2()
	sv.Root.ViewBox = ViewBox{}
	sv.Defs.DeleteChildren()
	sv.Defs.SetName("defs")
	sv.Defs.Properties = nil
	sv.Title = ""
	sv.Desc = ""
	sv.PhysicalWidth = ""
	sv.PhysicalHeight = ""
	sv.DefIndexes = nil
	sv.UniqueIds = nil
}

// NamedView returns the sodipodi:namedview metadata element of the
// document, or nil if there is none.
func (sv *SVG) NamedView() *MetaData {
	var nv *MetaData
	sv.Root.WalkDown(func(n Node) bool {
		if md, ok := n.(*MetaData); ok {
			if md.Class == "sodipodi:namedview" || md.Class == "namedview" {
				nv = md
				return Break
			}
		}
		return Continue
	})
	return nv
}

// CurrentLayer returns the group that new elements are added to:
// the group named by the inkscape:current-layer attribute of the
// sodipodi:namedview element, when present and resolvable to a group
// in this document; otherwise the document root.
func (sv *SVG) CurrentLayer() Node {
	nv := sv.NamedView()
	if nv == nil {
		return sv.Root.This
	}
	name := propString(nv.Property("inkscape:current-layer"))
	if name == "" {
		return sv.Root.This
	}
	if gp, ok := sv.FindNamedElement(name).(*Group); ok {
		return gp.This
	}
	return sv.Root.This
}

// IsLayer returns whether the given node is a layer group:
// a group with the inkscape:groupmode property set to "layer".
func IsLayer(n Node) bool {
	gp, ok := n.(*Group)
	if !ok {
		return false
	}
	return propString(gp.Property("inkscape:groupmode")) == "layer"
}

// Root represents the root of an SVG tree.
type Root struct {
	Group

	// ViewBox defines the coordinate system for the drawing.
	// These units are mapped into the screen space allocated
	// for the SVG during rendering.
	ViewBox ViewBox
}

func (r *Root) SVGName() string { return "svg" }

func (r *Root) EnforceSVGName() bool { return false }
