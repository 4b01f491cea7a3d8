// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"github.com/Roger5006/Agent-to-Generate-Inkscape-Graphics/base/errors"
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// StyleSheet is a [Node] that contains a CSS stylesheet, from a style
// element. Property values contained in this sheet can be extracted
// into the properties maps set in the CSS field of appropriate nodes.
type StyleSheet struct {
	NodeBase

	// Sheet is the parsed stylesheet.
	Sheet *css.Stylesheet `copier:"-"`

	// Source is the CSS source text of the sheet, as read,
	// for writing back out.
	Source string
}

// NewStyleSheet returns a new [StyleSheet] with the given optional parent.
func NewStyleSheet(parent ...Node) *StyleSheet { return New[StyleSheet](parent...) }

func (ss *StyleSheet) SVGName() string { return "style" }

func (ss *StyleSheet) EnforceSVGName() bool { return false }

// ParseString parses the given CSS source into a sheet of rules,
// which can then be used for extracting properties.
func (ss *StyleSheet) ParseString(str string) error {
	pss, err := parser.Parse(str)
	if err != nil {
		return errors.Log(err)
	}
	ss.Source = str
	ss.Sheet = pss
	return nil
}

// CSSProperties returns the properties for each of the rules in this
// style sheet, suitable for setting the CSS value of a node.
// It returns nil for an empty sheet.
func (ss *StyleSheet) CSSProperties() map[string]any {
	if ss.Sheet == nil {
		return nil
	}
	sz := len(ss.Sheet.Rules)
	if sz == 0 {
		return nil
	}
	pr := make(map[string]any, sz)
	for _, r := range ss.Sheet.Rules {
		if r.Kind == css.AtRule {
			continue // not supported
		}
		nd := len(r.Declarations)
		if nd == 0 {
			continue
		}
		for _, sel := range r.Selectors {
			sp := make(map[string]any, nd)
			for _, de := range r.Declarations {
				sp[de.Property] = de.Value
			}
			pr[sel] = sp
		}
	}
	return pr
}

// CopyFieldsFrom re-parses the sheet from the copied source,
// instead of copying the Sheet pointer.
func (ss *StyleSheet) CopyFieldsFrom(from Node) {
	fr, ok := from.(*StyleSheet)
	if !ok {
		return
	}
	ss.NodeBase.CopyFieldsFrom(from)
	if fr.Source != "" {
		ss.ParseString(fr.Source)
	}
}

//////// MetaData

// MetaData is an element that holds metadata and other elements that
// the model does not interpret, such as sodipodi:namedview, which are
// round-tripped unchanged. The element name is stored in Class, and
// the attributes in Properties under their prefixed names.
type MetaData struct {
	NodeBase

	// MetaData is the character data content of the element, if any.
	MetaData string
}

// NewMetaData returns a new [MetaData] with the given optional parent.
func NewMetaData(parent ...Node) *MetaData { return New[MetaData](parent...) }

func (g *MetaData) SVGName() string {
	if g.Class != "" {
		return g.Class
	}
	return "metadata"
}

func (g *MetaData) EnforceSVGName() bool { return false }
