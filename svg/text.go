// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"github.com/Roger5006/Agent-to-Generate-Inkscape-Graphics/math32"
)

// Text is an SVG text element. The text string is in the Text field;
// a text element with no string serves as a container for tspan
// children, which are also represented by this type.
type Text struct {
	NodeBase

	// position of the left, baseline of the text
	Pos math32.Vector2 `xml:"{x,y}"`

	// text string to render
	Text string `xml:"text"`
}

// NewText returns a new [Text] with the given optional parent.
func NewText(parent ...Node) *Text { return New[Text](parent...) }

func (g *Text) SVGName() string {
	if g.Text != "" {
		return "tspan"
	}
	return "text"
}

// IsParText returns whether this text element is a parent containing
// tspan children, in which case it has no text string of its own.
func (g *Text) IsParText() bool {
	return g.Text == "" && g.HasChildren()
}
