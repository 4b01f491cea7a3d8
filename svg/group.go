// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

// Group groups together SVG elements.
// Provides a common transform for all group elements
// and shared style properties.
type Group struct {
	NodeBase
}

// NewGroup returns a new [Group] with the given optional parent.
func NewGroup(parent ...Node) *Group { return New[Group](parent...) }

func (g *Group) SVGName() string { return "g" }

func (g *Group) EnforceSVGName() bool { return false }
