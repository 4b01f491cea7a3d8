// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package svg provides a document object model for SVG files: a tree of
typed element nodes that is read from and written back to XML, edited
programmatically, and saved without losing the editor dialect state
that Inkscape files carry.

The model covers the elements that path operations work with directly
(path, the basic shapes, groups, text, style sheets); everything else
round trips as opaque nodes keeping their element name, attributes,
and text content, including the sodipodi:namedview block that names
the current layer. There is no rendering.

svg.NodeBase is the base type for all SVG elements. Each node carries
its id (Name), its parsed transform, and a properties map holding both
the style declarations and the dialect-prefixed attributes such as
inkscape:groupmode. ParentTransform composes the transforms of a
node's ancestors into the "composed transform" that maps its local
coordinates into document coordinates.
*/
package svg
