// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"fmt"

	"github.com/Roger5006/Agent-to-Generate-Inkscape-Graphics/base/errors"
	"github.com/Roger5006/Agent-to-Generate-Inkscape-Graphics/math32"
)

// ViewBox is used in SVG to define the coordinate system for the drawing.
type ViewBox struct {

	// offset or starting point in parent Viewport2D
	Min math32.Vector2

	// size of viewbox within parent Viewport2D
	Size math32.Vector2
}

// Defaults returns viewbox to defaults
func (vb *ViewBox) Defaults() {
	vb.Min = math32.Vector2{}
	vb.Size = math32.Vector2{}
}

// String returns the viewBox attribute value: "min-x min-y width height".
func (vb *ViewBox) String() string {
	return fmt.Sprintf("%g %g %g %g", vb.Min.X, vb.Min.Y, vb.Size.X, vb.Size.Y)
}

// SetString sets the viewbox from the given viewBox attribute value,
// which must contain four space or comma separated numbers.
func (vb *ViewBox) SetString(val string) error {
	pts := math32.ReadPoints(val)
	if len(pts) != 4 {
		return errors.Errorf("svg.ViewBox: viewBox attribute %q does not have 4 values", val)
	}
	vb.Min.Set(pts[0], pts[1])
	vb.Size.Set(pts[2], pts[3])
	return nil
}
