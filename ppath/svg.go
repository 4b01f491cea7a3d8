// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is adapted from https://github.com/tdewolff/canvas
// Copyright (c) 2015 Taco de Wolff, under an MIT License.

package ppath

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Roger5006/Agent-to-Generate-Inkscape-Graphics/math32"
)

// num formats a coordinate for SVG output at [Precision]
// significant digits.
func num(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', Precision, 32)
}

// String returns a string that represents the path similar to the SVG path
// data format (but not necessarily valid SVG).
func (p Path) String() string {
	sb := strings.Builder{}
	for i := 0; i < len(p); {
		cmd := p[i]
		switch cmd {
		case MoveTo:
			fmt.Fprintf(&sb, "M%g %g", p[i+1], p[i+2])
		case LineTo:
			fmt.Fprintf(&sb, "L%g %g", p[i+1], p[i+2])
		case QuadTo:
			fmt.Fprintf(&sb, "Q%g %g %g %g", p[i+1], p[i+2], p[i+3], p[i+4])
		case CubeTo:
			fmt.Fprintf(&sb, "C%g %g %g %g %g %g", p[i+1], p[i+2], p[i+3], p[i+4], p[i+5], p[i+6])
		case ArcTo:
			rot := math32.RadToDeg(p[i+3])
			large, sweep := ToArcFlags(p[i+4])
			sLarge := "0"
			if large {
				sLarge = "1"
			}
			sSweep := "0"
			if sweep {
				sSweep = "1"
			}
			fmt.Fprintf(&sb, "A%g %g %g %s %s %g %g", p[i+1], p[i+2], rot, sLarge, sSweep, p[i+5], p[i+6])
		case Close:
			fmt.Fprintf(&sb, "z")
		}
		i += CmdLen(cmd)
	}
	return sb.String()
}

// ToSVG returns a string that represents the path in the SVG path data
// format with minification, using V and H shorthands for axis-aligned
// lines and dropping zero-length segments.
func (p Path) ToSVG() string {
	if p.Empty() {
		return ""
	}

	sb := strings.Builder{}
	var x, y float32
	for i := 0; i < len(p); {
		cmd := p[i]
		switch cmd {
		case MoveTo:
			x, y = p[i+1], p[i+2]
			fmt.Fprintf(&sb, "M%v %v", num(x), num(y))
		case LineTo:
			xStart, yStart := x, y
			x, y = p[i+1], p[i+2]
			if Equal(x, xStart) && Equal(y, yStart) {
				// nothing
			} else if Equal(x, xStart) {
				fmt.Fprintf(&sb, "V%v", num(y))
			} else if Equal(y, yStart) {
				fmt.Fprintf(&sb, "H%v", num(x))
			} else {
				fmt.Fprintf(&sb, "L%v %v", num(x), num(y))
			}
		case QuadTo:
			x, y = p[i+3], p[i+4]
			fmt.Fprintf(&sb, "Q%v %v %v %v", num(p[i+1]), num(p[i+2]), num(x), num(y))
		case CubeTo:
			x, y = p[i+5], p[i+6]
			fmt.Fprintf(&sb, "C%v %v %v %v %v %v", num(p[i+1]), num(p[i+2]), num(p[i+3]), num(p[i+4]), num(x), num(y))
		case ArcTo:
			rx, ry := p[i+1], p[i+2]
			rot := math32.RadToDeg(p[i+3])
			large, sweep := ToArcFlags(p[i+4])
			x, y = p[i+5], p[i+6]
			sLarge := "0"
			if large {
				sLarge = "1"
			}
			sSweep := "0"
			if sweep {
				sSweep = "1"
			}
			if 90.0 <= rot {
				rx, ry = ry, rx
				rot -= 90.0
			}
			fmt.Fprintf(&sb, "A%v %v %v %s %s %v %v", num(rx), num(ry), num(rot), sLarge, sSweep, num(x), num(y))
		case Close:
			x, y = p[i+1], p[i+2]
			fmt.Fprintf(&sb, "z")
		}
		i += CmdLen(cmd)
	}
	return sb.String()
}
