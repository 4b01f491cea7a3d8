// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"strconv"
	"strings"
)

// ParseFloat32 parses the given string as a float32. It handles
// trailing "px" units by stripping them, and "%" units by returning
// the number divided by 100, per SVG attribute conventions.
func ParseFloat32(pstr string) (float32, error) {
	pstr = strings.TrimSpace(pstr)
	pct := strings.HasSuffix(pstr, "%")
	if pct {
		pstr = strings.TrimSuffix(pstr, "%")
	}
	pstr = strings.TrimSuffix(pstr, "px")
	f, err := strconv.ParseFloat(pstr, 32)
	if err != nil {
		return 0, err
	}
	if pct {
		f /= 100
	}
	return float32(f), nil
}

// ReadPoints reads a set of whitespace and comma separated numbers
// from the given string, as in an SVG points or viewBox attribute,
// returning nil if the string is empty or any number fails to parse.
func ReadPoints(pstr string) []float32 {
	fields := strings.FieldsFunc(pstr, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) == 0 {
		return nil
	}
	pts := make([]float32, 0, len(fields))
	for _, fd := range fields {
		f, err := strconv.ParseFloat(fd, 32)
		if err != nil {
			return nil
		}
		pts = append(pts, float32(f))
	}
	return pts
}
