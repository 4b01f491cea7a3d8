// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"fmt"
	"slices"
	"strings"
)

// SetStylePropertiesXML sets style properties in the given map from the
// given XML style string, which contains ';' separated name: value
// declarations. The map is allocated if nil.
func SetStylePropertiesXML(style string, properties *map[string]any) {
	st := strings.Split(style, ";")
	for _, s := range st {
		kv := strings.Split(s, ":")
		n := len(kv)
		if n < 2 {
			continue
		}
		if *properties == nil {
			*properties = map[string]any{}
		}
		k := strings.TrimSpace(strings.ToLower(kv[n-2]))
		if n == 3 { // prefixed name
			k = strings.TrimSpace(strings.ToLower(kv[0])) + ":" + k
		}
		(*properties)[k] = strings.TrimSpace(kv[n-1])
	}
}

// StylePropertiesXML returns an XML style string from the given
// properties map, as ';' separated name: value declarations in sorted
// order. The transform and dialect-prefixed properties are excluded,
// as they are written as separate XML attributes.
func StylePropertiesXML(properties map[string]any) string {
	keys := make([]string, 0, len(properties))
	for k := range properties {
		if k == "transform" || strings.Contains(k, ":") {
			continue
		}
		keys = append(keys, k)
	}
	slices.Sort(keys)
	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(fmt.Sprintf("%s:%s;", k, propString(properties[k])))
	}
	return sb.String()
}

// propString returns the string representation of the given property
// value. Properties parsed from XML are already strings.
func propString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
