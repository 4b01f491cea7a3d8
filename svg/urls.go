// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"fmt"
	"log/slog"
	"math/rand"
	"strconv"
	"strings"
	"unicode"
)

//////// Naming elements with unique ids

// SplitNameIDDig splits name into numerical end part and preceding name,
// based on string of digits from end of name.
// If Id == 0 then it was not specified or didn't parse.
// SVG object names are element names + numerical id
func SplitNameIDDig(nm string) (string, int) {
	sz := len(nm)
	for i := sz - 1; i >= 0; i-- {
		c := rune(nm[i])
		if !unicode.IsDigit(c) {
			if i == sz-1 {
				return nm, 0
			}
			n := nm[:i+1]
			id, _ := strconv.Atoi(nm[i+1:])
			return n, id
		}
	}
	return nm, 0
}

// SplitNameID splits name after the element name (e.g., 'rect')
// returning true if it starts with element name,
// and numerical id part after that element.
// if numerical id part is 0, then it didn't parse.
// SVG object names are element names + numerical id
func SplitNameID(elnm, nm string) (bool, int) {
	if !strings.HasPrefix(nm, elnm) {
		return false, 0
	}
	idstr := nm[len(elnm):]
	id, _ := strconv.Atoi(idstr)
	return true, id
}

// NameID returns the name with given unique id.
// returns plain name if id == 0
func NameID(nm string, id int) string {
	if id == 0 {
		return nm
	}
	return fmt.Sprintf("%s%d", nm, id)
}

// GatherIDs gathers all the numeric id suffixes currently in use,
// in the main tree and the defs. It does not rename anything:
// existing document ids are left exactly as read.
func (sv *SVG) GatherIDs() {
	sv.UniqueIds = make(map[int]struct{})
	reg := func(n Node) bool {
		_, id := SplitNameIDDig(n.AsNodeBase().Name)
		if id > 0 {
			sv.UniqueIds[id] = struct{}{}
		}
		return Continue
	}
	sv.Root.WalkDown(reg)
	sv.Defs.WalkDown(reg)
}

// NodeEnsureUniqueID ensures that the given node has a unique id.
// Call this on any newly created nodes.
func (sv *SVG) NodeEnsureUniqueID(ni Node) {
	elnm := ni.SVGName()
	if elnm == "" {
		return
	}
	nb := ni.AsNodeBase()
	elpfx, id := SplitNameID(elnm, nb.Name)
	if !elpfx {
		if !ni.EnforceSVGName() { // if we end in a number, just register it anyway
			_, id = SplitNameIDDig(nb.Name)
			if id > 0 {
				sv.UniqueIds[id] = struct{}{}
			}
			return
		}
		_, id = SplitNameIDDig(nb.Name)
		if id > 0 {
			nb.SetName(NameID(elnm, id))
		}
	}
	_, exists := sv.UniqueIds[id]
	if id <= 0 || exists {
		id = sv.NewUniqueID() // automatically registers it
		nb.SetName(NameID(elnm, id))
	} else {
		sv.UniqueIds[id] = struct{}{}
	}
}

// NewUniqueID returns a new unique numerical id number, for naming an object
func (sv *SVG) NewUniqueID() int {
	if sv.UniqueIds == nil {
		sv.GatherIDs()
	}
	sz := len(sv.UniqueIds)
	var nid int
	for {
		switch {
		case sz >= 10000:
			nid = rand.Intn(sz * 100)
		case sz >= 1000:
			nid = rand.Intn(10000)
		default:
			nid = rand.Intn(1000)
		}
		if _, has := sv.UniqueIds[nid]; has {
			continue
		}
		break
	}
	sv.UniqueIds[nid] = struct{}{}
	return nid
}

// FindDefByName finds the [SVG.Defs] item by name, using cached
// indexes for speed.
func (sv *SVG) FindDefByName(defnm string) Node {
	if sv.DefIndexes == nil {
		sv.DefIndexes = make(map[string]int)
	}
	if idx, has := sv.DefIndexes[defnm]; has {
		if def := sv.Defs.Child(idx); def != nil && def.AsNodeBase().Name == defnm {
			return def
		}
	}
	for i, def := range sv.Defs.Children {
		if def.AsNodeBase().Name == defnm {
			sv.DefIndexes[defnm] = i
			return def
		}
	}
	delete(sv.DefIndexes, defnm) // not found -- delete from map
	return nil
}

// FindNamedElement finds the element with the given name (id) in the
// document, in the defs or the main tree. A url(#name) or #name prefix
// is trimmed first. It returns nil if no such element exists.
func (sv *SVG) FindNamedElement(name string) Node {
	if nm := NameFromURL(name); nm != "" {
		name = nm
	}
	name = strings.TrimPrefix(name, "#")
	if name == "" {
		return nil
	}
	def := sv.FindDefByName(name)
	if def != nil {
		return def
	}
	sv.Root.WalkDown(func(n Node) bool {
		if n.AsNodeBase().Name == name {
			def = n
			return Break
		}
		return Continue
	})
	if def != nil {
		return def
	}
	slog.Debug("svg.FindNamedElement: could not find element", "name", name)
	return nil
}

// NameFromURL returns just the name referred to in a url(#name)
// if it is not a url(#) format then returns empty string.
func NameFromURL(url string) string {
	if len(url) < 7 {
		return ""
	}
	if url[:5] != "url(#" {
		return ""
	}
	ref := url[5:]
	sz := len(ref)
	if ref[sz-1] == ')' {
		ref = ref[:sz-1]
	}
	return ref
}

// NameToURL returns url as: url(#name)
func NameToURL(nm string) string {
	return "url(#" + nm + ")"
}

// NodePropURL returns a url(#name) url from given prop name on node,
// or empty string if none.  Returned value is just the 'name' part
// of the url, not the full string.
func NodePropURL(n Node, prop string) string {
	fp := n.AsNodeBase().Property(prop)
	fs, iss := fp.(string)
	if !iss {
		return ""
	}
	return NameFromURL(fs)
}
