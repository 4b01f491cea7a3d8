// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/Roger5006/Agent-to-Generate-Inkscape-Graphics/base/errors"
	"github.com/Roger5006/Agent-to-Generate-Inkscape-Graphics/math32"
	"golang.org/x/net/html/charset"
)

// this file contains all the IO-related parsing etc routines

// nsURIPrefixes maps XML namespace URIs to the canonical prefixes for
// the SVG dialects that are read and written, so that dialect
// attributes and elements keep their prefixed names through a
// read / write round trip.
var nsURIPrefixes = map[string]string{
	"http://www.w3.org/2000/svg":                         "",
	"http://www.inkscape.org/namespaces/inkscape":        "inkscape",
	"http://sodipodi.sourceforge.net/DTD/sodipodi-0.dtd": "sodipodi",
	"http://www.w3.org/1999/xlink":                       "xlink",
	"http://www.w3.org/XML/1998/namespace":               "xml",
	"http://purl.org/dc/elements/1.1/":                   "dc",
	"http://creativecommons.org/ns#":                     "cc",
	"http://www.w3.org/1999/02/22-rdf-syntax-ns#":        "rdf",
}

// nsPrefixURIs is the inverse of [nsURIPrefixes], for writing the
// xmlns declarations of the prefixes a document uses.
var nsPrefixURIs = map[string]string{}

func init() {
	for uri, p := range nsURIPrefixes {
		if p != "" {
			nsPrefixURIs[p] = uri
		}
	}
}

// xmlName returns the prefixed name for the given XML name, using
// [nsURIPrefixes] for resolved namespace URIs. An unresolved prefix
// (on input missing the xmlns declaration) is kept verbatim; an
// unknown URI falls back to the local name.
func xmlName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	if p, ok := nsURIPrefixes[n.Space]; ok {
		if p == "" {
			return n.Local
		}
		return p + ":" + n.Local
	}
	if !strings.ContainsAny(n.Space, "/:") { // undeclared prefix kept as-is
		return n.Space + ":" + n.Local
	}
	return n.Local
}

// xmlAttr returns the value of the attribute with the given local
// name, or "" if there is none.
func xmlAttr(name string, attrs []xml.Attr) string {
	for _, attr := range attrs {
		if attr.Name.Local == name {
			return attr.Value
		}
	}
	return ""
}

// OpenXML opens XML-formatted SVG input from the given file.
func (sv *SVG) OpenXML(fname string) error {
	fi, err := os.Stat(fname)
	if err != nil {
		return errors.Log(err)
	}
	if fi.IsDir() {
		return errors.Log(errors.Errorf("svg.OpenXML: file is a directory: %v", fname))
	}
	fp, err := os.Open(fname)
	if err != nil {
		return errors.Log(err)
	}
	defer fp.Close()
	return sv.ReadXML(bufio.NewReader(fp))
}

// OpenFS opens XML-formatted SVG input from the given file,
// in the given filesystem.
func (sv *SVG) OpenFS(fsys fs.FS, fname string) error {
	fp, err := fsys.Open(fname)
	if err != nil {
		return errors.Log(err)
	}
	defer fp.Close()
	return sv.ReadXML(bufio.NewReader(fp))
}

// ReadXML reads XML-formatted SVG input from the given io.Reader, and
// uses xml.Decoder to create the SVG document tree. It removes any
// existing content in the SVG first. To process a byte slice, pass:
// bytes.NewReader([]byte(str)). All errors are logged and also returned.
func (sv *SVG) ReadXML(reader io.Reader) error {
	decoder := xml.NewDecoder(reader)
	decoder.Strict = false
	decoder.AutoClose = xml.HTMLAutoClose
	decoder.Entity = xml.HTMLEntity
	decoder.CharsetReader = charset.NewReaderLabel
	var err error
outer:
	for {
		var t xml.Token
		t, err = decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return errors.Log(errors.Errorf("svg parsing error: %w", err))
		}
		switch se := t.(type) {
		case xml.StartElement:
			err = sv.UnmarshalXML(decoder, se)
			break outer
		}
	}
	if err == io.EOF {
		return nil
	}
	return err
}

// UnmarshalXML unmarshals the svg using the given xml.Decoder.
func (sv *SVG) UnmarshalXML(decoder *xml.Decoder, se xml.StartElement) error {
	start := &se

	sv.DeleteAll()

	curPar := sv.Root.This // current parent node into which elements are created
	curSvg := sv.Root
	inTitle := false
	inDesc := false
	inDef := false
	inCSS := false
	var curCSS *StyleSheet
	inTxt := false
	var curTxt *Text
	inTspn := false
	var curTspn *Text
	var defPrevPar Node // previous parent before a def encountered

	for {
		var t xml.Token
		var err error
		if start != nil {
			t = *start
			start = nil
		} else {
			t, err = decoder.Token()
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			return errors.Log(errors.Errorf("svg parsing error: %w", err))
		}
		switch se := t.(type) {
		case xml.StartElement:
			nm := se.Name.Local
			switch nm {
			case "svg":
				for _, attr := range se.Attr {
					if attr.Name.Space == "xmlns" || attr.Name.Local == "xmlns" {
						continue
					}
					if SetStandardXMLAttr(curSvg, xmlName(attr.Name), attr.Value) {
						continue
					}
					switch attr.Name.Local {
					case "viewBox":
						if err := curSvg.ViewBox.SetString(attr.Value); err != nil {
							return err
						}
					case "width":
						sv.PhysicalWidth = attr.Value
					case "height":
						sv.PhysicalHeight = attr.Value
					default:
						curSvg.SetProperty(xmlName(attr.Name), attr.Value)
					}
				}
			case "desc":
				inDesc = true
			case "title":
				inTitle = true
			case "defs":
				inDef = true
				defPrevPar = curPar
				curPar = sv.Defs.This
				for _, attr := range se.Attr {
					if SetStandardXMLAttr(sv.Defs, xmlName(attr.Name), attr.Value) {
						continue
					}
					sv.Defs.SetProperty(xmlName(attr.Name), attr.Value)
				}
			case "g":
				gp := NewGroup(curPar)
				curPar = gp.This
				for _, attr := range se.Attr {
					if SetStandardXMLAttr(gp, xmlName(attr.Name), attr.Value) {
						continue
					}
					gp.SetProperty(xmlName(attr.Name), attr.Value)
				}
			case "rect":
				rect := NewRect(curPar)
				var x, y, w, h, rx, ry float32
				for _, attr := range se.Attr {
					if SetStandardXMLAttr(rect, xmlName(attr.Name), attr.Value) {
						continue
					}
					switch attr.Name.Local {
					case "x":
						x, err = math32.ParseFloat32(attr.Value)
					case "y":
						y, err = math32.ParseFloat32(attr.Value)
					case "width":
						w, err = math32.ParseFloat32(attr.Value)
					case "height":
						h, err = math32.ParseFloat32(attr.Value)
					case "rx":
						rx, err = math32.ParseFloat32(attr.Value)
					case "ry":
						ry, err = math32.ParseFloat32(attr.Value)
					default:
						rect.SetProperty(xmlName(attr.Name), attr.Value)
					}
					if err != nil {
						return err
					}
				}
				rect.Pos.Set(x, y)
				rect.Size.Set(w, h)
				rect.Radius.Set(rx, ry)
			case "circle":
				circle := NewCircle(curPar)
				var cx, cy, r float32
				for _, attr := range se.Attr {
					if SetStandardXMLAttr(circle, xmlName(attr.Name), attr.Value) {
						continue
					}
					switch attr.Name.Local {
					case "cx":
						cx, err = math32.ParseFloat32(attr.Value)
					case "cy":
						cy, err = math32.ParseFloat32(attr.Value)
					case "r":
						r, err = math32.ParseFloat32(attr.Value)
					default:
						circle.SetProperty(xmlName(attr.Name), attr.Value)
					}
					if err != nil {
						return err
					}
				}
				circle.Pos.Set(cx, cy)
				circle.Radius = r
			case "ellipse":
				ellipse := NewEllipse(curPar)
				var cx, cy, rx, ry float32
				for _, attr := range se.Attr {
					if SetStandardXMLAttr(ellipse, xmlName(attr.Name), attr.Value) {
						continue
					}
					switch attr.Name.Local {
					case "cx":
						cx, err = math32.ParseFloat32(attr.Value)
					case "cy":
						cy, err = math32.ParseFloat32(attr.Value)
					case "rx":
						rx, err = math32.ParseFloat32(attr.Value)
					case "ry":
						ry, err = math32.ParseFloat32(attr.Value)
					default:
						ellipse.SetProperty(xmlName(attr.Name), attr.Value)
					}
					if err != nil {
						return err
					}
				}
				ellipse.Pos.Set(cx, cy)
				ellipse.Radii.Set(rx, ry)
			case "line":
				line := NewLine(curPar)
				var x1, x2, y1, y2 float32
				for _, attr := range se.Attr {
					if SetStandardXMLAttr(line, xmlName(attr.Name), attr.Value) {
						continue
					}
					switch attr.Name.Local {
					case "x1":
						x1, err = math32.ParseFloat32(attr.Value)
					case "y1":
						y1, err = math32.ParseFloat32(attr.Value)
					case "x2":
						x2, err = math32.ParseFloat32(attr.Value)
					case "y2":
						y2, err = math32.ParseFloat32(attr.Value)
					default:
						line.SetProperty(xmlName(attr.Name), attr.Value)
					}
					if err != nil {
						return err
					}
				}
				line.Start.Set(x1, y1)
				line.End.Set(x2, y2)
			case "polygon":
				polygon := NewPolygon(curPar)
				for _, attr := range se.Attr {
					if SetStandardXMLAttr(polygon, xmlName(attr.Name), attr.Value) {
						continue
					}
					switch attr.Name.Local {
					case "points":
						pts, perr := readPolyPoints(nm, attr.Value)
						if perr != nil {
							return perr
						}
						polygon.Points = pts
					default:
						polygon.SetProperty(xmlName(attr.Name), attr.Value)
					}
				}
			case "polyline":
				polyline := NewPolyline(curPar)
				for _, attr := range se.Attr {
					if SetStandardXMLAttr(polyline, xmlName(attr.Name), attr.Value) {
						continue
					}
					switch attr.Name.Local {
					case "points":
						pts, perr := readPolyPoints(nm, attr.Value)
						if perr != nil {
							return perr
						}
						polyline.Points = pts
					default:
						polyline.SetProperty(xmlName(attr.Name), attr.Value)
					}
				}
			case "path":
				path := NewPath(curPar)
				for _, attr := range se.Attr {
					if attr.Name.Local == "original-d" {
						continue
					}
					if SetStandardXMLAttr(path, xmlName(attr.Name), attr.Value) {
						continue
					}
					switch attr.Name.Local {
					case "d":
						err = path.SetData(attr.Value)
					default:
						path.SetProperty(xmlName(attr.Name), attr.Value)
					}
					if err != nil {
						return err
					}
				}
			case "text", "tspan":
				var txt *Text
				if nm == "text" {
					txt = NewText(curPar)
					inTxt = true
					curTxt = txt
				} else {
					if inTxt && curTxt != nil {
						txt = NewText(curTxt.This)
						txt.Pos = curTxt.Pos
					} else {
						txt = NewText(curPar)
					}
					inTspn = true
					curTspn = txt
				}
				for _, attr := range se.Attr {
					if SetStandardXMLAttr(txt, xmlName(attr.Name), attr.Value) {
						continue
					}
					switch attr.Name.Local {
					case "x":
						pts := math32.ReadPoints(attr.Value)
						if len(pts) == 1 {
							txt.Pos.X = pts[0]
						}
					case "y":
						pts := math32.ReadPoints(attr.Value)
						if len(pts) == 1 {
							txt.Pos.Y = pts[0]
						}
					default:
						txt.SetProperty(xmlName(attr.Name), attr.Value)
					}
				}
			case "style":
				sty := NewStyleSheet(curPar)
				for _, attr := range se.Attr {
					if SetStandardXMLAttr(sty, xmlName(attr.Name), attr.Value) {
						continue
					}
					sty.SetProperty(xmlName(attr.Name), attr.Value)
				}
				inCSS = true
				curCSS = sty
				// style code shows up in CharData below
			case "use":
				link := xmlAttr("href", se.Attr)
				itm := sv.FindNamedElement(link)
				if itm != nil {
					cln := itm.AsNodeBase().Clone()
					if cln != nil {
						curPar.AsNodeBase().AddChild(cln)
						for _, attr := range se.Attr {
							if SetStandardXMLAttr(cln, xmlName(attr.Name), attr.Value) {
								continue
							}
							cln.AsNodeBase().SetProperty(xmlName(attr.Name), attr.Value)
						}
					}
				}
			default:
				// anything else (inkscape / sodipodi dialect elements,
				// metadata, gradients, filters) round trips as an opaque
				// node keeping its element name and attributes verbatim.
				md := NewMetaData(curPar)
				curPar = md.This
				md.Class = xmlName(se.Name)
				slog.Debug("svg.ReadXML: opaque element", "element", md.Class)
				for _, attr := range se.Attr {
					if attr.Name.Space == "" && attr.Name.Local == "id" {
						md.SetName(attr.Value)
						continue
					}
					md.SetProperty(xmlName(attr.Name), attr.Value)
				}
			}
		case xml.EndElement:
			switch se.Name.Local {
			case "title":
				inTitle = false
			case "desc":
				inDesc = false
			case "style":
				inCSS = false
				curCSS = nil
			case "text":
				inTxt = false
				curTxt = nil
			case "tspan":
				inTspn = false
				curTspn = nil
			case "defs":
				if inDef {
					inDef = false
					curPar = defPrevPar
				}
			case "rect", "circle", "ellipse", "line", "polygon", "polyline", "path", "use":
			default:
				if curPar == sv.Root.This {
					break
				}
				if curPar.AsNodeBase().Parent == nil {
					break
				}
				curPar = curPar.AsNodeBase().Parent
			}
		case xml.CharData:
			trspc := strings.TrimSpace(string(se))
			switch {
			case inTitle:
				sv.Title += trspc
			case inDesc:
				sv.Desc += trspc
			case inTspn && curTspn != nil:
				curTspn.Text = trspc
			case inTxt && curTxt != nil:
				curTxt.Text = trspc
			case inCSS && curCSS != nil:
				curCSS.ParseString(trspc)
				cp := curCSS.CSSProperties()
				if cp != nil {
					if inDef && defPrevPar != nil {
						defPrevPar.AsNodeBase().CSS = cp
					} else {
						curPar.AsNodeBase().CSS = cp
					}
				}
			default:
				if md, ok := curPar.(*MetaData); ok && trspc != "" {
					md.MetaData = trspc
				}
			}
		}
	}
	sv.Defs.WalkDown(func(n Node) bool {
		n.AsNodeBase().isDef = true
		return Continue
	})
	return nil
}

// readPolyPoints parses the points attribute of a polygon or polyline.
func readPolyPoints(nm, val string) ([]math32.Vector2, error) {
	pts := math32.ReadPoints(val)
	sz := len(pts)
	if sz%2 != 0 {
		return nil, errors.Log(errors.Errorf("svg %s has an odd number of points: %v str: %v", nm, sz, val))
	}
	pvec := make([]math32.Vector2, sz/2)
	for ci := 0; ci < sz/2; ci++ {
		pvec[ci].Set(pts[ci*2], pts[ci*2+1])
	}
	return pvec, nil
}

// SetStandardXMLAttr sets standard attributes of node given XML-style
// name / attribute values (e.g., from parsing XML / SVG files);
// returns true if handled.
func SetStandardXMLAttr(ni Node, name, val string) bool {
	nb := ni.AsNodeBase()
	switch name {
	case "id":
		nb.SetName(val)
		return true
	case "class":
		nb.Class = val
		return true
	case "style":
		SetStylePropertiesXML(val, &nb.Properties)
		return true
	case "transform":
		nb.Transform.SetString(val)
		nb.SetProperty("transform", val)
		return true
	}
	return false
}

//////// Writing

// SaveXML saves the svg to an XML-encoded file, using [SVG.WriteXML].
func (sv *SVG) SaveXML(fname string) error {
	fp, err := os.Create(fname)
	if err != nil {
		return errors.Log(err)
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	err = sv.WriteXML(bw, true)
	if err != nil {
		return errors.Log(err)
	}
	return errors.Log(bw.Flush())
}

// WriteXML writes XML-formatted SVG output to the given io.Writer,
// using an [XMLEncoder], optionally indenting each element.
func (sv *SVG) WriteXML(wr io.Writer, indent bool) error {
	enc := NewXMLEncoder(wr)
	if indent {
		enc.Indent("", "  ")
	}
	err := sv.MarshalXMLx(enc, xml.StartElement{})
	if err != nil {
		return err
	}
	return enc.Flush()
}

// XMLAddAttr adds a new attribute to the given attribute list.
func XMLAddAttr(attr *[]xml.Attr, name, val string) {
	at := xml.Attr{}
	at.Name.Local = name
	at.Value = val
	*attr = append(*attr, at)
}

// xmlAddCommonAttrs adds the attributes common to all elements:
// style declarations, the transform, and the dialect-prefixed
// attributes, in a deterministic order.
func xmlAddCommonAttrs(se *xml.StartElement, nb *NodeBase) {
	if sp := StylePropertiesXML(nb.Properties); sp != "" {
		XMLAddAttr(&se.Attr, "style", sp)
	}
	if txp, has := nb.Properties["transform"]; has {
		XMLAddAttr(&se.Attr, "transform", propString(txp))
	}
	keys := make([]string, 0, len(nb.Properties))
	for k := range nb.Properties {
		if strings.Contains(k, ":") {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	for _, k := range keys {
		XMLAddAttr(&se.Attr, k, propString(nb.Properties[k]))
	}
}

// xmlAddAllAttrs adds every property as a plain attribute, sorted,
// for opaque dialect elements that round trip verbatim.
func xmlAddAllAttrs(se *xml.StartElement, nb *NodeBase) {
	keys := make([]string, 0, len(nb.Properties))
	for k := range nb.Properties {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		XMLAddAttr(&se.Attr, k, propString(nb.Properties[k]))
	}
}

// MarshalXML encodes just the given node under SVG to XML.
// It returns the name of the node, for the end tag; if empty,
// then children will not be output.
func MarshalXML(n Node, enc *XMLEncoder, setName string) string {
	if n == nil || n.AsNodeBase().This == nil {
		return ""
	}
	se := xml.StartElement{}
	nb := n.AsNodeBase()
	if nb.Name != "" {
		XMLAddAttr(&se.Attr, "id", nb.Name)
	}
	if _, ismd := n.(*MetaData); !ismd {
		if nb.Class != "" {
			XMLAddAttr(&se.Attr, "class", nb.Class)
		}
		xmlAddCommonAttrs(&se, nb)
	}
	text := "" // if non-empty, contains text content to write
	nm := ""
	switch nd := n.(type) {
	case *Path:
		nm = "path"
		nd.UpdatePathString()
		XMLAddAttr(&se.Attr, "d", nd.DataStr)
	case *Group:
		nm = "g"
	case *Rect:
		nm = "rect"
		XMLAddAttr(&se.Attr, "x", fmt.Sprintf("%g", nd.Pos.X))
		XMLAddAttr(&se.Attr, "y", fmt.Sprintf("%g", nd.Pos.Y))
		XMLAddAttr(&se.Attr, "width", fmt.Sprintf("%g", nd.Size.X))
		XMLAddAttr(&se.Attr, "height", fmt.Sprintf("%g", nd.Size.Y))
		if nd.Radius.X > 0 {
			XMLAddAttr(&se.Attr, "rx", fmt.Sprintf("%g", nd.Radius.X))
		}
		if nd.Radius.Y > 0 {
			XMLAddAttr(&se.Attr, "ry", fmt.Sprintf("%g", nd.Radius.Y))
		}
	case *Circle:
		nm = "circle"
		XMLAddAttr(&se.Attr, "cx", fmt.Sprintf("%g", nd.Pos.X))
		XMLAddAttr(&se.Attr, "cy", fmt.Sprintf("%g", nd.Pos.Y))
		XMLAddAttr(&se.Attr, "r", fmt.Sprintf("%g", nd.Radius))
	case *Ellipse:
		nm = "ellipse"
		XMLAddAttr(&se.Attr, "cx", fmt.Sprintf("%g", nd.Pos.X))
		XMLAddAttr(&se.Attr, "cy", fmt.Sprintf("%g", nd.Pos.Y))
		XMLAddAttr(&se.Attr, "rx", fmt.Sprintf("%g", nd.Radii.X))
		XMLAddAttr(&se.Attr, "ry", fmt.Sprintf("%g", nd.Radii.Y))
	case *Line:
		nm = "line"
		XMLAddAttr(&se.Attr, "x1", fmt.Sprintf("%g", nd.Start.X))
		XMLAddAttr(&se.Attr, "y1", fmt.Sprintf("%g", nd.Start.Y))
		XMLAddAttr(&se.Attr, "x2", fmt.Sprintf("%g", nd.End.X))
		XMLAddAttr(&se.Attr, "y2", fmt.Sprintf("%g", nd.End.Y))
	case *Polygon:
		nm = "polygon"
		XMLAddAttr(&se.Attr, "points", polyPointsString(nd.Points))
	case *Polyline:
		nm = "polyline"
		XMLAddAttr(&se.Attr, "points", polyPointsString(nd.Points))
	case *Text:
		nm = nd.SVGName()
		XMLAddAttr(&se.Attr, "x", fmt.Sprintf("%g", nd.Pos.X))
		XMLAddAttr(&se.Attr, "y", fmt.Sprintf("%g", nd.Pos.Y))
		text = nd.Text
	case *StyleSheet:
		nm = "style"
		text = nd.Source
	case *MetaData:
		nm = nd.SVGName()
		xmlAddAllAttrs(&se, nb)
		text = nd.MetaData
	default:
		nm = n.SVGName()
	}
	se.Name.Local = nm
	if setName != "" {
		se.Name.Local = setName
	}
	enc.EncodeToken(se)
	if text != "" {
		enc.EncodeToken(xml.CharData(text))
	}
	return se.Name.Local
}

// polyPointsString encodes the points attribute of a polygon or polyline.
func polyPointsString(points []math32.Vector2) string {
	var sb strings.Builder
	for i, p := range points {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%g,%g", p.X, p.Y)
	}
	return sb.String()
}

// MarshalXMLTree encodes the given node and any children to XML.
// It returns any error, and the name of the element that
// enc.WriteEnd() should be called with; allows for extra elements
// to be added at the end of the list.
func MarshalXMLTree(n Node, enc *XMLEncoder, setName string) (string, error) {
	name := MarshalXML(n, enc, setName)
	if name == "" {
		return "", nil
	}
	for _, k := range n.AsNodeBase().Children {
		knm, err := MarshalXMLTree(k, enc, "")
		if knm != "" {
			enc.WriteEnd(knm)
		}
		if err != nil {
			return name, err
		}
	}
	return name, nil
}

// MarshalXMLx marshals the svg document using the given [XMLEncoder].
func (sv *SVG) MarshalXMLx(enc *XMLEncoder, se xml.StartElement) error {
	me := xml.StartElement{}
	me.Name.Local = "svg"
	if sv.Root.Name != "" && sv.Root.Name != "svg" {
		XMLAddAttr(&me.Attr, "id", sv.Root.Name)
	}
	if sv.Root.Class != "" {
		XMLAddAttr(&me.Attr, "class", sv.Root.Class)
	}
	if sv.PhysicalWidth != "" {
		XMLAddAttr(&me.Attr, "width", sv.PhysicalWidth)
	}
	if sv.PhysicalHeight != "" {
		XMLAddAttr(&me.Attr, "height", sv.PhysicalHeight)
	}
	if sv.Root.ViewBox.Size != (math32.Vector2{}) {
		XMLAddAttr(&me.Attr, "viewBox", sv.Root.ViewBox.String())
	}
	xmlAddAllAttrs(&me, &sv.Root.NodeBase)
	for _, p := range sv.usedPrefixes() {
		XMLAddAttr(&me.Attr, "xmlns:"+p, nsPrefixURIs[p])
	}
	XMLAddAttr(&me.Attr, "xmlns", "http://www.w3.org/2000/svg")
	enc.EncodeToken(me)

	if sv.Title != "" {
		ts := xml.StartElement{}
		ts.Name.Local = "title"
		enc.EncodeToken(ts)
		enc.EncodeToken(xml.CharData(sv.Title))
		enc.WriteEnd(ts.Name.Local)
	}
	if sv.Desc != "" {
		ds := xml.StartElement{}
		ds.Name.Local = "desc"
		enc.EncodeToken(ds)
		enc.EncodeToken(xml.CharData(sv.Desc))
		enc.WriteEnd(ds.Name.Local)
	}

	dnm, err := MarshalXMLTree(sv.Defs.This, enc, "defs")
	if dnm != "" {
		enc.WriteEnd(dnm)
	}

	for _, k := range sv.Root.Children {
		var knm string
		knm, err = MarshalXMLTree(k, enc, "")
		if knm != "" {
			enc.WriteEnd(knm)
		}
		if err != nil {
			break
		}
	}

	ed := xml.EndElement{}
	ed.Name = me.Name
	enc.EncodeToken(ed)
	return err
}

// usedPrefixes returns the sorted dialect namespace prefixes used by
// elements and attributes of this document, for the root xmlns
// declarations. The inkscape and sodipodi prefixes are always
// declared; the reserved xml prefix never is.
func (sv *SVG) usedPrefixes() []string {
	used := map[string]bool{"inkscape": true, "sodipodi": true}
	gather := func(n Node) bool {
		nb := n.AsNodeBase()
		if ci := strings.Index(nb.Class, ":"); ci > 0 {
			used[nb.Class[:ci]] = true
		}
		for k := range nb.Properties {
			if ci := strings.Index(k, ":"); ci > 0 {
				used[k[:ci]] = true
			}
		}
		return Continue
	}
	sv.Root.WalkDown(gather)
	sv.Defs.WalkDown(gather)
	ps := make([]string, 0, len(used))
	for p := range used {
		if _, known := nsPrefixURIs[p]; known && p != "xml" {
			ps = append(ps, p)
		}
	}
	slices.Sort(ps)
	return ps
}
