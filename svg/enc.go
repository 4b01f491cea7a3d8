// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"bufio"
	"encoding/xml"
	"io"
)

// XMLEncoder is a minimal XML encoder used for writing SVG documents.
// Unlike [encoding/xml.Encoder], it writes elements with no content in
// the self-closing form, and end elements do not have to balance start
// elements: [XMLEncoder.WriteEnd] can close elements that were opened
// with modified names.
type XMLEncoder struct {
	w       *bufio.Writer
	prefix  string
	indent  string
	depth   int
	openTag string // start element written but not yet closed with '>'
	inText  bool   // last token was character data
	started bool   // anything has been written
	err     error
}

// NewXMLEncoder returns a new [XMLEncoder] writing to the given writer.
func NewXMLEncoder(wr io.Writer) *XMLEncoder {
	return &XMLEncoder{w: bufio.NewWriter(wr)}
}

// Indent sets the encoder to generate XML in which each element
// begins on a new line, indented according to its nesting depth,
// like [encoding/xml.Encoder.Indent].
func (e *XMLEncoder) Indent(prefix, indent string) {
	e.prefix, e.indent = prefix, indent
}

// EncodeToken writes the given [xml.StartElement], [xml.EndElement]
// or [xml.CharData] token. Errors are sticky and returned again from
// [XMLEncoder.Flush].
func (e *XMLEncoder) EncodeToken(t xml.Token) error {
	if e.err != nil {
		return e.err
	}
	switch t := t.(type) {
	case xml.StartElement:
		e.closeStart()
		e.inText = false
		e.writeIndent()
		e.write("<", t.Name.Local)
		for _, at := range t.Attr {
			e.write(" ", at.Name.Local, `="`)
			e.escape(at.Value)
			e.write(`"`)
		}
		e.openTag = t.Name.Local
		e.depth++
	case xml.CharData:
		e.closeStart()
		e.escape(string(t))
		e.inText = true
	case xml.EndElement:
		return e.WriteEnd(t.Name.Local)
	}
	return e.err
}

// WriteEnd writes the end element with the given name, closing the
// current element in self-closing form instead if nothing has been
// written since its start element.
func (e *XMLEncoder) WriteEnd(name string) error {
	if e.err != nil {
		return e.err
	}
	e.depth--
	if e.openTag == name && !e.inText {
		e.write(" />")
		e.openTag = ""
		return e.err
	}
	e.closeStart()
	if !e.inText {
		e.writeIndent()
	}
	e.write("</", name, ">")
	e.inText = false
	return e.err
}

// Flush flushes any buffered XML to the underlying writer,
// returning the first error encountered while encoding.
func (e *XMLEncoder) Flush() error {
	if e.err != nil {
		return e.err
	}
	e.err = e.w.Flush()
	return e.err
}

// closeStart closes any open start element with '>'.
func (e *XMLEncoder) closeStart() {
	if e.openTag == "" {
		return
	}
	e.write(">")
	e.openTag = ""
}

func (e *XMLEncoder) writeIndent() {
	if e.indent == "" && e.prefix == "" {
		return
	}
	if !e.started {
		e.started = true
	} else {
		e.write("\n")
	}
	e.write(e.prefix)
	for i := 0; i < e.depth; i++ {
		e.write(e.indent)
	}
}

func (e *XMLEncoder) write(strs ...string) {
	for _, s := range strs {
		if e.err != nil {
			return
		}
		_, e.err = e.w.WriteString(s)
	}
}

func (e *XMLEncoder) escape(s string) {
	if e.err != nil {
		return
	}
	e.err = xml.EscapeText(e.w, []byte(s))
}
