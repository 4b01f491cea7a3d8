// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Handler is a [slog.Handler] whose level is dynamically controlled
// by [UserLevel] and whose output is formatted for reading by the
// end user of a command line tool, with colored level tags and
// "key=value" attributes.
type Handler struct {
	w      io.Writer
	mu     *sync.Mutex
	attrs  []slog.Attr
	groups []string
}

// NewHandler returns a new [Handler] writing to the given writer.
func NewHandler(w io.Writer) *Handler {
	return &Handler{w: w, mu: &sync.Mutex{}}
}

// SetDefaultLogger sets the default logger to be a [Handler] writing
// to [os.Stderr]. It is called on program start by the commands in
// this repository, after setting [UserLevel] from their flags.
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= UserLevel
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	b := &strings.Builder{}
	if r.Level != slog.LevelInfo {
		b.WriteString(LevelColor(r.Level))
		b.WriteString(": ")
	}
	b.WriteString(r.Message)
	prefix := strings.Join(h.groups, ".")
	if prefix != "" {
		prefix += "."
	}
	for _, a := range h.attrs {
		writeAttr(b, prefix, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(b, prefix, a)
		return true
	})
	b.WriteString("\n")
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write([]byte(b.String()))
	return err
}

func writeAttr(b *strings.Builder, prefix string, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	b.WriteString(" ")
	b.WriteString(DebugColor(prefix + a.Key + "="))
	b.WriteString(a.Value.String())
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := &Handler{w: h.w, mu: h.mu, groups: h.groups}
	nh.attrs = append(append(nh.attrs, h.attrs...), attrs...)
	return nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	nh := &Handler{w: h.w, mu: h.mu, attrs: h.attrs}
	nh.groups = append(append(nh.groups, h.groups...), name)
	return nh
}
