// Copyright (c) 2026, The GLShapes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] that writes one line per record,
// with the level colored according to the terminal profile of its output.
type Handler struct {
	out    *termenv.Output
	level  slog.Leveler
	mu     *sync.Mutex
	attrs  []slog.Attr
	groups []string
}

// NewHandler returns a new [Handler] writing to the given termenv output
// and showing records at or above the given level.
func NewHandler(out *termenv.Output, level slog.Leveler) *Handler {
	return &Handler{out: out, level: level, mu: &sync.Mutex{}}
}

// SetDefaultLogger sets the default logger to a [Handler] on stderr
// that uses [UserLevel].
func SetDefaultLogger() {
	SetDefaultLoggerTo(termenv.NewOutput(os.Stderr))
}

// SetDefaultLoggerTo sets the default logger to a [Handler] on the given
// output that uses [UserLevel].
func SetDefaultLoggerTo(out *termenv.Output) {
	slog.SetDefault(slog.New(NewHandler(out, UserLevel)))
}

func (h *Handler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level.Level()
}

// levelColor returns the ANSI color for the given level.
func levelColor(l slog.Level) termenv.ANSIColor {
	switch {
	case l >= slog.LevelError:
		return termenv.ANSIRed
	case l >= slog.LevelWarn:
		return termenv.ANSIYellow
	case l >= slog.LevelInfo:
		return termenv.ANSICyan
	default:
		return termenv.ANSIBrightBlack
	}
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(h.out.String(r.Level.String()).Foreground(levelColor(r.Level)).Bold().String())
	sb.WriteByte(' ')
	sb.WriteString(r.Message)
	prefix := h.prefix()
	for _, a := range h.attrs {
		writeAttr(&sb, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&sb, prefix, a)
		return true
	})
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, sb.String())
	return err
}

func (h *Handler) prefix() string {
	if len(h.groups) == 0 {
		return ""
	}
	return strings.Join(h.groups, ".") + "."
}

func writeAttr(sb *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		gp := prefix
		if a.Key != "" {
			gp += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			writeAttr(sb, gp, ga)
		}
		return
	}
	fmt.Fprintf(sb, " %s%s=%v", prefix, a.Key, a.Value.Any())
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	prefix := h.prefix()
	nh.attrs = append([]slog.Attr{}, h.attrs...)
	for _, a := range attrs {
		if prefix != "" {
			a.Key = prefix + a.Key
		}
		nh.attrs = append(nh.attrs, a)
	}
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.groups = append(append([]string{}, h.groups...), name)
	return &nh
}
