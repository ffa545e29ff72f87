package colr

import (
	"context"
	"log/slog"
)

// Logger is the leveled diagnostic sink colr reports interpreter-level
// warnings through (e.g. an unimplemented PaintComposite, or a malformed
// paint node during a non-fatal walk). It mirrors the teacher's
// package-level logger, scoped as a value here instead of a package
// global so colrfont and colrraster can each hold their own without
// colr needing to import the root rendering package.
type Logger = slog.Logger

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var nopLogger = slog.New(nopHandler{})
