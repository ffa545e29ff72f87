package colr

import "errors"

var (
	// ErrUnavailableBackend indicates the caller requested a canvas backend
	// that isn't present or configured.
	ErrUnavailableBackend = errors.New("colr: backend unavailable")

	// ErrMissingGlyph indicates the requested glyph name isn't present in
	// the font view.
	ErrMissingGlyph = errors.New("colr: glyph not found")

	// ErrMalformedPaint indicates an unknown or structurally invalid paint
	// node was encountered mid-walk. The render is aborted; no rollback of
	// already-drawn parts is attempted.
	ErrMalformedPaint = errors.New("colr: malformed paint tree")

	// ErrNotColorGlyph indicates drawGlyph was asked to treat a glyph as a
	// COLR glyph (v0 or v1) but it has neither record.
	ErrNotColorGlyph = errors.New("colr: glyph has no COLR record")
)
