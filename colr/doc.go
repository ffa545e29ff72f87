// Package colr implements the COLRv1 paint-tree interpreter: the recursive
// walk that turns a font's colored-glyph description (COLR table versions 0
// and 1, paired with a CPAL palette) into drawing calls against a
// backend-agnostic 2D vector canvas.
//
// The package does not parse font binaries, does not rasterize, and does
// not shape text. Those concerns live behind the [FontView], [Canvas], and
// glyph-run collaborator interfaces this package consumes. colrfont
// supplies a concrete FontView; colrraster and colrsvg supply concrete
// Canvas backends.
package colr
