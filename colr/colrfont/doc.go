// Package colrfont is the font-data collaborator colr.FontView consumes:
// it decodes COLR (v0 and v1), CPAL, fvar, and item-variation-store bytes
// out of a raw SFNT font, and drives glyph outlines via
// golang.org/x/image/font/sfnt, the same library the teacher's
// text/glyph_outline.go uses.
package colrfont
