// Package colrraster adapts the root colrglyph rasterizer (gg.Context) into
// a colr.Canvas, so a COLR/CPAL paint tree can be rendered straight to a
// pixmap using the same fill pipeline ggdemo and the rest of this module
// use for plain vector art.
//
// Paths are recorded as command lists (mirroring colrcollect) rather than
// built against a live gg.Path, since a colr.Path must outlive the builder
// that produced it and be replayable against the Context on demand — the
// interpreter fills the same path multiple times when a paint composites
// or clips with it.
package colrraster
