// Package colrsvg renders a COLR/CPAL paint tree to an SVG document,
// writing elements the way tdewolff/canvas's svg renderer does: hand-built
// XML text through an io.Writer rather than a DOM builder, with gradients
// and clip paths collected into a <defs> block and referenced by id.
//
// Transform and ClipPath scopes map onto nested <g transform=...> and
// <g clip-path=...> elements, so SVG's own renderer does the transform and
// clip composition instead of this package flattening it into device
// space the way colrraster does.
package colrsvg
