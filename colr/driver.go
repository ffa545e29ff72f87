package colr

// Renderer is the entry point a caller uses to draw one or more color
// glyphs against a single canvas, carrying the render-scoped configuration
// (active palette, foreground color, logger) options.go builds.
type Renderer struct {
	Font     FontView
	Canvas   Canvas
	opts     renderOptions
	resolver *Resolver
}

// NewRenderer builds a Renderer over font and canvas, applying opts.
func NewRenderer(font FontView, canvas Canvas, opts ...RenderOption) *Renderer {
	o := defaultRenderOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{
		Font:     font,
		Canvas:   canvas,
		opts:     o,
		resolver: NewResolver(font.VarStore(), font.NormalizedAxisValues()),
	}
}

// DrawGlyph is C9: draws name against r's canvas by COLRv1, COLRv0, or
// plain-outline dispatch, in that order of preference (spec.md §4.8).
func (r *Renderer) DrawGlyph(name string) error {
	if root, ok := r.Font.COLRv1BaseGlyph(name); ok {
		st := &interpState{
			canvas:           r.Canvas,
			font:             r.Font,
			opts:             r.opts,
			resolver:         r.resolver,
			currentPath:      nil,
			currentTransform: Identity,
		}
		return interpretPaint(st, root)
	}

	if layers, ok := r.Font.COLRv0Layers(name); ok {
		st := &interpState{
			canvas:           r.Canvas,
			font:             r.Font,
			opts:             r.opts,
			resolver:         r.resolver,
			currentTransform: Identity,
		}
		return interpretColrV0(st, layers)
	}

	return r.drawPlainOutline(name)
}

// drawPlainOutline fills name's raw outline with the ambient foreground
// color, the fallback step of C9 when a glyph has no COLR record at all.
func (r *Renderer) drawPlainOutline(name string) error {
	gid, ok := r.Font.GIDByGlyphName(name)
	if !ok {
		return ErrMissingGlyph
	}
	pb := r.Canvas.NewPath()
	if err := r.Font.DrawOutline(gid, pb); err != nil {
		return err
	}
	r.Canvas.DrawPathSolid(pb.Build(), r.opts.foreground)
	return nil
}

// GlyphBounds is C10: the outline's extents for a COLRv1 or plain glyph,
// or the union of layer-glyph extents for a COLRv0 glyph (spec.md §4.9).
// Checked in the same COLRv1-before-COLRv0 order as DrawGlyph, since
// colrfont.Font.parseCOLR always populates the legacy v0 tables alongside
// v1 ones when both are present, and a v1 base glyph's own bounds (not its
// v0 fallback's) are what a v1 render actually draws.
func (r *Renderer) GlyphBounds(name string) (Rect, error) {
	if _, ok := r.Font.COLRv1BaseGlyph(name); ok {
		gid, ok := r.Font.GIDByGlyphName(name)
		if !ok {
			return Rect{}, ErrMissingGlyph
		}
		extents, ok := r.Font.GlyphExtents(gid)
		if !ok {
			return Rect{}, ErrNotColorGlyph
		}
		return extents, nil
	}

	if layers, ok := r.Font.COLRv0Layers(name); ok {
		var bounds Rect
		for _, layer := range layers {
			gid, ok := r.Font.GIDByGlyphName(layer.GlyphName)
			if !ok {
				return Rect{}, ErrMissingGlyph
			}
			extents, ok := r.Font.GlyphExtents(gid)
			if !ok {
				continue
			}
			bounds = bounds.Union(extents)
		}
		return bounds, nil
	}

	gid, ok := r.Font.GIDByGlyphName(name)
	if !ok {
		return Rect{}, ErrMissingGlyph
	}
	extents, ok := r.Font.GlyphExtents(gid)
	if !ok {
		return Rect{}, ErrNotColorGlyph
	}
	return extents, nil
}
