package colr

// LayerRecord is one (glyphName, colorIndex) entry of a COLRv0 glyph's
// flat layer list.
type LayerRecord struct {
	GlyphName  string
	ColorIndex uint16
}

// FontView is the font-data collaborator the core consumes. colrfont
// supplies the concrete decoder over real SFNT table bytes; colr never
// touches binary layout itself (spec.md §1 non-goal).
type FontView interface {
	// GIDByGlyphName resolves a glyph name to a glyph ID.
	GIDByGlyphName(name string) (GlyphID, bool)
	// GlyphNameByGID is the inverse of GIDByGlyphName.
	GlyphNameByGID(gid GlyphID) (string, bool)

	// COLRv0Layers reports the flat layer list for name, if it has a v0
	// record.
	COLRv0Layers(name string) ([]LayerRecord, bool)

	// COLRv1BaseGlyph reports the root paint node for name, if it has a
	// v1 record.
	COLRv1BaseGlyph(name string) (Paint, bool)

	// COLRv1Layer returns layer i of the flat layer list a PaintColrLayers
	// node indexes into.
	COLRv1Layer(i uint32) (Paint, bool)

	// VarStore returns the font's item-variation store, or nil if the
	// font carries no variation data.
	VarStore() ItemVariationStore

	// Palettes returns the CPAL palettes, indexed [paletteIndex][colorIndex].
	Palettes() [][]Color

	// NormalizedAxisValues returns the font's current normalized ([-1,1])
	// axis location.
	NormalizedAxisValues() []float32
	// SetNormalizedAxisValues installs a new normalized axis location.
	SetNormalizedAxisValues(values []float32)

	// DrawOutline drives gid's outline into pb.
	DrawOutline(gid GlyphID, pb PathBuilder) error
	// GlyphExtents returns gid's outline bounding box.
	GlyphExtents(gid GlyphID) (Rect, bool)
}

// GlyphRun is a pre-shaped, ordered sequence of positioned glyphs — the
// shaping collaborator's output (spec.md §6.2).
type GlyphRun struct {
	Glyphs []ShapedGlyph
}

// ShapedGlyph is one positioned glyph in a GlyphRun.
type ShapedGlyph struct {
	GlyphName                     string
	XAdvance, YAdvance            float64
	XOffset, YOffset              float64
}
