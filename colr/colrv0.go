package colr

// interpretColrV0 is C8: a COLRv0 glyph is a flat list of layers drawn
// back-to-front as solid fills at alpha 1.0, with no transforms or
// clipping (spec.md §4.7).
func interpretColrV0(st *interpState, layers []LayerRecord) error {
	for _, layer := range layers {
		gid, ok := st.font.GIDByGlyphName(layer.GlyphName)
		if !ok {
			return ErrMissingGlyph
		}
		pb := st.canvas.NewPath()
		if err := st.font.DrawOutline(gid, pb); err != nil {
			return err
		}
		path := pb.Build()
		c := resolveColor(st.font.Palettes(), st.opts.paletteIndex, layer.ColorIndex, 1.0, st.opts.foreground)
		st.canvas.DrawPathSolid(path, c)
	}
	return nil
}
