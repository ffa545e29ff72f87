package colr

// ForegroundIndex is the CPAL color-index sentinel meaning "use the
// render's ambient foreground color" rather than a palette entry.
const ForegroundIndex uint16 = 0xFFFF

// resolveColor maps (paletteIndex, colorIndex, alpha) to an RGBA color,
// honoring the 0xFFFF foreground sentinel (spec invariant 4). alpha is
// multiplied into whichever color is selected.
func resolveColor(palettes [][]Color, paletteIndex uint16, colorIndex uint16, alpha float64, foreground Color) Color {
	if colorIndex == ForegroundIndex {
		return foreground.WithAlphaMul(alpha)
	}
	if int(paletteIndex) >= len(palettes) {
		return Color{A: alpha}
	}
	palette := palettes[paletteIndex]
	if int(colorIndex) >= len(palette) {
		return Color{A: alpha}
	}
	c := palette[colorIndex]
	return c.WithAlphaMul(alpha)
}
