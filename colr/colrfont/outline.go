package colrfont

import (
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/colrglyph/colr"
)

// designPPEM returns the fixed.Int26_6 ppem value that makes sfnt.LoadGlyph
// report outlines in raw font design units (scale factor 1), the same
// trick text/glyph_outline.go uses at a chosen pixel size, here pinned to
// the font's own unitsPerEm so colr.Point values are in design units.
func designPPEM(f *sfnt.Font, buf *sfnt.Buffer) (fixed.Int26_6, error) {
	upm, err := f.UnitsPerEm(buf)
	if err != nil {
		return 0, err
	}
	return fixed.Int26_6(upm) << 6, nil
}

// DrawOutline implements colr.FontView by driving gid's outline, extracted
// via golang.org/x/image/font/sfnt at 1:1 design-unit scale, into pb.
func (f *Font) DrawOutline(gid colr.GlyphID, pb colr.PathBuilder) error {
	var buf sfnt.Buffer
	ppem, err := designPPEM(f.sfnt, &buf)
	if err != nil {
		return err
	}
	segments, err := f.sfnt.LoadGlyph(&buf, sfnt.GlyphIndex(gid), ppem, nil)
	if err != nil {
		return err
	}
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			pb.MoveTo(toPoint(seg.Args[0]))
		case sfnt.SegmentOpLineTo:
			pb.LineTo(toPoint(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			pb.QuadTo(toPoint(seg.Args[0]), toPoint(seg.Args[1]))
		case sfnt.SegmentOpCubeTo:
			pb.CubicTo(toPoint(seg.Args[0]), toPoint(seg.Args[1]), toPoint(seg.Args[2]))
		}
	}
	pb.Close()
	return nil
}

func toPoint(p fixed.Point26_6) colr.Point {
	return colr.Point{X: float64(p.X) / 64, Y: float64(p.Y) / 64}
}

// GlyphExtents implements colr.FontView, converting sfnt's bearing+extent
// form (x/y bearing, width, height with a negative-going height) into the
// (xMin,yMin,xMax,yMax) rectangle spec.md §4.9 calls for.
func (f *Font) GlyphExtents(gid colr.GlyphID) (colr.Rect, bool) {
	var buf sfnt.Buffer
	ppem, err := designPPEM(f.sfnt, &buf)
	if err != nil {
		return colr.Rect{}, false
	}
	bounds, _, err := f.sfnt.GlyphBounds(&buf, sfnt.GlyphIndex(gid), ppem, 0)
	if err != nil {
		return colr.Rect{}, false
	}
	return colr.Rect{
		MinX: float64(bounds.Min.X) / 64,
		MinY: float64(bounds.Min.Y) / 64,
		MaxX: float64(bounds.Max.X) / 64,
		MaxY: float64(bounds.Max.Y) / 64,
	}, true
}
