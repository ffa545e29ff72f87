package colrfont

import (
	"encoding/binary"
	"fmt"

	"github.com/gogpu/colrglyph/colr"
)

// Paint format tags, OpenType COLR v1 §"BaseGlyphPaintRecord"/"Paint Tables".
const (
	fmtColrLayers = 1
	fmtSolid      = 2
	fmtVarSolid   = 3

	fmtLinearGradient    = 4
	fmtVarLinearGradient = 5
	fmtRadialGradient    = 6
	fmtVarRadialGradient = 7
	fmtSweepGradient     = 8
	fmtVarSweepGradient  = 9

	fmtGlyph     = 10
	fmtColrGlyph = 11

	fmtTransform    = 12
	fmtVarTransform = 13

	fmtTranslate    = 14
	fmtVarTranslate = 15

	fmtScale                      = 16
	fmtVarScale                   = 17
	fmtScaleAroundCenter          = 18
	fmtVarScaleAroundCenter       = 19
	fmtScaleUniform               = 20
	fmtVarScaleUniform            = 21
	fmtScaleUniformAroundCenter   = 22
	fmtVarScaleUniformAroundCenter = 23

	fmtRotate            = 24
	fmtVarRotate         = 25
	fmtRotateAroundCenter    = 26
	fmtVarRotateAroundCenter = 27

	fmtSkew            = 28
	fmtVarSkew         = 29
	fmtSkewAroundCenter    = 30
	fmtVarSkewAroundCenter = 31

	fmtComposite = 32
)

// v1Tables holds the byte slices a COLR v1 paint-tree walk needs, each
// still relative to its own table's start per the OpenType offset scheme.
type v1Tables struct {
	colr          []byte // the full COLR table, for offsets relative to it
	baseGlyphList []byte // sub-slice at baseGlyphListOffset
	layerList     []byte // sub-slice at layerListOffset
	varIdxMapBase uint32 // left 0: varIndexBase used directly as variation index (see varstore.go doc)
	store         *itemVariationStore
}

type paintParser struct {
	t *v1Tables
}

// parsePaintAt parses one paint table (and recursively its children) at
// byte offset off within p.t.colr.
func (p *paintParser) parsePaintAt(off uint32) (colr.Paint, error) {
	data := p.t.colr
	if int(off) >= len(data) {
		return nil, fmt.Errorf("colrfont: paint offset out of range")
	}
	format := data[off]
	rest := data[off:]

	switch format {
	case fmtColrLayers:
		if len(rest) < 6 {
			return nil, fmt.Errorf("colrfont: PaintColrLayers truncated")
		}
		numLayers := rest[1]
		firstLayer := binary.BigEndian.Uint32(rest[2:6])
		return colr.PaintColrLayers{FirstLayerIndex: firstLayer, NumLayers: uint32(numLayers)}, nil

	case fmtSolid, fmtVarSolid:
		return p.parseSolid(rest, format == fmtVarSolid)

	case fmtLinearGradient, fmtVarLinearGradient:
		return p.parseLinearGradient(off, rest, format == fmtVarLinearGradient)

	case fmtRadialGradient, fmtVarRadialGradient:
		return p.parseRadialGradient(off, rest, format == fmtVarRadialGradient)

	case fmtSweepGradient, fmtVarSweepGradient:
		return p.parseSweepGradient(off, rest, format == fmtVarSweepGradient)

	case fmtGlyph:
		return p.parseGlyph(rest)

	case fmtColrGlyph:
		return p.parseColrGlyph(rest)

	case fmtTransform, fmtVarTransform:
		return p.parseTransform(rest, format == fmtVarTransform)

	case fmtTranslate, fmtVarTranslate:
		return p.parseTranslate(rest, format == fmtVarTranslate)

	case fmtScale, fmtVarScale, fmtScaleAroundCenter, fmtVarScaleAroundCenter,
		fmtScaleUniform, fmtVarScaleUniform, fmtScaleUniformAroundCenter, fmtVarScaleUniformAroundCenter:
		return p.parseScale(rest, format)

	case fmtRotate, fmtVarRotate, fmtRotateAroundCenter, fmtVarRotateAroundCenter:
		return p.parseRotate(rest, format)

	case fmtSkew, fmtVarSkew, fmtSkewAroundCenter, fmtVarSkewAroundCenter:
		return p.parseSkew(rest, format)

	case fmtComposite:
		return p.parseComposite(rest)

	default:
		return nil, colr.ErrMalformedPaint
	}
}

func varField(base float64, varIdxBase uint32, isVar bool, slot uint32, kind colr.FixedKind) colr.Var {
	if !isVar {
		return colr.Var{Base: base, VarIx: colr.NoVariation, Kind: kind}
	}
	return colr.Var{Base: base, VarIx: varIdxBase + slot, Kind: kind}
}

func (p *paintParser) parseSolid(rest []byte, isVar bool) (colr.Paint, error) {
	need := 5
	if isVar {
		need = 9
	}
	if len(rest) < need {
		return nil, fmt.Errorf("colrfont: PaintSolid truncated")
	}
	paletteIndex := binary.BigEndian.Uint16(rest[1:3])
	alphaBase := float64(f2dot14(rest[3:5]))
	var varIdxBase uint32
	if isVar {
		varIdxBase = binary.BigEndian.Uint32(rest[5:9])
	}
	return colr.PaintSolid{
		ColorIndex: paletteIndex,
		Alpha:      varField(alphaBase, varIdxBase, isVar, 0, colr.KindF2Dot14),
	}, nil
}

// readColorLine decodes a ColorLine/VarColorLine table at byte offset
// colrOff (relative to the COLR table).
func (p *paintParser) readColorLine(colrOff uint32, isVar bool) (colr.PaintColorLine, error) {
	data := p.t.colr
	if int(colrOff) >= len(data) {
		return colr.PaintColorLine{}, fmt.Errorf("colrfont: color line offset out of range")
	}
	rest := data[colrOff:]
	if len(rest) < 3 {
		return colr.PaintColorLine{}, fmt.Errorf("colrfont: color line truncated")
	}
	extend := colr.Extend(rest[0])
	numStops := binary.BigEndian.Uint16(rest[1:3])

	stopSize := 6
	if isVar {
		stopSize = 10
	}
	stops := make([]colr.PaintColorStop, 0, numStops)
	pos := 3
	for i := uint16(0); i < numStops; i++ {
		if pos+stopSize > len(rest) {
			return colr.PaintColorLine{}, fmt.Errorf("colrfont: color stop truncated")
		}
		offsetBase := float64(f2dot14(rest[pos : pos+2]))
		colorIndex := binary.BigEndian.Uint16(rest[pos+2 : pos+4])
		alphaBase := float64(f2dot14(rest[pos+4 : pos+6]))
		var varIdxBase uint32
		if isVar {
			varIdxBase = binary.BigEndian.Uint32(rest[pos+6 : pos+10])
		}
		stops = append(stops, colr.PaintColorStop{
			StopOffset: varField(offsetBase, varIdxBase, isVar, 0, colr.KindF2Dot14),
			ColorIndex: colorIndex,
			Alpha:      varField(alphaBase, varIdxBase, isVar, 1, colr.KindF2Dot14),
		})
		pos += stopSize
	}
	return colr.PaintColorLine{Stops: stops, Extend: extend}, nil
}

func readOffset24(b []byte) uint32 {
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
}

func fwordVar(rest []byte, pos int, varIdxBase uint32, isVar bool, slot uint32) colr.Var {
	v := int16(binary.BigEndian.Uint16(rest[pos : pos+2]))
	return varField(float64(v), varIdxBase, isVar, slot, colr.KindPlain)
}

func (p *paintParser) parseLinearGradient(selfOff uint32, rest []byte, isVar bool) (colr.Paint, error) {
	need := 15
	if isVar {
		need = 19
	}
	if len(rest) < need {
		return nil, fmt.Errorf("colrfont: PaintLinearGradient truncated")
	}
	colorLineOff := selfOff + readOffset24(rest[1:4])
	var varIdxBase uint32
	pos := 4
	x0 := fwordVar(rest, pos, 0, false, 0)
	y0 := fwordVar(rest, pos+2, 0, false, 0)
	x1 := fwordVar(rest, pos+4, 0, false, 0)
	y1 := fwordVar(rest, pos+6, 0, false, 0)
	x2 := fwordVar(rest, pos+8, 0, false, 0)
	y2 := fwordVar(rest, pos+10, 0, false, 0)
	if isVar {
		varIdxBase = binary.BigEndian.Uint32(rest[pos+12 : pos+16])
		x0 = fwordVar(rest, pos, varIdxBase, true, 0)
		y0 = fwordVar(rest, pos+2, varIdxBase, true, 1)
		x1 = fwordVar(rest, pos+4, varIdxBase, true, 2)
		y1 = fwordVar(rest, pos+6, varIdxBase, true, 3)
		x2 = fwordVar(rest, pos+8, varIdxBase, true, 4)
		y2 = fwordVar(rest, pos+10, varIdxBase, true, 5)
	}
	line, err := p.readColorLine(colorLineOff, isVar)
	if err != nil {
		return nil, err
	}
	return colr.PaintLinearGradient{
		ColorLine: line,
		P0:        colr.PointVar{X: x0, Y: y0},
		P1:        colr.PointVar{X: x1, Y: y1},
		P2:        colr.PointVar{X: x2, Y: y2},
	}, nil
}

func (p *paintParser) parseRadialGradient(selfOff uint32, rest []byte, isVar bool) (colr.Paint, error) {
	need := 17
	if isVar {
		need = 21
	}
	if len(rest) < need {
		return nil, fmt.Errorf("colrfont: PaintRadialGradient truncated")
	}
	colorLineOff := selfOff + readOffset24(rest[1:4])
	pos := 4
	var varIdxBase uint32
	x0 := fwordVar(rest, pos, 0, false, 0)
	y0 := fwordVar(rest, pos+2, 0, false, 0)
	r0 := fwordVar(rest, pos+4, 0, false, 0)
	x1 := fwordVar(rest, pos+6, 0, false, 0)
	y1 := fwordVar(rest, pos+8, 0, false, 0)
	r1 := fwordVar(rest, pos+10, 0, false, 0)
	if isVar {
		varIdxBase = binary.BigEndian.Uint32(rest[pos+12 : pos+16])
		x0 = fwordVar(rest, pos, varIdxBase, true, 0)
		y0 = fwordVar(rest, pos+2, varIdxBase, true, 1)
		r0 = fwordVar(rest, pos+4, varIdxBase, true, 2)
		x1 = fwordVar(rest, pos+6, varIdxBase, true, 3)
		y1 = fwordVar(rest, pos+8, varIdxBase, true, 4)
		r1 = fwordVar(rest, pos+10, varIdxBase, true, 5)
	}
	line, err := p.readColorLine(colorLineOff, isVar)
	if err != nil {
		return nil, err
	}
	return colr.PaintRadialGradient{
		ColorLine: line,
		X0: x0, Y0: y0, R0: r0,
		X1: x1, Y1: y1, R1: r1,
	}, nil
}

func (p *paintParser) parseSweepGradient(selfOff uint32, rest []byte, isVar bool) (colr.Paint, error) {
	need := 11
	if isVar {
		need = 15
	}
	if len(rest) < need {
		return nil, fmt.Errorf("colrfont: PaintSweepGradient truncated")
	}
	colorLineOff := selfOff + readOffset24(rest[1:4])
	pos := 4
	var varIdxBase uint32
	cx := fwordVar(rest, pos, 0, false, 0)
	cy := fwordVar(rest, pos+2, 0, false, 0)
	start := varField(float64(f2dot14(rest[pos+4:pos+6]))*180, 0, false, 0, colr.KindPlain)
	end := varField(float64(f2dot14(rest[pos+6:pos+8]))*180, 0, false, 0, colr.KindPlain)
	if isVar {
		varIdxBase = binary.BigEndian.Uint32(rest[pos+8 : pos+12])
		cx = fwordVar(rest, pos, varIdxBase, true, 0)
		cy = fwordVar(rest, pos+2, varIdxBase, true, 1)
		start = varField(float64(f2dot14(rest[pos+4:pos+6]))*180, varIdxBase, true, 2, colr.KindPlain)
		end = varField(float64(f2dot14(rest[pos+6:pos+8]))*180, varIdxBase, true, 3, colr.KindPlain)
	}
	line, err := p.readColorLine(colorLineOff, isVar)
	if err != nil {
		return nil, err
	}
	return colr.PaintSweepGradient{
		ColorLine:  line,
		CenterX:    cx,
		CenterY:    cy,
		StartAngle: start,
		EndAngle:   end,
	}, nil
}

func (p *paintParser) parseGlyph(rest []byte) (colr.Paint, error) {
	if len(rest) < 6 {
		return nil, fmt.Errorf("colrfont: PaintGlyph truncated")
	}
	childOff := readOffset24(rest[1:4])
	gid := binary.BigEndian.Uint16(rest[4:6])
	child, err := p.parsePaintAt(childOff)
	if err != nil {
		return nil, err
	}
	return colr.PaintGlyph{GlyphName: gidName(gid), Paint: child}, nil
}

func (p *paintParser) parseColrGlyph(rest []byte) (colr.Paint, error) {
	if len(rest) < 3 {
		return nil, fmt.Errorf("colrfont: PaintColrGlyph truncated")
	}
	gid := binary.BigEndian.Uint16(rest[1:3])
	return colr.PaintColrGlyph{GlyphName: gidName(gid)}, nil
}

func (p *paintParser) parseTransform(rest []byte, isVar bool) (colr.Paint, error) {
	if len(rest) < 7 {
		return nil, fmt.Errorf("colrfont: PaintTransform truncated")
	}
	childOff := readOffset24(rest[1:4])
	transformOff := readOffset24(rest[4:7])
	child, err := p.parsePaintAt(childOff)
	if err != nil {
		return nil, err
	}
	aff, err := p.readAffine(transformOff, isVar)
	if err != nil {
		return nil, err
	}
	return colr.PaintTransform{Affine: aff, Paint: child}, nil
}

func (p *paintParser) readAffine(off uint32, isVar bool) (colr.AffineVar, error) {
	data := p.t.colr
	need := 24
	if isVar {
		need = 28
	}
	if int(off)+need > len(data) {
		return colr.AffineVar{}, fmt.Errorf("colrfont: Affine2x3 truncated")
	}
	rest := data[off:]
	fixedAt := func(pos int) float64 { return float64(int32(binary.BigEndian.Uint32(rest[pos:pos+4]))) / 65536 }
	var varIdxBase uint32
	if isVar {
		varIdxBase = binary.BigEndian.Uint32(rest[24:28])
	}
	mk := func(pos int, slot uint32) colr.Var {
		return varField(fixedAt(pos), varIdxBase, isVar, slot, colr.KindFixed)
	}
	return colr.AffineVar{
		XX: mk(0, 0), YX: mk(4, 1), XY: mk(8, 2),
		YY: mk(12, 3), DX: mk(16, 4), DY: mk(20, 5),
	}, nil
}

func (p *paintParser) parseTranslate(rest []byte, isVar bool) (colr.Paint, error) {
	need := 8
	if isVar {
		need = 12
	}
	if len(rest) < need {
		return nil, fmt.Errorf("colrfont: PaintTranslate truncated")
	}
	childOff := readOffset24(rest[1:4])
	var varIdxBase uint32
	dx := fwordVar(rest, 4, 0, false, 0)
	dy := fwordVar(rest, 6, 0, false, 0)
	if isVar {
		varIdxBase = binary.BigEndian.Uint32(rest[8:12])
		dx = fwordVar(rest, 4, varIdxBase, true, 0)
		dy = fwordVar(rest, 6, varIdxBase, true, 1)
	}
	child, err := p.parsePaintAt(childOff)
	if err != nil {
		return nil, err
	}
	return colr.PaintTranslate{DX: dx, DY: dy, Paint: child}, nil
}

func hasCenter(format byte) bool {
	switch format {
	case fmtScaleAroundCenter, fmtVarScaleAroundCenter, fmtScaleUniformAroundCenter, fmtVarScaleUniformAroundCenter,
		fmtRotateAroundCenter, fmtVarRotateAroundCenter, fmtSkewAroundCenter, fmtVarSkewAroundCenter:
		return true
	default:
		return false
	}
}

func isVarFormat(format byte) bool {
	switch format {
	case fmtVarScale, fmtVarScaleAroundCenter, fmtVarScaleUniform, fmtVarScaleUniformAroundCenter,
		fmtVarRotate, fmtVarRotateAroundCenter, fmtVarSkew, fmtVarSkewAroundCenter,
		fmtVarTransform, fmtVarTranslate, fmtVarLinearGradient, fmtVarRadialGradient,
		fmtVarSweepGradient, fmtVarSolid:
		return true
	default:
		return false
	}
}

func isUniformFormat(format byte) bool {
	return format == fmtScaleUniform || format == fmtVarScaleUniform ||
		format == fmtScaleUniformAroundCenter || format == fmtVarScaleUniformAroundCenter
}

func (p *paintParser) parseScale(rest []byte, format byte) (colr.Paint, error) {
	isVar := isVarFormat(format)
	uniform := isUniformFormat(format)
	center := hasCenter(format)

	pos := 4
	numScaleFields := 2
	if uniform {
		numScaleFields = 1
	}
	need := pos + numScaleFields*2
	if center {
		need += 4
	}
	if isVar {
		need += 4
	}
	if len(rest) < need {
		return nil, fmt.Errorf("colrfont: PaintScale truncated")
	}

	childOff := readOffset24(rest[1:4])
	var varIdxBase uint32
	cursor := pos
	readF2 := func(at int) float64 { return float64(f2dot14(rest[at : at+2])) }

	scaleXBase := readF2(cursor)
	scaleYBase := scaleXBase
	cursor += 2
	if !uniform {
		scaleYBase = readF2(cursor)
		cursor += 2
	}

	var centerXBase, centerYBase float64
	if center {
		centerXBase = float64(int16(binary.BigEndian.Uint16(rest[cursor : cursor+2])))
		centerYBase = float64(int16(binary.BigEndian.Uint16(rest[cursor+2 : cursor+4])))
		cursor += 4
	}
	if isVar {
		varIdxBase = binary.BigEndian.Uint32(rest[cursor : cursor+4])
	}

	scaleX := varField(scaleXBase, varIdxBase, isVar, 0, colr.KindF2Dot14)
	slot := uint32(1)
	scaleY := scaleX
	if !uniform {
		scaleY = varField(scaleYBase, varIdxBase, isVar, 1, colr.KindF2Dot14)
		slot = 2
	}
	centerX := varField(centerXBase, varIdxBase, isVar, slot, colr.KindPlain)
	centerY := varField(centerYBase, varIdxBase, isVar, slot+1, colr.KindPlain)

	child, err := p.parsePaintAt(childOff)
	if err != nil {
		return nil, err
	}
	return colr.PaintScale{CenterX: centerX, CenterY: centerY, XScale: scaleX, YScale: scaleY, Paint: child}, nil
}

func (p *paintParser) parseRotate(rest []byte, format byte) (colr.Paint, error) {
	isVar := isVarFormat(format)
	center := hasCenter(format)

	need := 6
	if center {
		need += 4
	}
	if isVar {
		need += 4
	}
	if len(rest) < need {
		return nil, fmt.Errorf("colrfont: PaintRotate truncated")
	}

	childOff := readOffset24(rest[1:4])
	cursor := 4
	angleBase := float64(f2dot14(rest[cursor:cursor+2])) * 180
	cursor += 2
	var centerXBase, centerYBase float64
	if center {
		centerXBase = float64(int16(binary.BigEndian.Uint16(rest[cursor : cursor+2])))
		centerYBase = float64(int16(binary.BigEndian.Uint16(rest[cursor+2 : cursor+4])))
		cursor += 4
	}
	var varIdxBase uint32
	if isVar {
		varIdxBase = binary.BigEndian.Uint32(rest[cursor : cursor+4])
	}

	angle := varField(angleBase, varIdxBase, isVar, 0, colr.KindPlain)
	centerX := varField(centerXBase, varIdxBase, isVar, 1, colr.KindPlain)
	centerY := varField(centerYBase, varIdxBase, isVar, 2, colr.KindPlain)

	child, err := p.parsePaintAt(childOff)
	if err != nil {
		return nil, err
	}
	return colr.PaintRotate{CenterX: centerX, CenterY: centerY, Angle: angle, Paint: child}, nil
}

func (p *paintParser) parseSkew(rest []byte, format byte) (colr.Paint, error) {
	isVar := isVarFormat(format)
	center := hasCenter(format)

	need := 8
	if center {
		need += 4
	}
	if isVar {
		need += 4
	}
	if len(rest) < need {
		return nil, fmt.Errorf("colrfont: PaintSkew truncated")
	}

	childOff := readOffset24(rest[1:4])
	cursor := 4
	xAngleBase := float64(f2dot14(rest[cursor:cursor+2])) * 180
	yAngleBase := float64(f2dot14(rest[cursor+2:cursor+4])) * 180
	cursor += 4
	var centerXBase, centerYBase float64
	if center {
		centerXBase = float64(int16(binary.BigEndian.Uint16(rest[cursor : cursor+2])))
		centerYBase = float64(int16(binary.BigEndian.Uint16(rest[cursor+2 : cursor+4])))
		cursor += 4
	}
	var varIdxBase uint32
	if isVar {
		varIdxBase = binary.BigEndian.Uint32(rest[cursor : cursor+4])
	}

	xAngle := varField(xAngleBase, varIdxBase, isVar, 0, colr.KindPlain)
	yAngle := varField(yAngleBase, varIdxBase, isVar, 1, colr.KindPlain)
	centerX := varField(centerXBase, varIdxBase, isVar, 2, colr.KindPlain)
	centerY := varField(centerYBase, varIdxBase, isVar, 3, colr.KindPlain)

	child, err := p.parsePaintAt(childOff)
	if err != nil {
		return nil, err
	}
	return colr.PaintSkew{CenterX: centerX, CenterY: centerY, XSkewAngle: xAngle, YSkewAngle: yAngle, Paint: child}, nil
}

func (p *paintParser) parseComposite(rest []byte) (colr.Paint, error) {
	if len(rest) < 8 {
		return nil, fmt.Errorf("colrfont: PaintComposite truncated")
	}
	sourceOff := readOffset24(rest[1:4])
	mode := rest[4]
	backdropOff := readOffset24(rest[5:8])

	source, err := p.parsePaintAt(sourceOff)
	if err != nil {
		return nil, err
	}
	backdrop, err := p.parsePaintAt(backdropOff)
	if err != nil {
		return nil, err
	}
	return colr.PaintComposite{Source: source, Mode: colr.CompositeMode(mode), Backdrop: backdrop}, nil
}

// gidName synthesizes a glyph-name lookup key for a raw glyph ID when a
// font's 'post' table doesn't supply one. Real name resolution happens in
// names.go; this is the fallback format used there too so PaintGlyph/
// PaintColrGlyph always produce a name GIDByGlyphName can resolve back.
func gidName(gid uint16) string {
	return fmt.Sprintf("gid%d", gid)
}
