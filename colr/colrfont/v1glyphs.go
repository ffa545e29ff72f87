package colrfont

import (
	"encoding/binary"
	"fmt"

	"github.com/gogpu/colrglyph/colr"
)

// baseGlyphV1 pairs a v1 base glyph's id with its parsed root paint.
type baseGlyphV1 struct {
	glyphID uint16
	paint   colr.Paint
}

// parseBaseGlyphList decodes COLR v1's BaseGlyphList: a count followed by
// (glyphID, Offset32 paintOffset) records, offsets relative to the list's
// own start.
func parseBaseGlyphList(colrData []byte, listOffset uint32, p *paintParser) (map[uint16]colr.Paint, error) {
	if listOffset == 0 || int(listOffset) >= len(colrData) {
		return nil, nil
	}
	list := colrData[listOffset:]
	if len(list) < 4 {
		return nil, fmt.Errorf("colrfont: BaseGlyphList too short")
	}
	count := binary.BigEndian.Uint32(list[0:4])

	result := make(map[uint16]colr.Paint, count)
	const recSize = 6
	for i := uint32(0); i < count; i++ {
		pos := 4 + int(i)*recSize
		if pos+recSize > len(list) {
			return nil, fmt.Errorf("colrfont: BaseGlyphPaintRecord out of range")
		}
		gid := binary.BigEndian.Uint16(list[pos : pos+2])
		paintOffset := listOffset + binary.BigEndian.Uint32(list[pos+2:pos+6])
		paint, err := p.parsePaintAt(paintOffset)
		if err != nil {
			return nil, err
		}
		result[gid] = paint
	}
	return result, nil
}

// parseLayerList decodes COLR v1's LayerList: a count followed by
// Offset32 paintOffsets, relative to the list's own start.
func parseLayerList(colrData []byte, listOffset uint32, p *paintParser) ([]colr.Paint, error) {
	if listOffset == 0 || int(listOffset) >= len(colrData) {
		return nil, nil
	}
	list := colrData[listOffset:]
	if len(list) < 4 {
		return nil, fmt.Errorf("colrfont: LayerList too short")
	}
	count := binary.BigEndian.Uint32(list[0:4])

	layers := make([]colr.Paint, count)
	for i := uint32(0); i < count; i++ {
		pos := 4 + int(i)*4
		if pos+4 > len(list) {
			return nil, fmt.Errorf("colrfont: LayerList offset out of range")
		}
		paintOffset := listOffset + binary.BigEndian.Uint32(list[pos:pos+4])
		paint, err := p.parsePaintAt(paintOffset)
		if err != nil {
			return nil, err
		}
		layers[i] = paint
	}
	return layers, nil
}
