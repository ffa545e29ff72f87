package colrfont

import (
	"encoding/binary"
	"fmt"
)

// colrV0Header is the fixed-layout prefix common to COLR v0 and v1,
// grounded on the teacher's text/emoji.COLRParser.parseCOLRHeader.
type colrV0Header struct {
	version                uint16
	numBaseGlyphRecords    uint16
	baseGlyphRecordsOffset uint32
	layerRecordsOffset     uint32
	numLayerRecords        uint16
}

func parseColrV0Header(data []byte) (colrV0Header, error) {
	if len(data) < 14 {
		return colrV0Header{}, fmt.Errorf("colrfont: COLR table too short")
	}
	return colrV0Header{
		version:                binary.BigEndian.Uint16(data[0:2]),
		numBaseGlyphRecords:    binary.BigEndian.Uint16(data[2:4]),
		baseGlyphRecordsOffset: binary.BigEndian.Uint32(data[4:8]),
		layerRecordsOffset:     binary.BigEndian.Uint32(data[8:12]),
		numLayerRecords:        binary.BigEndian.Uint16(data[12:14]),
	}, nil
}

type v0BaseGlyphRecord struct {
	glyphID    uint16
	firstLayer uint16
	numLayers  uint16
}

type v0LayerRecord struct {
	glyphID      uint16
	paletteIndex uint16
}

// parseV0Tables decodes the flat base-glyph/layer record arrays shared by
// COLR v0 and (for backward compatibility) v1 fonts.
func parseV0Tables(data []byte, h colrV0Header) ([]v0BaseGlyphRecord, []v0LayerRecord, error) {
	base := make([]v0BaseGlyphRecord, 0, h.numBaseGlyphRecords)
	const baseRecSize = 6
	for i := uint16(0); i < h.numBaseGlyphRecords; i++ {
		pos := int(h.baseGlyphRecordsOffset) + int(i)*baseRecSize
		if pos+baseRecSize > len(data) {
			return nil, nil, fmt.Errorf("colrfont: COLR base glyph record out of range")
		}
		base = append(base, v0BaseGlyphRecord{
			glyphID:    binary.BigEndian.Uint16(data[pos : pos+2]),
			firstLayer: binary.BigEndian.Uint16(data[pos+2 : pos+4]),
			numLayers:  binary.BigEndian.Uint16(data[pos+4 : pos+6]),
		})
	}

	layers := make([]v0LayerRecord, 0, h.numLayerRecords)
	const layerRecSize = 4
	for i := uint16(0); i < h.numLayerRecords; i++ {
		pos := int(h.layerRecordsOffset) + int(i)*layerRecSize
		if pos+layerRecSize > len(data) {
			return nil, nil, fmt.Errorf("colrfont: COLR layer record out of range")
		}
		layers = append(layers, v0LayerRecord{
			glyphID:      binary.BigEndian.Uint16(data[pos : pos+2]),
			paletteIndex: binary.BigEndian.Uint16(data[pos+2 : pos+4]),
		})
	}
	return base, layers, nil
}

func findV0BaseGlyph(records []v0BaseGlyphRecord, gid uint16) (v0BaseGlyphRecord, bool) {
	lo, hi := 0, len(records)
	for lo < hi {
		mid := (lo + hi) / 2
		if records[mid].glyphID < gid {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(records) && records[lo].glyphID == gid {
		return records[lo], true
	}
	return v0BaseGlyphRecord{}, false
}
