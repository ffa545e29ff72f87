package colrfont

import (
	"encoding/binary"
	"fmt"

	"github.com/gogpu/colrglyph/colr"
)

// parseCPAL decodes a CPAL table into colr palettes, grounded on the
// teacher's text/emoji.COLRParser.parseCPAL but producing float [0,1]
// colr.Color values (CPAL stores BGRA bytes) instead of uint8 structs.
func parseCPAL(data []byte) ([][]colr.Color, error) {
	if len(data) < 12 {
		return nil, fmt.Errorf("colrfont: CPAL table too short")
	}

	numEntries := binary.BigEndian.Uint16(data[2:4])
	numPalettes := binary.BigEndian.Uint16(data[4:6])
	colorRecordsOffset := binary.BigEndian.Uint32(data[8:12])

	if 12+int(numPalettes)*2 > len(data) {
		return nil, fmt.Errorf("colrfont: CPAL palette offset table truncated")
	}

	paletteOffsets := make([]uint16, numPalettes)
	for i := uint16(0); i < numPalettes; i++ {
		pos := 12 + int(i)*2
		paletteOffsets[i] = binary.BigEndian.Uint16(data[pos : pos+2])
	}

	palettes := make([][]colr.Color, numPalettes)
	for i := uint16(0); i < numPalettes; i++ {
		palette := make([]colr.Color, numEntries)
		for j := uint16(0); j < numEntries; j++ {
			colorIndex := paletteOffsets[i] + j
			pos := int(colorRecordsOffset) + int(colorIndex)*4
			if pos+4 > len(data) {
				return nil, fmt.Errorf("colrfont: CPAL color record out of range")
			}
			// CPAL stores colors as BGRA bytes.
			b, g, r, a := data[pos], data[pos+1], data[pos+2], data[pos+3]
			palette[j] = colr.Color{
				R: float64(r) / 255,
				G: float64(g) / 255,
				B: float64(b) / 255,
				A: float64(a) / 255,
			}
		}
		palettes[i] = palette
	}
	return palettes, nil
}
