package colrfont

import (
	"encoding/binary"
	"fmt"
)

// parsePostNames decodes a 'post' table version 2.0 glyph name array.
// Glyph-name indexes below 258 refer to the standard Macintosh glyph
// order; this decoder treats those as unnamed (falling back to the
// synthetic "gidN" name gidName produces) since COLR color glyphs almost
// always carry custom names (index >= 258) — a documented scope
// reduction rather than embedding the full 258-entry standard order
// table (see DESIGN.md).
func parsePostNames(data []byte) (map[uint16]string, error) {
	if len(data) < 34 {
		return nil, fmt.Errorf("colrfont: post table too short")
	}
	version := binary.BigEndian.Uint32(data[0:4])
	if version != 0x00020000 {
		return nil, nil
	}

	numGlyphs := int(binary.BigEndian.Uint16(data[32:34]))
	indexPos := 34
	if indexPos+numGlyphs*2 > len(data) {
		return nil, fmt.Errorf("colrfont: post glyph name index truncated")
	}

	indexes := make([]uint16, numGlyphs)
	for i := 0; i < numGlyphs; i++ {
		indexes[i] = binary.BigEndian.Uint16(data[indexPos+i*2 : indexPos+i*2+2])
	}

	namesPos := indexPos + numGlyphs*2
	var pascalNames []string
	for namesPos < len(data) {
		length := int(data[namesPos])
		namesPos++
		if namesPos+length > len(data) {
			break
		}
		pascalNames = append(pascalNames, string(data[namesPos:namesPos+length]))
		namesPos += length
	}

	names := make(map[uint16]string, numGlyphs)
	for gid, idx := range indexes {
		if idx < 258 {
			continue
		}
		customIdx := int(idx) - 258
		if customIdx < len(pascalNames) {
			names[uint16(gid)] = pascalNames[customIdx]
		}
	}
	return names, nil
}
