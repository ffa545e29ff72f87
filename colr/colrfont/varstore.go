package colrfont

import (
	"encoding/binary"
	"fmt"
)

// region is one variation region: per-axis (start, peak, end) tuples in
// normalized F2Dot14 space.
type region struct {
	axes []axisTent
}

type axisTent struct {
	start, peak, end float32
}

func (t axisTent) scalar(v float32) float32 {
	switch {
	case t.peak == 0:
		return 1
	case v == t.peak:
		return 1
	case v <= t.start || v >= t.end:
		return 0
	case v < t.peak:
		return (v - t.start) / (t.peak - t.start)
	default:
		return (t.end - v) / (t.end - t.peak)
	}
}

func (r region) scalar(axisValues []float32) float32 {
	s := float32(1)
	for i, tent := range r.axes {
		var v float32
		if i < len(axisValues) {
			v = axisValues[i]
		}
		s *= tent.scalar(v)
		if s == 0 {
			return 0
		}
	}
	return s
}

// itemVariationStore is a simplified decoder of an OpenType
// ItemVariationStore: it supports exactly one ItemVariationData subtable
// (by far the common case in shipped variable fonts) and addresses items
// by a flat varIdx directly, rather than through the two-level
// (outer,inner) DeltaSetIndexMap indirection the full format allows.
// This is a documented scope reduction (see DESIGN.md): fonts using
// multiple ItemVariationData subtables report a zero delta for rows
// beyond the first subtable instead of failing to load.
type itemVariationStore struct {
	regions []region
	items   [][]int16 // items[itemIndex][regionSlot] = delta
	regionIndexes []uint16
}

func parseItemVariationStore(data []byte) (*itemVariationStore, error) {
	if len(data) < 8 {
		return nil, fmt.Errorf("colrfont: item variation store too short")
	}
	regionListOffset := binary.BigEndian.Uint32(data[2:6])
	count := binary.BigEndian.Uint16(data[6:8])

	regions, err := parseVariationRegionList(data[regionListOffset:])
	if err != nil {
		return nil, err
	}

	store := &itemVariationStore{regions: regions}
	if count == 0 {
		return store, nil
	}

	firstOffsetPos := 8
	if firstOffsetPos+4 > len(data) {
		return nil, fmt.Errorf("colrfont: item variation data offsets truncated")
	}
	dataOffset := binary.BigEndian.Uint32(data[firstOffsetPos : firstOffsetPos+4])
	if int(dataOffset) >= len(data) {
		return nil, fmt.Errorf("colrfont: item variation data offset out of range")
	}

	items, regionIndexes, err := parseItemVariationData(data[dataOffset:])
	if err != nil {
		return nil, err
	}
	store.items = items
	store.regionIndexes = regionIndexes
	return store, nil
}

func parseVariationRegionList(data []byte) ([]region, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("colrfont: variation region list too short")
	}
	axisCount := binary.BigEndian.Uint16(data[0:2])
	regionCount := binary.BigEndian.Uint16(data[2:4])

	regions := make([]region, regionCount)
	pos := 4
	for r := uint16(0); r < regionCount; r++ {
		axes := make([]axisTent, axisCount)
		for a := uint16(0); a < axisCount; a++ {
			if pos+6 > len(data) {
				return nil, fmt.Errorf("colrfont: variation region truncated")
			}
			axes[a] = axisTent{
				start: f2dot14(data[pos : pos+2]),
				peak:  f2dot14(data[pos+2 : pos+4]),
				end:   f2dot14(data[pos+4 : pos+6]),
			}
			pos += 6
		}
		regions[r] = region{axes: axes}
	}
	return regions, nil
}

func f2dot14(b []byte) float32 {
	v := int16(binary.BigEndian.Uint16(b))
	return float32(v) / 16384
}

func parseItemVariationData(data []byte) ([][]int16, []uint16, error) {
	if len(data) < 6 {
		return nil, nil, fmt.Errorf("colrfont: item variation data too short")
	}
	itemCount := binary.BigEndian.Uint16(data[0:2])
	wordDeltaCount := binary.BigEndian.Uint16(data[2:4])
	regionIndexCount := binary.BigEndian.Uint16(data[4:6])

	longWords := wordDeltaCount&0x8000 != 0
	shortCount := wordDeltaCount & 0x7FFF

	regionIndexes := make([]uint16, regionIndexCount)
	pos := 6
	for i := uint16(0); i < regionIndexCount; i++ {
		if pos+2 > len(data) {
			return nil, nil, fmt.Errorf("colrfont: region index list truncated")
		}
		regionIndexes[i] = binary.BigEndian.Uint16(data[pos : pos+2])
		pos += 2
	}

	items := make([][]int16, itemCount)
	for it := uint16(0); it < itemCount; it++ {
		row := make([]int16, regionIndexCount)
		var r uint16
		for ; r < shortCount && r < regionIndexCount; r++ {
			width := 2
			if longWords {
				width = 4
			}
			if pos+width > len(data) {
				return nil, nil, fmt.Errorf("colrfont: delta set truncated")
			}
			if longWords {
				row[r] = int16(int32(binary.BigEndian.Uint32(data[pos : pos+4])))
			} else {
				row[r] = int16(binary.BigEndian.Uint16(data[pos : pos+2]))
			}
			pos += width
		}
		for ; r < regionIndexCount; r++ {
			if pos+1 > len(data) {
				return nil, nil, fmt.Errorf("colrfont: delta set truncated")
			}
			row[r] = int16(int8(data[pos]))
			pos++
		}
		items[it] = row
	}
	return items, regionIndexes, nil
}

// DeltaAt implements colr.ItemVariationStore.
func (s *itemVariationStore) DeltaAt(varIdx uint32, axisValues []float32) float32 {
	if s == nil || int(varIdx) >= len(s.items) {
		return 0
	}
	row := s.items[varIdx]
	var total float32
	for slot, delta := range row {
		if delta == 0 || slot >= len(s.regionIndexes) {
			continue
		}
		regionIdx := s.regionIndexes[slot]
		if int(regionIdx) >= len(s.regions) {
			continue
		}
		total += float32(delta) * s.regions[regionIdx].scalar(axisValues)
	}
	return total
}
