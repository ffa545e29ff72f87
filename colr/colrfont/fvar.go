package colrfont

import (
	"encoding/binary"
	"fmt"
)

// fvarAxis is one user-space axis definition.
type fvarAxis struct {
	tag                         string
	min, def, max float64
}

// parseFvar decodes an fvar table's axis array. Instance records (named
// presets) aren't needed here and are skipped.
func parseFvar(data []byte) ([]fvarAxis, error) {
	if len(data) < 16 {
		return nil, fmt.Errorf("colrfont: fvar table too short")
	}
	axesArrayOffset := binary.BigEndian.Uint16(data[4:6])
	axisCount := binary.BigEndian.Uint16(data[8:10])
	axisSize := binary.BigEndian.Uint16(data[10:12])

	axes := make([]fvarAxis, axisCount)
	for i := uint16(0); i < axisCount; i++ {
		pos := int(axesArrayOffset) + int(i)*int(axisSize)
		if pos+16 > len(data) {
			return nil, fmt.Errorf("colrfont: fvar axis record out of range")
		}
		axes[i] = fvarAxis{
			tag: string(data[pos : pos+4]),
			min: fixed32(data[pos+4 : pos+8]),
			def: fixed32(data[pos+8 : pos+12]),
			max: fixed32(data[pos+12 : pos+16]),
		}
	}
	return axes, nil
}

func fixed32(b []byte) float64 {
	return float64(int32(binary.BigEndian.Uint32(b))) / 65536
}

// normalizeAxisValue maps a user-space value to [-1,1] by OpenType's
// standard piecewise-linear rule against (min, default, max). This
// doesn't apply an avar table's further segment remapping — a documented
// simplification (see DESIGN.md); most variable fonts' avar tables are
// close to identity for the axes COLRv1 paints typically vary.
func normalizeAxisValue(axis fvarAxis, user float64) float32 {
	switch {
	case user < axis.min:
		user = axis.min
	case user > axis.max:
		user = axis.max
	}
	switch {
	case user == axis.def:
		return 0
	case user < axis.def:
		if axis.def == axis.min {
			return 0
		}
		return float32((user - axis.def) / (axis.def - axis.min))
	default:
		if axis.max == axis.def {
			return 0
		}
		return float32((user - axis.def) / (axis.max - axis.def))
	}
}
