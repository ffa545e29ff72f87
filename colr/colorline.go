package colr

import "sort"

// normalizeColorLine implements §4.2: rewrites stop offsets to [0,1] and
// reports the original (min,max) so the caller can reposition the
// gradient's geometric parameters by the same lerp.
//
// The degenerate case (every stop at the same offset) returns (0, 1, the
// stops unchanged) rather than dividing by zero; visual correctness there
// isn't required, only the absence of NaN.
func normalizeColorLine(stops []ColorStop) (sMin, sMax float64, normalized []ColorStop) {
	if len(stops) == 0 {
		return 0, 1, nil
	}
	sMin, sMax = stops[0].Offset, stops[0].Offset
	for _, s := range stops[1:] {
		sMin = min(sMin, s.Offset)
		sMax = max(sMax, s.Offset)
	}
	if sMax <= sMin {
		return 0, 1, stops
	}
	out := make([]ColorStop, len(stops))
	span := sMax - sMin
	for i, s := range stops {
		out[i] = ColorStop{Offset: (s.Offset - sMin) / span, Color: s.Color}
	}
	// Sorted by offset so backends that interpolate by walking consecutive
	// stop pairs (colrraster's gradient stop list, colrsvg's <stop> order)
	// get monotonic input; neither spec.md §4.2 nor the original Python's
	// pointwise rewrite reorders stops, but both assume well-formed input
	// where source order already is offset order, which a font isn't
	// guaranteed to provide.
	sort.Slice(out, func(i, j int) bool { return out[i].Offset < out[j].Offset })
	return sMin, sMax, out
}

// lerp linearly interpolates between a and b at parameter t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// lerpPoint linearly interpolates between two points at parameter t.
func lerpPoint(a, b Point, t float64) Point {
	return Point{X: lerp(a.X, b.X, t), Y: lerp(a.Y, b.Y, t)}
}

// reduceLinearAnchors implements §4.3: reduces COLRv1's three gradient
// anchors (p0, p1, p2 — p2 fixing the gradient-line rotation) to the two
// endpoints a gradient actually needs. The degenerate collinear case is
// not guarded; callers may see a NaN-free but visually undefined result,
// which spec.md explicitly permits.
func reduceLinearAnchors(p0, p1, p2 Point) (start, end Point) {
	v01 := p1.Sub(p0)
	v02 := p2.Sub(p0)
	denom := v02.Dot(v02)
	if denom == 0 {
		return p0, p1
	}
	k := v01.Dot(v02) / denom
	end = Point{X: p1.X - k*v02.X, Y: p1.Y - k*v02.Y}
	return p0, end
}
