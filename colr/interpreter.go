package colr

import "math"

// maxRecursionDepth defensively bounds paint-tree recursion. The COLR
// spec guarantees the tree is finite and acyclic by construction; this is
// a backstop against malformed or adversarial input, not cycle detection
// (spec.md §3 invariant 3).
const maxRecursionDepth = 64

// interpState is the ambient interpreter state threaded through a single
// drawGlyph walk: an explicit value passed through recursion rather than
// thread-local or package-global state, so a Location push/pop or a
// transform/path/clip scope always restores on every exit path via defer,
// including a failing one.
type interpState struct {
	canvas Canvas
	font   FontView
	opts   renderOptions

	resolver *Resolver

	currentPath      Path // nil means "none"
	currentTransform Affine
	depth            int
}

// interpretPaint is C7: the recursive dispatcher that walks a paint tree
// and issues canvas calls, consulting the palette resolver, variable-value
// resolver, and color-line utility along the way.
func interpretPaint(st *interpState, p Paint) error {
	if st.depth > maxRecursionDepth {
		return ErrMalformedPaint
	}
	st.depth++
	defer func() { st.depth-- }()

	switch n := p.(type) {
	case PaintColrLayers:
		return interpretColrLayers(st, n)
	case PaintSolid:
		return interpretSolid(st, n)
	case PaintLinearGradient:
		return interpretLinearGradient(st, n)
	case PaintRadialGradient:
		return interpretRadialGradient(st, n)
	case PaintSweepGradient:
		return interpretSweepGradient(st, n)
	case PaintGlyph:
		return interpretGlyph(st, n)
	case PaintColrGlyph:
		return interpretColrGlyph(st, n)
	case PaintTransform:
		return interpretTransform(st, n.affine(st), n.Paint)
	case PaintTranslate:
		return interpretTransform(st, Translation(n.DX.Resolve(st.resolver), n.DY.Resolve(st.resolver)), n.Paint)
	case PaintRotate:
		return interpretRotate(st, n)
	case PaintSkew:
		return interpretSkew(st, n)
	case PaintScale:
		return interpretScale(st, n)
	case PaintComposite:
		return interpretComposite(st, n)
	case PaintLocation:
		return interpretLocation(st, n)
	default:
		return ErrMalformedPaint
	}
}

func (a AffineVar) affine(r *Resolver) Affine {
	return Affine{
		XX: a.XX.Resolve(r), YX: a.YX.Resolve(r),
		XY: a.XY.Resolve(r), YY: a.YY.Resolve(r),
		DX: a.DX.Resolve(r), DY: a.DY.Resolve(r),
	}
}

func (n PaintTransform) affine(st *interpState) Affine {
	return n.Affine.affine(st.resolver)
}

// interpretColrLayers is §4.6 ColrLayers: each sibling layer draws in a
// fresh saved state with the ambient transform baked into the canvas and
// ambient path/transform reset, so siblings never see each other's
// accumulation. Ordering is strictly first-to-last (spec.md §5).
func interpretColrLayers(st *interpState, n PaintColrLayers) error {
	for i := n.FirstLayerIndex; i < n.FirstLayerIndex+n.NumLayers; i++ {
		layer, ok := st.font.COLRv1Layer(i)
		if !ok {
			return ErrMalformedPaint
		}
		restore := st.canvas.SavedState()
		st.canvas.Transform(st.currentTransform)
		if st.currentPath != nil {
			st.canvas.ClipPath(st.currentPath)
		}
		child := *st
		child.currentPath = nil
		child.currentTransform = Identity
		if err := interpretPaint(&child, layer); err != nil {
			restore()
			return err
		}
		restore()
	}
	return nil
}

func interpretSolid(st *interpState, n PaintSolid) error {
	if st.currentPath == nil {
		return nil
	}
	c := resolveColor(st.font.Palettes(), st.opts.paletteIndex, n.ColorIndex, n.Alpha.Resolve(st.resolver), st.opts.foreground)
	st.canvas.DrawPathSolid(st.currentPath, c)
	return nil
}

// resolveColorLine resolves every stop's offset/color/alpha against the
// live palette + variable-value state, yielding a plain ColorLine the
// color-line utility (C6) can normalize.
func resolveColorLine(st *interpState, pcl PaintColorLine) ColorLine {
	stops := make([]ColorStop, len(pcl.Stops))
	for i, s := range pcl.Stops {
		stops[i] = ColorStop{
			Offset: s.StopOffset.Resolve(st.resolver),
			Color:  resolveColor(st.font.Palettes(), st.opts.paletteIndex, s.ColorIndex, s.Alpha.Resolve(st.resolver), st.opts.foreground),
		}
	}
	return ColorLine{Stops: stops, Extend: pcl.Extend}
}

func interpretLinearGradient(st *interpState, n PaintLinearGradient) error {
	if st.currentPath == nil {
		return nil
	}
	line := resolveColorLine(st, n.ColorLine)
	sMin, sMax, normalized := normalizeColorLine(line.Stops)
	line.Stops = normalized

	p0 := Point{n.P0.X.Resolve(st.resolver), n.P0.Y.Resolve(st.resolver)}
	p1 := Point{n.P1.X.Resolve(st.resolver), n.P1.Y.Resolve(st.resolver)}
	p2 := Point{n.P2.X.Resolve(st.resolver), n.P2.Y.Resolve(st.resolver)}
	start, end := reduceLinearAnchors(p0, p1, p2)
	lo := lerpPoint(start, end, sMin)
	hi := lerpPoint(start, end, sMax)

	st.canvas.DrawPathLinearGradient(st.currentPath, line, lo, hi, line.Extend, st.currentTransform)
	return nil
}

func interpretRadialGradient(st *interpState, n PaintRadialGradient) error {
	if st.currentPath == nil {
		return nil
	}
	line := resolveColorLine(st, n.ColorLine)
	sMin, sMax, normalized := normalizeColorLine(line.Stops)
	line.Stops = normalized

	x0, y0, r0 := n.X0.Resolve(st.resolver), n.Y0.Resolve(st.resolver), n.R0.Resolve(st.resolver)
	x1, y1, r1 := n.X1.Resolve(st.resolver), n.Y1.Resolve(st.resolver), n.R1.Resolve(st.resolver)

	c1 := lerpPoint(Point{x0, y0}, Point{x1, y1}, sMin)
	c2 := lerpPoint(Point{x0, y0}, Point{x1, y1}, sMax)
	rr1 := lerp(r0, r1, sMin)
	rr2 := lerp(r0, r1, sMax)

	st.canvas.DrawPathRadialGradient(st.currentPath, line, c1, rr1, c2, rr2, line.Extend, st.currentTransform)
	return nil
}

func interpretSweepGradient(st *interpState, n PaintSweepGradient) error {
	if st.currentPath == nil {
		return nil
	}
	line := resolveColorLine(st, n.ColorLine)
	sMin, sMax, normalized := normalizeColorLine(line.Stops)
	line.Stops = normalized

	center := Point{n.CenterX.Resolve(st.resolver), n.CenterY.Resolve(st.resolver)}
	startDeg := n.StartAngle.Resolve(st.resolver)
	endDeg := n.EndAngle.Resolve(st.resolver)
	start := lerp(startDeg, endDeg, sMin) * math.Pi / 180
	end := lerp(startDeg, endDeg, sMax) * math.Pi / 180

	st.canvas.DrawPathSweepGradient(st.currentPath, line, center, start, end, line.Extend, st.currentTransform)
	return nil
}

// interpretGlyph is §4.6 Glyph: builds a fresh path from GlyphName's
// outline (which must not itself be COLR), installs it as currentPath
// under a fresh saved state with the ambient transform baked in and the
// prior path (if any) as the new clip, then recurses.
func interpretGlyph(st *interpState, n PaintGlyph) error {
	gid, ok := st.font.GIDByGlyphName(n.GlyphName)
	if !ok {
		return ErrMissingGlyph
	}
	pb := st.canvas.NewPath()
	if err := st.font.DrawOutline(gid, pb); err != nil {
		return err
	}
	path := pb.Build()

	restore := st.canvas.SavedState()
	defer restore()

	st.canvas.Transform(st.currentTransform)
	if st.currentPath != nil {
		st.canvas.ClipPath(st.currentPath)
	}

	child := *st
	child.currentPath = path
	child.currentTransform = Identity
	return interpretPaint(&child, n.Paint)
}

// interpretColrGlyph is §4.6 ColrGlyph: same scope bake-in as Glyph, but
// currentPath is cleared (not set) and the recursion target is another
// base glyph's COLRv1 root paint rather than n.Paint.
func interpretColrGlyph(st *interpState, n PaintColrGlyph) error {
	target, ok := st.font.COLRv1BaseGlyph(n.GlyphName)
	if !ok {
		return ErrMissingGlyph
	}
	restore := st.canvas.SavedState()
	defer restore()

	st.canvas.Transform(st.currentTransform)
	if st.currentPath != nil {
		st.canvas.ClipPath(st.currentPath)
	}

	child := *st
	child.currentPath = nil
	child.currentTransform = Identity
	return interpretPaint(&child, target)
}

// interpretTransform composes affine into currentTransform and recurses.
// No saved state is pushed here: per §4.6, Transform/Translate/Rotate/
// Skew/Scale restore on exit via whichever caller originally saved state
// (Glyph, ColrGlyph, or ColrLayers' per-sibling scope).
func interpretTransform(st *interpState, affine Affine, child Paint) error {
	next := *st
	next.currentTransform = st.currentTransform.Multiply(affine)
	return interpretPaint(&next, child)
}

func interpretRotate(st *interpState, n PaintRotate) error {
	center := Point{n.CenterX.Resolve(st.resolver), n.CenterY.Resolve(st.resolver)}
	angle := n.Angle.Resolve(st.resolver) * math.Pi / 180
	return interpretTransform(st, AroundPivot(center, Rotation(angle)), n.Paint)
}

func interpretSkew(st *interpState, n PaintSkew) error {
	center := Point{n.CenterX.Resolve(st.resolver), n.CenterY.Resolve(st.resolver)}
	xAngle := n.XSkewAngle.Resolve(st.resolver) * math.Pi / 180
	yAngle := n.YSkewAngle.Resolve(st.resolver) * math.Pi / 180
	return interpretTransform(st, AroundPivot(center, Skewing(xAngle, yAngle)), n.Paint)
}

func interpretScale(st *interpState, n PaintScale) error {
	center := Point{n.CenterX.Resolve(st.resolver), n.CenterY.Resolve(st.resolver)}
	sx, sy := n.XScale.Resolve(st.resolver), n.YScale.Resolve(st.resolver)
	return interpretTransform(st, AroundPivot(center, Scaling(sx, sy)), n.Paint)
}

// interpretComposite is the documented gap: PaintComposite blend/backdrop
// semantics aren't implemented (spec.md §4.6, §9 open question). The
// chosen fallback renders the source paint only.
func interpretComposite(st *interpState, n PaintComposite) error {
	st.opts.logger.Warn("colr: PaintComposite mode not implemented, rendering source only", "mode", n.Mode)
	return interpretPaint(st, n.Source)
}

// interpretLocation pushes an axis-location overlay built from n.Axes on
// top of the resolver's current location, recurses, and pops it on exit
// (spec invariant 6) via defer so the restore happens on every path.
func interpretLocation(st *interpState, n PaintLocation) error {
	base := st.resolver.Location()
	overlay := append([]float32(nil), base...)
	for _, axis := range n.Axes {
		for len(overlay) <= axis.AxisIndex {
			overlay = append(overlay, 0)
		}
		overlay[axis.AxisIndex] = float32(axis.AxisValue.Resolve(st.resolver))
	}
	pop := st.resolver.PushLocation(overlay)
	defer pop()
	return interpretPaint(st, n.Paint)
}
