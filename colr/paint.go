package colr

// Paint is a node in a COLRv1 paint tree. Every concrete type in this file
// implements it; the interpreter recovers the concrete variant with a type
// switch rather than reflection.
//
// The Var/non-Var duality spec.md describes as two parallel node shapes is
// collapsed here: every numeric field that COLRv1 allows to vary is typed
// as [Var], a (base, varIdx) pair resolved against the live axis location
// at the point of use. A "plain" paint and its PaintVar* counterpart are
// therefore the same Go type; a loader that only ever saw non-variable
// fonts simply produces Vars with VarIx == NoVariation everywhere.
type Paint interface {
	paintNode()
}

// PaintColrLayers draws layers [FirstLayerIndex, FirstLayerIndex+NumLayers)
// of the flat layer list, back to front.
type PaintColrLayers struct {
	FirstLayerIndex uint32
	NumLayers       uint32
}

func (PaintColrLayers) paintNode() {}

// PaintSolid fills the ambient current path with a palette color.
type PaintSolid struct {
	ColorIndex uint16
	Alpha      Var
}

func (PaintSolid) paintNode() {}

// PaintColorStop is one stop of a gradient's color line before palette
// resolution: the color itself is looked up lazily via ColorIndex so that
// a stop carrying the 0xFFFF sentinel picks up the render's foreground
// color at walk time, not at load time.
type PaintColorStop struct {
	StopOffset Var
	ColorIndex uint16
	Alpha      Var
}

// PaintColorLine is a gradient's color line prior to normalization (§4.2).
type PaintColorLine struct {
	Stops  []PaintColorStop
	Extend Extend
}

// PointVar is a 2D point whose coordinates may vary.
type PointVar struct {
	X, Y Var
}

// PaintLinearGradient carries the three COLRv1 gradient anchors; P2 is
// reduced away during interpretation (§4.3) and never reaches the canvas.
type PaintLinearGradient struct {
	ColorLine  PaintColorLine
	P0, P1, P2 PointVar
}

func (PaintLinearGradient) paintNode() {}

// PaintRadialGradient is two circles (x0,y0,r0) and (x1,y1,r1).
type PaintRadialGradient struct {
	ColorLine          PaintColorLine
	X0, Y0, R0         Var
	X1, Y1, R1         Var
}

func (PaintRadialGradient) paintNode() {}

// PaintSweepGradient sweeps its color line around Center between the two
// angles, given in degrees.
type PaintSweepGradient struct {
	ColorLine            PaintColorLine
	CenterX, CenterY     Var
	StartAngle, EndAngle Var
}

func (PaintSweepGradient) paintNode() {}

// PaintGlyph draws the outline of GlyphName (which must not itself be a
// COLR glyph) as the path that Paint's leaf fill/gradient applies to.
type PaintGlyph struct {
	GlyphName string
	Paint     Paint
}

func (PaintGlyph) paintNode() {}

// PaintColrGlyph recurses into another COLRv1 base glyph by name.
type PaintColrGlyph struct {
	GlyphName string
}

func (PaintColrGlyph) paintNode() {}

// AffineVar is a 6-coefficient affine transform whose entries may vary.
type AffineVar struct {
	XX, YX, XY, YY, DX, DY Var
}

// PaintTransform applies an explicit affine ahead of Paint.
type PaintTransform struct {
	Affine AffineVar
	Paint  Paint
}

func (PaintTransform) paintNode() {}

// PaintTranslate offsets the coordinate space ahead of Paint.
type PaintTranslate struct {
	DX, DY Var
	Paint  Paint
}

func (PaintTranslate) paintNode() {}

// PaintRotate rotates Angle degrees about (CenterX, CenterY) ahead of Paint.
type PaintRotate struct {
	CenterX, CenterY Var
	Angle            Var
	Paint            Paint
}

func (PaintRotate) paintNode() {}

// PaintSkew skews by the two angles (degrees) about a pivot ahead of Paint.
type PaintSkew struct {
	CenterX, CenterY               Var
	XSkewAngle, YSkewAngle         Var
	Paint                          Paint
}

func (PaintSkew) paintNode() {}

// PaintScale scales about a pivot ahead of Paint.
type PaintScale struct {
	CenterX, CenterY Var
	XScale, YScale   Var
	Paint            Paint
}

func (PaintScale) paintNode() {}

// CompositeMode names a COLRv1 composite/blend mode. This spec revision
// does not implement blend semantics (§4.6); the mode is carried through
// so a future interpreter revision, or a diagnostic log line, can name it.
type CompositeMode int

// PaintComposite composites Source over Backdrop under Mode. Unimplemented:
// the interpreter renders Source only and logs a diagnostic (documented
// choice, spec.md §4.6 option (b); see DESIGN.md).
type PaintComposite struct {
	Source   Paint
	Mode     CompositeMode
	Backdrop Paint
}

func (PaintComposite) paintNode() {}

// LocationAxis overlays one axis of the normalized variation location for
// the duration of a PaintLocation scope.
type LocationAxis struct {
	AxisIndex int
	AxisValue Var
}

// PaintLocation pushes an axis-location overlay, recurses into Paint, and
// pops it on exit (spec invariant 6).
type PaintLocation struct {
	Axes  []LocationAxis
	Paint Paint
}

func (PaintLocation) paintNode() {}
