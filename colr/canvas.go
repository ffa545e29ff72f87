package colr

// Rect is an axis-aligned bounding box, (minX,minY)-(maxX,maxY).
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// IsEmpty reports whether r has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.MaxX <= r.MinX || r.MaxY <= r.MinY
}

// Union returns the smallest Rect containing both r and other. An empty
// operand is ignored so bounds can be accumulated starting from a zero
// Rect (C10's union-of-layer-extents).
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	return Rect{
		MinX: min(r.MinX, other.MinX),
		MinY: min(r.MinY, other.MinY),
		MaxX: max(r.MaxX, other.MaxX),
		MaxY: max(r.MaxY, other.MaxY),
	}
}

// Path is an opaque backend-produced value representing a filled 2D region
// built from an outline drawing sequence. Backends must be able to report
// its bounds so the interpreter (and canvas.ClipPath) can detect the
// zero-area case that must suppress, rather than leave unchanged, the
// current clip (spec.md §4.1).
type Path interface {
	Bounds() Rect
}

// PathBuilder accepts outline drawing commands and produces a backend's
// native Path. Coordinates are in the space active when the builder was
// created; a PathBuilder does not itself apply any transform.
type PathBuilder interface {
	MoveTo(p Point)
	LineTo(p Point)
	QuadTo(ctrl, p Point)
	CubicTo(ctrl1, ctrl2, p Point)
	Close()
	Build() Path
}

// Canvas is the backend-agnostic 2D drawing surface the interpreter issues
// calls against. A Canvas owns the ambient transform and clip stack; the
// interpreter never touches backend state directly.
type Canvas interface {
	// NewPath returns a fresh path-construction object.
	NewPath() PathBuilder

	// SavedState snapshots the current transform and clip and returns a
	// restore function. The caller must defer restore() so the snapshot
	// is reinstated on every exit path, including a failing one.
	SavedState() (restore func())

	// Transform right-multiplies the current transform by a (child
	// applies inside the existing transform).
	Transform(a Affine)

	// ClipPath intersects the current clip with p. A zero-area p marks
	// the clip empty for the remainder of the current saved-state scope;
	// subsequent fills within that scope must be suppressed rather than
	// drawn unclipped.
	ClipPath(p Path)

	DrawPathSolid(p Path, c Color)

	DrawPathLinearGradient(p Path, line ColorLine, p1, p2 Point, extend Extend, gradientTransform Affine)

	DrawPathRadialGradient(p Path, line ColorLine, c1 Point, r1 float64, c2 Point, r2 float64, extend Extend, gradientTransform Affine)

	// DrawPathSweepGradient sweeps line around center between the two
	// angles (radians). A backend unable to render true sweep gradients
	// may fall back to filling with line's first stop color; it should
	// document that it does so.
	DrawPathSweepGradient(p Path, line ColorLine, center Point, startAngle, endAngle float64, extend Extend, gradientTransform Affine)
}
