// Package colrcollect implements a colr.Canvas backend that records draw
// calls and paths instead of rendering them, for geometric introspection
// and tests — the "path collector" of spec.md §6.3, supplemented here
// with a CollectLine query API mirroring the original implementation's
// getLineGlyphs/GlyphResult.
package colrcollect

import "github.com/gogpu/colrglyph/colr"

// PathCmd is one recorded path-construction command.
type PathCmd struct {
	Op                 PathOp
	P, Ctrl1, Ctrl2    colr.Point
}

// PathOp names a PathCmd's drawing operation.
type PathOp int

const (
	OpMoveTo PathOp = iota
	OpLineTo
	OpQuadTo
	OpCubicTo
	OpClose
)

// Path is the collector's opaque Path value: the recorded command
// sequence plus its bounding box.
type Path struct {
	Cmds   []PathCmd
	bounds colr.Rect
	empty  bool
}

// Bounds implements colr.Path.
func (p *Path) Bounds() colr.Rect {
	if p.empty {
		return colr.Rect{}
	}
	return p.bounds
}

type pathBuilder struct {
	p *Path
	set bool
}

func newPathBuilder() *pathBuilder {
	return &pathBuilder{p: &Path{empty: true}}
}

func (b *pathBuilder) grow(pt colr.Point) {
	if !b.set {
		b.p.bounds = colr.Rect{MinX: pt.X, MinY: pt.Y, MaxX: pt.X, MaxY: pt.Y}
		b.set = true
		b.p.empty = false
		return
	}
	b.p.bounds.MinX = min(b.p.bounds.MinX, pt.X)
	b.p.bounds.MinY = min(b.p.bounds.MinY, pt.Y)
	b.p.bounds.MaxX = max(b.p.bounds.MaxX, pt.X)
	b.p.bounds.MaxY = max(b.p.bounds.MaxY, pt.Y)
}

func (b *pathBuilder) MoveTo(p colr.Point) {
	b.p.Cmds = append(b.p.Cmds, PathCmd{Op: OpMoveTo, P: p})
	b.grow(p)
}

func (b *pathBuilder) LineTo(p colr.Point) {
	b.p.Cmds = append(b.p.Cmds, PathCmd{Op: OpLineTo, P: p})
	b.grow(p)
}

func (b *pathBuilder) QuadTo(ctrl, p colr.Point) {
	b.p.Cmds = append(b.p.Cmds, PathCmd{Op: OpQuadTo, Ctrl1: ctrl, P: p})
	b.grow(ctrl)
	b.grow(p)
}

func (b *pathBuilder) CubicTo(ctrl1, ctrl2, p colr.Point) {
	b.p.Cmds = append(b.p.Cmds, PathCmd{Op: OpCubicTo, Ctrl1: ctrl1, Ctrl2: ctrl2, P: p})
	b.grow(ctrl1)
	b.grow(ctrl2)
	b.grow(p)
}

func (b *pathBuilder) Close() {
	b.p.Cmds = append(b.p.Cmds, PathCmd{Op: OpClose})
}

func (b *pathBuilder) Build() colr.Path {
	return b.p
}

// CallKind names the kind of a recorded DrawCall.
type CallKind int

const (
	CallSolid CallKind = iota
	CallLinearGradient
	CallRadialGradient
	CallSweepGradient
)

// DrawCall is one recorded canvas draw operation, captured with the
// transform active at the time it was issued.
type DrawCall struct {
	Kind      CallKind
	Path      *Path
	Transform colr.Affine
	Color     colr.Color // CallSolid only
	Line      colr.ColorLine
	P1, P2    colr.Point
	Radius1   float64
	Radius2   float64
	Center    colr.Point
	Start, End float64
	Extend    colr.Extend
}

type clipState struct {
	transform colr.Affine
	empty     bool
	bounds    colr.Rect
	hasBounds bool
}

// Canvas is the colr.Canvas path-collector backend.
type Canvas struct {
	Calls []DrawCall

	current clipState
	stack   []clipState
}

// New creates an empty collector canvas.
func New() *Canvas {
	return &Canvas{current: clipState{transform: colr.Identity}}
}

func (c *Canvas) NewPath() colr.PathBuilder {
	return newPathBuilder()
}

func (c *Canvas) SavedState() (restore func()) {
	c.stack = append(c.stack, c.current)
	return func() {
		n := len(c.stack)
		c.current = c.stack[n-1]
		c.stack = c.stack[:n-1]
	}
}

func (c *Canvas) Transform(a colr.Affine) {
	c.current.transform = c.current.transform.Multiply(a)
}

func (c *Canvas) ClipPath(p colr.Path) {
	b := p.Bounds()
	if b.IsEmpty() {
		c.current.empty = true
		return
	}
	if c.current.hasBounds {
		c.current.bounds = intersect(c.current.bounds, b)
		if c.current.bounds.IsEmpty() {
			c.current.empty = true
		}
	} else {
		c.current.bounds = b
		c.current.hasBounds = true
	}
}

func intersect(a, b colr.Rect) colr.Rect {
	return colr.Rect{
		MinX: max(a.MinX, b.MinX), MinY: max(a.MinY, b.MinY),
		MaxX: min(a.MaxX, b.MaxX), MaxY: min(a.MaxY, b.MaxY),
	}
}

func (c *Canvas) record(call DrawCall) {
	if c.current.empty {
		return
	}
	call.Transform = c.current.transform
	c.Calls = append(c.Calls, call)
}

func (c *Canvas) DrawPathSolid(p colr.Path, col colr.Color) {
	c.record(DrawCall{Kind: CallSolid, Path: p.(*Path), Color: col})
}

func (c *Canvas) DrawPathLinearGradient(p colr.Path, line colr.ColorLine, p1, p2 colr.Point, extend colr.Extend, gradientTransform colr.Affine) {
	c.record(DrawCall{Kind: CallLinearGradient, Path: p.(*Path), Line: line, P1: p1, P2: p2, Extend: extend})
}

func (c *Canvas) DrawPathRadialGradient(p colr.Path, line colr.ColorLine, c1 colr.Point, r1 float64, c2 colr.Point, r2 float64, extend colr.Extend, gradientTransform colr.Affine) {
	c.record(DrawCall{Kind: CallRadialGradient, Path: p.(*Path), Line: line, P1: c1, Radius1: r1, P2: c2, Radius2: r2, Extend: extend})
}

func (c *Canvas) DrawPathSweepGradient(p colr.Path, line colr.ColorLine, center colr.Point, startAngle, endAngle float64, extend colr.Extend, gradientTransform colr.Affine) {
	c.record(DrawCall{Kind: CallSweepGradient, Path: p.(*Path), Line: line, Center: center, Start: startAngle, End: endAngle, Extend: extend})
}

// GlyphResult is one glyph's recorded draw calls, mirroring the original
// implementation's getLineGlyphs/GlyphResult query.
type GlyphResult struct {
	GlyphName string
	Calls     []DrawCall
}

// CollectLine shapes-drives a glyph run through r, recording each glyph's
// draw calls on a private collector canvas per glyph (so one glyph's
// calls can't leak into the next's bounds/clip state). Each glyph is
// translated by its running pen position plus its own XOffset/YOffset
// before drawing, and the pen advances by XAdvance/YAdvance afterward —
// the same left-to-right accumulation the original implementation's
// getLineGlyphs performs, so a recorded DrawCall's Transform already
// carries the glyph's placement within the line, not just its own
// paint-tree transforms.
func CollectLine(font colr.FontView, run colr.GlyphRun, opts ...colr.RenderOption) ([]GlyphResult, error) {
	results := make([]GlyphResult, 0, len(run.Glyphs))
	var penX, penY float64
	for _, g := range run.Glyphs {
		canvas := New()
		canvas.Transform(colr.Translation(penX+g.XOffset, penY+g.YOffset))
		r := colr.NewRenderer(font, canvas, opts...)
		if err := r.DrawGlyph(g.GlyphName); err != nil {
			return nil, err
		}
		results = append(results, GlyphResult{GlyphName: g.GlyphName, Calls: canvas.Calls})
		penX += g.XAdvance
		penY += g.YAdvance
	}
	return results, nil
}
