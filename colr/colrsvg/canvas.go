package colrsvg

import (
	"fmt"
	"io"
	"strings"

	"github.com/gogpu/colrglyph/colr"
)

// Path is an SVG path's "d" attribute plus its local-space bounds.
type Path struct {
	d      string
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

func (p *Path) extend(x, y float64) {
	if p.empty {
		p.bounds = colr.Rect{MinX: x, MinY: y, MaxX: x, MaxY: y}
		p.empty = false
		return
	}
	p.bounds = p.bounds.Union(colr.Rect{MinX: x, MinY: y, MaxX: x, MaxY: y})
}

// pathBuilder implements colr.PathBuilder, accumulating an SVG "d" string
// in the paint tree's local coordinate space — the ambient transform is
// applied by an enclosing <g transform=...> at render time, not baked in.
type pathBuilder struct {
	d      strings.Builder
	path   *Path
}

func newPathBuilder() *pathBuilder {
	return &pathBuilder{path: &Path{empty: true}}
}

func (b *pathBuilder) MoveTo(p colr.Point) {
	fmt.Fprintf(&b.d, "M%g,%g ", p.X, p.Y)
	b.path.extend(p.X, p.Y)
}

func (b *pathBuilder) LineTo(p colr.Point) {
	fmt.Fprintf(&b.d, "L%g,%g ", p.X, p.Y)
	b.path.extend(p.X, p.Y)
}

func (b *pathBuilder) QuadTo(ctrl, p colr.Point) {
	fmt.Fprintf(&b.d, "Q%g,%g %g,%g ", ctrl.X, ctrl.Y, p.X, p.Y)
	b.path.extend(ctrl.X, ctrl.Y)
	b.path.extend(p.X, p.Y)
}

func (b *pathBuilder) CubicTo(ctrl1, ctrl2, p colr.Point) {
	fmt.Fprintf(&b.d, "C%g,%g %g,%g %g,%g ", ctrl1.X, ctrl1.Y, ctrl2.X, ctrl2.Y, p.X, p.Y)
	b.path.extend(ctrl1.X, ctrl1.Y)
	b.path.extend(ctrl2.X, ctrl2.Y)
	b.path.extend(p.X, p.Y)
}

func (b *pathBuilder) Close() {
	b.d.WriteString("Z ")
}

func (b *pathBuilder) Build() colr.Path {
	b.path.d = strings.TrimSpace(b.d.String())
	return b.path
}

// Canvas implements colr.Canvas, emitting an SVG document into body, with
// gradients and clip paths collected into defs as they're encountered.
type Canvas struct {
	width, height float64

	body strings.Builder
	defs strings.Builder

	openGroups int
	saveStack  []int

	gradientSeq int
	clipSeq     int
}

// New creates a Canvas that will render a width x height SVG document.
func New(width, height float64) *Canvas {
	return &Canvas{width: width, height: height}
}

// NewPath implements colr.Canvas.
func (c *Canvas) NewPath() colr.PathBuilder {
	return newPathBuilder()
}

// SavedState implements colr.Canvas, closing every <g> opened since this
// call when the returned function runs.
func (c *Canvas) SavedState() func() {
	c.saveStack = append(c.saveStack, c.openGroups)
	return func() {
		target := c.saveStack[len(c.saveStack)-1]
		c.saveStack = c.saveStack[:len(c.saveStack)-1]
		for c.openGroups > target {
			c.body.WriteString("</g>")
			c.openGroups--
		}
	}
}

// Transform implements colr.Canvas, wrapping subsequent elements in a
// transformed group.
func (c *Canvas) Transform(a colr.Affine) {
	fmt.Fprintf(&c.body, `<g transform="matrix(%g,%g,%g,%g,%g,%g)">`,
		a.XX, a.YX, a.XY, a.YY, a.DX, a.DY)
	c.openGroups++
}

// ClipPath implements colr.Canvas, registering p as a <clipPath> and
// wrapping subsequent elements in a group referencing it. A zero-area path
// still gets a clipPath def with an empty shape, which SVG renderers treat
// as clipping everything within the group to nothing.
func (c *Canvas) ClipPath(p colr.Path) {
	rp := p.(*Path)
	id := fmt.Sprintf("clip%d", c.clipSeq)
	c.clipSeq++
	fmt.Fprintf(&c.defs, `<clipPath id="%s"><path d="%s"/></clipPath>`, id, rp.d)
	fmt.Fprintf(&c.body, `<g clip-path="url(#%s)">`, id)
	c.openGroups++
}

// DrawPathSolid implements colr.Canvas.
func (c *Canvas) DrawPathSolid(p colr.Path, col colr.Color) {
	rp := p.(*Path)
	fmt.Fprintf(&c.body, `<path d="%s" fill="%s" fill-opacity="%g"/>`, rp.d, rgbHex(col), col.A)
}

// DrawPathLinearGradient implements colr.Canvas.
func (c *Canvas) DrawPathLinearGradient(p colr.Path, line colr.ColorLine, p1, p2 colr.Point, extend colr.Extend, gradientTransform colr.Affine) {
	id := fmt.Sprintf("grad%d", c.gradientSeq)
	c.gradientSeq++

	fmt.Fprintf(&c.defs, `<linearGradient id="%s" gradientUnits="userSpaceOnUse" x1="%g" y1="%g" x2="%g" y2="%g" spreadMethod="%s" gradientTransform="matrix(%g,%g,%g,%g,%g,%g)">`,
		id, p1.X, p1.Y, p2.X, p2.Y, spreadMethod(extend),
		gradientTransform.XX, gradientTransform.YX, gradientTransform.XY, gradientTransform.YY, gradientTransform.DX, gradientTransform.DY)
	writeStops(&c.defs, line)
	c.defs.WriteString(`</linearGradient>`)

	rp := p.(*Path)
	fmt.Fprintf(&c.body, `<path d="%s" fill="url(#%s)"/>`, rp.d, id)
}

// DrawPathRadialGradient implements colr.Canvas. Like colrraster, this
// maps COLRv1's two independent circles onto a single cx/cy/r circle plus
// an fx/fy focus — exact when c1 == c2, approximate otherwise, since SVG's
// radialGradient (outside the rarely-supported SVG2 fr attribute) only
// has one outer radius.
func (c *Canvas) DrawPathRadialGradient(p colr.Path, line colr.ColorLine, c1 colr.Point, r1 float64, c2 colr.Point, r2 float64, extend colr.Extend, gradientTransform colr.Affine) {
	id := fmt.Sprintf("grad%d", c.gradientSeq)
	c.gradientSeq++

	fmt.Fprintf(&c.defs, `<radialGradient id="%s" gradientUnits="userSpaceOnUse" cx="%g" cy="%g" r="%g" fx="%g" fy="%g" fr="%g" spreadMethod="%s" gradientTransform="matrix(%g,%g,%g,%g,%g,%g)">`,
		id, c2.X, c2.Y, r2, c1.X, c1.Y, r1, spreadMethod(extend),
		gradientTransform.XX, gradientTransform.YX, gradientTransform.XY, gradientTransform.YY, gradientTransform.DX, gradientTransform.DY)
	writeStops(&c.defs, line)
	c.defs.WriteString(`</radialGradient>`)

	rp := p.(*Path)
	fmt.Fprintf(&c.body, `<path d="%s" fill="url(#%s)"/>`, rp.d, id)
}

// DrawPathSweepGradient implements colr.Canvas. SVG has no standard conic
// paint server, so this falls back to the first stop's solid color, as
// the interface's doc comment allows.
func (c *Canvas) DrawPathSweepGradient(p colr.Path, line colr.ColorLine, center colr.Point, startAngle, endAngle float64, extend colr.Extend, gradientTransform colr.Affine) {
	fallback := colr.Color{}
	if len(line.Stops) > 0 {
		fallback = line.Stops[0].Color
	}
	c.DrawPathSolid(p, fallback)
}

// WriteTo implements io.WriterTo, writing the complete SVG document.
func (c *Canvas) WriteTo(w io.Writer) (int64, error) {
	var buf strings.Builder
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">`,
		c.width, c.height, c.width, c.height)
	if c.defs.Len() > 0 {
		buf.WriteString("<defs>")
		buf.WriteString(c.defs.String())
		buf.WriteString("</defs>")
	}
	buf.WriteString(c.body.String())
	for i := 0; i < c.openGroups; i++ {
		buf.WriteString("</g>")
	}
	buf.WriteString("</svg>")

	n, err := io.WriteString(w, buf.String())
	return int64(n), err
}

func rgbHex(c colr.Color) string {
	clamp := func(v float64) int {
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 255
		}
		return int(v * 255)
	}
	return fmt.Sprintf("#%02x%02x%02x", clamp(c.R), clamp(c.G), clamp(c.B))
}

func writeStops(b *strings.Builder, line colr.ColorLine) {
	for _, s := range line.Stops {
		fmt.Fprintf(b, `<stop offset="%g" stop-color="%s" stop-opacity="%g"/>`, s.Offset, rgbHex(s.Color), s.Color.A)
	}
}

func spreadMethod(e colr.Extend) string {
	switch e {
	case colr.ExtendRepeat:
		return "repeat"
	case colr.ExtendReflect:
		return "reflect"
	default:
		return "pad"
	}
}
