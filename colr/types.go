package colr

import "math"

// GlyphID mirrors text.GlyphID so colrfont can hand glyph IDs straight to
// an outline extractor without a conversion layer.
type GlyphID uint16

// Color is a straight-alpha RGBA color with components in [0,1].
type Color struct {
	R, G, B, A float64
}

// Lerp linearly interpolates between c and other at parameter t.
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// WithAlphaMul returns c with its alpha multiplied by mul.
func (c Color) WithAlphaMul(mul float64) Color {
	c.A *= mul
	return c
}

// Point is a 2D coordinate in font design units.
type Point struct {
	X, Y float64
}

// Sub returns p - other.
func (p Point) Sub(other Point) Point {
	return Point{p.X - other.X, p.Y - other.Y}
}

// Dot returns the dot product of p and other, treated as vectors.
func (p Point) Dot(other Point) float64 {
	return p.X*other.X + p.Y*other.Y
}

// Identity is the affine identity transform.
var Identity = Affine{XX: 1, YY: 1}

// Affine is a 2D affine transform: [[xx xy dx][yx yy dy]].
type Affine struct {
	XX, YX, XY, YY, DX, DY float64
}

// Multiply returns the composition of a followed by child, i.e. applying
// child first and then a — the convention under which a nested paint's
// transform applies inside its enclosing one.
func (a Affine) Multiply(child Affine) Affine {
	return Affine{
		XX: a.XX*child.XX + a.XY*child.YX,
		YX: a.YX*child.XX + a.YY*child.YX,
		XY: a.XX*child.XY + a.XY*child.YY,
		YY: a.YX*child.XY + a.YY*child.YY,
		DX: a.XX*child.DX + a.XY*child.DY + a.DX,
		DY: a.YX*child.DX + a.YY*child.DY + a.DY,
	}
}

// TransformPoint applies the affine to a point.
func (a Affine) TransformPoint(p Point) Point {
	return Point{
		X: a.XX*p.X + a.XY*p.Y + a.DX,
		Y: a.YX*p.X + a.YY*p.Y + a.DY,
	}
}

// Translation returns a translation-only affine.
func Translation(dx, dy float64) Affine {
	return Affine{XX: 1, YY: 1, DX: dx, DY: dy}
}

// Scaling returns a scale-only affine.
func Scaling(sx, sy float64) Affine {
	return Affine{XX: sx, YY: sy}
}

// Rotation returns a rotate-only affine for angle radians.
func Rotation(angle float64) Affine {
	s, c := math.Sin(angle), math.Cos(angle)
	return Affine{XX: c, YX: s, XY: -s, YY: c}
}

// Skewing returns a skew-only affine; angles are in radians.
func Skewing(xAngle, yAngle float64) Affine {
	return Affine{XX: 1, YX: math.Tan(yAngle), XY: math.Tan(xAngle), YY: 1}
}

// AroundPivot composes translate(center) . op . translate(-center), the
// pattern Rotate/Skew/Scale paints use to pivot around a center point.
func AroundPivot(center Point, op Affine) Affine {
	return Translation(center.X, center.Y).Multiply(op).Multiply(Translation(-center.X, -center.Y))
}

// Extend describes gradient behavior outside its [0,1] parameter range.
type Extend int

const (
	ExtendPad Extend = iota
	ExtendRepeat
	ExtendReflect
)

// ColorStop is one (offset, color) entry in a color line.
type ColorStop struct {
	Offset float64
	Color  Color
}

// ColorLine is an ordered list of color stops plus an extend policy.
type ColorLine struct {
	Stops  []ColorStop
	Extend Extend
}
