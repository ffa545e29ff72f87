package colr_test

import (
	"testing"

	"github.com/gogpu/colrglyph/colr"
	"github.com/gogpu/colrglyph/colr/colrcollect"
)

// testFont is a minimal in-memory colr.FontView used across scenario
// tests. Outlines are simple unit squares so bounds/fills are easy to
// assert on.
type testFont struct {
	gids      map[string]colr.GlyphID
	names     map[colr.GlyphID]string
	v0        map[string][]colr.LayerRecord
	v1        map[string]colr.Paint
	layers    []colr.Paint
	palettes  [][]colr.Color
	store     colr.ItemVariationStore
	location  []float32
	outlines  map[colr.GlyphID]colr.Rect
}

func newTestFont() *testFont {
	return &testFont{
		gids:     map[string]colr.GlyphID{},
		names:    map[colr.GlyphID]string{},
		v0:       map[string][]colr.LayerRecord{},
		v1:       map[string]colr.Paint{},
		outlines: map[colr.GlyphID]colr.Rect{},
	}
}

func (f *testFont) addGlyph(name string, gid colr.GlyphID, bounds colr.Rect) {
	f.gids[name] = gid
	f.names[gid] = name
	f.outlines[gid] = bounds
}

func (f *testFont) GIDByGlyphName(name string) (colr.GlyphID, bool) {
	gid, ok := f.gids[name]
	return gid, ok
}

func (f *testFont) GlyphNameByGID(gid colr.GlyphID) (string, bool) {
	name, ok := f.names[gid]
	return name, ok
}

func (f *testFont) COLRv0Layers(name string) ([]colr.LayerRecord, bool) {
	l, ok := f.v0[name]
	return l, ok
}

func (f *testFont) COLRv1BaseGlyph(name string) (colr.Paint, bool) {
	p, ok := f.v1[name]
	return p, ok
}

func (f *testFont) COLRv1Layer(i uint32) (colr.Paint, bool) {
	if int(i) >= len(f.layers) {
		return nil, false
	}
	return f.layers[i], nil
}

func (f *testFont) VarStore() colr.ItemVariationStore { return f.store }

func (f *testFont) Palettes() [][]colr.Color { return f.palettes }

func (f *testFont) NormalizedAxisValues() []float32 { return f.location }

func (f *testFont) SetNormalizedAxisValues(v []float32) { f.location = v }

func (f *testFont) DrawOutline(gid colr.GlyphID, pb colr.PathBuilder) error {
	b, ok := f.outlines[gid]
	if !ok {
		return colr.ErrMissingGlyph
	}
	pb.MoveTo(colr.Point{X: b.MinX, Y: b.MinY})
	pb.LineTo(colr.Point{X: b.MaxX, Y: b.MinY})
	pb.LineTo(colr.Point{X: b.MaxX, Y: b.MaxY})
	pb.LineTo(colr.Point{X: b.MinX, Y: b.MaxY})
	pb.Close()
	return nil
}

func (f *testFont) GlyphExtents(gid colr.GlyphID) (colr.Rect, bool) {
	b, ok := f.outlines[gid]
	return b, ok
}

// S1 — plain outline, no COLR: expect one solid fill over the glyph's
// rectangular path with the foreground color.
func TestScenarioPlainOutline(t *testing.T) {
	font := newTestFont()
	font.addGlyph("A", 1, colr.Rect{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100})

	canvas := colrcollect.New()
	r := colr.NewRenderer(font, canvas)
	if err := r.DrawGlyph("A"); err != nil {
		t.Fatalf("DrawGlyph: %v", err)
	}

	if len(canvas.Calls) != 1 {
		t.Fatalf("want 1 call, got %d", len(canvas.Calls))
	}
	call := canvas.Calls[0]
	if call.Kind != colrcollect.CallSolid {
		t.Fatalf("want solid fill, got kind %v", call.Kind)
	}
	if call.Color != (colr.Color{A: 1}) {
		t.Fatalf("want opaque black foreground, got %+v", call.Color)
	}
	if call.Path.Bounds() != (colr.Rect{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}) {
		t.Fatalf("unexpected path bounds: %+v", call.Path.Bounds())
	}
}

// S2 — COLRv0 two-layer: expect two solid fills in source order, red
// then blue.
func TestScenarioCOLRv0TwoLayers(t *testing.T) {
	font := newTestFont()
	font.addGlyph("A.base", 1, colr.Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10})
	font.addGlyph("A.dot", 2, colr.Rect{MinX: 2, MinY: 2, MaxX: 8, MaxY: 8})
	font.v0["A"] = []colr.LayerRecord{
		{GlyphName: "A.base", ColorIndex: 0},
		{GlyphName: "A.dot", ColorIndex: 1},
	}
	red := colr.Color{R: 1, A: 1}
	blue := colr.Color{B: 1, A: 1}
	font.palettes = [][]colr.Color{{red, blue}}

	canvas := colrcollect.New()
	r := colr.NewRenderer(font, canvas)
	if err := r.DrawGlyph("A"); err != nil {
		t.Fatalf("DrawGlyph: %v", err)
	}

	if len(canvas.Calls) != 2 {
		t.Fatalf("want 2 calls, got %d", len(canvas.Calls))
	}
	if canvas.Calls[0].Color != red {
		t.Fatalf("layer 0: want red, got %+v", canvas.Calls[0].Color)
	}
	if canvas.Calls[1].Color != blue {
		t.Fatalf("layer 1: want blue, got %+v", canvas.Calls[1].Color)
	}
}

// S3 — COLRv1 solid under glyph under transform: expect the canvas
// transform at fill time to include the translation, and a fill color
// with alpha halved by the Solid node's own alpha.
func TestScenarioSolidUnderGlyphUnderTransform(t *testing.T) {
	font := newTestFont()
	font.addGlyph("A.base", 1, colr.Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10})
	font.palettes = [][]colr.Color{{{R: 1, A: 1}}}
	font.v1["A"] = colr.PaintTranslate{
		DX: colr.Const(10),
		DY: colr.Const(20),
		Paint: colr.PaintGlyph{
			GlyphName: "A.base",
			Paint: colr.PaintSolid{
				ColorIndex: 0,
				Alpha:      colr.Const(0.5),
			},
		},
	}

	canvas := colrcollect.New()
	r := colr.NewRenderer(font, canvas)
	if err := r.DrawGlyph("A"); err != nil {
		t.Fatalf("DrawGlyph: %v", err)
	}

	if len(canvas.Calls) != 1 {
		t.Fatalf("want 1 call, got %d", len(canvas.Calls))
	}
	call := canvas.Calls[0]
	want := colr.Color{R: 1, A: 0.5}
	if call.Color != want {
		t.Fatalf("want color %+v, got %+v", want, call.Color)
	}
	if call.Transform.DX != 10 || call.Transform.DY != 20 {
		t.Fatalf("want translation (10,20) baked into transform, got %+v", call.Transform)
	}
}

// S6 — empty clip suppression: a Glyph paint with a zero-area outline
// must suppress the nested Solid fill entirely, not fill unclipped.
func TestScenarioEmptyClipSuppression(t *testing.T) {
	font := newTestFont()
	font.addGlyph("A.empty", 1, colr.Rect{MinX: 5, MinY: 5, MaxX: 5, MaxY: 5})
	font.palettes = [][]colr.Color{{{R: 1, A: 1}}}
	font.v1["A"] = colr.PaintGlyph{
		GlyphName: "A.empty",
		Paint:     colr.PaintSolid{ColorIndex: 0, Alpha: colr.Const(1)},
	}

	canvas := colrcollect.New()
	r := colr.NewRenderer(font, canvas)
	if err := r.DrawGlyph("A"); err != nil {
		t.Fatalf("DrawGlyph: %v", err)
	}

	if len(canvas.Calls) != 0 {
		t.Fatalf("want 0 calls from empty-clip suppression, got %d", len(canvas.Calls))
	}
}

// S4 — linear gradient normalization: stops (0.25, red), (0.75, blue)
// over anchors p0=(0,0) p1=(10,0) p2=(0,10) reduce to endpoints (0,0)-
// (10,0); after the (0.25,0.75) lerp the backend sees (2.5,0)-(7.5,0)
// and a renormalized [0,1] color line.
func TestScenarioLinearGradientNormalization(t *testing.T) {
	font := newTestFont()
	font.addGlyph("A.base", 1, colr.Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10})
	red := colr.Color{R: 1, A: 1}
	blue := colr.Color{B: 1, A: 1}
	font.palettes = [][]colr.Color{{red, blue}}
	font.v1["A"] = colr.PaintGlyph{
		GlyphName: "A.base",
		Paint: colr.PaintLinearGradient{
			ColorLine: colr.PaintColorLine{
				Stops: []colr.PaintColorStop{
					{StopOffset: colr.Const(0.25), ColorIndex: 0, Alpha: colr.Const(1)},
					{StopOffset: colr.Const(0.75), ColorIndex: 1, Alpha: colr.Const(1)},
				},
			},
			P0: colr.PointVar{X: colr.Const(0), Y: colr.Const(0)},
			P1: colr.PointVar{X: colr.Const(10), Y: colr.Const(0)},
			P2: colr.PointVar{X: colr.Const(0), Y: colr.Const(10)},
		},
	}

	canvas := colrcollect.New()
	r := colr.NewRenderer(font, canvas)
	if err := r.DrawGlyph("A"); err != nil {
		t.Fatalf("DrawGlyph: %v", err)
	}

	if len(canvas.Calls) != 1 {
		t.Fatalf("want 1 call, got %d", len(canvas.Calls))
	}
	call := canvas.Calls[0]
	if call.P1 != (colr.Point{X: 2.5, Y: 0}) || call.P2 != (colr.Point{X: 7.5, Y: 0}) {
		t.Fatalf("want endpoints (2.5,0)-(7.5,0), got %+v-%+v", call.P1, call.P2)
	}
	if len(call.Line.Stops) != 2 || call.Line.Stops[0].Offset != 0 || call.Line.Stops[1].Offset != 1 {
		t.Fatalf("want renormalized stops [0,1], got %+v", call.Line.Stops)
	}
}

// varStore is a trivial ItemVariationStore returning a fixed delta for
// one varIdx at any location, used by the variable-resolution tests.
type varStore struct {
	idx   uint32
	delta float32
}

func (s varStore) DeltaAt(varIdx uint32, _ []float32) float32 {
	if varIdx == s.idx {
		return s.delta
	}
	return 0
}

// S5 — variable solid via Location: alpha (base=1.0, varIdx=0) under a
// variation store that deltas -0.5 resolves to alpha 0.5 inside a
// Location(wght=1.0) scope.
func TestScenarioVariableSolidViaLocation(t *testing.T) {
	font := newTestFont()
	font.addGlyph("A.base", 1, colr.Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10})
	font.palettes = [][]colr.Color{{{R: 1, A: 1}}}
	font.store = varStore{idx: 0, delta: -0.5}
	font.v1["A"] = colr.PaintGlyph{
		GlyphName: "A.base",
		Paint: colr.PaintLocation{
			Axes: []colr.LocationAxis{{AxisIndex: 0, AxisValue: colr.Const(1.0)}},
			Paint: colr.PaintSolid{
				ColorIndex: 0,
				Alpha:      colr.Var{Base: 1.0, VarIx: 0, Kind: colr.KindPlain},
			},
		},
	}

	canvas := colrcollect.New()
	r := colr.NewRenderer(font, canvas)
	if err := r.DrawGlyph("A"); err != nil {
		t.Fatalf("DrawGlyph: %v", err)
	}

	if len(canvas.Calls) != 1 {
		t.Fatalf("want 1 call, got %d", len(canvas.Calls))
	}
	if got := canvas.Calls[0].Color.A; got != 0.5 {
		t.Fatalf("want alpha 0.5, got %v", got)
	}
}

// Invariant 5: varIdx = NoVariation returns base unchanged regardless of
// location.
func TestVarResolveNoVariation(t *testing.T) {
	v := colr.Const(3.5)
	r := colr.NewResolver(varStore{idx: 0, delta: -100}, []float32{1})
	if got := v.Resolve(r); got != 3.5 {
		t.Fatalf("want base 3.5 unchanged, got %v", got)
	}
}

// Invariant 6: after a Location scope exits, the resolver's location
// equals its pre-push value.
func TestResolverLocationPushPop(t *testing.T) {
	r := colr.NewResolver(nil, []float32{0.25})
	pop := r.PushLocation([]float32{1})
	if r.Location()[0] != 1 {
		t.Fatalf("want pushed location, got %v", r.Location())
	}
	pop()
	if r.Location()[0] != 0.25 {
		t.Fatalf("want restored location 0.25, got %v", r.Location())
	}
}

// Invariant 4: resolving colorIndex 0xFFFF yields the foreground color
// scaled by alpha, regardless of palette/paletteIndex.
func TestForegroundSentinel(t *testing.T) {
	font := newTestFont()
	font.addGlyph("A.base", 1, colr.Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10})
	font.palettes = [][]colr.Color{{{R: 1, A: 1}}}
	font.v1["A"] = colr.PaintGlyph{
		GlyphName: "A.base",
		Paint: colr.PaintSolid{
			ColorIndex: colr.ForegroundIndex,
			Alpha:      colr.Const(0.5),
		},
	}

	canvas := colrcollect.New()
	fg := colr.Color{R: 0.2, G: 0.4, B: 0.6, A: 1}
	r := colr.NewRenderer(font, canvas, colr.WithForegroundColor(fg))
	if err := r.DrawGlyph("A"); err != nil {
		t.Fatalf("DrawGlyph: %v", err)
	}

	want := fg.WithAlphaMul(0.5)
	if canvas.Calls[0].Color != want {
		t.Fatalf("want %+v, got %+v", want, canvas.Calls[0].Color)
	}
}

// C10: COLRv0 bounds are the union of each layer glyph's extents.
func TestGlyphBoundsCOLRv0Union(t *testing.T) {
	font := newTestFont()
	font.addGlyph("A.base", 1, colr.Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10})
	font.addGlyph("A.dot", 2, colr.Rect{MinX: 8, MinY: 8, MaxX: 20, MaxY: 20})
	font.v0["A"] = []colr.LayerRecord{{GlyphName: "A.base"}, {GlyphName: "A.dot"}}

	r := colr.NewRenderer(font, colrcollect.New())
	b, err := r.GlyphBounds("A")
	if err != nil {
		t.Fatalf("GlyphBounds: %v", err)
	}
	want := colr.Rect{MinX: 0, MinY: 0, MaxX: 20, MaxY: 20}
	if b != want {
		t.Fatalf("want %+v, got %+v", want, b)
	}
}
