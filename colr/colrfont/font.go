package colrfont

import (
	"fmt"

	"golang.org/x/image/font/sfnt"

	"github.com/gogpu/colrglyph/colr"
)

// ParseOption configures Parse, matching the teacher's functional-options
// idiom (options.go's ContextOption).
type ParseOption func(*parseOptions)

type parseOptions struct {
	skipPostNames bool
}

// WithoutGlyphNames skips 'post' table glyph-name decoding. Glyph lookups
// then only resolve the synthetic "gidN" names colrv1.go's PaintGlyph/
// PaintColrGlyph records produce, which is enough to drive a render but
// not to look glyphs up by their source name.
func WithoutGlyphNames() ParseOption {
	return func(o *parseOptions) { o.skipPostNames = true }
}

// Font implements colr.FontView over a real SFNT font's COLR/CPAL/fvar
// tables and outline data.
type Font struct {
	sfnt *sfnt.Font

	v0Base   []v0BaseGlyphRecord
	v0Layers []v0LayerRecord

	v1Base   map[uint16]colr.Paint
	v1Layers []colr.Paint

	store *itemVariationStore

	palettes [][]colr.Color

	gidByName map[string]colr.GlyphID
	nameByGID map[colr.GlyphID]string

	axes     []fvarAxis
	location []float32
}

// Parse decodes a raw SFNT font file into a Font.
func Parse(data []byte, opts ...ParseOption) (*Font, error) {
	o := parseOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	dir, err := tableDirectory(data)
	if err != nil {
		return nil, err
	}

	sf, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("colrfont: parsing sfnt outlines: %w", err)
	}

	f := &Font{
		sfnt:      sf,
		gidByName: make(map[string]colr.GlyphID),
		nameByGID: make(map[colr.GlyphID]string),
	}

	if cpalData, ok := dir["CPAL"]; ok {
		palettes, err := parseCPAL(cpalData)
		if err != nil {
			return nil, err
		}
		f.palettes = palettes
	}

	if colrData, ok := dir["COLR"]; ok {
		if err := f.parseCOLR(colrData); err != nil {
			return nil, err
		}
	}

	if fvarData, ok := dir["fvar"]; ok {
		axes, err := parseFvar(fvarData)
		if err != nil {
			return nil, err
		}
		f.axes = axes
		f.location = make([]float32, len(axes))
	}

	if !o.skipPostNames {
		if postData, ok := dir["post"]; ok {
			names, err := parsePostNames(postData)
			if err == nil {
				for gid, name := range names {
					f.nameByGID[colr.GlyphID(gid)] = name
					f.gidByName[name] = colr.GlyphID(gid)
				}
			}
		}
	}

	return f, nil
}

func (f *Font) parseCOLR(data []byte) error {
	header, err := parseColrV0Header(data)
	if err != nil {
		return err
	}
	base, layers, err := parseV0Tables(data, header)
	if err != nil {
		return err
	}
	f.v0Base = base
	f.v0Layers = layers

	if header.version < 1 {
		return nil
	}
	if len(data) < 34 {
		return fmt.Errorf("colrfont: COLR v1 header too short")
	}
	baseGlyphListOffset := beUint32(data, 14)
	layerListOffset := beUint32(data, 18)
	_ = beUint32(data, 22) // clipListOffset: clip lists aren't consumed by the interpreter
	_ = beUint32(data, 26) // varIndexMapOffset: see varstore.go's documented simplification
	itemVarStoreOffset := beUint32(data, 30)

	if itemVarStoreOffset != 0 && int(itemVarStoreOffset) < len(data) {
		store, err := parseItemVariationStore(data[itemVarStoreOffset:])
		if err != nil {
			return err
		}
		f.store = store
	}

	parser := &paintParser{t: &v1Tables{colr: data, store: f.store}}

	base2, err := parseBaseGlyphList(data, baseGlyphListOffset, parser)
	if err != nil {
		return err
	}
	for gid, paint := range base2 {
		if f.v1Base == nil {
			f.v1Base = make(map[uint16]colr.Paint)
		}
		f.v1Base[gid] = paint
		f.registerSyntheticName(gid)
	}

	layerList, err := parseLayerList(data, layerListOffset, parser)
	if err != nil {
		return err
	}
	f.v1Layers = layerList

	return nil
}

func (f *Font) registerSyntheticName(gid uint16) {
	name := gidName(gid)
	if _, exists := f.gidByName[name]; !exists {
		f.gidByName[name] = colr.GlyphID(gid)
		f.nameByGID[colr.GlyphID(gid)] = name
	}
}

func beUint32(data []byte, pos int) uint32 {
	return uint32(data[pos])<<24 | uint32(data[pos+1])<<16 | uint32(data[pos+2])<<8 | uint32(data[pos+3])
}

// GIDByGlyphName implements colr.FontView.
func (f *Font) GIDByGlyphName(name string) (colr.GlyphID, bool) {
	gid, ok := f.gidByName[name]
	return gid, ok
}

// GlyphNameByGID implements colr.FontView.
func (f *Font) GlyphNameByGID(gid colr.GlyphID) (string, bool) {
	name, ok := f.nameByGID[gid]
	return name, ok
}

// COLRv0Layers implements colr.FontView.
func (f *Font) COLRv0Layers(name string) ([]colr.LayerRecord, bool) {
	gid, ok := f.gidByName[name]
	if !ok {
		return nil, false
	}
	rec, ok := findV0BaseGlyph(f.v0Base, uint16(gid))
	if !ok {
		return nil, false
	}
	layers := make([]colr.LayerRecord, 0, rec.numLayers)
	for i := uint16(0); i < rec.numLayers; i++ {
		idx := rec.firstLayer + i
		if int(idx) >= len(f.v0Layers) {
			return nil, false
		}
		l := f.v0Layers[idx]
		layerName, ok := f.nameByGID[colr.GlyphID(l.glyphID)]
		if !ok {
			layerName = gidName(l.glyphID)
		}
		layers = append(layers, colr.LayerRecord{GlyphName: layerName, ColorIndex: l.paletteIndex})
	}
	return layers, true
}

// COLRv1BaseGlyph implements colr.FontView.
func (f *Font) COLRv1BaseGlyph(name string) (colr.Paint, bool) {
	gid, ok := f.gidByName[name]
	if !ok {
		return nil, false
	}
	p, ok := f.v1Base[uint16(gid)]
	return p, ok
}

// COLRv1Layer implements colr.FontView.
func (f *Font) COLRv1Layer(i uint32) (colr.Paint, bool) {
	if int(i) >= len(f.v1Layers) {
		return nil, false
	}
	return f.v1Layers[i], true
}

// VarStore implements colr.FontView.
func (f *Font) VarStore() colr.ItemVariationStore {
	if f.store == nil {
		return nil
	}
	return f.store
}

// Palettes implements colr.FontView.
func (f *Font) Palettes() [][]colr.Color { return f.palettes }

// UnitsPerEm returns the font's design-unit grid size, the divisor a
// caller scales by to convert glyph-space coordinates to a chosen pixel
// size (as colrrender's -size flag does).
func (f *Font) UnitsPerEm() (int, error) {
	var buf sfnt.Buffer
	upm, err := f.sfnt.UnitsPerEm(&buf)
	if err != nil {
		return 0, err
	}
	return int(upm), nil
}

// NormalizedAxisValues implements colr.FontView.
func (f *Font) NormalizedAxisValues() []float32 {
	return append([]float32(nil), f.location...)
}

// SetNormalizedAxisValues implements colr.FontView.
func (f *Font) SetNormalizedAxisValues(values []float32) {
	f.location = append([]float32(nil), values...)
}

// SetVariations applies user-space axis values (axis tag -> value),
// running them through the font's fvar axis definitions to produce the
// normalized [-1,1] location NormalizedAxisValues reports. Supplements
// the original implementation's setLocation (spec_full.md §5).
func (f *Font) SetVariations(userValues map[string]float64) {
	if f.location == nil {
		f.location = make([]float32, len(f.axes))
	}
	for i, axis := range f.axes {
		if v, ok := userValues[axis.tag]; ok {
			f.location[i] = normalizeAxisValue(axis, v)
		}
	}
}
