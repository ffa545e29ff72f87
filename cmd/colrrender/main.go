// Command colrrender renders a single COLR/CPAL color glyph to PNG or SVG.
//
// It mirrors ggdemo's flag-driven, single-shot rendering style, but for
// one named glyph out of a font instead of a fixed demo scene — the same
// shape as the original implementation's renderText helper: parse the
// font, compute an inset bounding box at the requested size, then hand a
// backend canvas to the COLR interpreter.
package main

import (
	"flag"
	"log"
	"os"
	"strconv"

	gg "github.com/gogpu/colrglyph"
	"github.com/gogpu/colrglyph/colr"
	"github.com/gogpu/colrglyph/colr/colrfont"
	"github.com/gogpu/colrglyph/colr/colrraster"
	"github.com/gogpu/colrglyph/colr/colrsvg"
)

func main() {
	var (
		fontPath = flag.String("font", "", "path to a TrueType/OpenType font with COLR/CPAL tables")
		glyph    = flag.String("glyph", "", "glyph name to render")
		output   = flag.String("output", "glyph.png", "output path; .svg renders vector, anything else PNG")
		fontSize = flag.Float64("size", 250, "font size in pixels, scaled from the font's design units")
		margin   = flag.Float64("margin", 20, "margin added around the glyph's bounds, in output pixels")
		palette  = flag.Uint("palette", 0, "CPAL palette index")
		fg       = flag.String("fg", "#000000", "foreground color used for PaintSolid's 0xFFFF sentinel, #RRGGBB")
	)
	flag.Parse()

	if *fontPath == "" || *glyph == "" {
		log.Fatal("both -font and -glyph are required")
	}

	data, err := os.ReadFile(*fontPath)
	if err != nil {
		log.Fatalf("reading font: %v", err)
	}

	font, err := colrfont.Parse(data)
	if err != nil {
		log.Fatalf("parsing font: %v", err)
	}

	unitsPerEm, err := font.UnitsPerEm()
	if err != nil || unitsPerEm == 0 {
		unitsPerEm = 1000
	}
	scale := *fontSize / float64(unitsPerEm)

	opts := []colr.RenderOption{
		colr.WithPalette(uint16(*palette)),
		colr.WithForegroundColor(parseHexColor(*fg)),
	}

	bounds, err := measureGlyph(font, *glyph, scale, opts)
	if err != nil {
		log.Fatalf("measuring %q: %v", *glyph, err)
	}

	width := bounds.MaxX - bounds.MinX + 2*(*margin)
	height := bounds.MaxY - bounds.MinY + 2*(*margin)
	if width <= 0 {
		width = *fontSize
	}
	if height <= 0 {
		height = *fontSize
	}

	// Origin translation puts the glyph's scaled bounds at (margin, margin)
	// with the vertical axis flipped, since font design space has y-up
	// while both backends' device space has y-down. bounds is already in
	// pixel scale (measureGlyph applied scale), so no further scaling here.
	originX := *margin - bounds.MinX
	originY := height - *margin - bounds.MaxY

	if isSVGOutput(*output) {
		canvas := colrsvg.New(width, height)
		if err := renderOnto(font, *glyph, canvas, scale, originX, originY, opts); err != nil {
			log.Fatalf("rendering %q: %v", *glyph, err)
		}
		f, err := os.Create(*output)
		if err != nil {
			log.Fatalf("creating output: %v", err)
		}
		defer f.Close()
		if _, err := canvas.WriteTo(f); err != nil {
			log.Fatalf("writing svg: %v", err)
		}
	} else {
		ctx := gg.NewContext(int(width)+1, int(height)+1)
		canvas := colrraster.New(ctx)
		if err := renderOnto(font, *glyph, canvas, scale, originX, originY, opts); err != nil {
			log.Fatalf("rendering %q: %v", *glyph, err)
		}
		if err := ctx.SavePNG(*output); err != nil {
			log.Fatalf("saving png: %v", err)
		}
	}

	log.Printf("rendered %q to %s (%gx%g)\n", *glyph, *output, width, height)
}

// measureGlyph runs GlyphBounds against a throwaway canvas-less renderer
// call; colr.Renderer.GlyphBounds doesn't touch the canvas, so any Canvas
// implementation works here, including the one the actual draw will use.
func measureGlyph(font *colrfont.Font, glyph string, scale float64, opts []colr.RenderOption) (colr.Rect, error) {
	dummy := colrraster.New(gg.NewContext(1, 1))
	r := colr.NewRenderer(font, dummy, opts...)
	bounds, err := r.GlyphBounds(glyph)
	if err != nil {
		return colr.Rect{}, err
	}
	return colr.Rect{
		MinX: bounds.MinX * scale,
		MinY: bounds.MinY * scale,
		MaxX: bounds.MaxX * scale,
		MaxY: bounds.MaxY * scale,
	}, nil
}

func renderOnto(font *colrfont.Font, glyph string, canvas colr.Canvas, scale, originX, originY float64, opts []colr.RenderOption) error {
	r := colr.NewRenderer(font, canvas, opts...)

	restore := canvas.SavedState()
	defer restore()

	// Design units scale to pixels, and Y flips since design space is
	// y-up while the canvas is y-down.
	canvas.Transform(colr.Translation(originX, originY))
	canvas.Transform(colr.Affine{XX: scale, YY: -scale})

	return r.DrawGlyph(glyph)
}

func isSVGOutput(path string) bool {
	return len(path) >= 4 && path[len(path)-4:] == ".svg"
}

func parseHexColor(hex string) colr.Color {
	if len(hex) != 7 || hex[0] != '#' {
		return colr.Color{A: 1}
	}
	r, _ := strconv.ParseUint(hex[1:3], 16, 8)
	g, _ := strconv.ParseUint(hex[3:5], 16, 8)
	b, _ := strconv.ParseUint(hex[5:7], 16, 8)
	return colr.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: 1}
}
