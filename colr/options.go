package colr

// RenderOption configures a render via functional options, matching the
// teacher's ContextOption/defaultOptions pattern.
type RenderOption func(*renderOptions)

type renderOptions struct {
	foreground   Color
	paletteIndex uint16
	logger       *Logger
}

func defaultRenderOptions() renderOptions {
	return renderOptions{
		foreground:   Color{A: 1}, // opaque black
		paletteIndex: 0,
		logger:       nopLogger,
	}
}

// WithForegroundColor sets the color PaintSolid/gradient stops carrying
// the 0xFFFF sentinel resolve to. Supplementing the original
// implementation (which hardcoded opaque black), this makes it a
// render-time parameter.
func WithForegroundColor(c Color) RenderOption {
	return func(o *renderOptions) { o.foreground = c }
}

// WithPalette selects which of the font's CPAL palettes resolves color
// indices, supplementing the original implementation's fixed palette 0.
func WithPalette(index uint16) RenderOption {
	return func(o *renderOptions) { o.paletteIndex = index }
}

// WithLogger attaches a diagnostic logger, e.g. to observe an
// unimplemented PaintComposite being walked.
func WithLogger(l *Logger) RenderOption {
	return func(o *renderOptions) {
		if l != nil {
			o.logger = l
		}
	}
}
