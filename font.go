package games

import "image"

// atlasColumns is the number of glyphs per row in a font image.
const atlasColumns = 16

// Font is a fixed-grid bitmap font: glyph n sits in column n%16, row n/16 of
// the image at URL. Fonts are immutable once built.
//
// Cached renders are keyed by URL alone, so two fonts sharing an image but
// differing in geometry will share (and corrupt) each other's cache entries.
type Font struct {
	URL         string
	GlyphWidth  int
	GlyphHeight int
	LineHeight  int
	// Precolored glyphs (code < Precolored) are icons drawn untinted.
	Precolored int
	// Widths overrides the advance of individual glyphs.
	Widths map[rune]int
}

// Validate reports a *ConfigurationError for non-positive metrics.
func (f *Font) Validate() error {
	switch {
	case f == nil:
		return configErrorf("nil font")
	case f.URL == "":
		return configErrorf("font has no image url")
	case f.GlyphWidth <= 0 || f.GlyphHeight <= 0:
		return configErrorf("font %q glyph size must be positive, got %dx%d", f.URL, f.GlyphWidth, f.GlyphHeight)
	case f.LineHeight <= 0:
		return configErrorf("font %q line height must be positive, got %d", f.URL, f.LineHeight)
	}
	return nil
}

// Advance returns the horizontal advance of r.
func (f *Font) Advance(r rune) int {
	if w, ok := f.Widths[r]; ok {
		return w
	}
	return f.GlyphWidth
}

// SpaceWidth returns the advance of ' '.
func (f *Font) SpaceWidth() int {
	return f.Advance(' ')
}

// glyphRect returns the atlas cell for r.
func (f *Font) glyphRect(r rune) image.Rectangle {
	code := int(r)
	x := (code % atlasColumns) * f.GlyphWidth
	y := (code / atlasColumns) * f.GlyphHeight
	return image.Rect(x, y, x+f.GlyphWidth, y+f.GlyphHeight)
}

// Measure returns the bounding box of text. Each '\n' starts a new line;
// the box is as wide as the widest line and LineHeight times the line count
// tall. A trailing empty line still counts.
func (f *Font) Measure(text string) (w, h int) {
	lines := 1
	var lineW int
	for _, r := range text {
		if r == '\n' {
			w = max(w, lineW)
			lineW = 0
			lines++
			continue
		}
		lineW += f.Advance(r)
	}
	w = max(w, lineW)
	return w, lines * f.LineHeight
}
