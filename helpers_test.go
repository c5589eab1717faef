package games

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

const testFontURL = "test-font.png"

// testFont is a 4x4 font with a 5px line height, a narrow 'i' and a 3px
// space.
func testFont() *Font {
	return &Font{
		URL:         testFontURL,
		GlyphWidth:  4,
		GlyphHeight: 4,
		LineHeight:  5,
		Widths:      map[rune]int{'i': 2, ' ': 3},
	}
}

// testAtlas builds a 16-column atlas for f in which only the top-left
// pixel of every glyph cell is set: opaque white, or opaque red for codes
// below f.Precolored.
func testAtlas(f *Font) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, atlasColumns*f.GlyphWidth, 8*f.GlyphHeight))
	for code := range 128 {
		c := color.RGBA{R: 255, G: 255, B: 255, A: 255}
		if code < f.Precolored {
			c = color.RGBA{R: 255, A: 255}
		}
		img.SetRGBA((code%atlasColumns)*f.GlyphWidth, (code/atlasColumns)*f.GlyphHeight, c)
	}
	return img
}

// newTestContext returns a context drawing to a fresh w x h soft surface.
func newTestContext(t *testing.T, w, h int) (*Context, *SoftSurface) {
	t.Helper()
	return newTestContextWith(t, w, h, func(*RunConfig) {})
}

func newTestContextWith(t *testing.T, w, h int, edit func(*RunConfig)) (*Context, *SoftSurface) {
	t.Helper()
	cfg := DefaultRunConfig()
	cfg.Width, cfg.Height = w, h
	edit(&cfg)
	surf := NewSoftSurface(w, h)
	c, err := NewContext(SoftBackend{}, surf, cfg)
	require.NoError(t, err)
	return c, surf
}

// withTestFont registers the test atlas and activates the font.
func withTestFont(c *Context) *Font {
	f := testFont()
	if _, ok := c.Assets().Image(f.URL); !ok {
		c.Assets().AddImage(f.URL, testAtlas(f))
	}
	c.SetFont(f)
	return f
}

// solidImage returns a w x h image filled with c.
func solidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// opaqueBounds returns the bounding box of non-transparent pixels.
func opaqueBounds(s *SoftSurface) image.Rectangle {
	var r image.Rectangle
	w, h := s.Size()
	for y := range h {
		for x := range w {
			if s.At(x, y).A != 0 {
				r = r.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return r
}

// disposeSurface records Dispose calls.
type disposeSurface struct {
	*SoftSurface
	disposed int
}

func (s *disposeSurface) Dispose() { s.disposed++ }

var (
	nrgbaWhite       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	nrgbaRed         = color.NRGBA{R: 255, A: 255}
	nrgbaGreen       = color.NRGBA{G: 255, A: 255}
	nrgbaBlue        = color.NRGBA{B: 255, A: 255}
	nrgbaBlack       = color.NRGBA{A: 255}
	nrgbaTransparent = color.NRGBA{}

	rgbaRed = color.RGBA{R: 255, A: 255}
)
