package games

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// BuiltinFontURL is the asset URL the built-in font atlas is registered
// under.
const BuiltinFontURL = "builtin:basic7x13"

// BuiltinFont returns a 7x13 font covering printable ASCII, rasterized from
// x/image's basicfont. Register its atlas with UseBuiltinFont.
func BuiltinFont() *Font {
	face := basicfont.Face7x13
	return &Font{
		URL:         BuiltinFontURL,
		GlyphWidth:  face.Advance,
		GlyphHeight: face.Height,
		LineHeight:  face.Height + 1,
	}
}

// BuiltinFontImage renders the built-in font's 16-column glyph atlas in
// white on transparent, covering codes 0 to 127.
func BuiltinFontImage() *image.RGBA {
	face := basicfont.Face7x13
	gw, gh := face.Advance, face.Height
	img := image.NewRGBA(image.Rect(0, 0, atlasColumns*gw, (128/atlasColumns)*gh))
	d := &font.Drawer{Dst: img, Src: image.White, Face: face}
	for code := 32; code < 127; code++ {
		x := (code % atlasColumns) * gw
		y := (code / atlasColumns) * gh
		d.Dot = fixed.P(x, y+face.Ascent)
		d.DrawString(string(rune(code)))
	}
	return img
}

// UseBuiltinFont registers the built-in atlas if needed and makes the
// built-in font active.
func (c *Context) UseBuiltinFont() *Font {
	if _, ok := c.assets.Image(BuiltinFontURL); !ok {
		c.assets.AddImage(BuiltinFontURL, BuiltinFontImage())
	}
	f := BuiltinFont()
	c.SetFont(f)
	return f
}
