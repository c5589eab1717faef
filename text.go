package games

// tint returns the image at url recolored to col, keeping its coverage.
// Results are cached per (url, color).
func (c *Context) tint(url string, col Color) (Surface, bool) {
	src, ok := c.assets.Image(url)
	if !ok {
		return nil, false
	}
	key := CacheKey{Kind: CacheTint, Resource: url, Color: col}
	e := c.cache.GetOrCreate(key, func() *CacheEntry {
		w, h := src.Size()
		dst := c.backend.NewSurface(w, h)
		dst.DrawImage(src, surfaceBounds(src), Rect{Width: float64(w), Height: float64(h)}, &DrawOptions{Blend: BlendCopy})
		dst.Composite(col, BlendSourceAtop)
		c.stats.Rasterizations++
		return &CacheEntry{Surface: dst}
	})
	return e.Surface, true
}

// Tint returns f's atlas recolored to col. It reports false when the
// atlas image is not loaded.
func (c *Context) Tint(f *Font, col Color) (Surface, bool) {
	return c.tint(f.URL, col)
}

// Measure returns the size of text in the active font.
func (c *Context) Measure(text string) (w, h int) {
	return c.activeFont().Measure(text)
}

func (c *Context) activeFont() *Font {
	f := c.stack.top().Font
	Assert(f != nil, "text drawn without a font; call SetFont first")
	return f
}

// renderText returns the cached bitmap for text in the current font, color
// and shadow, building it on a miss. It returns nil when the font image
// is not loaded.
func (c *Context) renderText(text string) *CacheEntry {
	top := c.stack.top()
	f := c.activeFont()
	key := CacheKey{
		Kind:      CacheText,
		Resource:  f.URL,
		Color:     top.Color,
		Shadow:    top.Shadow,
		HasShadow: top.HasShadow,
		Text:      text,
	}
	if e, ok := c.cache.Get(key); ok {
		return e
	}

	plain, ok := c.assets.Image(f.URL)
	if !ok {
		c.logger.Warn("font image not loaded", "url", f.URL)
		return nil
	}
	var shadow Surface
	if top.HasShadow {
		shadow, _ = c.tint(f.URL, top.Shadow)
	}
	tinted, _ := c.tint(f.URL, top.Color)

	e := &CacheEntry{}
	w, h := f.Measure(text)
	var dst Surface
	if w > 0 && h > 0 {
		dst = c.backend.NewSurface(w, h)
	}
	var x, y int
	for _, r := range text {
		if r == '\n' {
			x = 0
			y += f.LineHeight
			continue
		}
		adv := f.Advance(r)
		if dst != nil {
			src := f.glyphRect(r)
			cell := Rect{X: float64(x), Y: float64(y), Width: float64(f.GlyphWidth), Height: float64(f.GlyphHeight)}
			if shadow != nil {
				dst.DrawImage(shadow, src, cell.Translate(1, 0), nil)
				dst.DrawImage(shadow, src, cell.Translate(0, 1), nil)
				dst.DrawImage(shadow, src, cell.Translate(1, 1), nil)
			}
			if int(r) < f.Precolored {
				dst.DrawImage(plain, src, cell, nil)
			} else {
				dst.DrawImage(tinted, src, cell, nil)
			}
		}
		x += adv
	}
	e.Surface = dst
	e.Cursor = Vec2{X: float64(x), Y: float64(y)}
	c.stats.Rasterizations++
	c.cache.Put(key, e)
	return e
}

// blitText draws text at local (x, y) and returns the bitmap's end cursor.
func (c *Context) blitText(text string, x, y float64) (Vec2, bool) {
	e := c.renderText(text)
	if e == nil {
		return Vec2{}, false
	}
	if e.Surface != nil {
		w, h := e.Surface.Size()
		c.surface.DrawImage(e.Surface, surfaceBounds(e.Surface), Rect{X: x, Y: y, Width: float64(w), Height: float64(h)}, nil)
		c.stats.Blits++
	}
	return e.Cursor, true
}

// WriteAt draws text with its top-left at local (x, y), in the active
// font and color, and leaves the cursor one space past the end of the
// last line.
func (c *Context) WriteAt(text string, x, y float64) {
	cur, ok := c.blitText(text, x, y)
	if !ok {
		return
	}
	space := float64(c.activeFont().SpaceWidth())
	c.SetCursor(x+cur.X+space, y+cur.Y)
}

// WriteNext draws text at the cursor left by the previous write.
func (c *Context) WriteNext(text string) {
	top := c.stack.top()
	c.WriteAt(text, top.CursorX, top.CursorY)
}

// WriteLineAt draws text at local (x, y) and moves the cursor to the start
// of the following line, one LineHeight down regardless of how many lines
// text spans.
func (c *Context) WriteLineAt(text string, x, y float64) {
	if _, ok := c.blitText(text, x, y); !ok {
		return
	}
	c.SetCursor(x, y+float64(c.activeFont().LineHeight))
}

// WriteLine is WriteLineAt at the cursor.
func (c *Context) WriteLine(text string) {
	top := c.stack.top()
	c.WriteLineAt(text, top.CursorX, top.CursorY)
}
