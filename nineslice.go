package games

import "image"

// sliceMetrics returns the fixed border widths of a 9-slice sprite.
func sliceMetrics(s *Sprite) (left, top, right, bottom int) {
	return s.Center.Min.X, s.Center.Min.Y, s.W - s.Center.Max.X, s.H - s.Center.Max.Y
}

// NineSliceSize returns the size Draw9Slice will actually produce for a
// requested w x h: never smaller than the fixed borders.
func NineSliceSize(s *Sprite, w, h int) (int, int) {
	left, top, right, bottom := sliceMetrics(s)
	return max(w, left+right), max(h, top+bottom)
}

// Draw9Slice draws s stretched to w x h with its corners unscaled, its
// edges stretched along one axis and its center along both. Sizes below
// the corner budget are raised to it. The composed panel is cached per
// (sprite, size). It returns the rectangle drawn, in local coordinates.
func (c *Context) Draw9Slice(s *Sprite, x, y float64, w, h int) Rect {
	Assert(!s.Center.Empty(), "Draw9Slice needs a sprite with a center")
	w, h = NineSliceSize(s, w, h)
	dst := Rect{X: x, Y: y, Width: float64(w), Height: float64(h)}

	img, ok := c.assets.Image(s.URL)
	if !ok {
		c.logger.Warn("9-slice image not loaded, using placeholder", "url", s.URL)
		c.surface.FillRect(dst, magenta)
		return dst
	}

	key := CacheKey{Kind: CacheNineSlice, Resource: s.URL, Src: s.rect(), Center: s.Center, W: w, H: h}
	e := c.cache.GetOrCreate(key, func() *CacheEntry {
		c.stats.Rasterizations++
		return &CacheEntry{Surface: c.composeNineSlice(img, s, w, h)}
	})
	c.surface.DrawImage(e.Surface, surfaceBounds(e.Surface), dst, nil)
	c.stats.Blits++
	return dst
}

// composeNineSlice builds a w x h panel from the 3x3 grid of s.
func (c *Context) composeNineSlice(img Surface, s *Sprite, w, h int) Surface {
	left, top, right, bottom := sliceMetrics(s)
	out := c.backend.NewSurface(w, h)

	srcX := [4]int{0, left, s.W - right, s.W}
	srcY := [4]int{0, top, s.H - bottom, s.H}
	dstX := [4]int{0, left, w - right, w}
	dstY := [4]int{0, top, h - bottom, h}

	for row := range 3 {
		for col := range 3 {
			src := image.Rect(srcX[col], srcY[row], srcX[col+1], srcY[row+1])
			dst := image.Rect(dstX[col], dstY[row], dstX[col+1], dstY[row+1])
			if src.Empty() || dst.Empty() {
				continue
			}
			out.DrawImage(img, src.Add(image.Pt(s.X, s.Y)), rectOf(dst), &DrawOptions{Blend: BlendCopy})
		}
	}
	return out
}

// --- Shapes in the active color ---

// Clear wipes the whole target surface.
func (c *Context) Clear() {
	c.surface.Clear()
}

// FillRect fills a local rectangle with the active color.
func (c *Context) FillRect(x, y, w, h float64) {
	c.surface.FillRect(Rect{X: x, Y: y, Width: w, Height: h}, c.stack.top().Color)
}

// StrokeRect outlines a local rectangle with the active color.
func (c *Context) StrokeRect(x, y, w, h float64) {
	c.surface.StrokeRect(Rect{X: x, Y: y, Width: w, Height: h}, c.stack.top().Color)
}

// Line draws a one pixel line in the active color.
func (c *Context) Line(x0, y0, x1, y1 float64) {
	c.surface.StrokeLine(x0, y0, x1, y1, c.stack.top().Color)
}
