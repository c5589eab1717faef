package games

// Local converts canvas coordinates to the current view's coordinates.
func (c *Context) Local(x, y float64) (float64, float64) {
	top := c.stack.top()
	return x - top.ViewX, y - top.ViewY
}

// Global converts current view coordinates to canvas coordinates.
func (c *Context) Global(x, y float64) (float64, float64) {
	top := c.stack.top()
	return x + top.ViewX, y + top.ViewY
}

// Bounds returns the current view's canvas-space origin and size.
func (c *Context) Bounds() Rect {
	top := c.stack.top()
	return Rect{X: top.ViewX, Y: top.ViewY, Width: top.ViewW, Height: top.ViewH}
}

// Pointer returns the pointer position in the current view's coordinates.
func (c *Context) Pointer() (float64, float64) {
	p := c.input.Pointer()
	return c.Local(p.X, p.Y)
}

// Over reports whether the pointer lies in the half-open local rectangle
// [x, x+w) × [y, y+h).
func (c *Context) Over(x, y, w, h float64) bool {
	px, py := c.Pointer()
	return Rect{X: x, Y: y, Width: w, Height: h}.Contains(px, py)
}
