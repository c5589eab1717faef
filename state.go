package games

import "math"

// DrawState is one snapshot on the draw-state stack.
type DrawState struct {
	ViewX, ViewY float64
	ViewW, ViewH float64
	Font         *Font
	Color        Color
	// CursorX and CursorY are where WriteNext continues, in view-local
	// coordinates.
	CursorX, CursorY float64
	Shadow           Color
	HasShadow        bool
}

// DefaultDrawState returns the base state: an unbounded view at the origin
// with a white fill and no font.
func DefaultDrawState() DrawState {
	return DrawState{
		ViewW: math.Inf(1),
		ViewH: math.Inf(1),
		Color: ColorWhite,
	}
}

// stateStack is an ordered stack of DrawStates. Index 0 is the base and is
// never popped.
type stateStack struct {
	base   DrawState
	states []DrawState
}

func newStateStack(base DrawState) stateStack {
	return stateStack{base: base, states: []DrawState{base}}
}

// top returns a pointer to the current state.
func (s *stateStack) top() *DrawState {
	return &s.states[len(s.states)-1]
}

// push clones the current top.
func (s *stateStack) push() {
	s.states = append(s.states, *s.top())
}

// pop discards the top. It reports false, leaving the base in place, when
// only the base remains.
func (s *stateStack) pop() bool {
	if len(s.states) <= 1 {
		return false
	}
	s.states = s.states[:len(s.states)-1]
	return true
}

// reset truncates to a fresh copy of the base.
func (s *stateStack) reset() {
	s.states = append(s.states[:0], s.base)
}

func (s *stateStack) depth() int {
	return len(s.states) - 1
}

// --- Context operations ---

// State returns a copy of the current draw state.
func (c *Context) State() DrawState {
	return *c.stack.top()
}

// Depth returns the number of saved states above the base.
func (c *Context) Depth() int {
	return c.stack.depth()
}

// SetBaseState replaces the state the stack resets to at every frame.
func (c *Context) SetBaseState(base DrawState) {
	c.stack.base = base
}

// Save pushes a copy of the current draw state and the surface's transform.
func (c *Context) Save() {
	c.stack.push()
	c.surface.Save()
	c.debugCheckDepth()
}

// Restore pops to the previous draw state. Restoring past the base is a
// caller bug; it is tolerated as a no-op and counted.
func (c *Context) Restore() {
	if !c.stack.pop() {
		c.stats.Imbalances++
		c.logger.Warn("restore without matching save")
		return
	}
	c.surface.Restore()
}

// View saves the state and moves the origin by (x, y), inheriting the
// parent's size. Every View must be matched by one End.
func (c *Context) View(x, y float64) {
	top := c.stack.top()
	c.ViewRect(x, y, top.ViewW, top.ViewH)
}

// ViewRect is View with an explicit size. Finite sizes clip drawing.
func (c *Context) ViewRect(x, y, w, h float64) {
	c.Save()
	top := c.stack.top()
	top.ViewX += x
	top.ViewY += y
	top.ViewW = w
	top.ViewH = h
	c.surface.Translate(x, y)
	if !math.IsInf(w, 1) || !math.IsInf(h, 1) {
		c.surface.Clip(Rect{Width: w, Height: h})
	}
}

// End closes the innermost View.
func (c *Context) End() {
	c.Restore()
}

// SetFont sets the active font.
func (c *Context) SetFont(f *Font) {
	c.stack.top().Font = f
}

// SetColor sets the active fill.
func (c *Context) SetColor(col Color) {
	c.stack.top().Color = col
}

// SetShadow enables a text shadow in col.
func (c *Context) SetShadow(col Color) {
	top := c.stack.top()
	top.Shadow = col
	top.HasShadow = true
}

// ClearShadow disables the text shadow.
func (c *Context) ClearShadow() {
	top := c.stack.top()
	top.Shadow = Color{}
	top.HasShadow = false
}

// SetCursor moves the text cursor used by WriteNext.
func (c *Context) SetCursor(x, y float64) {
	top := c.stack.top()
	top.CursorX = x
	top.CursorY = y
}
