package games

// Injected events are queued in batches; BeginFrame applies one batch per
// frame. Positions are canvas coordinates, matching what a screenshot
// shows, and are converted to host coordinates like real pointer input.

func (c *Context) inject(events ...Event) {
	c.injectQueue = append(c.injectQueue, events)
}

func (c *Context) injectMove(x, y float64) Event {
	hx, hy := c.input.Scaler().ToHost(x, y)
	return PointerMoveEvent{X: hx, Y: hy}
}

// InjectMove queues a pointer move.
func (c *Context) InjectMove(x, y float64) {
	c.inject(c.injectMove(x, y))
}

// InjectPress queues a move to (x, y) and a left button press.
func (c *Context) InjectPress(x, y float64) {
	c.inject(c.injectMove(x, y), PointerDownEvent{Button: MouseButtonLeft})
}

// InjectRelease queues a move to (x, y) and a left button release.
func (c *Context) InjectRelease(x, y float64) {
	c.inject(c.injectMove(x, y), PointerUpEvent{Button: MouseButtonLeft})
}

// InjectClick queues a press then a release at (x, y). Consumes two frames.
func (c *Context) InjectClick(x, y float64) {
	c.InjectPress(x, y)
	c.InjectRelease(x, y)
}

// InjectKeyDown queues a key press.
func (c *Context) InjectKeyDown(key string) {
	c.inject(KeyDownEvent{Key: key})
}

// InjectKeyUp queues a key release.
func (c *Context) InjectKeyUp(key string) {
	c.inject(KeyUpEvent{Key: key})
}

// InjectKey queues a key press then release. Consumes two frames.
func (c *Context) InjectKey(key string) {
	c.InjectKeyDown(key)
	c.InjectKeyUp(key)
}

// InjectDrag queues a press at (fromX, fromY), evenly spaced moves and a
// release at (toX, toY), spread over frames frames (at least 2).
func (c *Context) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	c.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		c.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	c.InjectRelease(toX, toY)
}

// PendingInjections returns the number of queued batches.
func (c *Context) PendingInjections() int {
	return len(c.injectQueue)
}

// processInjected applies the oldest batch and reports whether there was one.
func (c *Context) processInjected() bool {
	if len(c.injectQueue) == 0 {
		return false
	}
	batch := c.injectQueue[0]
	copy(c.injectQueue, c.injectQueue[1:])
	c.injectQueue[len(c.injectQueue)-1] = nil
	c.injectQueue = c.injectQueue[:len(c.injectQueue)-1]
	for _, ev := range batch {
		c.input.Handle(ev)
	}
	return true
}
