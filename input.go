package games

import "strconv"

// Button identifies a key by name or a pointer button by index. Keys and
// pointer buttons are tagged separately, so Key("0") and Pointer(0) are
// distinct buttons.
type Button struct {
	name    string
	index   int
	pointer bool
}

// Key returns the button for a keyboard key name such as "A" or "Space".
func Key(name string) Button {
	return Button{name: name}
}

// Pointer returns the button for pointer button i (see MouseButtonLeft).
func Pointer(i int) Button {
	return Button{index: i, pointer: true}
}

// IsPointer reports whether b is a pointer button.
func (b Button) IsPointer() bool {
	return b.pointer
}

func (b Button) String() string {
	if b.pointer {
		return "pointer:" + strconv.Itoa(b.index)
	}
	return "key:" + b.name
}

// Event is a discrete input event. The set of events is closed.
type Event interface {
	isEvent()
}

// PointerMoveEvent moves the pointer to host coordinates (X, Y).
type PointerMoveEvent struct{ X, Y float64 }

// PointerDownEvent presses a pointer button.
type PointerDownEvent struct{ Button int }

// PointerUpEvent releases a pointer button.
type PointerUpEvent struct{ Button int }

// KeyDownEvent presses a key.
type KeyDownEvent struct{ Key string }

// KeyUpEvent releases a key.
type KeyUpEvent struct{ Key string }

// ResizeEvent reports the displayed size of the canvas in host pixels.
type ResizeEvent struct{ Width, Height float64 }

func (PointerMoveEvent) isEvent() {}
func (PointerDownEvent) isEvent() {}
func (PointerUpEvent) isEvent()   {}
func (KeyDownEvent) isEvent()     {}
func (KeyUpEvent) isEvent()       {}
func (ResizeEvent) isEvent()      {}

// Input is a per-frame snapshot of button state and pointer position.
//
// down persists until an up event. pressed and released hold only the
// transitions seen since the last EndFrame.
type Input struct {
	down     map[Button]bool
	pressed  map[Button]bool
	released map[Button]bool
	pointer  Vec2
	scaler   Scaler
}

// NewInput returns an empty snapshot with an identity scaler.
func NewInput() *Input {
	return &Input{
		down:     make(map[Button]bool),
		pressed:  make(map[Button]bool),
		released: make(map[Button]bool),
	}
}

// Handle applies one event.
func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case PointerMoveEvent:
		x, y := in.scaler.ToCanvas(e.X, e.Y)
		in.pointer = Vec2{X: x, Y: y}
	case PointerDownEvent:
		in.press(Pointer(e.Button))
	case PointerUpEvent:
		in.release(Pointer(e.Button))
	case KeyDownEvent:
		in.press(Key(e.Key))
	case KeyUpEvent:
		in.release(Key(e.Key))
	case ResizeEvent:
		in.scaler.DisplayW = e.Width
		in.scaler.DisplayH = e.Height
	}
}

// press marks b down. Key repeat (down while already down) does not
// register a second press.
func (in *Input) press(b Button) {
	if !in.down[b] {
		in.pressed[b] = true
	}
	in.down[b] = true
}

func (in *Input) release(b Button) {
	if in.down[b] {
		in.released[b] = true
	}
	delete(in.down, b)
}

// EndFrame clears the per-frame transitions. Held buttons stay down.
func (in *Input) EndFrame() {
	clear(in.pressed)
	clear(in.released)
}

// Reset clears everything, including held buttons and the pointer.
func (in *Input) Reset() {
	clear(in.down)
	clear(in.pressed)
	clear(in.released)
	in.pointer = Vec2{}
}

// Down reports whether b is held.
func (in *Input) Down(b Button) bool { return in.down[b] }

// Pressed reports whether b went down this frame.
func (in *Input) Pressed(b Button) bool { return in.pressed[b] }

// Released reports whether b went up this frame.
func (in *Input) Released(b Button) bool { return in.released[b] }

// Pointer returns the pointer position in canvas coordinates.
func (in *Input) Pointer() Vec2 { return in.pointer }

// Scaler returns the host to canvas mapping.
func (in *Input) Scaler() Scaler { return in.scaler }

// SetScaler replaces the host to canvas mapping.
func (in *Input) SetScaler(s Scaler) { in.scaler = s }

// --- Context operations ---

// Input returns the context's input snapshot.
func (c *Context) Input() *Input { return c.input }

// Down reports whether b is held.
func (c *Context) Down(b Button) bool { return c.input.Down(b) }

// Pressed reports whether b went down this frame.
func (c *Context) Pressed(b Button) bool { return c.input.Pressed(b) }

// Released reports whether b went up this frame.
func (c *Context) Released(b Button) bool { return c.input.Released(b) }

// HandleEvent feeds an event from the host.
func (c *Context) HandleEvent(ev Event) { c.input.Handle(ev) }
