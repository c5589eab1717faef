package games

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestButtonsAreTagged(t *testing.T) {
	assert.NotEqual(t, Key("0"), Pointer(0))
	assert.Equal(t, Key("A"), Key("A"))
	assert.True(t, Pointer(1).IsPointer())
	assert.False(t, Key("A").IsPointer())
	assert.Equal(t, "pointer:2", Pointer(MouseButtonRight).String())
	assert.Equal(t, "key:Space", Key("Space").String())

	in := NewInput()
	in.Handle(KeyDownEvent{Key: "0"})
	assert.True(t, in.Down(Key("0")))
	assert.False(t, in.Down(Pointer(0)))
}

func TestInputFrameSemantics(t *testing.T) {
	in := NewInput()
	space := Key("Space")

	// frame 1: press
	in.Handle(KeyDownEvent{Key: "Space"})
	assert.True(t, in.Down(space))
	assert.True(t, in.Pressed(space))
	assert.False(t, in.Released(space))
	in.EndFrame()

	// frame 2: held, key repeat does not press again
	in.Handle(KeyDownEvent{Key: "Space"})
	assert.True(t, in.Down(space))
	assert.False(t, in.Pressed(space))
	in.EndFrame()

	// frame 3: release
	in.Handle(KeyUpEvent{Key: "Space"})
	assert.False(t, in.Down(space))
	assert.False(t, in.Pressed(space))
	assert.True(t, in.Released(space))
	in.EndFrame()

	// frame 4: nothing
	assert.False(t, in.Down(space))
	assert.False(t, in.Released(space))
}

func TestInputPressAndReleaseInOneFrame(t *testing.T) {
	in := NewInput()
	in.Handle(PointerDownEvent{Button: MouseButtonLeft})
	in.Handle(PointerUpEvent{Button: MouseButtonLeft})

	left := Pointer(MouseButtonLeft)
	assert.True(t, in.Pressed(left))
	assert.True(t, in.Released(left))
	assert.False(t, in.Down(left))
}

func TestInputReleaseWithoutPress(t *testing.T) {
	in := NewInput()
	in.Handle(KeyUpEvent{Key: "X"})
	assert.False(t, in.Released(Key("X")))
}

func TestInputPointerScaling(t *testing.T) {
	in := NewInput()
	in.SetScaler(Scaler{NativeW: 320, NativeH: 180})
	in.Handle(PointerMoveEvent{X: 100, Y: 50})
	assert.Equal(t, Vec2{100, 50}, in.Pointer(), "no display size maps one to one")

	in.Handle(ResizeEvent{Width: 640, Height: 360})
	in.Handle(PointerMoveEvent{X: 100, Y: 50})
	assert.Equal(t, Vec2{50, 25}, in.Pointer())
}

func TestInputReset(t *testing.T) {
	in := NewInput()
	in.Handle(KeyDownEvent{Key: "A"})
	in.Handle(PointerMoveEvent{X: 3, Y: 4})
	in.Reset()
	assert.False(t, in.Down(Key("A")))
	assert.False(t, in.Pressed(Key("A")))
	assert.Equal(t, Vec2{}, in.Pointer())
}

func TestContextInputClearsAtEndFrame(t *testing.T) {
	c, _ := newTestContext(t, 8, 8)
	c.HandleEvent(PointerDownEvent{Button: MouseButtonLeft})

	c.Frame(16, func(c *Context) {
		assert.True(t, c.Pressed(Pointer(MouseButtonLeft)))
	})
	c.Frame(16, func(c *Context) {
		assert.False(t, c.Pressed(Pointer(MouseButtonLeft)))
		assert.True(t, c.Down(Pointer(MouseButtonLeft)))
	})
}
