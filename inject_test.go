package games

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInjectClick(t *testing.T) {
	c, _ := newTestContext(t, 100, 100)
	clicked := 0
	render := func(c *Context) {
		if c.Released(Pointer(MouseButtonLeft)) && c.Over(40, 40, 20, 20) {
			clicked++
		}
	}

	c.InjectClick(50, 50)
	require.Equal(t, 2, c.PendingInjections())

	// frame 1: press
	c.Frame(16, func(c *Context) {
		assert.True(t, c.Pressed(Pointer(MouseButtonLeft)))
		render(c)
	})
	assert.Equal(t, 1, c.PendingInjections())
	assert.Equal(t, 0, clicked)

	// frame 2: release
	c.Frame(16, render)
	assert.Equal(t, 0, c.PendingInjections())
	assert.Equal(t, 1, clicked)

	// frame 3: nothing left
	c.Frame(16, render)
	assert.Equal(t, 1, clicked)
}

func TestInjectUsesCanvasCoordinates(t *testing.T) {
	c, _ := newTestContext(t, 320, 180)
	c.HandleEvent(ResizeEvent{Width: 960, Height: 540})

	c.InjectMove(100, 60)
	c.Frame(16, func(c *Context) {
		x, y := c.Pointer()
		assert.InDelta(t, 100, x, 1e-9)
		assert.InDelta(t, 60, y, 1e-9)
	})
}

func TestInjectKey(t *testing.T) {
	c, _ := newTestContext(t, 8, 8)
	c.InjectKey("Enter")

	c.Frame(16, func(c *Context) {
		assert.True(t, c.Pressed(Key("Enter")))
		assert.True(t, c.Down(Key("Enter")))
	})
	c.Frame(16, func(c *Context) {
		assert.True(t, c.Released(Key("Enter")))
		assert.False(t, c.Down(Key("Enter")))
	})
}

func TestInjectDrag(t *testing.T) {
	c, _ := newTestContext(t, 100, 100)
	c.InjectDrag(0, 0, 40, 20, 5)
	require.Equal(t, 5, c.PendingInjections())

	var xs []float64
	for range 5 {
		c.Frame(16, func(c *Context) {
			x, _ := c.Pointer()
			xs = append(xs, x)
		})
	}
	assert.InDeltaSlice(t, []float64{0, 10, 20, 30, 40}, xs, 1e-9)
	assert.False(t, c.Down(Pointer(MouseButtonLeft)))

	c.InjectDrag(0, 0, 1, 1, 0)
	assert.Equal(t, 2, c.PendingInjections(), "at least a press and a release")
}

func TestResetDropsInjections(t *testing.T) {
	c, _ := newTestContext(t, 8, 8)
	c.InjectClick(1, 1)
	c.Reset()
	assert.Equal(t, 0, c.PendingInjections())
}
