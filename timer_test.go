package games

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimerFiresOnce(t *testing.T) {
	s := NewTimers()
	n := 0
	tm := s.Add(100, func() { n++ })

	s.Update(60)
	assert.Equal(t, 0, n)
	assert.False(t, tm.Fired())

	s.Update(40)
	assert.Equal(t, 1, n)
	assert.True(t, tm.Fired())
	assert.Equal(t, 0, s.Len())

	s.Update(1000)
	assert.Equal(t, 1, n)
}

func TestTimersFireInSchedulingOrder(t *testing.T) {
	s := NewTimers()
	var order []string
	s.Add(50, func() { order = append(order, "b") })
	s.Add(10, func() { order = append(order, "a") })
	s.Add(200, func() { order = append(order, "c") })

	s.Update(100)
	assert.Equal(t, []string{"b", "a"}, order)
	assert.Equal(t, 1, s.Len())
}

func TestTimerScheduledByCallbackWaits(t *testing.T) {
	s := NewTimers()
	fired := false
	s.Add(0, func() {
		s.Add(0, func() { fired = true })
	})

	s.Update(16)
	assert.False(t, fired)
	assert.Equal(t, 1, s.Len())
	s.Update(16)
	assert.True(t, fired)
}

func TestTimersReset(t *testing.T) {
	s := NewTimers()
	fired := false
	s.Add(10, func() { fired = true })
	s.Reset()
	s.Update(100)
	assert.False(t, fired)
	assert.Equal(t, 0, s.Len())
}

func TestTimersResetInsideCallback(t *testing.T) {
	s := NewTimers()
	var fired []string
	s.Add(10, func() {
		fired = append(fired, "first")
		s.Reset()
	})
	second := s.Add(10, func() { fired = append(fired, "second") })

	s.Update(10)
	assert.Equal(t, []string{"first"}, fired)
	assert.False(t, second.Fired())
	assert.Equal(t, 0, s.Len())

	s.Update(10)
	assert.Equal(t, []string{"first"}, fired)
}

func TestContextDelay(t *testing.T) {
	c, _ := newTestContext(t, 8, 8)
	var at []int
	c.Delay(32, func() { at = append(at, c.Stats().Frames) })

	c.Frame(16, nil)
	assert.Empty(t, at)
	assert.Equal(t, 1, c.Stats().ActiveTimers)
	c.Frame(16, nil)
	assert.Equal(t, []int{1}, at, "fires during the second EndFrame, before Frames is counted")
	assert.Equal(t, 0, c.Stats().ActiveTimers)
}

func TestTweensUpdateBeforeTimers(t *testing.T) {
	c, _ := newTestContext(t, 8, 8)
	x := 0.0
	var seen float64
	c.Tween(PropMap{"x": &x}, map[string]float64{"x": 100}, TweenOptions{Duration: 100})
	c.Delay(50, func() { seen = x })
	c.Frame(50, nil)
	assert.Equal(t, 50.0, seen)
}
