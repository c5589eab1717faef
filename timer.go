package games

import "slices"

// Timer is a handle to a delayed callback.
type Timer struct {
	elapsed  float64
	duration float64
	fn       func()
	fired    bool
}

// Fired reports whether the callback has run.
func (t *Timer) Fired() bool {
	return t.fired
}

// Timers runs one-shot callbacks after a number of elapsed milliseconds.
type Timers struct {
	active []*Timer
}

// NewTimers returns an empty scheduler.
func NewTimers() *Timers {
	return &Timers{}
}

// Add schedules fn to run once ms milliseconds of updates have passed.
func (s *Timers) Add(ms float64, fn func()) *Timer {
	t := &Timer{duration: ms, fn: fn}
	s.active = append(s.active, t)
	return t
}

// Update advances the timers active when the call began. Callbacks run
// synchronously, in scheduling order.
func (s *Timers) Update(dt float64) {
	if len(s.active) == 0 {
		return
	}
	for _, t := range slices.Clone(s.active) {
		if t.fired {
			continue
		}
		t.elapsed += dt
		if t.elapsed >= t.duration {
			t.fired = true
			if t.fn != nil {
				t.fn()
			}
		}
	}
	s.active = slices.DeleteFunc(s.active, func(t *Timer) bool {
		return t.fired
	})
}

// Reset drops every pending timer without firing it, including timers
// still due in an Update that is running the calling callback.
func (s *Timers) Reset() {
	for _, t := range s.active {
		t.fired = true
	}
	clear(s.active)
	s.active = s.active[:0]
}

// Len returns the number of pending timers.
func (s *Timers) Len() int {
	return len(s.active)
}

// Delay runs fn after ms milliseconds of frame time.
func (c *Context) Delay(ms float64, fn func()) *Timer {
	return c.timers.Add(ms, fn)
}

// Timers returns the context's timer scheduler.
func (c *Context) Timers() *Timers {
	return c.timers
}
