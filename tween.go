package games

import (
	"slices"
	"sort"
)

// Props is anything a tween can animate: a set of named float properties.
type Props interface {
	Get(name string) float64
	Set(name string, v float64)
}

// PropMap exposes float64 fields as Props by name.
//
//	games.PropMap{"x": &p.X, "alpha": &p.Alpha}
type PropMap map[string]*float64

func (m PropMap) Get(name string) float64 {
	if p, ok := m[name]; ok {
		return *p
	}
	return 0
}

func (m PropMap) Set(name string, v float64) {
	if p, ok := m[name]; ok {
		*p = v
	}
}

// VecProps exposes a Vec2 as "x" and "y".
func VecProps(v *Vec2) PropMap {
	return PropMap{"x": &v.X, "y": &v.Y}
}

// ColorProps exposes a Color as "r", "g", "b" and "a".
func ColorProps(c *Color) PropMap {
	return PropMap{"r": &c.R, "g": &c.G, "b": &c.B, "a": &c.A}
}

// TweenOptions configures a tween. Duration is in milliseconds.
type TweenOptions struct {
	Duration float64
	// Delay holds the tween at its start values for this many milliseconds.
	Delay float64
	// Easing defaults to Linear.
	Easing Easing
	// Step runs after every update with progress t in [0, 1].
	Step func(t float64)
	// Done runs exactly once when the tween completes or is cancelled.
	Done func()
	// Group tags the tween for CancelTweens. Empty means ungrouped.
	Group string
}

type tweenProp struct {
	name     string
	from, to float64
}

// Tween is a handle to a scheduled property animation.
type Tween struct {
	target   Props
	props    []tweenProp
	elapsed  float64
	opts     TweenOptions
	finished bool
}

// Finished reports whether the tween has completed or been cancelled.
func (tw *Tween) Finished() bool {
	return tw.finished
}

// Group returns the tween's cancellation group.
func (tw *Tween) Group() string {
	return tw.opts.Group
}

// progress returns elapsed/duration clamped to [0, 1].
func (tw *Tween) progress() float64 {
	if tw.opts.Duration <= 0 {
		return 1
	}
	return clamp01(tw.elapsed / tw.opts.Duration)
}

// apply writes from + (to-from)*k for the eased progress k. Only k goes
// through the easing function; the interpolation stays in float64.
func (tw *Tween) apply() {
	if tw.elapsed <= 0 {
		return
	}
	k := Ease(tw.opts.Easing, tw.progress())
	for _, p := range tw.props {
		tw.target.Set(p.name, p.from+(p.to-p.from)*k)
	}
}

// snap writes the end values exactly and completes the tween.
func (tw *Tween) snap() {
	for _, p := range tw.props {
		tw.target.Set(p.name, p.to)
	}
	if tw.opts.Step != nil {
		tw.opts.Step(1)
	}
	tw.finish()
}

func (tw *Tween) finish() {
	if tw.finished {
		return
	}
	tw.finished = true
	if tw.opts.Done != nil {
		tw.opts.Done()
	}
}

// Tweens schedules property animations advanced by elapsed milliseconds.
// Several tweens may drive the same property; the one scheduled last wins
// within a frame.
type Tweens struct {
	active []*Tween
}

// NewTweens returns an empty scheduler.
func NewTweens() *Tweens {
	return &Tweens{}
}

// Add captures target's current values as the start and schedules an
// animation to the values in to. Properties are updated in name order.
func (s *Tweens) Add(target Props, to map[string]float64, opts TweenOptions) *Tween {
	if opts.Easing == nil {
		opts.Easing = Linear
	}
	names := make([]string, 0, len(to))
	for name := range to {
		names = append(names, name)
	}
	sort.Strings(names)

	tw := &Tween{target: target, opts: opts, elapsed: -opts.Delay}
	for _, name := range names {
		from := target.Get(name)
		tw.props = append(tw.props, tweenProp{name: name, from: from, to: to[name]})
	}
	s.active = append(s.active, tw)
	return tw
}

// Update advances every tween that was active when the call began by dt
// milliseconds. Tweens added by callbacks during the update are first
// advanced on the next call.
func (s *Tweens) Update(dt float64) {
	if len(s.active) == 0 {
		return
	}
	snapshot := slices.Clone(s.active)
	for _, tw := range snapshot {
		if tw.finished {
			continue
		}
		tw.elapsed += dt
		if tw.elapsed >= tw.opts.Duration {
			tw.snap()
			continue
		}
		tw.apply()
		if tw.opts.Step != nil {
			tw.opts.Step(tw.progress())
		}
	}
	s.sweep()
}

// Cancel fast-forwards every active tween in group: properties snap to
// their end values and Done fires. It returns the number cancelled.
func (s *Tweens) Cancel(group string) int {
	var n int
	for _, tw := range slices.Clone(s.active) {
		if tw.finished || tw.opts.Group != group {
			continue
		}
		tw.snap()
		n++
	}
	s.sweep()
	return n
}

// Reset drops every tween without running callbacks.
func (s *Tweens) Reset() {
	for _, tw := range s.active {
		tw.finished = true
	}
	s.active = s.active[:0]
}

// Len returns the number of active tweens.
func (s *Tweens) Len() int {
	return len(s.active)
}

func (s *Tweens) sweep() {
	s.active = slices.DeleteFunc(s.active, func(tw *Tween) bool {
		return tw.finished
	})
}

// --- Context operations ---

// Tween schedules an animation on the context's scheduler.
func (c *Context) Tween(target Props, to map[string]float64, opts TweenOptions) *Tween {
	return c.tweens.Add(target, to, opts)
}

// CancelTweens fast-forwards every tween in group.
func (c *Context) CancelTweens(group string) int {
	return c.tweens.Cancel(group)
}

// Tweens returns the context's tween scheduler.
func (c *Context) Tweens() *Tweens {
	return c.tweens
}
