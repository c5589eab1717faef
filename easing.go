package games

import "github.com/tanema/gween/ease"

// Easing shapes tween progress. It has gween's (t, begin, change, duration)
// signature so that any function from the ease package can be used as is.
// Results may leave [begin, begin+change] transiently (see EaseOutBack).
type Easing = ease.TweenFunc

var (
	// Linear is constant-speed progress.
	Linear Easing = ease.Linear
	// EaseInOut is symmetric quadratic ease-in-out.
	EaseInOut Easing = ease.InOutQuad
	// EaseOutBack overshoots the target by the standard 1.70158 factor
	// before settling.
	EaseOutBack Easing = ease.OutBack
)

// EasingFunc adapts a [0,1] -> R curve to an Easing.
func EasingFunc(f func(t float64) float64) Easing {
	return func(t, b, c, d float32) float32 {
		return b + c*float32(f(float64(t/d)))
	}
}

// Ease evaluates e at progress t in [0, 1]. Easings are computed in
// float32; where e returns t unchanged (Linear) the float64 t is kept.
func Ease(e Easing, t float64) float64 {
	t32 := float32(t)
	k := e(t32, 0, 1, 1)
	if k == t32 {
		return t
	}
	return float64(k)
}
