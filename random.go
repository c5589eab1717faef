package games

import "math"

// Random is a seeded xorshift32 generator. The same seed always yields the
// same sequence, which keeps particle effects and tests reproducible.
type Random struct {
	state uint32
}

// NewRandom returns a generator seeded with seed. Xorshift never leaves
// zero, so a zero seed is a *ConfigurationError wrapping ErrZeroSeed.
func NewRandom(seed uint32) (*Random, error) {
	if seed == 0 {
		return nil, &ConfigurationError{Msg: "new random", Err: ErrZeroSeed}
	}
	return &Random{state: seed}, nil
}

// MustRandom is NewRandom that panics on a zero seed.
func MustRandom(seed uint32) *Random {
	r, err := NewRandom(seed)
	if err != nil {
		panic(err)
	}
	return r
}

// Seed returns the current internal state; passing it to NewRandom resumes
// the sequence.
func (r *Random) Seed() uint32 {
	return r.state
}

// Uint32 returns the next raw value.
func (r *Random) Uint32() uint32 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Float returns a value in [0, 1).
func (r *Random) Float() float64 {
	return float64(r.Uint32()) / (math.MaxUint32 + 1.0)
}

// Between returns a value in [lo, hi).
func (r *Random) Between(lo, hi float64) float64 {
	return lo + r.Float()*(hi-lo)
}

// Int returns an integer in [lo, hi].
func (r *Random) Int(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + int(r.Float()*float64(hi-lo+1))
}

// Chance reports true with probability p.
func (r *Random) Chance(p float64) bool {
	return r.Float() < p
}

// Element returns a random element of items, or the zero value when it is
// empty.
func Element[T any](r *Random, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[r.Int(0, len(items)-1)]
}

// Range is a min/max pair sampled uniformly.
type Range struct {
	Min, Max float64
}

// Sample returns a value in [Min, Max).
func (rg Range) Sample(r *Random) float64 {
	if rg.Min == rg.Max {
		return rg.Min
	}
	return r.Between(rg.Min, rg.Max)
}
