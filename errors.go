package games

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is matched by every *ConfigurationError.
	ErrConfiguration = errors.New("games: configuration error")
	// ErrAssetLoad wraps every preload failure.
	ErrAssetLoad = errors.New("games: asset load failed")
	// ErrMixedSpriteSheet reports a sprite collection whose sprites do not
	// all share the first sprite's image URL.
	ErrMixedSpriteSheet = errors.New("games: sprite sheet mixes image urls")
	// ErrZeroSeed reports a PRNG seeded with zero.
	ErrZeroSeed = errors.New("games: seed must be non-zero")
)

// ConfigurationError is a violated precondition. It is fatal and never
// retried.
type ConfigurationError struct {
	Msg string
	Err error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return "games: " + e.Msg + ": " + e.Err.Error()
	}
	return "games: " + e.Msg
}

// Is makes errors.Is(err, ErrConfiguration) true.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

func configErrorf(format string, args ...any) error {
	return &ConfigurationError{Msg: fmt.Sprintf(format, args...)}
}

// Assert panics with a *ConfigurationError when cond is false.
func Assert(cond bool, msg string) {
	if !cond {
		panic(&ConfigurationError{Msg: "assertion failed: " + msg})
	}
}
