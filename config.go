package games

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// minLRUSize is the smallest LRU capacity that can hold a text block and
// the two tinted atlases (fill and shadow) it is built from.
const minLRUSize = 3

// RunConfig configures a Context and the window Run opens.
type RunConfig struct {
	// Title is the window title.
	Title string `toml:"title"`
	// Width and Height are the logical canvas size.
	Width  int `toml:"width"`
	Height int `toml:"height"`
	// MaxScale caps the integer-free upscale factor. Zero means uncapped.
	MaxScale float64 `toml:"max_scale"`
	// TPS is the update rate; zero keeps Ebitengine's default.
	TPS int `toml:"tps"`
	// CachePolicy is "unbounded" (default) or "lru".
	CachePolicy string `toml:"cache_policy"`
	// CacheSize is the LRU capacity.
	CacheSize int `toml:"cache_size"`
	// ShowFPS draws the frame-rate overlay.
	ShowFPS bool `toml:"show_fps"`
	// Debug logs per-frame stats at debug level.
	Debug bool `toml:"debug"`
	// ScreenshotDir receives Screenshot PNGs.
	ScreenshotDir string `toml:"screenshot_dir"`
	// ClearColor is a "#rrggbb" color painted before every frame; empty
	// leaves the canvas transparent.
	ClearColor string `toml:"clear_color"`
}

// DefaultRunConfig returns a 320x180 canvas with an unbounded cache.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:         "games",
		Width:         320,
		Height:        180,
		MaxScale:      0,
		CachePolicy:   CacheUnbounded.String(),
		CacheSize:     256,
		ScreenshotDir: "screenshots",
	}
}

// LoadRunConfig reads a TOML file over DefaultRunConfig.
func LoadRunConfig(path string) (RunConfig, error) {
	cfg := DefaultRunConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return RunConfig{}, fmt.Errorf("games: parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return RunConfig{}, fmt.Errorf("games: %s: %w", path, err)
	}
	return cfg, nil
}

// DecodeRunConfig parses TOML text over DefaultRunConfig.
func DecodeRunConfig(data string) (RunConfig, error) {
	cfg := DefaultRunConfig()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return RunConfig{}, fmt.Errorf("games: parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return RunConfig{}, err
	}
	return cfg, nil
}

// Validate reports a *ConfigurationError for unusable values.
func (cfg RunConfig) Validate() error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return configErrorf("canvas size must be positive, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.MaxScale < 0 {
		return configErrorf("max_scale must not be negative, got %g", cfg.MaxScale)
	}
	policy, err := ParseCachePolicy(cfg.CachePolicy)
	if err != nil {
		return err
	}
	if policy == CacheLRU && cfg.CacheSize < minLRUSize {
		return configErrorf("cache_size must be at least %d for lru, got %d", minLRUSize, cfg.CacheSize)
	}
	if cfg.ClearColor != "" {
		if _, err := ParseColor(cfg.ClearColor); err != nil {
			return &ConfigurationError{Msg: "clear_color", Err: err}
		}
	}
	return nil
}

// clearColor returns the parsed ClearColor and whether one is set.
func (cfg RunConfig) clearColor() (Color, bool) {
	if cfg.ClearColor == "" {
		return Color{}, false
	}
	c, err := ParseColor(cfg.ClearColor)
	if err != nil {
		return Color{}, false
	}
	return c, true
}
