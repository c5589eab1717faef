package games

import (
	"fmt"
	"log/slog"
)

// Context owns everything one running toolkit instance needs: the target
// surface, the draw-state stack, the bitmap cache, the schedulers, input
// and assets. Contexts are independent; tests create one each.
//
// A Context is not safe for concurrent use. Every method must be called
// from the goroutine driving frames.
type Context struct {
	cfg     RunConfig
	backend Backend
	surface Surface
	stack   stateStack
	cache   *BitmapCache
	tweens  *Tweens
	timers  *Timers
	input   *Input
	assets  *Assets

	injectQueue     [][]Event
	screenshotQueue []string
	runner          *TestRunner

	delta      float64
	stats      DebugStats
	frameStart DebugStats
	logger     *slog.Logger
	debug      bool
}

// NewContext creates a context drawing to surface, allocating bitmaps
// from backend.
func NewContext(backend Backend, surface Surface, cfg RunConfig) (*Context, error) {
	if backend == nil || surface == nil {
		return nil, configErrorf("context needs a backend and a surface")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	policy, err := ParseCachePolicy(cfg.CachePolicy)
	if err != nil {
		return nil, err
	}
	cache, err := NewBitmapCache(policy, cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("games: new context: %w", err)
	}
	w, h := surface.Size()
	input := NewInput()
	input.SetScaler(Scaler{NativeW: float64(w), NativeH: float64(h)})

	logger := Logger()
	assets := NewAssets(backend, nil, logger)
	assets.replaced = func(url string) {
		if n := cache.RemoveResource(url); n > 0 {
			assets.logger.Debug("dropped cached renders of replaced image", "url", url, "entries", n)
		}
	}
	return &Context{
		cfg:     cfg,
		backend: backend,
		surface: surface,
		stack:   newStateStack(DefaultDrawState()),
		cache:   cache,
		tweens:  NewTweens(),
		timers:  NewTimers(),
		input:   input,
		assets:  assets,
		logger:  logger,
		debug:   cfg.Debug,
	}, nil
}

// Config returns the configuration the context was created with.
func (c *Context) Config() RunConfig { return c.cfg }

// Surface returns the draw target.
func (c *Context) Surface() Surface { return c.surface }

// Backend returns the surface allocator.
func (c *Context) Backend() Backend { return c.backend }

// Cache returns the bitmap cache.
func (c *Context) Cache() *BitmapCache { return c.cache }

// Assets returns the asset registry.
func (c *Context) Assets() *Assets { return c.assets }

// Logger returns the context's logger.
func (c *Context) Logger() *slog.Logger { return c.logger }

// SetLogger replaces the context's logger; nil silences it.
func (c *Context) SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	c.logger = l
	c.assets.logger = l
}

// Delta returns the frame delta in milliseconds: the one passed to the
// running Frame, or to the last EndFrame.
func (c *Context) Delta() float64 { return c.delta }

// SetDebug toggles per-frame stat logging.
func (c *Context) SetDebug(on bool) { c.debug = on }

// BeginFrame resets the draw-state stack to its base and applies one
// batch of injected input. Views left open by the previous frame are
// closed and counted as imbalances.
func (c *Context) BeginFrame() {
	if c.debug {
		c.frameStart = c.Stats()
	}
	if d := c.stack.depth(); d > 0 {
		c.stats.Imbalances++
		c.logger.Warn("views still open at frame start", "depth", d)
		for range d {
			c.surface.Restore()
		}
	}
	c.stack.reset()

	if c.runner != nil {
		c.runner.step(c)
	}
	c.processInjected()

	if col, ok := c.cfg.clearColor(); ok {
		c.surface.Composite(col, BlendCopy)
	}
}

// EndFrame advances tweens then timers by dt milliseconds, clears the
// per-frame input transitions and writes queued screenshots.
func (c *Context) EndFrame(dt float64) {
	c.flushScreenshots()
	if c.runner != nil {
		dt += c.runner.takeExtra()
	}
	c.delta = dt
	c.tweens.Update(dt)
	c.timers.Update(dt)
	c.input.EndFrame()
	c.stats.Frames++
	c.debugLog(c.frameStart)
}

// Frame runs one complete frame: BeginFrame, render, EndFrame(dt).
func (c *Context) Frame(dt float64, render func(*Context)) {
	c.delta = dt
	c.BeginFrame()
	if render != nil {
		render(c)
	}
	c.EndFrame(dt)
}

// Reset drops all tweens and timers, clears input and the cache, and
// returns the stack to its base.
func (c *Context) Reset() {
	for range c.stack.depth() {
		c.surface.Restore()
	}
	c.stack.reset()
	c.tweens.Reset()
	c.timers.Reset()
	c.input.Reset()
	c.cache.Purge()
	c.injectQueue = c.injectQueue[:0]
}
