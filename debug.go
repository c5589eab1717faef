package games

import "log/slog"

// DebugStats counts work done by a Context since it was created.
type DebugStats struct {
	Frames int
	// Rasterizations counts bitmaps built on a cache miss: text blocks,
	// tinted atlases and 9-slice panels.
	Rasterizations int
	// Blits counts cached bitmaps drawn to the target surface.
	Blits int
	// Imbalances counts Restore calls without a matching Save, plus views
	// still open when a frame began.
	Imbalances   int
	ActiveTweens int
	ActiveTimers int
	Cache        CacheStats
}

// Stats returns a snapshot of the counters.
func (c *Context) Stats() DebugStats {
	s := c.stats
	s.ActiveTweens = c.tweens.Len()
	s.ActiveTimers = c.timers.Len()
	s.Cache = c.cache.Stats()
	return s
}

// debugLog logs what the frame just finished did, relative to prev.
func (c *Context) debugLog(prev DebugStats) {
	if !c.debug {
		return
	}
	cur := c.Stats()
	c.logger.Debug("frame",
		slog.Int("frame", cur.Frames),
		slog.Int("rasterized", cur.Rasterizations-prev.Rasterizations),
		slog.Int("blits", cur.Blits-prev.Blits),
		slog.Int("cache_hits", cur.Cache.Hits-prev.Cache.Hits),
		slog.Int("cache_misses", cur.Cache.Misses-prev.Cache.Misses),
		slog.Int("cache_len", c.cache.Len()),
		slog.Int("tweens", cur.ActiveTweens),
		slog.Int("timers", cur.ActiveTimers),
	)
}

// debugMaxDepth is the view nesting depth past which a warning is logged.
const debugMaxDepth = 64

func (c *Context) debugCheckDepth() {
	if c.debug && c.stack.depth() == debugMaxDepth {
		c.logger.Warn("view nesting is suspiciously deep; missing End?", "depth", debugMaxDepth)
	}
}
