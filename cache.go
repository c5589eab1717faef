package games

import (
	"fmt"
	"image"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CacheKind distinguishes what a cached bitmap was rendered for.
type CacheKind uint8

const (
	CacheText      CacheKind = iota + 1 // colorized text block
	CacheTint                           // recolored font atlas or sprite sheet
	CacheNineSlice                      // composed 9-slice panel
)

// CacheKey identifies a rendered bitmap. Keys are compared field by field,
// so distinct (font, color, shadow, text) tuples can never collide the way
// concatenated strings can.
type CacheKey struct {
	Kind      CacheKind
	Resource  string // font or sprite image URL
	Color     Color
	Shadow    Color
	HasShadow bool
	Text      string
	Src       image.Rectangle // sprite source rect
	Center    image.Rectangle // 9-slice center rect
	W, H      int
}

// CacheEntry is a rendered bitmap plus auxiliary layout data.
type CacheEntry struct {
	Surface Surface
	// Cursor is the pen offset after rendering, relative to the bitmap origin.
	Cursor Vec2
}

// CachePolicy selects how a BitmapCache bounds its memory.
type CachePolicy uint8

const (
	// CacheUnbounded never evicts. Memory grows with every distinct key,
	// which is fine for a fixed set of labels but leaks with dynamic text.
	CacheUnbounded CachePolicy = iota
	// CacheLRU keeps at most Size entries and disposes the least recently
	// used bitmap on overflow.
	CacheLRU
)

// String returns the policy name used in config files.
func (p CachePolicy) String() string {
	switch p {
	case CacheLRU:
		return "lru"
	default:
		return "unbounded"
	}
}

// ParseCachePolicy parses "unbounded" or "lru".
func ParseCachePolicy(s string) (CachePolicy, error) {
	switch s {
	case "", "unbounded":
		return CacheUnbounded, nil
	case "lru":
		return CacheLRU, nil
	}
	return 0, configErrorf("unknown cache policy %q", s)
}

// CacheStats counts cache traffic since creation or the last ResetStats.
type CacheStats struct {
	Hits      int
	Misses    int
	Evictions int
}

// BitmapCache is a content-addressed store of rendered bitmaps. Entries are
// created lazily on first miss.
type BitmapCache struct {
	policy  CachePolicy
	entries map[CacheKey]*CacheEntry
	lru     *lru.Cache[CacheKey, *CacheEntry]
	stats   CacheStats
}

// NewBitmapCache creates a cache with the given policy. size is the LRU
// capacity and is ignored for CacheUnbounded.
func NewBitmapCache(policy CachePolicy, size int) (*BitmapCache, error) {
	c := &BitmapCache{policy: policy}
	switch policy {
	case CacheUnbounded:
		c.entries = make(map[CacheKey]*CacheEntry)
	case CacheLRU:
		if size <= 0 {
			return nil, configErrorf("lru cache size must be positive, got %d", size)
		}
		l, err := lru.NewWithEvict(size, func(_ CacheKey, e *CacheEntry) {
			c.stats.Evictions++
			if e.Surface != nil {
				e.Surface.Dispose()
			}
		})
		if err != nil {
			return nil, fmt.Errorf("games: create lru cache: %w", err)
		}
		c.lru = l
	default:
		return nil, configErrorf("unknown cache policy %d", policy)
	}
	return c, nil
}

// Policy returns the eviction policy.
func (c *BitmapCache) Policy() CachePolicy {
	return c.policy
}

// Get returns the entry for key, recording a hit or miss.
func (c *BitmapCache) Get(key CacheKey) (*CacheEntry, bool) {
	var e *CacheEntry
	var ok bool
	if c.lru != nil {
		e, ok = c.lru.Get(key)
	} else {
		e, ok = c.entries[key]
	}
	if ok {
		c.stats.Hits++
	} else {
		c.stats.Misses++
	}
	return e, ok
}

// Put stores e under key.
func (c *BitmapCache) Put(key CacheKey, e *CacheEntry) {
	if c.lru != nil {
		c.lru.Add(key, e)
		return
	}
	c.entries[key] = e
}

// GetOrCreate returns the cached entry for key, building and storing it
// with build on a miss.
func (c *BitmapCache) GetOrCreate(key CacheKey, build func() *CacheEntry) *CacheEntry {
	if e, ok := c.Get(key); ok {
		return e
	}
	e := build()
	c.Put(key, e)
	return e
}

// Contains reports whether key is cached without touching recency or stats.
func (c *BitmapCache) Contains(key CacheKey) bool {
	if c.lru != nil {
		return c.lru.Contains(key)
	}
	_, ok := c.entries[key]
	return ok
}

// Len returns the number of cached entries.
func (c *BitmapCache) Len() int {
	if c.lru != nil {
		return c.lru.Len()
	}
	return len(c.entries)
}

// Stats returns the traffic counters.
func (c *BitmapCache) Stats() CacheStats {
	return c.stats
}

// ResetStats zeroes the traffic counters.
func (c *BitmapCache) ResetStats() {
	c.stats = CacheStats{}
}

// RemoveResource disposes and drops every entry rendered from the image at
// url. It returns the number removed; removals are not counted as evictions.
func (c *BitmapCache) RemoveResource(url string) int {
	var n int
	if c.lru != nil {
		evictions := c.stats.Evictions
		for _, k := range c.lru.Keys() {
			if k.Resource == url && c.lru.Remove(k) {
				n++
			}
		}
		c.stats.Evictions = evictions
		return n
	}
	for k, e := range c.entries {
		if k.Resource != url {
			continue
		}
		if e.Surface != nil {
			e.Surface.Dispose()
		}
		delete(c.entries, k)
		n++
	}
	return n
}

// Purge disposes every cached bitmap and empties the cache.
func (c *BitmapCache) Purge() {
	if c.lru != nil {
		evictions := c.stats.Evictions
		c.lru.Purge()
		c.stats.Evictions = evictions
		return
	}
	for k, e := range c.entries {
		if e.Surface != nil {
			e.Surface.Dispose()
		}
		delete(c.entries, k)
	}
}
