package transkana

import (
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// CachedEngine memoizes Exec results. Results are cached only once the
// dictionary is ready, so degraded output is never served after the load
// completes.
type CachedEngine struct {
	*Engine
	cache *gocache.Cache
}

// NewCachedEngine wraps e with a result cache. A zero ttl disables caching.
func NewCachedEngine(e *Engine, ttl, cleanup time.Duration) *CachedEngine {
	c := &CachedEngine{Engine: e}
	if ttl > 0 {
		c.cache = gocache.New(ttl, cleanup)
	}
	return c
}

// Exec returns the cached conversion of text or computes and stores it.
func (c *CachedEngine) Exec(text string, opts Options) string {
	if c.cache == nil || !c.Engine.Ready() {
		return c.Engine.Exec(text, opts)
	}

	key := cacheKey(text, opts)
	if v, ok := c.cache.Get(key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}

	out := c.Engine.Exec(text, opts)
	c.cache.SetDefault(key, out)
	return out
}

// Cached returns the number of stored results.
func (c *CachedEngine) Cached() int {
	if c.cache == nil {
		return 0
	}
	return c.cache.ItemCount()
}

func cacheKey(text string, opts Options) string {
	return strconv.FormatBool(opts.Compact) + strconv.FormatBool(opts.JapaneseReadings) + "\x00" + text
}
