package openai

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// responseCache memoizes generation responses by prompt. Prompts run at
// temperature zero, so an identical prompt yields a reusable answer
// within the TTL window.
type responseCache struct {
	cache *gocache.Cache
}

func newResponseCache(ttl time.Duration) *responseCache {
	return &responseCache{
		cache: gocache.New(ttl, 2*ttl),
	}
}

func (c *responseCache) get(prompt string) (string, bool) {
	if val, found := c.cache.Get(prompt); found {
		return val.(string), true
	}
	return "", false
}

func (c *responseCache) set(prompt, answer string) {
	c.cache.SetDefault(prompt, answer)
}
