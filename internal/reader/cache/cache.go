// Package cache holds recently assembled screen descriptions so repeated
// reads of the same screen skip the tree walk. Entries expire lazily on Get;
// there is no background sweep and no size bound, acceptable because the
// keyspace is the small finite product of screen type and route identity.
package cache

import (
	"fmt"
	"time"
)

// DefaultTTL bounds how long a description stays valid. Screen content can
// change underneath the cache, so entries go stale quickly.
const DefaultTTL = 2 * time.Minute

type entry struct {
	content  string
	storedAt time.Time
}

// Content is an explicitly constructed cache with its own lifecycle: created
// at startup, cleared on navigation or memory pressure, passed to consumers.
// It is not safe for concurrent use; the reader runs on a single goroutine.
type Content struct {
	ttl     time.Duration
	now     func() time.Time
	entries map[string]entry
}

// Option adjusts cache construction.
type Option func(*Content)

// WithTTL overrides DefaultTTL. Non-positive values keep the default so a
// missing config value cannot turn every entry instantly stale.
func WithTTL(ttl time.Duration) Option {
	return func(c *Content) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithClock substitutes the time source, used by tests to simulate expiry.
func WithClock(now func() time.Time) Option {
	return func(c *Content) {
		c.now = now
	}
}

// New builds an empty content cache.
func New(opts ...Option) *Content {
	c := &Content{
		ttl:     DefaultTTL,
		now:     time.Now,
		entries: make(map[string]entry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Key builds a cache key from the screen type and the fully resolved route.
// The resolved route carries entity identity (for example the forum post id),
// so two detail screens on the same route template never share a slot.
func Key(screenType, resolvedRoute string) string {
	return fmt.Sprintf("%s|%s", screenType, resolvedRoute)
}

// Get returns the cached content for key, or ok=false when absent or past
// TTL. Expired entries are deleted on the spot.
func (c *Content) Get(key string) (string, bool) {
	e, ok := c.entries[key]
	if !ok {
		return "", false
	}
	if c.now().Sub(e.storedAt) > c.ttl {
		delete(c.entries, key)
		return "", false
	}
	return e.content, true
}

// Put stores content under key, resetting its TTL.
func (c *Content) Put(key, content string) {
	c.entries[key] = entry{content: content, storedAt: c.now()}
}

// Clear drops every entry, for navigation changes and memory pressure.
func (c *Content) Clear() {
	c.entries = make(map[string]entry)
}

// Len reports the number of live entries, counting not-yet-reaped expired
// ones; it exists for the CLI status output.
func (c *Content) Len() int {
	return len(c.entries)
}
