package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sessionCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "filesmanager",
		Name:      "session_cache_hits_total",
		Help:      "Session lookups served from the in-process cache.",
	})
	sessionCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "filesmanager",
		Name:      "session_cache_misses_total",
		Help:      "Session lookups that went to the backing store.",
	})
)

// Store is the shared session table behind the local cache.
type Store interface {
	Lookup(ctx context.Context, key string) (value string, expiresAt time.Time, ok bool, err error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

type entry struct {
	value     string
	expiresAt time.Time
}

// SessionCache keeps recently resolved sessions in a per-instance LRU in
// front of the shared store. Entries live in the LRU for at most the
// configured local TTL, so a disconnect on another instance is seen once
// that TTL runs out. An entry never outlives the expiry the store gave it.
type SessionCache struct {
	store Store
	local *expirable.LRU[string, entry]
	now   func() time.Time
}

func NewSessionCache(store Store, size int, ttl time.Duration) *SessionCache {
	return &SessionCache{
		store: store,
		local: expirable.NewLRU[string, entry](size, nil, ttl),
		now:   time.Now,
	}
}

func (c *SessionCache) Get(ctx context.Context, key string) (string, bool, error) {
	if e, ok := c.local.Get(key); ok {
		if c.now().Before(e.expiresAt) {
			sessionCacheHits.Inc()
			return e.value, true, nil
		}
		c.local.Remove(key)
	}
	sessionCacheMisses.Inc()

	v, expiresAt, ok, err := c.store.Lookup(ctx, key)
	if err != nil || !ok {
		return "", false, err
	}
	c.local.Add(key, entry{value: v, expiresAt: expiresAt})

	return v, true, nil
}

func (c *SessionCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := c.store.Set(ctx, key, value, ttl); err != nil {
		return err
	}
	c.local.Add(key, entry{value: value, expiresAt: c.now().Add(ttl)})

	return nil
}

func (c *SessionCache) Del(ctx context.Context, key string) error {
	c.local.Remove(key)
	return c.store.Del(ctx, key)
}

func (c *SessionCache) Ping(ctx context.Context) error {
	return c.store.Ping(ctx)
}
