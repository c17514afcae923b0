package cache

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/MikeRez0/ordermodule/internal/core/port"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Broadcaster forwards expired tokens to other service instances.
type Broadcaster interface {
	Broadcast(ctx context.Context, tokens []string) error
}

type entry struct {
	value     any
	tokens    []string
	expiresAt time.Time
}

// MemoryCache is a process wide read-through cache. Population of a key is
// exclusive: concurrent misses share one call of the create function unless
// an expiration happened between them.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]*entry
	byToken map[string]map[string]struct{}
	// epoch grows with every expiration. A population that started in an
	// older epoch may have read stale data and is not retained.
	epoch uint64

	group  singleflight.Group
	ttl    time.Duration
	relay  Broadcaster
	now    func() time.Time
	logger *zap.Logger
}

var _ port.Cache = (*MemoryCache)(nil)

// NewMemoryCache creates a cache. A zero ttl keeps entries until expired by
// token.
func NewMemoryCache(ttl time.Duration, logger *zap.Logger) *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]*entry),
		byToken: make(map[string]map[string]struct{}),
		ttl:     ttl,
		now:     time.Now,
		logger:  logger,
	}
}

// SetRelay makes Expire forward tokens to peers.
func (c *MemoryCache) SetRelay(relay Broadcaster) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.relay = relay
}

func (c *MemoryCache) GetOrCreateExclusive(ctx context.Context, key string, tokens []string,
	create port.CreateFunc) (any, error) {
	if v, ok := c.lookup(key); ok {
		c.logger.Debug("Cache hit", zap.String("key", key))
		return v, nil
	}

	c.mu.Lock()
	epoch := c.epoch
	c.mu.Unlock()

	// Misses only join a population started in the same epoch. One started
	// before an expiration may return data the expiring write has replaced.
	flight := key + "#" + strconv.FormatUint(epoch, 10)
	ch := c.group.DoChan(flight, func() (any, error) {
		if v, ok := c.lookup(key); ok {
			return v, nil
		}

		// The computation is shared by every waiter, so it must outlive the
		// caller that happened to start it.
		v, err := create(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		c.store(key, tokens, v, epoch)
		return v, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			c.logger.Debug("Cache population failed", zap.String("key", key), zap.Error(res.Err))
			return nil, res.Err
		}
		return res.Val, nil
	}
}

func (c *MemoryCache) Expire(ctx context.Context, tokens ...string) {
	c.ExpireLocal(tokens...)

	c.mu.Lock()
	relay := c.relay
	c.mu.Unlock()
	if relay == nil {
		return
	}
	if err := relay.Broadcast(ctx, tokens); err != nil {
		c.logger.Error("Broadcast cache expiration", zap.Strings("tokens", tokens), zap.Error(err))
	}
}

// ExpireLocal drops the entries of tokens from this instance only.
func (c *MemoryCache) ExpireLocal(tokens ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.epoch++
	dropped := 0
	for _, token := range tokens {
		for key := range c.byToken[token] {
			c.remove(key)
			dropped++
		}
		delete(c.byToken, token)
	}
	c.logger.Debug("Cache expired", zap.Strings("tokens", tokens), zap.Int("entries", dropped))
}

// Len returns the number of live entries.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *MemoryCache) lookup(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if !e.expiresAt.IsZero() && !c.now().Before(e.expiresAt) {
		c.remove(key)
		return nil, false
	}
	return e.value, true
}

func (c *MemoryCache) store(key string, tokens []string, value any, epoch uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.epoch != epoch {
		c.logger.Debug("Cache population outdated by expiration", zap.String("key", key))
		return
	}

	c.remove(key)
	e := &entry{value: value, tokens: tokens}
	if c.ttl > 0 {
		e.expiresAt = c.now().Add(c.ttl)
	}
	c.entries[key] = e
	for _, token := range tokens {
		keys, ok := c.byToken[token]
		if !ok {
			keys = make(map[string]struct{})
			c.byToken[token] = keys
		}
		keys[key] = struct{}{}
	}
}

// remove must be called with mu held.
func (c *MemoryCache) remove(key string) {
	e, ok := c.entries[key]
	if !ok {
		return
	}
	delete(c.entries, key)
	for _, token := range e.tokens {
		if keys, ok := c.byToken[token]; ok {
			delete(keys, key)
			if len(keys) == 0 {
				delete(c.byToken, token)
			}
		}
	}
}
