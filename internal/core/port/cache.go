package port

import "context"

// CreateFunc computes a cache value on a miss.
type CreateFunc func(ctx context.Context) (any, error)

//go:generate mockgen -source=cache.go -destination=mock/cache.go -package=mock
type Cache interface {
	// GetOrCreateExclusive returns the value cached under key or computes it
	// with create. Concurrent callers for the same key share one computation.
	// The stored entry is expired when any of tokens is expired. Errors are
	// never cached.
	GetOrCreateExclusive(ctx context.Context, key string, tokens []string, create CreateFunc) (any, error)
	// Expire drops every entry registered with any of the tokens.
	Expire(ctx context.Context, tokens ...string)
}
