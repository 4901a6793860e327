package pagecache

import (
	"context"
	"errors"
	"time"
)

var ErrCacheMiss = errors.New("page cache miss")

// PageCache is an expiring key-value store for rendered pages.
type PageCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, body []byte, ttl time.Duration) error
	// Clear drops every cached page.
	Clear(ctx context.Context) error
}
