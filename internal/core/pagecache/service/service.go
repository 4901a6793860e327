package pagecacheapp

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"yatube/internal/config"
	cachePort "yatube/internal/ports/pagecache"
)

// IndexKeyPrefix namespaces the cached home feed pages.
const IndexKeyPrefix = "index_page"

// DefaultTTL is how long a cached page is served before re-rendering.
const DefaultTTL = 20 * time.Second

type PageCacheService struct {
	Cache cachePort.PageCache
}

func NewPageCacheService(cache cachePort.PageCache) *PageCacheService {
	return &PageCacheService{Cache: cache}
}

// Key builds the cache key for a request URI under prefix.
func Key(prefix, requestURI string) string {
	return prefix + ":" + requestURI
}

// Fetch returns the cached body under key or renders, stores and returns a
// fresh one. Cache failures are logged and never fail the request.
func (s *PageCacheService) Fetch(ctx context.Context, key string, ttl time.Duration, render func() ([]byte, error)) ([]byte, error) {
	body, err := s.Cache.Get(ctx, key)
	if err == nil {
		return body, nil
	}
	if !errors.Is(err, cachePort.ErrCacheMiss) {
		config.Logger.Warn("Page cache read failed", zap.String("key", key), zap.Error(err))
	}

	body, err = render()
	if err != nil {
		return nil, err
	}

	if err := s.Cache.Set(ctx, key, body, ttl); err != nil {
		config.Logger.Warn("Page cache write failed", zap.String("key", key), zap.Error(err))
	}
	return body, nil
}

// Clear drops every cached page.
func (s *PageCacheService) Clear(ctx context.Context) error {
	return s.Cache.Clear(ctx)
}
