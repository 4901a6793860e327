package redis

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"yatube/internal/config"
	cachePort "yatube/internal/ports/pagecache"
)

// DefaultNamespace prefixes every key written by PageCacheRedis.
const DefaultNamespace = "yatube:page:"

const scanBatch = 100

// PageCacheRedis keeps rendered pages as plain string keys with a TTL.
type PageCacheRedis struct {
	Client    *redis.Client
	Namespace string
}

func NewPageCacheRedis(client *redis.Client) *PageCacheRedis {
	return &PageCacheRedis{
		Client:    client,
		Namespace: DefaultNamespace,
	}
}

func (r *PageCacheRedis) Get(ctx context.Context, key string) ([]byte, error) {
	body, err := r.Client.Get(ctx, r.Namespace+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, cachePort.ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}
	return body, nil
}

func (r *PageCacheRedis) Set(ctx context.Context, key string, body []byte, ttl time.Duration) error {
	return r.Client.Set(ctx, r.Namespace+key, body, ttl).Err()
}

// Clear deletes the namespace with SCAN so other data in the same Redis
// database is left alone.
func (r *PageCacheRedis) Clear(ctx context.Context) error {
	var (
		cursor  uint64
		deleted int
	)
	for {
		keys, next, err := r.Client.Scan(ctx, cursor, r.Namespace+"*", scanBatch).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := r.Client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
			deleted += len(keys)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	config.Logger.Info("Page cache cleared", zap.String("namespace", r.Namespace), zap.Int("keys", deleted))
	return nil
}
