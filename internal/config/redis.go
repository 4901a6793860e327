package config

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisClient is the shared client opened by InitRedis.
var RedisClient *redis.Client

// InitRedis connects to Redis and verifies the connection with PING.
func InitRedis(cfg Config) {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s, err := RedisClient.Ping(ctx).Result()
	if err != nil {
		Logger.Fatal("Error connecting to Redis", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}
	Logger.Info("Connected to Redis", zap.String("ping", s))
}
