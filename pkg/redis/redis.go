package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/wildfire_dashboard/internal/config"
)

// NewRedisClient создает клиент Redis для кеша ленты и очереди вебхуков.
// ReadTimeout отключен: воркер вебхуков держит соединение в BRPop.
func NewRedisClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPass,
		DB:           cfg.RedisDB,
		PoolSize:     10,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  -1,
		WriteTimeout: 3 * time.Second,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.RedisAddr, err)
	}

	return rdb, nil
}
