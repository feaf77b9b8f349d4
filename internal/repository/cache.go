package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/wildfire_dashboard/internal/models"
	"github.com/shenikar/wildfire_dashboard/internal/service"
)

type FeedCache struct {
	redisClient *redis.Client
	listingTTL  time.Duration
	payloadTTL  time.Duration
}

func NewFeedCache(redisClient *redis.Client, listingTTL, payloadTTL time.Duration) service.FeedCache {
	return &FeedCache{
		redisClient: redisClient,
		listingTTL:  listingTTL,
		payloadTTL:  payloadTTL,
	}
}

func listingKey(mode models.PeriodMode) string {
	return fmt.Sprintf("listing:%s", mode)
}

func payloadKey(mode models.PeriodMode, file string) string {
	return fmt.Sprintf("payload:%s:%s", mode, file)
}

// GetListing пытается получить список файлов из Redis, nil при промахе
func (c *FeedCache) GetListing(ctx context.Context, mode models.PeriodMode) ([]string, error) {
	val, err := c.redisClient.Get(ctx, listingKey(mode)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get listing from cache: %w", err)
	}

	files := make([]string, 0)
	if err := json.Unmarshal(val, &files); err != nil {
		return nil, fmt.Errorf("failed to unmarshal listing from cache: %w", err)
	}
	return files, nil
}

// SetListing сохраняет список файлов в Redis
func (c *FeedCache) SetListing(ctx context.Context, mode models.PeriodMode, files []string) error {
	val, err := json.Marshal(files)
	if err != nil {
		return fmt.Errorf("failed to marshal listing for cache: %w", err)
	}
	if err := c.redisClient.Set(ctx, listingKey(mode), val, c.listingTTL).Err(); err != nil {
		return fmt.Errorf("failed to set listing in cache: %w", err)
	}
	return nil
}

// GetPayload возвращает CSV из кеша; found=false при промахе
func (c *FeedCache) GetPayload(ctx context.Context, mode models.PeriodMode, file string) (string, bool, error) {
	val, err := c.redisClient.Get(ctx, payloadKey(mode, file)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get payload from cache: %w", err)
	}
	return val, true, nil
}

// SetPayload сохраняет CSV архивного файла в Redis
func (c *FeedCache) SetPayload(ctx context.Context, mode models.PeriodMode, file, payload string) error {
	if err := c.redisClient.Set(ctx, payloadKey(mode, file), payload, c.payloadTTL).Err(); err != nil {
		return fmt.Errorf("failed to set payload in cache: %w", err)
	}
	return nil
}
