package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	webhookQueueKey = "scar_events"
)

// ScarEvent - событие о найденной гари для внешних систем
type ScarEvent struct {
	AnalysisID   uuid.UUID       `json:"analysis_id"`
	RegionID     uuid.UUID       `json:"region_id"`
	File         string          `json:"file"`
	AreaHectares float64         `json:"area_ha"`
	TileURL      string          `json:"tile_url"`
	Geometry     json.RawMessage `json:"geometry,omitempty"`
	Timestamp    time.Time       `json:"timestamp"`
}

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

// ScarPublisher - интерфейс для публикации событий анализа
type ScarPublisher interface {
	Publish(ctx context.Context, event ScarEvent) error
}

// RedisScarPublisher - реализация ScarPublisher поверх очереди Redis
type RedisScarPublisher struct {
	redisClient *redis.Client
}

// NewRedisScarPublisher создает новый RedisScarPublisher
func NewRedisScarPublisher(client *redis.Client) *RedisScarPublisher {
	return &RedisScarPublisher{
		redisClient: client,
	}
}

// Publish публикует событие в очередь Redis
func (p *RedisScarPublisher) Publish(ctx context.Context, event ScarEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal scar event: %w", err)
	}

	// LPUSH кладет событие в левую часть списка, воркер забирает справа
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish scar event to Redis: %w", err)
	}
	return nil
}
