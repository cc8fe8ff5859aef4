package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// BoundaryCache хранит сырые ответы сервиса границ в Redis
type BoundaryCache struct {
	redisClient *redis.Client
}

func NewBoundaryCache(redisClient *redis.Client) *BoundaryCache {
	return &BoundaryCache{
		redisClient: redisClient,
	}
}

// Get возвращает ответ из кеша; nil, nil при промахе
func (c *BoundaryCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get boundary response from cache: %w", err)
	}
	return val, nil
}

// Set сохраняет ответ в Redis на ttl
func (c *BoundaryCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	if err := c.redisClient.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set boundary response in cache: %w", err)
	}
	return nil
}

// Invalidate удаляет ответ из кеша
func (c *BoundaryCache) Invalidate(ctx context.Context, key string) error {
	if err := c.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate boundary cache: %w", err)
	}
	return nil
}
