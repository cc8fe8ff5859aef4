package webhook

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/shenikar/market_area_service/internal/models"
)

const (
	leadQueueKey = "lead_events"
)

// LeadPublisher - интерфейс для передачи заявок в приемник
type LeadPublisher interface {
	Publish(ctx context.Context, lead *models.Lead) error
}

// RedisLeadPublisher - реализация LeadPublisher, использующая очередь Redis
type RedisLeadPublisher struct {
	redisClient *redis.Client
}

// NewRedisLeadPublisher создает новый RedisLeadPublisher
func NewRedisLeadPublisher(client *redis.Client) *RedisLeadPublisher {
	return &RedisLeadPublisher{
		redisClient: client,
	}
}

// Publish кладет заявку в очередь; доставкой занимается LeadWorker
func (p *RedisLeadPublisher) Publish(ctx context.Context, lead *models.Lead) error {
	payload, err := json.Marshal(lead)
	if err != nil {
		return fmt.Errorf("failed to marshal lead: %w", err)
	}

	// LPUSH в левую часть списка, воркер забирает справа
	if err := p.redisClient.LPush(ctx, leadQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish lead to Redis: %w", err)
	}
	return nil
}

// DirectLeadPublisher доставляет заявку синхронно, без очереди
type DirectLeadPublisher struct {
	sender *Sender
}

// NewDirectLeadPublisher создает публикатор без Redis
func NewDirectLeadPublisher(sender *Sender) *DirectLeadPublisher {
	return &DirectLeadPublisher{sender: sender}
}

// Publish отправляет заявку и возвращает ошибку доставки вызывающему
func (p *DirectLeadPublisher) Publish(ctx context.Context, lead *models.Lead) error {
	return p.sender.Send(ctx, lead)
}
