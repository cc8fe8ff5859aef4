package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/market_area_service/internal/models"
)

// LeadWorker забирает заявки из очереди Redis и доставляет их
type LeadWorker struct {
	redisClient *redis.Client
	sender      *Sender
	logger      *logrus.Logger
	retryDelay  time.Duration
	pollTimeout time.Duration
}

// NewLeadWorker создает новый LeadWorker
func NewLeadWorker(redisClient *redis.Client, sender *Sender, logger *logrus.Logger) *LeadWorker {
	return &LeadWorker{
		redisClient: redisClient,
		sender:      sender,
		logger:      logger,
		retryDelay:  time.Second,
		pollTimeout: time.Second,
	}
}

// Start запускает горутину обработки очереди; done закрывается после остановки
func (w *LeadWorker) Start(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	w.logger.Info("Starting lead worker...")
	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping lead worker.")
				return
			default:
				// BRPOP с конечным таймаутом, чтобы цикл замечал отмену ctx
				result, err := w.redisClient.BRPop(ctx, w.pollTimeout, leadQueueKey).Result()
				if err != nil {
					if errors.Is(err, redis.Nil) || errors.Is(err, context.Canceled) || ctx.Err() != nil {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop lead from Redis")
					_ = sleepCtx(ctx, w.retryDelay)
					continue
				}

				// result[0] - ключ, result[1] - значение
				w.process(ctx, result[1])
			}
		}
	}()
	return done
}

func (w *LeadWorker) process(ctx context.Context, payload string) {
	var lead models.Lead
	if err := json.Unmarshal([]byte(payload), &lead); err != nil {
		w.logger.WithError(err).Error("Failed to unmarshal lead from Redis")
		return
	}
	if err := w.sender.Send(ctx, &lead); err != nil {
		w.logger.WithError(err).WithField("lead_id", lead.ID).Error("Dropping undeliverable lead")
	}
}
