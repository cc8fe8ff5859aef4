package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/market_area_service/internal/observability"
)

// Janitor закрывает сессии, к которым не обращались дольше ttl
type Janitor struct {
	repo     SessionRepository
	ttl      time.Duration
	interval time.Duration
	logger   *logrus.Logger
	metrics  *observability.Collector
	now      func() time.Time
}

// NewJanitor создает уборщик; проверка идет с периодом ttl/4, но не чаще раза в секунду
func NewJanitor(repo SessionRepository, ttl time.Duration, logger *logrus.Logger, metrics *observability.Collector) *Janitor {
	interval := ttl / 4
	if interval < time.Second {
		interval = time.Second
	}
	return &Janitor{
		repo:     repo,
		ttl:      ttl,
		interval: interval,
		logger:   logger,
		metrics:  metrics,
		now:      time.Now,
	}
}

// Sweep удаляет простаивающие сессии и возвращает их число
func (j *Janitor) Sweep(ctx context.Context) int {
	sessions, err := j.repo.List(ctx)
	if err != nil {
		j.logger.WithError(err).Error("Failed to list sessions for expiry")
		return 0
	}

	now := j.now()
	expired := 0
	for _, session := range sessions {
		if now.Sub(session.LastSeen()) < j.ttl {
			continue
		}
		session.Coordinator.Close()
		if err := j.repo.Delete(ctx, session.ID); err != nil {
			j.logger.WithError(err).WithField("session_id", session.ID).Warn("Failed to delete expired session")
			continue
		}
		expired++
	}

	if n, err := j.repo.Count(ctx); err == nil {
		j.metrics.SetActiveSessions(n)
	}
	if expired > 0 {
		j.logger.WithField("expired", expired).Info("Idle sessions expired")
	}
	return expired
}

// Start запускает периодическую уборку до отмены ctx
func (j *Janitor) Start(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				j.Sweep(ctx)
			}
		}
	}()
	return done
}
