package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/shenikar/market_area_service/internal/service"
)

// SessionRepository хранит открытые сессии в памяти процесса
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*service.Session
}

func NewSessionRepository() service.SessionRepository {
	return &SessionRepository{
		sessions: make(map[uuid.UUID]*service.Session),
	}
}

// Save сохраняет или заменяет сессию
func (r *SessionRepository) Save(_ context.Context, session *service.Session) error {
	if session == nil || session.ID == uuid.Nil {
		return fmt.Errorf("failed to save session: empty id")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = session
	return nil
}

// Get возвращает сессию по ее UUID
func (r *SessionRepository) Get(_ context.Context, id uuid.UUID) (*service.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session with id %s: %w", id, service.ErrSessionNotFound)
	}
	return session, nil
}

// Delete удаляет сессию
func (r *SessionRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return fmt.Errorf("session with id %s not found for delete: %w", id, service.ErrSessionNotFound)
	}
	delete(r.sessions, id)
	return nil
}

// List возвращает все сессии
func (r *SessionRepository) List(_ context.Context) ([]*service.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sessions := make([]*service.Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		sessions = append(sessions, s)
	}
	return sessions, nil
}

// Count возвращает число сессий
func (r *SessionRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions), nil
}
