package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/market_area_service/internal/service"
)

func TestSessionRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository()
	session := &service.Session{ID: uuid.New()}

	require.NoError(t, repo.Save(ctx, session))

	got, err := repo.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Same(t, session, got)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, repo.Delete(ctx, session.ID))
	_, err = repo.Get(ctx, session.ID)
	assert.ErrorIs(t, err, service.ErrSessionNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, session.ID), service.ErrSessionNotFound)
}

func TestSessionRepository_RejectsEmptyID(t *testing.T) {
	repo := NewSessionRepository()

	assert.Error(t, repo.Save(context.Background(), &service.Session{}))
	assert.Error(t, repo.Save(context.Background(), nil))
}
