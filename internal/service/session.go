package service

//go:generate mockgen -source=session.go -destination=mocks/mock_session.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/market_area_service/internal/boundary"
	"github.com/shenikar/market_area_service/internal/config"
	"github.com/shenikar/market_area_service/internal/geocoder"
	"github.com/shenikar/market_area_service/internal/mapview"
	"github.com/shenikar/market_area_service/internal/models"
	"github.com/shenikar/market_area_service/internal/observability"
	"github.com/shenikar/market_area_service/internal/selection"
	"github.com/shenikar/market_area_service/internal/webhook"
)

var (
	// ErrSessionNotFound - сессии нет или она истекла
	ErrSessionNotFound = errors.New("session not found")
	// ErrAddressNotFound - геокодер ничего не нашел
	ErrAddressNotFound = errors.New("address not found")
	// ErrSubmissionNotConfigured - приемник заявок не настроен
	ErrSubmissionNotConfigured = errors.New("lead endpoint is not configured")
)

// Session - одна открытая карта выбора рынка
type Session struct {
	ID          uuid.UUID
	CreatedAt   time.Time
	Coordinator *selection.Coordinator
	Surface     *mapview.Surface

	lastSeen atomic.Int64
}

// Touch отмечает обращение к сессии
func (s *Session) Touch(now time.Time) {
	s.lastSeen.Store(now.UnixNano())
}

// LastSeen возвращает время последнего обращения
func (s *Session) LastSeen() time.Time {
	return time.Unix(0, s.lastSeen.Load())
}

// SessionState - снимок сессии для транспорта
type SessionState struct {
	ID        uuid.UUID
	CreatedAt time.Time
	selection.State
}

// CreateSessionParams - необязательные начальные значения; нулевые поля берутся из конфигурации
type CreateSessionParams struct {
	Center       *models.Coordinate
	Label        string
	RadiusMiles  float64
	BoundaryType models.BoundaryType
}

// SessionRepository определяет контракт хранения сессий
type SessionRepository interface {
	Save(ctx context.Context, session *Session) error
	Get(ctx context.Context, id uuid.UUID) (*Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*Session, error)
	Count(ctx context.Context) (int, error)
}

// SessionService определяет контракт бизнес-логики выбора рынка
type SessionService interface {
	CreateSession(ctx context.Context, params CreateSessionParams) (*SessionState, error)
	GetSession(ctx context.Context, id uuid.UUID) (*SessionState, error)
	Geocode(ctx context.Context, id uuid.UUID, query string) (*SessionState, error)
	PlaceCenter(ctx context.Context, id uuid.UUID, center models.Coordinate) (*SessionState, error)
	SetRadius(ctx context.Context, id uuid.UUID, miles float64) (*SessionState, error)
	SetBoundaryType(ctx context.Context, id uuid.UUID, t models.BoundaryType) (*SessionState, error)
	MapView(ctx context.Context, id uuid.UUID) (*mapview.View, error)
	SubmitLead(ctx context.Context, id uuid.UUID, lead *models.Lead) (*models.Lead, error)
	CloseSession(ctx context.Context, id uuid.UUID) error
}

type sessionService struct {
	repo      SessionRepository
	fetcher   boundary.Fetcher
	geocoder  geocoder.Geocoder
	publisher webhook.LeadPublisher
	cfg       *config.Config
	logger    *logrus.Logger
	metrics   *observability.Collector
	now       func() time.Time
}

// NewSessionService создает сервис. publisher должен быть nil, если приемник заявок не настроен.
func NewSessionService(
	repo SessionRepository,
	fetcher boundary.Fetcher,
	gc geocoder.Geocoder,
	publisher webhook.LeadPublisher,
	cfg *config.Config,
	logger *logrus.Logger,
	metrics *observability.Collector,
) SessionService {
	return &sessionService{
		repo:      repo,
		fetcher:   fetcher,
		geocoder:  gc,
		publisher: publisher,
		cfg:       cfg,
		logger:    logger,
		metrics:   metrics,
		now:       time.Now,
	}
}

// CreateSession открывает сессию и планирует первое вычисление выбора
func (s *sessionService) CreateSession(ctx context.Context, params CreateSessionParams) (*SessionState, error) {
	id := uuid.New()
	log := s.logger.WithFields(logrus.Fields{
		"service":    "session",
		"method":     "CreateSession",
		"session_id": id,
	})
	log.Info("Opening a new selection session")

	center := models.DefaultCenter
	if params.Center != nil {
		center = *params.Center
	}
	radius := params.RadiusMiles
	if radius == 0 {
		radius = models.DefaultRadiusMiles
	}
	bt := params.BoundaryType
	if bt == "" {
		bt = models.BoundaryType(s.cfg.DefaultBoundaryType)
	}

	coordinator, err := selection.New(s.fetcher, selection.Options{
		Center:       center,
		Label:        params.Label,
		RadiusMiles:  radius,
		BoundaryType: bt,
		Debounce:     s.cfg.SelectionDebounce,
		FetchTimeout: s.cfg.SelectionFetchTimeout,
		Listener:     s.selectionListener(id),
		Logger:       s.logger,
		Metrics:      s.metrics,
	})
	if err != nil {
		log.WithError(err).Warn("Rejected session parameters")
		return nil, fmt.Errorf("service: could not create session: %w", err)
	}

	now := s.now()
	session := &Session{
		ID:          id,
		CreatedAt:   now,
		Coordinator: coordinator,
		Surface:     mapview.NewSurface(coordinator),
	}
	session.Touch(now)

	if err := s.repo.Save(ctx, session); err != nil {
		coordinator.Close()
		log.WithError(err).Error("Failed to save session in repository")
		return nil, fmt.Errorf("service: could not save session: %w", err)
	}
	if err := coordinator.Start(); err != nil {
		return nil, fmt.Errorf("service: could not start session: %w", err)
	}
	s.reportSessions(ctx)

	log.Info("Session opened successfully")
	return stateOf(session), nil
}

// GetSession возвращает текущий снимок сессии
func (s *sessionService) GetSession(ctx context.Context, id uuid.UUID) (*SessionState, error) {
	session, err := s.session(ctx, id)
	if err != nil {
		return nil, err
	}
	return stateOf(session), nil
}

// Geocode переносит центр в найденную точку. Пустой запрос ничего не меняет.
func (s *sessionService) Geocode(ctx context.Context, id uuid.UUID, query string) (*SessionState, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "session",
		"method":     "Geocode",
		"session_id": id,
	})

	session, err := s.session(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := s.geocoder.Geocode(ctx, query)
	if err != nil {
		if errors.Is(err, geocoder.ErrNotFound) {
			log.WithField("query", query).Info("Address not found")
			return nil, fmt.Errorf("service: %w: %w", ErrAddressNotFound, err)
		}
		log.WithError(err).Warn("Geocoding failed")
		return nil, fmt.Errorf("service: could not geocode address: %w", err)
	}
	if result == nil {
		return stateOf(session), nil
	}

	if err := session.Coordinator.SetCenter(result.Coordinate, result.Label); err != nil {
		return nil, fmt.Errorf("service: could not move center: %w", err)
	}
	log.WithField("label", result.Label).Info("Center moved to geocoded address")
	return stateOf(session), nil
}

// PlaceCenter обрабатывает клик по карте
func (s *sessionService) PlaceCenter(ctx context.Context, id uuid.UUID, center models.Coordinate) (*SessionState, error) {
	session, err := s.session(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := session.Surface.OnPlace(center); err != nil {
		return nil, fmt.Errorf("service: could not place center: %w", err)
	}
	return stateOf(session), nil
}

// SetRadius меняет радиус из набора, доступного в интерфейсе
func (s *sessionService) SetRadius(ctx context.Context, id uuid.UUID, miles float64) (*SessionState, error) {
	session, err := s.session(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := session.Surface.OnRadiusChanged(miles); err != nil {
		return nil, fmt.Errorf("service: could not change radius: %w", err)
	}
	return stateOf(session), nil
}

// SetBoundaryType меняет тип заливки
func (s *sessionService) SetBoundaryType(ctx context.Context, id uuid.UUID, t models.BoundaryType) (*SessionState, error) {
	session, err := s.session(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := session.Coordinator.SetBoundaryType(t); err != nil {
		return nil, fmt.Errorf("service: could not change boundary type: %w", err)
	}
	return stateOf(session), nil
}

// MapView возвращает описание кадра карты
func (s *sessionService) MapView(ctx context.Context, id uuid.UUID) (*mapview.View, error) {
	session, err := s.session(ctx, id)
	if err != nil {
		return nil, err
	}
	view := session.Surface.View()
	return &view, nil
}

// SubmitLead дополняет заявку текущим выбором и передает ее в приемник
func (s *sessionService) SubmitLead(ctx context.Context, id uuid.UUID, lead *models.Lead) (*models.Lead, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "session",
		"method":     "SubmitLead",
		"session_id": id,
		"lead_kind":  lead.Kind,
	})

	if s.publisher == nil {
		log.Warn("Lead endpoint is not configured. Skipping lead delivery.")
		s.metrics.ObserveLead(lead.Kind, observability.OutcomeError)
		return nil, ErrSubmissionNotConfigured
	}

	session, err := s.session(ctx, id)
	if err != nil {
		return nil, err
	}

	state := session.Coordinator.Snapshot()
	center := state.Center
	lead.ID = uuid.New()
	lead.Center = &center
	lead.RadiusMiles = state.RadiusMiles
	lead.Selection = state.Selection
	lead.SubmittedAt = s.now()
	log = log.WithField("lead_id", lead.ID)

	if err := s.publisher.Publish(ctx, lead); err != nil {
		s.metrics.ObserveLead(lead.Kind, observability.OutcomeError)
		log.WithError(err).Error("Failed to publish lead")
		return nil, fmt.Errorf("service: could not submit lead: %w", err)
	}

	s.metrics.ObserveLead(lead.Kind, observability.OutcomeSuccess)
	log.WithFields(logrus.Fields{
		"boundary_type":  lead.Selection.Type,
		"boundary_count": lead.Selection.Count,
	}).Info("Lead submitted successfully")
	return lead, nil
}

// CloseSession останавливает координатор и удаляет сессию
func (s *sessionService) CloseSession(ctx context.Context, id uuid.UUID) error {
	session, err := s.session(ctx, id)
	if err != nil {
		return err
	}
	session.Coordinator.Close()
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service: could not delete session: %w", err)
	}
	s.reportSessions(ctx)
	s.logger.WithField("session_id", id).Info("Session closed")
	return nil
}

func (s *sessionService) session(ctx context.Context, id uuid.UUID) (*Session, error) {
	session, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	session.Touch(s.now())
	return session, nil
}

func (s *sessionService) selectionListener(id uuid.UUID) selection.Listener {
	log := s.logger.WithFields(logrus.Fields{"service": "session", "session_id": id})
	return func(sel models.BoundarySelection) {
		log.WithFields(logrus.Fields{
			"selection_type":  sel.Type,
			"selection_count": sel.Count,
		}).Debug("Selection updated")
	}
}

func (s *sessionService) reportSessions(ctx context.Context) {
	if n, err := s.repo.Count(ctx); err == nil {
		s.metrics.SetActiveSessions(n)
	}
}

func stateOf(session *Session) *SessionState {
	return &SessionState{
		ID:        session.ID,
		CreatedAt: session.CreatedAt,
		State:     session.Coordinator.Snapshot(),
	}
}
