package boundary

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"github.com/shenikar/market_area_service/internal/models"
	"github.com/shenikar/market_area_service/internal/observability"
	"github.com/shenikar/market_area_service/pkg/logger"
)

const (
	maxResponseBytes = 64 << 20
	cacheKeyPrefix   = "boundary:"
)

var (
	// ErrInvalidResponse - ответ не является коллекцией полигонов
	ErrInvalidResponse = errors.New("invalid boundary response")
	// ErrNetwork - сбой транспорта при обращении к сервису границ
	ErrNetwork = errors.New("boundary service request failed")
)

// HTTPError - сервис границ ответил неуспешным статусом
type HTTPError struct {
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("boundary service returned status %d", e.StatusCode)
}

// Result - полигоны, пересекающие круг выбора, и их идентификаторы
type Result struct {
	Features *FeatureCollection
	IDs      []string
}

//go:generate mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks

// Fetcher определяет контракт получения границ вокруг центра
type Fetcher interface {
	FetchBoundaries(ctx context.Context, center models.Coordinate, radiusMiles float64, t models.BoundaryType) (*Result, error)
}

// Cache хранит сырые ответы сервиса. Get возвращает nil, nil при промахе.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
}

// Option настраивает Client
type Option func(*Client)

// WithBaseURL переопределяет корень сервисов TIGERweb
func WithBaseURL(base string) Option {
	return func(c *Client) {
		if base != "" {
			c.baseURL = base
		}
	}
}

// WithHTTPClient задает HTTP-клиент
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithRateLimit ограничивает число запросов в секунду; rps <= 0 снимает ограничение
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		burst := int(rps)
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithCache включает кеширование ответов на ttl
func WithCache(cache Cache, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = cache
		c.cacheTTL = ttl
	}
}

// WithLogger задает логгер
func WithLogger(log *logrus.Logger) Option {
	return func(c *Client) {
		c.logger = log
	}
}

// WithMetrics задает сборщик метрик
func WithMetrics(m *observability.Collector) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// Client запрашивает полигоны в сервисах TIGERweb
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	cache      Cache
	cacheTTL   time.Duration
	group      singleflight.Group
	logger     *logrus.Logger
	metrics    *observability.Collector
}

// NewClient создает клиент сервиса границ
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		limiter:    rate.NewLimiter(5, 5),
		logger:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchBoundaries возвращает полигоны типа t, пересекающие круг радиусом radiusMiles.
// Для BoundaryNone возвращается пустой результат без обращения к сети.
func (c *Client) FetchBoundaries(ctx context.Context, center models.Coordinate, radiusMiles float64, t models.BoundaryType) (*Result, error) {
	if t == models.BoundaryNone {
		return &Result{Features: EmptyFeatureCollection(), IDs: []string{}}, nil
	}
	desc, ok := DescriptorFor(t)
	if !ok {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidBoundaryType, t)
	}
	if err := center.Validate(); err != nil {
		return nil, err
	}
	if err := models.ValidateRadius(radiusMiles); err != nil {
		return nil, err
	}

	meters := models.MilesToMeters(radiusMiles)
	reqURL := desc.QueryURL(c.baseURL) + "?" + desc.QueryParams(center, meters).Encode()
	key := cacheKey(reqURL)

	log := c.logger.WithFields(logrus.Fields{
		"component":     "boundary",
		"boundary_type": t,
		"lat":           center.Lat,
		"lng":           center.Lng,
		"radius_miles":  radiusMiles,
	})
	log.Debug("Fetching boundaries")

	start := time.Now()
	payload, cached, err := c.load(ctx, key, reqURL)
	if err != nil {
		c.metrics.ObserveBoundaryFetch(string(t), observability.OutcomeError, time.Since(start))
		log.WithError(err).Warn("Boundary request failed")
		return nil, err
	}

	fc, err := ParseFeatureCollection(payload)
	if err != nil {
		c.metrics.ObserveBoundaryFetch(string(t), observability.OutcomeError, time.Since(start))
		log.WithError(err).Warn("Boundary response rejected")
		return nil, err
	}

	outcome := observability.OutcomeSuccess
	if cached {
		outcome = observability.OutcomeCacheHit
	} else {
		c.store(ctx, key, payload, log)
	}
	c.metrics.ObserveBoundaryFetch(string(t), outcome, time.Since(start))

	ids := ExtractIDs(fc, desc.IDField)
	log.WithFields(logrus.Fields{"features": fc.Len(), "ids": len(ids), "cached": cached}).Debug("Boundaries fetched")
	return &Result{Features: fc, IDs: ids}, nil
}

// load берет ответ из кеша или делает запрос. Одинаковые одновременные запросы
// схлопываются в один; отмена ctx отпускает вызывающего, но не общий запрос.
func (c *Client) load(ctx context.Context, key, reqURL string) ([]byte, bool, error) {
	if c.cache != nil {
		payload, err := c.cache.Get(ctx, key)
		if err != nil {
			c.logger.WithError(err).Warn("Boundary cache lookup failed")
		} else if payload != nil {
			return payload, true, nil
		}
	}

	ch := c.group.DoChan(key, func() (any, error) {
		return c.request(context.WithoutCancel(ctx), reqURL)
	})
	select {
	case <-ctx.Done():
		return nil, false, fmt.Errorf("%w: %w", ErrNetwork, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, false, res.Err
		}
		return res.Val.([]byte), false, nil
	}
}

func (c *Client) request(ctx context.Context, reqURL string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &HTTPError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %w", ErrNetwork, err)
	}
	return body, nil
}

func (c *Client) store(ctx context.Context, key string, payload []byte, log *logrus.Entry) {
	if c.cache == nil || c.cacheTTL <= 0 {
		return
	}
	if err := c.cache.Set(ctx, key, payload, c.cacheTTL); err != nil {
		log.WithError(err).Warn("Failed to cache boundary response")
	}
}

func cacheKey(reqURL string) string {
	sum := sha256.Sum256([]byte(reqURL))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}
