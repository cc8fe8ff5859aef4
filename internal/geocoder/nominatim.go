// Package geocoder переводит адрес или место в координату через Nominatim.
package geocoder

//go:generate mockgen -source=nominatim.go -destination=mocks/mock_geocoder.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/shenikar/market_area_service/internal/models"
	"github.com/shenikar/market_area_service/internal/observability"
	"github.com/shenikar/market_area_service/pkg/logger"
)

// DefaultURL - публичный эндпоинт поиска Nominatim
const DefaultURL = "https://nominatim.openstreetmap.org/search"

var (
	// ErrNotFound - сервис не нашел ни одного результата
	ErrNotFound = errors.New("address not found")
	// ErrNetwork - сбой транспорта или разбора ответа
	ErrNetwork = errors.New("geocoding request failed")
)

var zipPattern = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

// Result - первая найденная точка и ее человекочитаемое название
type Result struct {
	Coordinate models.Coordinate
	Label      string
}

// Geocoder определяет контракт геокодирования свободного текста
type Geocoder interface {
	// Geocode возвращает nil, nil для пустого запроса без обращения к сервису.
	Geocode(ctx context.Context, query string) (*Result, error)
}

// Option настраивает Client
type Option func(*Client)

// WithURL переопределяет адрес поиска
func WithURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.endpoint = u
		}
	}
}

// WithCountry ограничивает поиск одной страной (ISO 3166-1 alpha-2)
func WithCountry(code string) Option {
	return func(c *Client) {
		c.country = strings.ToLower(code)
	}
}

// WithUserAgent задает User-Agent, обязательный по правилам Nominatim
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
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
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
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

// Client - клиент Nominatim
type Client struct {
	endpoint   string
	country    string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *logrus.Logger
	metrics    *observability.Collector
}

// NewClient создает клиент геокодирования
func NewClient(opts ...Option) *Client {
	c := &Client{
		endpoint:   DefaultURL,
		country:    "us",
		userAgent:  "AccelMail/1.0",
		httpClient: &http.Client{Timeout: 10 * time.Second},
		limiter:    rate.NewLimiter(1, 1),
		logger:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode ищет query и возвращает первый результат
func (c *Client) Geocode(ctx context.Context, query string) (*Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	log := c.logger.WithFields(logrus.Fields{
		"component": "geocoder",
		"query":     query,
	})

	result, err := c.search(ctx, query)
	switch {
	case errors.Is(err, ErrNotFound):
		c.metrics.ObserveGeocode(observability.OutcomeNotFound)
		log.Info("Address not found")
		return nil, err
	case err != nil:
		c.metrics.ObserveGeocode(observability.OutcomeError)
		log.WithError(err).Warn("Geocoding failed")
		return nil, err
	}

	c.metrics.ObserveGeocode(observability.OutcomeSuccess)
	log.WithField("label", result.Label).Debug("Address geocoded")
	return result, nil
}

func (c *Client) search(ctx context.Context, query string) (*Result, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}

	params := url.Values{}
	if zipPattern.MatchString(query) {
		params.Set("postalcode", query)
	} else {
		params.Set("q", query)
	}
	params.Set("format", "json")
	params.Set("limit", "1")
	if c.country != "" {
		params.Set("countrycodes", c.country)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrNetwork, resp.StatusCode)
	}

	var places []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %w", ErrNetwork, err)
	}
	if len(places) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, query)
	}

	place := places[0]
	lat, err := strconv.ParseFloat(strings.TrimSpace(place.Lat), 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad lat %q", ErrNetwork, place.Lat)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(place.Lon), 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad lon %q", ErrNetwork, place.Lon)
	}
	coord, err := models.NewCoordinate(lat, lng)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}

	return &Result{Coordinate: coord, Label: place.DisplayName}, nil
}
