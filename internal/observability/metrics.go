package observability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Исходы внешних вызовов для метки outcome
const (
	OutcomeSuccess  = "success"
	OutcomeError    = "error"
	OutcomeNotFound = "not_found"
	OutcomeCacheHit = "cache_hit"
)

// Collector объединяет метрики сервиса. Все методы безопасны для nil-получателя,
// поэтому компоненты могут работать без метрик (например, в тестах).
type Collector struct {
	gatherer prometheus.Gatherer

	HTTPRequests      *prometheus.CounterVec
	BoundaryFetches   *prometheus.CounterVec
	BoundaryDurations *prometheus.HistogramVec
	GeocodeRequests   *prometheus.CounterVec
	SupersededResults prometheus.Counter
	SelectionsEmitted *prometheus.CounterVec
	LeadsSubmitted    *prometheus.CounterVec
	ActiveSessions    prometheus.Gauge
}

// NewCollector регистрирует метрики в reg, по умолчанию в глобальном реестре
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	c := &Collector{gatherer: gatherer}
	var err error

	if c.HTTPRequests, err = registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "market_http_requests_total",
		Help: "Handled HTTP requests, labeled by method, route and status code.",
	}, []string{"method", "route", "code"})); err != nil {
		return nil, err
	}
	if c.BoundaryFetches, err = registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "market_boundary_fetches_total",
		Help: "Boundary feature-service queries, labeled by boundary type and outcome.",
	}, []string{"boundary_type", "outcome"})); err != nil {
		return nil, err
	}
	if c.BoundaryDurations, err = registerHistogramVec(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "market_boundary_fetch_duration_seconds",
		Help:    "Boundary feature-service query latency in seconds.",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 20},
	}, []string{"boundary_type"})); err != nil {
		return nil, err
	}
	if c.GeocodeRequests, err = registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "market_geocode_requests_total",
		Help: "Geocoding requests, labeled by outcome.",
	}, []string{"outcome"})); err != nil {
		return nil, err
	}
	if c.SupersededResults, err = registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "market_selection_superseded_total",
		Help: "Boundary results discarded because a newer selection was scheduled.",
	})); err != nil {
		return nil, err
	}
	if c.SelectionsEmitted, err = registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "market_selections_emitted_total",
		Help: "Boundary selections emitted by coordinators, labeled by selection type.",
	}, []string{"selection_type"})); err != nil {
		return nil, err
	}
	if c.LeadsSubmitted, err = registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "market_leads_submitted_total",
		Help: "Lead submissions, labeled by kind and outcome.",
	}, []string{"kind", "outcome"})); err != nil {
		return nil, err
	}
	if c.ActiveSessions, err = registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "market_active_sessions",
		Help: "Selection sessions currently held in memory.",
	})); err != nil {
		return nil, err
	}

	return c, nil
}

// Handler отдает метрики в формате Prometheus
func (c *Collector) Handler() http.Handler {
	if c == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}

// GinMiddleware считает обработанные HTTP-запросы по шаблону маршрута
func (c *Collector) GinMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Next()
		if c == nil || c.HTTPRequests == nil {
			return
		}
		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}
		c.HTTPRequests.WithLabelValues(ctx.Request.Method, route, strconv.Itoa(ctx.Writer.Status())).Inc()
	}
}

// ObserveBoundaryFetch фиксирует исход и длительность запроса границ
func (c *Collector) ObserveBoundaryFetch(boundaryType, outcome string, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.BoundaryFetches.WithLabelValues(boundaryType, outcome).Inc()
	if outcome != OutcomeCacheHit {
		c.BoundaryDurations.WithLabelValues(boundaryType).Observe(elapsed.Seconds())
	}
}

// ObserveGeocode фиксирует исход геокодирования
func (c *Collector) ObserveGeocode(outcome string) {
	if c == nil {
		return
	}
	c.GeocodeRequests.WithLabelValues(outcome).Inc()
}

// ObserveSuperseded фиксирует отброшенный устаревший результат
func (c *Collector) ObserveSuperseded() {
	if c == nil {
		return
	}
	c.SupersededResults.Inc()
}

// ObserveSelection фиксирует выданный координатором выбор
func (c *Collector) ObserveSelection(selectionType string) {
	if c == nil {
		return
	}
	c.SelectionsEmitted.WithLabelValues(selectionType).Inc()
}

// ObserveLead фиксирует исход отправки заявки
func (c *Collector) ObserveLead(kind, outcome string) {
	if c == nil {
		return
	}
	c.LeadsSubmitted.WithLabelValues(kind, outcome).Inc()
}

// SetActiveSessions обновляет число сессий в памяти
func (c *Collector) SetActiveSessions(n int) {
	if c == nil {
		return
	}
	c.ActiveSessions.Set(float64(n))
}

func registerCounterVec(reg prometheus.Registerer, cv *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := reg.Register(cv); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, err
	}
	return cv, nil
}

func registerHistogramVec(reg prometheus.Registerer, hv *prometheus.HistogramVec) (*prometheus.HistogramVec, error) {
	if err := reg.Register(hv); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
		}
		return nil, err
	}
	return hv, nil
}

func registerCounter(reg prometheus.Registerer, ctr prometheus.Counter) (prometheus.Counter, error) {
	if err := reg.Register(ctr); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
		}
		return nil, err
	}
	return ctr, nil
}

func registerGauge(reg prometheus.Registerer, g prometheus.Gauge) (prometheus.Gauge, error) {
	if err := reg.Register(g); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
		}
		return nil, err
	}
	return g, nil
}
