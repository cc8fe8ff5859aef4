package observability

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_NilSafe(t *testing.T) {
	var c *Collector

	assert.NotPanics(t, func() {
		c.ObserveBoundaryFetch("zcta", OutcomeSuccess, time.Second)
		c.ObserveGeocode(OutcomeNotFound)
		c.ObserveSuperseded()
		c.ObserveSelection("radius")
		c.ObserveLead("lead", OutcomeSuccess)
		c.SetActiveSessions(3)
	})
}

func TestCollector_CountsAndReregister(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.NoError(t, err)

	c.ObserveBoundaryFetch("zcta", OutcomeSuccess, 200*time.Millisecond)
	c.ObserveBoundaryFetch("zcta", OutcomeCacheHit, 0)
	c.ObserveSuperseded()

	assert.Equal(t, 1.0, testutil.ToFloat64(c.BoundaryFetches.WithLabelValues("zcta", OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.SupersededResults))

	// Повторная регистрация возвращает уже существующие метрики
	again, err := NewCollector(reg)
	require.NoError(t, err)
	again.ObserveSuperseded()
	assert.Equal(t, 2.0, testutil.ToFloat64(c.SupersededResults))
}

func TestCollector_GinMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.NoError(t, err)

	router := gin.New()
	router.Use(c.GinMiddleware())
	router.GET("/ping", func(ctx *gin.Context) { ctx.Status(http.StatusNoContent) })
	router.GET("/metrics", gin.WrapH(c.Handler()))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), `market_http_requests_total{code="204",method="GET",route="/ping"} 1`))
}
