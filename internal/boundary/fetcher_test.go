package boundary

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/market_area_service/internal/models"
)

var virginiaBeach = models.Coordinate{Lat: 36.8529, Lng: -75.9780}

// featureDoc собирает FeatureCollection с квадратным полигоном на каждый идентификатор
func featureDoc(t *testing.T, field string, ids ...any) []byte {
	t.Helper()
	features := make([]map[string]any, 0, len(ids))
	for i, id := range ids {
		x := -76.0 + float64(i)*0.1
		props := map[string]any{"BASENAME": "area"}
		if id != nil {
			props[field] = id
		}
		features = append(features, map[string]any{
			"type":       "Feature",
			"id":         i + 1,
			"properties": props,
			"geometry": map[string]any{
				"type":        "Polygon",
				"coordinates": [][][]float64{{{x, 36.8}, {x + 0.1, 36.8}, {x + 0.1, 36.9}, {x, 36.9}, {x, 36.8}}},
			},
		})
	}
	data, err := json.Marshal(map[string]any{"type": "FeatureCollection", "features": features})
	require.NoError(t, err)
	return data
}

// newTestServer возвращает сервер с фиксированным ответом и счетчиком запросов
func newTestServer(t *testing.T, status int, body []byte) (*httptest.Server, *int32, *sync.Map) {
	t.Helper()
	var calls int32
	var lastQuery sync.Map
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		lastQuery.Store("path", r.URL.Path)
		lastQuery.Store("query", r.URL.Query())
		w.WriteHeader(status)
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv, &calls, &lastQuery
}

func newTestClient(srv *httptest.Server, opts ...Option) *Client {
	base := []Option{WithBaseURL(srv.URL), WithHTTPClient(srv.Client()), WithRateLimit(0)}
	return NewClient(append(base, opts...)...)
}

func TestFetchBoundaries_ZctaScenario(t *testing.T) {
	srv, calls, last := newTestServer(t, http.StatusOK, featureDoc(t, "ZCTA5", "23451", "23451", "23452"))
	client := newTestClient(srv)

	result, err := client.FetchBoundaries(context.Background(), virginiaBeach, 10, models.BoundaryZcta)

	require.NoError(t, err)
	assert.Equal(t, []string{"23451", "23451", "23452"}, result.IDs)
	assert.Equal(t, 3, result.Features.Len())
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))

	selection := models.NewBoundarySelection(models.BoundaryZcta, result.IDs)
	assert.Equal(t, "zcta", selection.Type)
	assert.Equal(t, 3, selection.Count)

	path, _ := last.Load("path")
	assert.Equal(t, "/PUMA_TAD_TAZ_UGA_ZCTA/MapServer/1/query", path)
	q, _ := last.Load("query")
	query := q.(url.Values)
	assert.Equal(t, []string{"geojson"}, query["f"])
	assert.Equal(t, []string{"1=1"}, query["where"])
	assert.Equal(t, []string{"true"}, query["returnGeometry"])
	assert.Equal(t, []string{"ZCTA5,BASENAME"}, query["outFields"])
	assert.Equal(t, []string{"esriGeometryPoint"}, query["geometryType"])
	assert.Equal(t, []string{"4326"}, query["inSR"])
	assert.Equal(t, []string{"4326"}, query["outSR"])
	assert.Equal(t, []string{"esriSpatialRelIntersects"}, query["spatialRel"])
	assert.Equal(t, []string{"-75.978,36.8529"}, query["geometry"])
	assert.Equal(t, []string{formatFloat(10 * models.MetersPerMile)}, query["distance"])
	assert.Equal(t, []string{"esriSRUnit_Meter"}, query["units"])
}

func TestFetchBoundaries_NoneSkipsNetwork(t *testing.T) {
	srv, calls, _ := newTestServer(t, http.StatusOK, featureDoc(t, "ZCTA5", "23451"))
	client := newTestClient(srv)

	result, err := client.FetchBoundaries(context.Background(), virginiaBeach, 10, models.BoundaryNone)

	require.NoError(t, err)
	assert.Empty(t, result.IDs)
	assert.Equal(t, 0, result.Features.Len())
	assert.Equal(t, int32(0), atomic.LoadInt32(calls))
}

func TestFetchBoundaries_BlankIDsFiltered(t *testing.T) {
	srv, _, _ := newTestServer(t, http.StatusOK, featureDoc(t, "GEOID", "51810", "", nil, "   ", 0, false, 51710))
	client := newTestClient(srv)

	result, err := client.FetchBoundaries(context.Background(), virginiaBeach, 25, models.BoundaryCounty)

	require.NoError(t, err)
	assert.Equal(t, 7, result.Features.Len())
	assert.Equal(t, []string{"51810", "51710"}, result.IDs)
	assert.Less(t, len(result.IDs), result.Features.Len())
}

func TestFetchBoundaries_Idempotent(t *testing.T) {
	srv, _, _ := newTestServer(t, http.StatusOK, featureDoc(t, "GEOID", "51810001", "51810002"))
	client := newTestClient(srv)

	first, err := client.FetchBoundaries(context.Background(), virginiaBeach, 5, models.BoundaryTract)
	require.NoError(t, err)
	second, err := client.FetchBoundaries(context.Background(), virginiaBeach, 5, models.BoundaryTract)
	require.NoError(t, err)

	assert.Equal(t, first.IDs, second.IDs)
}

func TestFetchBoundaries_HTTPError(t *testing.T) {
	srv, _, _ := newTestServer(t, http.StatusServiceUnavailable, []byte("busy"))
	client := newTestClient(srv)

	_, err := client.FetchBoundaries(context.Background(), virginiaBeach, 10, models.BoundaryPlace)

	require.Error(t, err)
	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusServiceUnavailable, httpErr.StatusCode)
}

func TestFetchBoundaries_InvalidResponses(t *testing.T) {
	cases := map[string]string{
		"not json":          `<html>oops</html>`,
		"wrong type":        `{"type":"Feature","features":[]}`,
		"features missing":  `{"type":"FeatureCollection"}`,
		"features null":     `{"type":"FeatureCollection","features":null}`,
		"features object":   `{"type":"FeatureCollection","features":{}}`,
		"arcgis error body": `{"error":{"code":400,"message":"Invalid or missing input parameters."}}`,
		"bad geometry":      `{"type":"FeatureCollection","features":[{"type":"Feature","properties":{},"geometry":{"type":"Blob","coordinates":1}}]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			srv, _, _ := newTestServer(t, http.StatusOK, []byte(body))
			client := newTestClient(srv)

			_, err := client.FetchBoundaries(context.Background(), virginiaBeach, 10, models.BoundaryMsa)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidResponse)
		})
	}
}

func TestFetchBoundaries_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := srv.URL
	srv.Close()
	client := NewClient(WithBaseURL(baseURL), WithRateLimit(0))

	_, err := client.FetchBoundaries(context.Background(), virginiaBeach, 10, models.BoundaryZcta)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestFetchBoundaries_ValidatesInput(t *testing.T) {
	client := NewClient()

	_, err := client.FetchBoundaries(context.Background(), models.Coordinate{Lat: 91, Lng: 0}, 10, models.BoundaryZcta)
	assert.ErrorIs(t, err, models.ErrInvalidCoordinate)

	_, err = client.FetchBoundaries(context.Background(), virginiaBeach, -1, models.BoundaryZcta)
	assert.ErrorIs(t, err, models.ErrInvalidRadius)

	_, err = client.FetchBoundaries(context.Background(), virginiaBeach, 10, models.BoundaryType("state"))
	assert.ErrorIs(t, err, models.ErrInvalidBoundaryType)
}

func TestFetchBoundaries_ContextCanceledWhileWaiting(t *testing.T) {
	release := make(chan struct{})
	body := featureDoc(t, "ZCTA5", "23451")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })
	client := newTestClient(srv)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.FetchBoundaries(ctx, virginiaBeach, 10, models.BoundaryZcta)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

type memoryCache struct {
	mu    sync.Mutex
	items map[string][]byte
	ttls  map[string]time.Duration
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (m *memoryCache) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.items[key], nil
}

func (m *memoryCache) Set(_ context.Context, key string, payload []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = payload
	m.ttls[key] = ttl
	return nil
}

func TestFetchBoundaries_CacheHit(t *testing.T) {
	srv, calls, _ := newTestServer(t, http.StatusOK, featureDoc(t, "GEOID", "47260"))
	cache := newMemoryCache()
	client := newTestClient(srv, WithCache(cache, time.Minute))

	first, err := client.FetchBoundaries(context.Background(), virginiaBeach, 50, models.BoundaryMsa)
	require.NoError(t, err)
	second, err := client.FetchBoundaries(context.Background(), virginiaBeach, 50, models.BoundaryMsa)
	require.NoError(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
	assert.Equal(t, first.IDs, second.IDs)
	require.Len(t, cache.items, 1)
	for key, ttl := range cache.ttls {
		assert.Contains(t, key, cacheKeyPrefix)
		assert.Equal(t, time.Minute, ttl)
	}
}

func TestFetchBoundaries_InvalidResponseNotCached(t *testing.T) {
	srv, _, _ := newTestServer(t, http.StatusOK, []byte(`{"type":"Feature"}`))
	cache := newMemoryCache()
	client := newTestClient(srv, WithCache(cache, time.Minute))

	_, err := client.FetchBoundaries(context.Background(), virginiaBeach, 10, models.BoundaryZcta)

	require.Error(t, err)
	assert.Empty(t, cache.items)
}

func TestDescriptorFor_AllTypes(t *testing.T) {
	for _, bt := range models.BoundaryTypes() {
		desc, ok := DescriptorFor(bt)
		if bt == models.BoundaryNone {
			assert.False(t, ok)
			continue
		}
		require.True(t, ok, bt)
		assert.NotEmpty(t, desc.IDField)
		assert.Contains(t, desc.OutFields, desc.IDField)
		assert.Contains(t, desc.QueryURL(DefaultBaseURL+"/"), "/TIGERweb/"+desc.Service+"/MapServer/")
	}
}
