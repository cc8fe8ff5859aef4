package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/market_area_service/internal/config"
	"github.com/shenikar/market_area_service/internal/geocoder"
	"github.com/shenikar/market_area_service/internal/mapview"
	"github.com/shenikar/market_area_service/internal/models"
	"github.com/shenikar/market_area_service/internal/selection"
	"github.com/shenikar/market_area_service/internal/service"
	"github.com/shenikar/market_area_service/internal/service/mocks"
	"github.com/shenikar/market_area_service/internal/webhook"
)

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*Handler, *mocks.MockSessionService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockSessionService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{DefaultBoundaryType: "zcta"}

	handler := NewHandler(mockService, logger, cfg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp["error"]
}

func sampleState(id uuid.UUID) *service.SessionState {
	return &service.SessionState{
		ID:        id,
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		State: selection.State{
			Center:       models.DefaultCenter,
			Label:        "Virginia Beach",
			RadiusMiles:  10,
			BoundaryType: models.BoundaryZcta,
			Selection:    models.NewBoundarySelection(models.BoundaryZcta, []string{"23451", "23452"}),
		},
	}
}

func TestHealthCheck(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestBoundaryTypes(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/boundary-types", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp BoundaryTypesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.BoundaryTypes(), resp.BoundaryTypes)
	assert.Equal(t, models.RadiusOptions, resp.RadiusOptions)
	assert.Equal(t, models.BoundaryZcta, resp.Default)
}

func TestCreateSession_Defaults(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	id := uuid.New()

	// Ожидания: пустое тело - все параметры по умолчанию
	mockService.EXPECT().
		CreateSession(gomock.Any(), service.CreateSessionParams{}).
		Return(sampleState(id), nil)

	// Действие
	w := makeRequest(router, http.MethodPost, "/api/v1/sessions", nil)

	// Проверки
	require.Equal(t, http.StatusCreated, w.Code)
	var resp SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, id, resp.ID)
	assert.Equal(t, "zcta", resp.BoundaryType)
	assert.Equal(t, 36.8529, resp.Center.Latitude)
	assert.Equal(t, []string{"23451", "23452"}, resp.Selection.IDs)
	assert.Equal(t, 2, resp.Selection.Count)
}

func TestCreateSession_WithParams(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	lat, lng := 40.7128, -74.006
	reqBody := CreateSessionRequest{
		Latitude:     &lat,
		Longitude:    &lng,
		Label:        "  New York  ",
		RadiusMiles:  25,
		BoundaryType: "county",
	}
	expected := service.CreateSessionParams{
		Center:       &models.Coordinate{Lat: lat, Lng: lng},
		Label:        "New York",
		RadiusMiles:  25,
		BoundaryType: models.BoundaryCounty,
	}

	mockService.EXPECT().CreateSession(gomock.Any(), expected).Return(sampleState(uuid.New()), nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/sessions", jsonBody(t, reqBody))

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateSession_ValidationError(t *testing.T) {
	lat := 95.0
	lng := 10.0
	cases := map[string]any{
		"latitude out of range": CreateSessionRequest{Latitude: &lat, Longitude: &lng},
		"longitude missing":     map[string]any{"latitude": 10.0},
		"unknown boundary type": CreateSessionRequest{BoundaryType: "state"},
		"negative radius":       CreateSessionRequest{RadiusMiles: -5},
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, router := newTestHandler(t)

			w := makeRequest(router, http.MethodPost, "/api/v1/sessions", jsonBody(t, body))

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestCreateSession_InvalidJSON(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodPost, "/api/v1/sessions", strings.NewReader("{invalid"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid request body", errorMessage(t, w))
}

func TestCreateSession_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(nil, errors.New("db is down"))

	w := makeRequest(router, http.MethodPost, "/api/v1/sessions", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", errorMessage(t, w))
}

func TestGetSession(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	id := uuid.New()

	mockService.EXPECT().GetSession(gomock.Any(), id).Return(sampleState(id), nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/sessions/"+id.String(), nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Virginia Beach", resp.Label)
}

func TestGetSession_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	id := uuid.New()

	mockService.EXPECT().
		GetSession(gomock.Any(), id).
		Return(nil, fmt.Errorf("repository: %w", service.ErrSessionNotFound))

	w := makeRequest(router, http.MethodGet, "/api/v1/sessions/"+id.String(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "session not found", errorMessage(t, w))
}

func TestGetSession_InvalidID(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/sessions/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid session ID", errorMessage(t, w))
}

func TestDeleteSession(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	id := uuid.New()

	mockService.EXPECT().CloseSession(gomock.Any(), id).Return(nil)

	w := makeRequest(router, http.MethodDelete, "/api/v1/sessions/"+id.String(), nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestGeocode(t *testing.T) {
	id := uuid.New()
	url := "/api/v1/sessions/" + id.String() + "/geocode"

	t.Run("success", func(t *testing.T) {
		_, mockService, router := newTestHandler(t)
		state := sampleState(id)
		state.Label = "Norfolk, Virginia"

		mockService.EXPECT().Geocode(gomock.Any(), id, "Norfolk").Return(state, nil)

		w := makeRequest(router, http.MethodPost, url, jsonBody(t, GeocodeRequest{Query: "Norfolk"}))

		require.Equal(t, http.StatusOK, w.Code)
		var resp SessionResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Norfolk, Virginia", resp.Label)
	})

	t.Run("address not found", func(t *testing.T) {
		_, mockService, router := newTestHandler(t)

		mockService.EXPECT().
			Geocode(gomock.Any(), id, "zzzz").
			Return(nil, fmt.Errorf("service: %w: %w", service.ErrAddressNotFound, geocoder.ErrNotFound))

		w := makeRequest(router, http.MethodPost, url, jsonBody(t, GeocodeRequest{Query: "zzzz"}))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, msgAddressNotFound, errorMessage(t, w))
	})

	t.Run("network failure", func(t *testing.T) {
		_, mockService, router := newTestHandler(t)

		mockService.EXPECT().
			Geocode(gomock.Any(), id, "Norfolk").
			Return(nil, fmt.Errorf("service: %w", geocoder.ErrNetwork))

		w := makeRequest(router, http.MethodPost, url, jsonBody(t, GeocodeRequest{Query: "Norfolk"}))

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Equal(t, msgGeocodeFailed, errorMessage(t, w))
	})
}

func TestPlace(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	id := uuid.New()
	lat, lng := 36.9, -76.1

	mockService.EXPECT().
		PlaceCenter(gomock.Any(), id, models.Coordinate{Lat: lat, Lng: lng}).
		Return(sampleState(id), nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/sessions/"+id.String()+"/place",
		jsonBody(t, PlaceRequest{Latitude: &lat, Longitude: &lng}))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPlace_MissingCoordinate(t *testing.T) {
	_, _, router := newTestHandler(t)
	lat := 36.9

	w := makeRequest(router, http.MethodPost, "/api/v1/sessions/"+uuid.NewString()+"/place",
		jsonBody(t, PlaceRequest{Latitude: &lat}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetRadius(t *testing.T) {
	id := uuid.New()
	url := "/api/v1/sessions/" + id.String() + "/radius"

	t.Run("success", func(t *testing.T) {
		_, mockService, router := newTestHandler(t)

		mockService.EXPECT().SetRadius(gomock.Any(), id, 25.0).Return(sampleState(id), nil)

		w := makeRequest(router, http.MethodPut, url, jsonBody(t, RadiusRequest{RadiusMiles: 25}))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unsupported radius", func(t *testing.T) {
		_, mockService, router := newTestHandler(t)

		mockService.EXPECT().
			SetRadius(gomock.Any(), id, 7.0).
			Return(nil, fmt.Errorf("service: %w: 7", mapview.ErrUnsupportedRadius))

		w := makeRequest(router, http.MethodPut, url, jsonBody(t, RadiusRequest{RadiusMiles: 7}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("zero radius", func(t *testing.T) {
		_, _, router := newTestHandler(t)

		w := makeRequest(router, http.MethodPut, url, jsonBody(t, RadiusRequest{}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSetBoundaryType(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	id := uuid.New()
	url := "/api/v1/sessions/" + id.String() + "/boundary-type"

	mockService.EXPECT().SetBoundaryType(gomock.Any(), id, models.BoundaryTract).Return(sampleState(id), nil)

	w := makeRequest(router, http.MethodPut, url, jsonBody(t, BoundaryTypeRequest{BoundaryType: "tract"}))
	assert.Equal(t, http.StatusOK, w.Code)

	w = makeRequest(router, http.MethodPut, url, jsonBody(t, BoundaryTypeRequest{BoundaryType: "state"}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMapView(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	id := uuid.New()
	view := mapview.Render(sampleState(id).State)

	mockService.EXPECT().MapView(gomock.Any(), id).Return(&view, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/sessions/"+id.String()+"/map", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.EqualValues(t, 11, resp["zoom"])
	assert.Equal(t, mapview.TileURL, resp["tiles"].(map[string]any)["url"])
	assert.NotContains(t, resp, "overlay")
}

func validLead() LeadRequest {
	return LeadRequest{
		Kind:           "lead",
		FullName:       "Jane Doe",
		WorkEmail:      "jane@example.com",
		Company:        "Acme",
		CallbackTime:   "morning",
		ContactConsent: true,
		Source:         "map",
	}
}

func TestSubmitLead_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	id := uuid.New()
	leadID := uuid.New()
	submittedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mockService.EXPECT().
		SubmitLead(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ any, _ uuid.UUID, lead *models.Lead) (*models.Lead, error) {
			assert.Equal(t, "Jane Doe", lead.FullName)
			assert.True(t, lead.ContactConsent)
			lead.ID = leadID
			lead.SubmittedAt = submittedAt
			lead.Selection = models.NewBoundarySelection(models.BoundaryZcta, []string{"23451"})
			return lead, nil
		})

	w := makeRequest(router, http.MethodPost, "/api/v1/sessions/"+id.String()+"/leads", jsonBody(t, validLead()))

	require.Equal(t, http.StatusAccepted, w.Code)
	var resp LeadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, leadID, resp.ID)
	assert.Equal(t, "lead", resp.Kind)
	assert.Equal(t, []string{"23451"}, resp.Selection.IDs)
}

func TestSubmitLead_QuoteNeedsNoContactFields(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	id := uuid.New()

	mockService.EXPECT().
		SubmitLead(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ any, _ uuid.UUID, lead *models.Lead) (*models.Lead, error) {
			return lead, nil
		})

	w := makeRequest(router, http.MethodPost, "/api/v1/sessions/"+id.String()+"/leads",
		jsonBody(t, LeadRequest{Kind: "quote", BusinessName: "Acme"}))

	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestSubmitLead_ValidationMessages(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*LeadRequest)
		message string
	}{
		{"missing name", func(r *LeadRequest) { r.FullName = "" }, msgLeadNameEmail},
		{"missing email", func(r *LeadRequest) { r.WorkEmail = "" }, msgLeadNameEmail},
		{"invalid email", func(r *LeadRequest) { r.WorkEmail = "jane" }, msgLeadInvalidEmail},
		{"missing callback time", func(r *LeadRequest) { r.CallbackTime = "" }, msgLeadCallbackTime},
		{"no consent", func(r *LeadRequest) { r.ContactConsent = false }, msgLeadConsent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, router := newTestHandler(t)
			req := validLead()
			tc.mutate(&req)

			w := makeRequest(router, http.MethodPost, "/api/v1/sessions/"+uuid.NewString()+"/leads", jsonBody(t, req))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tc.message, errorMessage(t, w))
		})
	}
}

func TestSubmitLead_ServiceErrors(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"not configured", service.ErrSubmissionNotConfigured, http.StatusServiceUnavailable, msgLeadNotConfigured},
		{"delivery failed", fmt.Errorf("webhook: %w", webhook.ErrDeliveryFailed), http.StatusBadGateway, msgLeadDeliveryFailed},
		{"session not found", service.ErrSessionNotFound, http.StatusNotFound, "session not found"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, mockService, router := newTestHandler(t)
			id := uuid.New()

			mockService.EXPECT().SubmitLead(gomock.Any(), id, gomock.Any()).Return(nil, tc.err)

			w := makeRequest(router, http.MethodPost, "/api/v1/sessions/"+id.String()+"/leads", jsonBody(t, validLead()))

			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, tc.message, errorMessage(t, w))
		})
	}
}
