package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/market_area_service/internal/config"
	"github.com/shenikar/market_area_service/internal/geocoder"
	"github.com/shenikar/market_area_service/internal/mapview"
	"github.com/shenikar/market_area_service/internal/models"
	"github.com/shenikar/market_area_service/internal/service"
)

// Сообщения, которые виджет показывает пользователю как есть
const (
	msgAddressNotFound    = "Address not found. Try a city name or zip code."
	msgGeocodeFailed      = "Failed to locate address. Please try again."
	msgLeadNotConfigured  = "Lead endpoint is not configured yet."
	msgLeadDeliveryFailed = "Something went wrong sending your one-pager. Please try again."
	msgLeadNameEmail      = "Please enter your name and work email."
	msgLeadConsent        = "Please confirm you consent to be contacted."
	msgLeadCallbackTime   = "Please select the best time to call you back."
	msgLeadInvalidEmail   = "Please enter a valid email address."
)

type Handler struct {
	sessionService service.SessionService
	logger         *logrus.Logger
	validate       *validator.Validate
	cfg            *config.Config
}

func NewHandler(sessionService service.SessionService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		sessionService: sessionService,
		logger:         logger,
		validate:       validator.New(),
		cfg:            cfg,
	}
}

// @Summary Open a selection session
// @Description Open a market area selection session. Omitted fields fall back to Virginia Beach, 10 miles, ZCTA.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param session body CreateSessionRequest false "Initial center, radius and boundary type"
// @Success 201 {object} SessionResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sessions [post]
func (h *Handler) createSession(c *gin.Context) {
	var input CreateSessionRequest
	log := h.logger.WithField("method", "createSession")

	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			log.WithError(err).Warn("Failed to bind JSON")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.sessionService.CreateSession(c.Request.Context(), DTOToSessionParams(input))
	if err != nil {
		h.writeError(c, log, err, "")
		return
	}
	c.JSON(http.StatusCreated, StateToSessionResponse(state))
}

// @Summary Get session state
// @Description Get the current center, radius, boundary type and selection of a session
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} map[string]string "Invalid session ID"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{id} [get]
func (h *Handler) getSession(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getSession").WithField("id", id)

	state, err := h.sessionService.GetSession(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, log, err, "")
		return
	}
	c.JSON(http.StatusOK, StateToSessionResponse(state))
}

// @Summary Close a session
// @Description Stop the session's pending boundary fetches and forget it
// @Tags Sessions
// @Param id path string true "Session ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid session ID"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{id} [delete]
func (h *Handler) deleteSession(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteSession").WithField("id", id)

	if err := h.sessionService.CloseSession(c.Request.Context(), id); err != nil {
		h.writeError(c, log, err, "")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Geocode an address
// @Description Move the session center to the first match for a free-text address or ZIP code. An empty query changes nothing.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param query body GeocodeRequest true "Address or ZIP code"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Session or address not found"
// @Failure 502 {object} map[string]string "Geocoding service failure"
// @Router /sessions/{id}/geocode [post]
func (h *Handler) geocode(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "geocode").WithField("id", id)

	var input GeocodeRequest
	if !h.bind(c, log, &input) {
		return
	}

	state, err := h.sessionService.Geocode(c.Request.Context(), id, input.Query)
	if err != nil {
		h.writeError(c, log, err, "")
		return
	}
	c.JSON(http.StatusOK, StateToSessionResponse(state))
}

// @Summary Place the center
// @Description Move the session center to a clicked map point
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param point body PlaceRequest true "Clicked point"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{id}/place [post]
func (h *Handler) place(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "place").WithField("id", id)

	var input PlaceRequest
	if !h.bind(c, log, &input) {
		return
	}

	center := models.Coordinate{Lat: *input.Latitude, Lng: *input.Longitude}
	state, err := h.sessionService.PlaceCenter(c.Request.Context(), id, center)
	if err != nil {
		h.writeError(c, log, err, "")
		return
	}
	c.JSON(http.StatusOK, StateToSessionResponse(state))
}

// @Summary Change the radius
// @Description Change the selection radius. Accepted values are 5, 10, 15, 25 and 50 miles.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param radius body RadiusRequest true "Radius in miles"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} map[string]string "Invalid request body or unsupported radius"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{id}/radius [put]
func (h *Handler) setRadius(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "setRadius").WithField("id", id)

	var input RadiusRequest
	if !h.bind(c, log, &input) {
		return
	}

	state, err := h.sessionService.SetRadius(c.Request.Context(), id, input.RadiusMiles)
	if err != nil {
		h.writeError(c, log, err, "")
		return
	}
	c.JSON(http.StatusOK, StateToSessionResponse(state))
}

// @Summary Change the boundary type
// @Description Switch the filled overlay between none, zcta, county, place, tract and msa
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param boundary body BoundaryTypeRequest true "Boundary type"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{id}/boundary-type [put]
func (h *Handler) setBoundaryType(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "setBoundaryType").WithField("id", id)

	var input BoundaryTypeRequest
	if !h.bind(c, log, &input) {
		return
	}

	state, err := h.sessionService.SetBoundaryType(c.Request.Context(), id, models.BoundaryType(input.BoundaryType))
	if err != nil {
		h.writeError(c, log, err, "")
		return
	}
	c.JSON(http.StatusOK, StateToSessionResponse(state))
}

// @Summary Get map render instructions
// @Description Get the view center, zoom, radius circle, center marker and the boundary overlay if one is loaded
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} mapview.View
// @Failure 400 {object} map[string]string "Invalid session ID"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{id}/map [get]
func (h *Handler) mapView(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "mapView").WithField("id", id)

	view, err := h.sessionService.MapView(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, log, err, "")
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Submit a lead or quote request
// @Description Submit contact details together with the session's market center, radius and boundary selection
// @Tags Leads
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param lead body LeadRequest true "Lead details"
// @Success 202 {object} LeadResponse
// @Failure 400 {object} map[string]string "Invalid request body or missing contact fields"
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 502 {object} map[string]string "Lead delivery failed"
// @Failure 503 {object} map[string]string "Lead endpoint is not configured"
// @Router /sessions/{id}/leads [post]
func (h *Handler) submitLead(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "submitLead").WithField("id", id)

	var input LeadRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": leadValidationMessage(err)})
		return
	}

	lead, err := h.sessionService.SubmitLead(c.Request.Context(), id, DTOToLeadModel(input))
	if err != nil {
		h.writeError(c, log, err, msgLeadDeliveryFailed)
		return
	}
	c.JSON(http.StatusAccepted, ModelToLeadResponse(lead))
}

// @Summary List boundary types
// @Description List the supported boundary types and radius options
// @Tags System
// @Produce json
// @Success 200 {object} BoundaryTypesResponse
// @Router /boundary-types [get]
func (h *Handler) boundaryTypes(c *gin.Context) {
	c.JSON(http.StatusOK, BoundaryTypesResponse{
		BoundaryTypes: models.BoundaryTypes(),
		RadiusOptions: models.RadiusOptions,
		Default:       models.BoundaryType(h.cfg.DefaultBoundaryType),
	})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session ID"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) bind(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// writeError переводит ошибку сервиса в HTTP-ответ. fallback, если задан,
// заменяет сообщение о внутренней ошибке.
func (h *Handler) writeError(c *gin.Context, log *logrus.Entry, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		log.WithError(err).Info("Session not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
	case errors.Is(err, service.ErrAddressNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": msgAddressNotFound})
	case errors.Is(err, geocoder.ErrNetwork):
		log.WithError(err).Warn("Geocoding failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": msgGeocodeFailed})
	case errors.Is(err, models.ErrInvalidCoordinate),
		errors.Is(err, models.ErrInvalidRadius),
		errors.Is(err, models.ErrInvalidBoundaryType),
		errors.Is(err, mapview.ErrUnsupportedRadius):
		log.WithError(err).Warn("Rejected input")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrSubmissionNotConfigured):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": msgLeadNotConfigured})
	case fallback != "":
		log.WithError(err).Error("Request failed in service")
		c.JSON(http.StatusBadGateway, gin.H{"error": fallback})
	default:
		log.WithError(err).Error("Request failed in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// leadValidationMessage возвращает подсказку для первого непрошедшего поля заявки
func leadValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	switch fe.Field() {
	case "FullName":
		return msgLeadNameEmail
	case "WorkEmail":
		if fe.Tag() == "email" {
			return msgLeadInvalidEmail
		}
		return msgLeadNameEmail
	case "ContactConsent":
		return msgLeadConsent
	case "CallbackTime":
		return msgLeadCallbackTime
	}
	return fe.Error()
}
