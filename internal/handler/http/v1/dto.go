package v1

import (
	"time"

	"github.com/google/uuid"

	"github.com/shenikar/market_area_service/internal/models"
)

// CreateSessionRequest DTO для открытия сессии
// @Description DTO для открытия сессии; пустые поля берутся по умолчанию
type CreateSessionRequest struct {
	Latitude     *float64 `json:"latitude,omitempty" validate:"required_with=Longitude,omitempty,latitude"`
	Longitude    *float64 `json:"longitude,omitempty" validate:"required_with=Latitude,omitempty,longitude"`
	Label        string   `json:"label,omitempty" validate:"max=255"`
	RadiusMiles  float64  `json:"radius_miles,omitempty" validate:"omitempty,gt=0"`
	BoundaryType string   `json:"boundary_type,omitempty" validate:"omitempty,oneof=none zcta county place tract msa"`
}

// GeocodeRequest DTO для поиска адреса; пустой запрос ничего не меняет
// @Description DTO для поиска адреса
type GeocodeRequest struct {
	Query string `json:"query" validate:"max=256"`
}

// PlaceRequest DTO для клика по карте
// @Description DTO для клика по карте
type PlaceRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

// RadiusRequest DTO для смены радиуса
// @Description DTO для смены радиуса (5, 10, 15, 25 или 50 миль)
type RadiusRequest struct {
	RadiusMiles float64 `json:"radius_miles" validate:"required,gt=0"`
}

// BoundaryTypeRequest DTO для смены типа заливки
// @Description DTO для смены типа заливки
type BoundaryTypeRequest struct {
	BoundaryType string `json:"boundary_type" validate:"required,oneof=none zcta county place tract msa"`
}

// LeadRequest DTO для отправки заявки.
// kind=lead - заявка на звонок, kind=quote - запрос расчета.
// @Description DTO для отправки заявки
type LeadRequest struct {
	Kind           string `json:"kind" validate:"required,oneof=lead quote"`
	FullName       string `json:"full_name" validate:"required_if=Kind lead,max=255"`
	WorkEmail      string `json:"work_email" validate:"required_if=Kind lead,omitempty,email"`
	Company        string `json:"company,omitempty" validate:"max=255"`
	Phone          string `json:"phone,omitempty" validate:"max=64"`
	CallbackTime   string `json:"callback_time,omitempty" validate:"required_if=Kind lead,max=64"`
	ContactConsent bool   `json:"contact_consent" validate:"required_if=Kind lead"`
	BusinessName   string `json:"business_name,omitempty" validate:"max=255"`
	ContactName    string `json:"contact_name,omitempty" validate:"max=255"`
	ContactPhone   string `json:"contact_phone,omitempty" validate:"max=64"`
	Source         string `json:"source,omitempty" validate:"max=64"`
	AudienceType   string `json:"audience_type,omitempty" validate:"omitempty,oneof=business consumer"`
}

// CoordinateResponse DTO точки
// @Description DTO точки
type CoordinateResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SelectionResponse DTO итогового выбора
// @Description DTO итогового выбора
type SelectionResponse struct {
	Type  string   `json:"type"`
	IDs   []string `json:"ids"`
	Count int      `json:"count"`
}

// SessionResponse DTO для ответа с состоянием сессии
// @Description DTO для ответа с состоянием сессии
type SessionResponse struct {
	ID           uuid.UUID          `json:"id"`
	CreatedAt    time.Time          `json:"created_at"`
	Center       CoordinateResponse `json:"center"`
	Label        string             `json:"label"`
	RadiusMiles  float64            `json:"radius_miles"`
	BoundaryType string             `json:"boundary_type"`
	Loading      bool               `json:"loading"`
	Error        string             `json:"error,omitempty"`
	Selection    SelectionResponse  `json:"selection"`
}

// LeadResponse DTO для ответа на отправку заявки
// @Description DTO для ответа на отправку заявки
type LeadResponse struct {
	ID          uuid.UUID         `json:"id"`
	Kind        string            `json:"kind"`
	SubmittedAt time.Time         `json:"submitted_at"`
	Selection   SelectionResponse `json:"selection"`
}

// BoundaryTypesResponse DTO со списком типов заливки
// @Description DTO со списком типов заливки и радиусов
type BoundaryTypesResponse struct {
	BoundaryTypes []models.BoundaryType `json:"boundary_types"`
	RadiusOptions []float64             `json:"radius_options"`
	Default       models.BoundaryType   `json:"default"`
}
