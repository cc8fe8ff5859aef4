package v1

import (
	"strings"

	"github.com/shenikar/market_area_service/internal/models"
	"github.com/shenikar/market_area_service/internal/service"
)

// DTOToSessionParams преобразует запрос открытия сессии в параметры сервиса
func DTOToSessionParams(dto CreateSessionRequest) service.CreateSessionParams {
	params := service.CreateSessionParams{
		Label:        strings.TrimSpace(dto.Label),
		RadiusMiles:  dto.RadiusMiles,
		BoundaryType: models.BoundaryType(dto.BoundaryType),
	}
	if dto.Latitude != nil && dto.Longitude != nil {
		params.Center = &models.Coordinate{Lat: *dto.Latitude, Lng: *dto.Longitude}
	}
	return params
}

// DTOToLeadModel преобразует запрос заявки в доменную модель
func DTOToLeadModel(dto LeadRequest) *models.Lead {
	return &models.Lead{
		Kind:           dto.Kind,
		FullName:       strings.TrimSpace(dto.FullName),
		WorkEmail:      strings.TrimSpace(dto.WorkEmail),
		Company:        strings.TrimSpace(dto.Company),
		Phone:          strings.TrimSpace(dto.Phone),
		CallbackTime:   dto.CallbackTime,
		ContactConsent: dto.ContactConsent,
		BusinessName:   strings.TrimSpace(dto.BusinessName),
		ContactName:    strings.TrimSpace(dto.ContactName),
		ContactPhone:   strings.TrimSpace(dto.ContactPhone),
		Source:         dto.Source,
		AudienceType:   dto.AudienceType,
	}
}

// SelectionToResponse преобразует выбор в DTO
func SelectionToResponse(sel models.BoundarySelection) SelectionResponse {
	ids := sel.IDs
	if ids == nil {
		ids = []string{}
	}
	return SelectionResponse{Type: sel.Type, IDs: ids, Count: sel.Count}
}

// StateToSessionResponse преобразует снимок сессии в DTO для ответа
func StateToSessionResponse(state *service.SessionState) *SessionResponse {
	return &SessionResponse{
		ID:           state.ID,
		CreatedAt:    state.CreatedAt,
		Center:       CoordinateResponse{Latitude: state.Center.Lat, Longitude: state.Center.Lng},
		Label:        state.Label,
		RadiusMiles:  state.RadiusMiles,
		BoundaryType: string(state.BoundaryType),
		Loading:      state.Loading,
		Error:        state.Error,
		Selection:    SelectionToResponse(state.Selection),
	}
}

// ModelToLeadResponse преобразует принятую заявку в DTO
func ModelToLeadResponse(lead *models.Lead) *LeadResponse {
	return &LeadResponse{
		ID:          lead.ID,
		Kind:        lead.Kind,
		SubmittedAt: lead.SubmittedAt,
		Selection:   SelectionToResponse(lead.Selection),
	}
}
