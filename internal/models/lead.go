package models

import (
	"time"

	"github.com/google/uuid"
)

// Источники заявок
const (
	LeadKindLead  = "lead"
	LeadKindQuote = "quote"
)

// Lead - заявка на расчет/звонок вместе с выбранным рынком
type Lead struct {
	ID             uuid.UUID         `json:"id"`
	Kind           string            `json:"kind"`
	FullName       string            `json:"full_name"`
	WorkEmail      string            `json:"work_email"`
	Company        string            `json:"company"`
	Phone          string            `json:"phone"`
	CallbackTime   string            `json:"callback_time"`
	BusinessName   string            `json:"business_name"`
	ContactName    string            `json:"contact_name"`
	ContactPhone   string            `json:"contact_phone"`
	ContactConsent bool              `json:"contact_consent"`
	Source         string            `json:"source"`
	AudienceType   string            `json:"audience_type"`
	Center         *Coordinate       `json:"center,omitempty"`
	RadiusMiles    float64           `json:"radius_miles"`
	Selection      BoundarySelection `json:"selection"`
	SubmittedAt    time.Time         `json:"submitted_at"`
}
