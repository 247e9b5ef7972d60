package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de moderación compartidos por reseñas y respuestas.
const (
	ModerationPending  = "pending"
	ModerationApproved = "approved"
	ModerationRejected = "rejected"
)

// Review reseña de un estudiante sobre una empresa de alojamiento.
type Review struct {
	ID             string
	UserID         string
	CompanyID      string
	Rating         int // 1..5
	Title          string
	Content        string
	Photos         []string
	CategoryTags   []string
	IsVerifiedStay bool
	StayStart      *time.Time
	StayEnd        *time.Time
	MonthlyRent    *decimal.Decimal
	QualityScore   int
	HelpfulCount   int
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HasDetailedInfo informa si la reseña trae datos concretos de la estancia.
func (r *Review) HasDetailedInfo() bool {
	return r.StayStart != nil && r.StayEnd != nil && r.MonthlyRent != nil
}

// ReviewResponse respuesta de la empresa a una reseña; se publica tras moderación.
type ReviewResponse struct {
	ID          string
	ReviewID    string
	CompanyID   string
	AuthorID    string
	Content     string
	Status      string
	ModeratedBy *string
	ModeratedAt *time.Time
	CreatedAt   time.Time
}

// IsValidModerationDecision valida la decisión de un moderador (solo estados terminales).
func IsValidModerationDecision(s string) bool {
	return s == ModerationApproved || s == ModerationRejected
}
