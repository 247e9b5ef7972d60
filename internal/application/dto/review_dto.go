package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateReviewRequest entrada para publicar una reseña (estudiante).
type CreateReviewRequest struct {
	CompanyID      string           `json:"company_id" validate:"required,uuid"`
	Rating         int              `json:"rating" validate:"required,min=1,max=5"`
	Title          string           `json:"title" validate:"max=255"`
	Content        string           `json:"content" validate:"required"`
	Photos         []string         `json:"photos"`
	CategoryTags   []string         `json:"category_tags"`
	IsVerifiedStay bool             `json:"is_verified_stay"`
	StayStart      *time.Time       `json:"stay_start"`
	StayEnd        *time.Time       `json:"stay_end"`
	MonthlyRent    *decimal.Decimal `json:"monthly_rent"`
	// Análisis de sentimiento externo (0..1), opcional.
	SentimentConsistency *float64 `json:"sentiment_consistency" validate:"omitempty,min=0,max=1"`
}

// ReviewResponse salida de una reseña.
type ReviewResponse struct {
	ID             string           `json:"id"`
	UserID         string           `json:"user_id"`
	CompanyID      string           `json:"company_id"`
	Rating         int              `json:"rating"`
	Title          string           `json:"title"`
	Content        string           `json:"content"`
	Photos         []string         `json:"photos"`
	CategoryTags   []string         `json:"category_tags"`
	IsVerifiedStay bool             `json:"is_verified_stay"`
	StayStart      *time.Time       `json:"stay_start"`
	StayEnd        *time.Time       `json:"stay_end"`
	MonthlyRent    *decimal.Decimal `json:"monthly_rent"`
	QualityScore   int              `json:"quality_score"`
	HelpfulCount   int              `json:"helpful_count"`
	Status         string           `json:"status"`
	CreatedAt      time.Time        `json:"created_at"`
}

// ReviewListResponse lista paginada de reseñas.
type ReviewListResponse struct {
	Items []ReviewResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// HelpfulVoteResponse resultado de votar una reseña como útil.
type HelpfulVoteResponse struct {
	ReviewID string `json:"review_id"`
	Counted  bool   `json:"counted"` // false si el usuario ya había votado
}

// CreateResponseRequest respuesta de la empresa a una reseña.
type CreateResponseRequest struct {
	Content string `json:"content" validate:"required"`
}

// ModerateResponseRequest decisión del admin sobre una respuesta.
type ModerateResponseRequest struct {
	Decision string `json:"decision" validate:"required,oneof=approved rejected"`
}

// ReviewReplyResponse salida de una respuesta de empresa.
type ReviewReplyResponse struct {
	ID          string     `json:"id"`
	ReviewID    string     `json:"review_id"`
	CompanyID   string     `json:"company_id"`
	AuthorID    string     `json:"author_id"`
	Content     string     `json:"content"`
	Status      string     `json:"status"`
	ModeratedBy *string    `json:"moderated_by"`
	ModeratedAt *time.Time `json:"moderated_at"`
	CreatedAt   time.Time  `json:"created_at"`
}
