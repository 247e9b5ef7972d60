package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubmitSuggestionRequest entrada pública para sugerir un alias.
type SubmitSuggestionRequest struct {
	Name               string  `json:"name" validate:"required,min=1,max=255"`
	Context            string  `json:"context"`
	CandidateCompanyID *string `json:"candidate_company_id" validate:"omitempty,uuid"`
}

// ExistingAlias alias activo que ya cubre el nombre sugerido.
type ExistingAlias struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	CompanyID *string `json:"company_id"`
}

// SubmitSuggestionResponse o bien la sugerencia creada, o bien el alias existente a usar.
type SubmitSuggestionResponse struct {
	ShouldUseExisting bool                `json:"should_use_existing"`
	ExistingAlias     *ExistingAlias      `json:"existing_alias,omitempty"`
	Suggestion        *SuggestionResponse `json:"suggestion,omitempty"`
}

// ReviewSuggestionRequest decisión del admin sobre una sugerencia.
type ReviewSuggestionRequest struct {
	Decision    string  `json:"decision" validate:"required,oneof=approved rejected"`
	Notes       string  `json:"notes"`
	CreateAlias bool    `json:"create_alias"`
	CompanyID   *string `json:"company_id" validate:"omitempty,uuid"`
}

// ReviewSuggestionResponse resultado de la revisión.
// AliasSkipped=true si se pidió crear el alias pero ya existía uno activo con ese nombre.
type ReviewSuggestionResponse struct {
	Suggestion   SuggestionResponse `json:"suggestion"`
	AliasCreated *AliasResponse     `json:"alias_created,omitempty"`
	AliasSkipped bool               `json:"alias_skipped"`
}

// SuggestionResponse salida de una sugerencia.
type SuggestionResponse struct {
	ID                 string          `json:"id"`
	SuggestedName      string          `json:"suggested_name"`
	NormalizedName     string          `json:"normalized_name"`
	SubmittedBy        *string         `json:"submitted_by"`
	Context            string          `json:"context"`
	CandidateCompanyID *string         `json:"candidate_company_id"`
	ConfidenceScore    decimal.Decimal `json:"confidence_score"`
	Status             string          `json:"status"`
	ReviewedBy         *string         `json:"reviewed_by"`
	ReviewedAt         *time.Time      `json:"reviewed_at"`
	AdminNotes         string          `json:"admin_notes"`
	CreatedAt          time.Time       `json:"created_at"`
}

// SuggestionListResponse lista paginada de sugerencias.
type SuggestionListResponse struct {
	Items []SuggestionResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
