package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una sugerencia de alias. Pending es el único estado no terminal.
const (
	SuggestionStatusPending  = "pending"
	SuggestionStatusApproved = "approved"
	SuggestionStatusRejected = "rejected"
	SuggestionStatusMerged   = "merged"
)

// AliasSuggestion es una propuesta pública de alias que espera revisión de un admin.
type AliasSuggestion struct {
	ID                 string
	SuggestedName      string
	NormalizedName     string
	SubmittedBy        *string // nil = anónimo
	Context            string
	CandidateCompanyID *string
	ConfidenceScore    decimal.Decimal // 0.00 – 1.00
	Status             string
	ReviewedBy         *string
	ReviewedAt         *time.Time
	AdminNotes         string
	CreatedAt          time.Time
}

// IsPending informa si la sugerencia todavía admite revisión.
func (s *AliasSuggestion) IsPending() bool {
	return s.Status == SuggestionStatusPending
}

// IsValidSuggestionStatus valida un estado contra el catálogo.
func IsValidSuggestionStatus(s string) bool {
	switch s {
	case SuggestionStatusPending, SuggestionStatusApproved, SuggestionStatusRejected, SuggestionStatusMerged:
		return true
	}
	return false
}
