package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CompanySummary atributos públicos de la empresa dueña de un alias.
type CompanySummary struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	VerificationStatus string          `json:"verification_status"`
	AverageRating      decimal.Decimal `json:"average_rating"`
	ReviewCount        int             `json:"review_count"`
}

// AliasMatchResponse un resultado de la búsqueda por prefijo.
type AliasMatchResponse struct {
	AliasID    string          `json:"alias_id"`
	AliasName  string          `json:"alias_name"`
	Category   string          `json:"category"`
	Priority   int             `json:"priority"`
	UsageCount int64           `json:"usage_count"`
	CompanyID  *string         `json:"company_id"`
	Company    *CompanySummary `json:"company,omitempty"`
}

// AliasSearchResponse respuesta de GET /api/aliases/search.
type AliasSearchResponse struct {
	Query      string               `json:"query"`
	Results    []AliasMatchResponse `json:"results"`
	Count      int                  `json:"count"`
	CanSuggest bool                 `json:"can_suggest"`
}

// ResolveResponse respuesta de GET /api/aliases/resolve.
// Sin coincidencia: CanonicalName es la entrada original y NotFound=true.
type ResolveResponse struct {
	Original       string `json:"original"`
	CanonicalName  string `json:"canonical_name"`
	CompanyID      string `json:"company_id,omitempty"`
	AliasID        string `json:"alias_id,omitempty"`
	ShouldRedirect bool   `json:"should_redirect"`
	NotFound       bool   `json:"not_found"`
}

// CreateAliasRequest entrada para crear un alias (admin).
type CreateAliasRequest struct {
	Name      string  `json:"name" validate:"required,min=1,max=255"`
	CompanyID *string `json:"company_id" validate:"omitempty,uuid"`
	Category  string  `json:"category"`
	Priority  *int    `json:"priority" validate:"omitempty,min=0,max=100"`
}

// UpdateAliasRequest actualización parcial de un alias (campos opcionales).
type UpdateAliasRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=255"`
	Category *string `json:"category"`
	Priority *int    `json:"priority" validate:"omitempty,min=0,max=100"`
	IsActive *bool   `json:"is_active"`
}

// LinkAliasRequest asigna una empresa a un alias.
type LinkAliasRequest struct {
	CompanyID string `json:"company_id" validate:"required,uuid"`
}

// AliasResponse salida de un alias.
type AliasResponse struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	NormalizedName string     `json:"normalized_name"`
	CompanyID      *string    `json:"company_id"`
	Category       string     `json:"category"`
	Priority       int        `json:"priority"`
	IsActive       bool       `json:"is_active"`
	UsageCount     int64      `json:"usage_count"`
	LastUsedAt     *time.Time `json:"last_used_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// AliasListRequest filtro del listado de administración.
type AliasListRequest struct {
	Query        string `query:"q"`
	CompanyID    string `query:"company_id"`
	Category     string `query:"category"`
	IsActive     *bool  `query:"is_active"`
	UnlinkedOnly bool   `query:"unlinked"`
	PageRequest
}

// AliasListResponse lista paginada de alias.
type AliasListResponse struct {
	Items []AliasResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// AliasConflictResponse cuerpo del 409 al duplicar un alias activo.
type AliasConflictResponse struct {
	Code              string  `json:"code"`
	Message           string  `json:"message"`
	ExistingAliasID   string  `json:"existing_alias_id"`
	ExistingCompanyID *string `json:"existing_company_id"`
}

// AliasDashboardResponse respuesta de GET /api/admin/aliases/dashboard.
type AliasDashboardResponse struct {
	ActiveAliases      int             `json:"active_aliases"`
	UnlinkedAliases    int             `json:"unlinked_aliases"`
	PendingSuggestions int             `json:"pending_suggestions"`
	TopUsed            []AliasResponse `json:"top_used"`
}
