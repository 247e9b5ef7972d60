package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCompanyRequest entrada para crear una empresa (admin).
type CreateCompanyRequest struct {
	Name         string   `json:"name" validate:"required,min=1,max=255"`
	Email        string   `json:"email" validate:"omitempty,email"`
	Description  string   `json:"description"`
	TaxID        string   `json:"tax_id"`
	Website      string   `json:"website"`
	Phone        string   `json:"phone"`
	Address      string   `json:"address"`
	City         string   `json:"city"`
	Country      string   `json:"country"`
	HousingUnits *int     `json:"housing_units"`
	Capacity     *int     `json:"capacity"`
	PriceRange   string   `json:"price_range"`
	Amenities    []string `json:"amenities"`
}

// UpdateCompanyRequest actualización parcial del perfil de empresa (campos opcionales).
type UpdateCompanyRequest struct {
	Name         *string   `json:"name" validate:"omitempty,min=1,max=255"`
	Email        *string   `json:"email" validate:"omitempty,email"`
	Description  *string   `json:"description"`
	TaxID        *string   `json:"tax_id"`
	Website      *string   `json:"website"`
	Phone        *string   `json:"phone"`
	Address      *string   `json:"address"`
	City         *string   `json:"city"`
	Country      *string   `json:"country"`
	HousingUnits *int      `json:"housing_units"`
	Capacity     *int      `json:"capacity"`
	PriceRange   *string   `json:"price_range"`
	Amenities    *[]string `json:"amenities"`
}

// SetVerificationRequest cambio de estado de verificación (admin).
type SetVerificationRequest struct {
	Status string `json:"status" validate:"required,oneof=pending verified rejected"`
}

// CompanyListRequest filtros del listado público.
type CompanyListRequest struct {
	VerificationStatus string `query:"verification_status"`
	City               string `query:"city"`
	PageRequest
}

// CompanyResponse salida de una empresa (sin datos sensibles).
type CompanyResponse struct {
	ID                   string           `json:"id"`
	Name                 string           `json:"name"`
	Email                string           `json:"email"`
	Description          string           `json:"description"`
	TaxID                string           `json:"tax_id"`
	Website              string           `json:"website"`
	Phone                string           `json:"phone"`
	Address              string           `json:"address"`
	City                 string           `json:"city"`
	Country              string           `json:"country"`
	HousingUnits         *int             `json:"housing_units"`
	Capacity             *int             `json:"capacity"`
	PriceRange           string           `json:"price_range"`
	Amenities            []string         `json:"amenities"`
	VerificationStatus   string           `json:"verification_status"`
	ResponseRate         decimal.Decimal  `json:"response_rate"`
	AvgResponseTimeHours *decimal.Decimal `json:"avg_response_time_hours"`
	AverageRating        decimal.Decimal  `json:"average_rating"`
	ReviewCount          int              `json:"review_count"`
	TrustScore           int              `json:"trust_score"`
	DataCompleteness     int              `json:"data_completeness"`
	Status               string           `json:"status"`
	CreatedAt            time.Time        `json:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at"`
}

// CreateCompanyResponse empresa creada más avisos no fatales (p. ej. alias oficial omitido).
type CreateCompanyResponse struct {
	Company  CompanyResponse `json:"company"`
	Warnings []Warning       `json:"warnings,omitempty"`
}

// CompanyListResponse lista paginada de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
