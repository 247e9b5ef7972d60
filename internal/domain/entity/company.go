package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de verificación de una empresa (deben coincidir con el CHECK de companies.verification_status).
const (
	VerificationPending  = "pending"
	VerificationVerified = "verified"
	VerificationRejected = "rejected"
)

// Company representa un proveedor de alojamiento o institución que recibe reseñas.
// Los campos de perfil opcionales alimentan el porcentaje de completitud (data_completeness).
type Company struct {
	ID                   string
	Name                 string
	Email                string
	Description          string
	TaxID                string
	Website              string
	Phone                string
	Address              string
	City                 string
	Country              string
	HousingUnits         *int
	Capacity             *int
	PriceRange           string
	Amenities            []string
	VerificationStatus   string
	ResponseRate         decimal.Decimal  // 0..1
	AvgResponseTimeHours *decimal.Decimal // nil = sin respuestas todavía
	AverageRating        decimal.Decimal  // 0..5
	ReviewCount          int
	TrustScore           int
	DataCompleteness     int
	Status               string // active, suspended, inactive
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// IsVerified informa si la empresa pasó la verificación del admin.
func (c *Company) IsVerified() bool {
	return c.VerificationStatus == VerificationVerified
}

// CompanyPublic atributos públicos de una empresa que se adjuntan a los resultados de búsqueda.
type CompanyPublic struct {
	ID                 string
	Name               string
	VerificationStatus string
	AverageRating      decimal.Decimal
	ReviewCount        int
}

// CompanyStats contadores de comportamiento usados por el trust score de empresa.
type CompanyStats struct {
	ReviewCount             int
	AverageRating           decimal.Decimal
	ResponseRate            decimal.Decimal
	AvgResponseTimeHours    *decimal.Decimal
	VerifiedRepresentatives int
}

// IsValidVerificationStatus valida un estado de verificación.
func IsValidVerificationStatus(s string) bool {
	switch s {
	case VerificationPending, VerificationVerified, VerificationRejected:
		return true
	}
	return false
}
