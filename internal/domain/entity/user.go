package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Roles válidos para User.
const (
	RoleStudent = "student"
	RoleCompany = "company" // representante de una empresa (CompanyID obligatorio)
	RoleAdmin   = "admin"
)

// User representa una cuenta de la plataforma. Los estudiantes rellenan el perfil;
// los representantes de empresa quedan vinculados a su Company.
type User struct {
	ID                string
	CompanyID         *string
	Email             string
	PasswordHash      string // bcrypt hash, nunca plano en dominio después de persistir
	Name              string
	Role              string
	Status            string // active, inactive, suspended
	Profile           UserProfile
	TrustScore        int
	ProfileCompletion int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// UserProfile campos opcionales del perfil del estudiante.
// Punteros nil = campo sin rellenar; un false o un 0 explícito cuentan como rellenados.
type UserProfile struct {
	Nationality           string
	Gender                string
	BirthDate             *time.Time
	PreferredLanguage     string
	SpokenLanguages       []string
	CurrentCountry        string
	CurrentCity           string
	HomeUniversity        string
	DestinationUniversity string
	StudyField            string
	StudyLevel            string
	StudyStartDate        *time.Time
	StudyEndDate          *time.Time
	HousingType           string
	MonthlyRent           *decimal.Decimal
	IsRenting             *bool
	HasLivedAbroad        *bool
}

// UserStats contadores de comportamiento usados por el trust score de usuario.
type UserStats struct {
	ReviewCount  int
	HelpfulVotes int
}

// IsValidRole valida un rol.
func IsValidRole(r string) bool {
	switch r {
	case RoleStudent, RoleCompany, RoleAdmin:
		return true
	}
	return false
}
