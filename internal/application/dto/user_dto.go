package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterRequest entrada para registro (auth). Role vacío = student.
type RegisterRequest struct {
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,min=8"`
	Name      string  `json:"name" validate:"omitempty,max=200"`
	Role      string  `json:"role" validate:"omitempty,oneof=student company"`
	CompanyID *string `json:"company_id" validate:"omitempty,uuid"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserProfileDTO los 17 campos opcionales del perfil del estudiante.
// En escritura solo se aplican los campos presentes en el JSON.
type UserProfileDTO struct {
	Nationality           *string          `json:"nationality"`
	Gender                *string          `json:"gender"`
	BirthDate             *time.Time       `json:"birth_date"`
	PreferredLanguage     *string          `json:"preferred_language"`
	SpokenLanguages       *[]string        `json:"spoken_languages"`
	CurrentCountry        *string          `json:"current_country"`
	CurrentCity           *string          `json:"current_city"`
	HomeUniversity        *string          `json:"home_university"`
	DestinationUniversity *string          `json:"destination_university"`
	StudyField            *string          `json:"study_field"`
	StudyLevel            *string          `json:"study_level"`
	StudyStartDate        *time.Time       `json:"study_start_date"`
	StudyEndDate          *time.Time       `json:"study_end_date"`
	HousingType           *string          `json:"housing_type"`
	MonthlyRent           *decimal.Decimal `json:"monthly_rent"`
	IsRenting             *bool            `json:"is_renting"`
	HasLivedAbroad        *bool            `json:"has_lived_abroad"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID                string         `json:"id"`
	CompanyID         *string        `json:"company_id"`
	Email             string         `json:"email"`
	Name              string         `json:"name"`
	Role              string         `json:"role"`
	Status            string         `json:"status"`
	Profile           UserProfileDTO `json:"profile"`
	TrustScore        int            `json:"trust_score"`
	ProfileCompletion int            `json:"profile_completion"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}
