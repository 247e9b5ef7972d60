package scoring

import (
	"math"

	"github.com/jhoicas/housing-reviews-api/internal/domain/entity"
)

// trackedField campo opcional del perfil que cuenta para la completitud.
type trackedField[T any] struct {
	Name   string
	Filled func(v *T) bool
}

// userFields los 17 campos del perfil de estudiante, en orden fijo.
var userFields = []trackedField[entity.UserProfile]{
	{"nationality", func(p *entity.UserProfile) bool { return p.Nationality != "" }},
	{"gender", func(p *entity.UserProfile) bool { return p.Gender != "" }},
	{"birth_date", func(p *entity.UserProfile) bool { return p.BirthDate != nil }},
	{"preferred_language", func(p *entity.UserProfile) bool { return p.PreferredLanguage != "" }},
	{"spoken_languages", func(p *entity.UserProfile) bool { return len(p.SpokenLanguages) > 0 }},
	{"current_country", func(p *entity.UserProfile) bool { return p.CurrentCountry != "" }},
	{"current_city", func(p *entity.UserProfile) bool { return p.CurrentCity != "" }},
	{"home_university", func(p *entity.UserProfile) bool { return p.HomeUniversity != "" }},
	{"destination_university", func(p *entity.UserProfile) bool { return p.DestinationUniversity != "" }},
	{"study_field", func(p *entity.UserProfile) bool { return p.StudyField != "" }},
	{"study_level", func(p *entity.UserProfile) bool { return p.StudyLevel != "" }},
	{"study_start_date", func(p *entity.UserProfile) bool { return p.StudyStartDate != nil }},
	{"study_end_date", func(p *entity.UserProfile) bool { return p.StudyEndDate != nil }},
	{"housing_type", func(p *entity.UserProfile) bool { return p.HousingType != "" }},
	{"monthly_rent", func(p *entity.UserProfile) bool { return p.MonthlyRent != nil }},
	{"is_renting", func(p *entity.UserProfile) bool { return p.IsRenting != nil }},
	{"has_lived_abroad", func(p *entity.UserProfile) bool { return p.HasLivedAbroad != nil }},
}

// companyFields los 10 campos del perfil de empresa, en orden fijo.
var companyFields = []trackedField[entity.Company]{
	{"tax_id", func(c *entity.Company) bool { return c.TaxID != "" }},
	{"website", func(c *entity.Company) bool { return c.Website != "" }},
	{"phone", func(c *entity.Company) bool { return c.Phone != "" }},
	{"address", func(c *entity.Company) bool { return c.Address != "" }},
	{"city", func(c *entity.Company) bool { return c.City != "" }},
	{"country", func(c *entity.Company) bool { return c.Country != "" }},
	{"housing_units", func(c *entity.Company) bool { return c.HousingUnits != nil }},
	{"capacity", func(c *entity.Company) bool { return c.Capacity != nil }},
	{"price_range", func(c *entity.Company) bool { return c.PriceRange != "" }},
	{"amenities", func(c *entity.Company) bool { return len(c.Amenities) > 0 }},
}

// UserTrackedFields nombres de los campos que cuentan para la completitud del usuario.
func UserTrackedFields() []string { return fieldNames(userFields) }

// CompanyTrackedFields nombres de los campos que cuentan para la completitud de la empresa.
func CompanyTrackedFields() []string { return fieldNames(companyFields) }

// UserProfileCompletion porcentaje (0..100) de campos rellenados del perfil del estudiante.
func UserProfileCompletion(p *entity.UserProfile) int {
	if p == nil {
		return 0
	}
	return completion(userFields, p)
}

// CompanyDataCompleteness porcentaje (0..100) de campos rellenados del perfil de empresa.
func CompanyDataCompleteness(c *entity.Company) int {
	if c == nil {
		return 0
	}
	return completion(companyFields, c)
}

// MissingUserFields campos del perfil todavía vacíos, en el orden de seguimiento.
func MissingUserFields(p *entity.UserProfile) []string {
	if p == nil {
		return UserTrackedFields()
	}
	return missing(userFields, p)
}

func completion[T any](fields []trackedField[T], v *T) int {
	filled := 0
	for _, f := range fields {
		if f.Filled(v) {
			filled++
		}
	}
	return int(math.Round(float64(filled) / float64(len(fields)) * 100))
}

func missing[T any](fields []trackedField[T], v *T) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if !f.Filled(v) {
			out = append(out, f.Name)
		}
	}
	return out
}

func fieldNames[T any](fields []trackedField[T]) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Name
	}
	return out
}
