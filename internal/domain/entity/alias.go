package entity

import "time"

// Categorías válidas de alias (deben coincidir con el CHECK de company_aliases.category).
const (
	AliasCategoryCommonName   = "common_name"
	AliasCategoryAbbreviation = "abbreviation"
	AliasCategoryMisspelling  = "misspelling"
	AliasCategoryTranslation  = "translation"
	AliasCategoryFormerName   = "former_name"
	AliasCategoryLocalName    = "local_name"
)

// Prioridades usadas por el sistema. Mayor prioridad gana en búsquedas y resolución.
const (
	AliasPriorityOfficial = 100 // alias automático con el nombre oficial de la empresa
	AliasPriorityDefault  = 50  // alias creados por admin o desde sugerencias aprobadas
	AliasPriorityMin      = 0
	AliasPriorityMax      = 100
)

// Alias es un nombre alternativo que apunta a una empresa canónica.
// CompanyID nil = alias sin vincular, pendiente de asignación por un admin.
type Alias struct {
	ID             string
	Name           string
	NormalizedName string
	CompanyID      *string
	Category       string
	Priority       int
	IsActive       bool
	UsageCount     int64
	LastUsedAt     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsLinked informa si el alias ya apunta a una empresa.
func (a *Alias) IsLinked() bool {
	return a.CompanyID != nil && *a.CompanyID != ""
}

// IsValidAliasCategory valida una categoría contra el catálogo.
func IsValidAliasCategory(c string) bool {
	switch c {
	case AliasCategoryCommonName, AliasCategoryAbbreviation, AliasCategoryMisspelling,
		AliasCategoryTranslation, AliasCategoryFormerName, AliasCategoryLocalName:
		return true
	}
	return false
}

// AliasMatch es un alias activo encontrado por búsqueda de prefijo junto con los datos públicos
// de su empresa (nil si el alias no está vinculado o la empresa ya no existe).
type AliasMatch struct {
	Alias   *Alias
	Company *CompanyPublic
}
