// Package alias contiene las reglas de dominio para resolver nombres libres de empresas
// (abreviaturas, errores ortográficos, traducciones) a su entidad canónica.
package alias

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jhoicas/housing-reviews-api/internal/domain"
	"github.com/jhoicas/housing-reviews-api/internal/domain/entity"
)

const (
	MinQueryLength = 2   // caracteres mínimos de una búsqueda por prefijo, tras recortar espacios
	MaxNameLength  = 255 // longitud máxima de un alias o sugerencia
)

// Normalize devuelve la clave de comparación: minúsculas y sin espacios al inicio ni al final.
// Es la única clave que se compara; no hay coincidencia difusa.
func Normalize(s string) string {
	return strings.TrimSpace(strings.ToLower(s))
}

// ValidateQuery normaliza una búsqueda y exige al menos MinQueryLength caracteres.
func ValidateQuery(q string) (string, error) {
	n := Normalize(q)
	if utf8.RuneCountInString(n) < MinQueryLength {
		return "", domain.ErrInvalidInput
	}
	return n, nil
}

// ValidateName recorta un nombre de alias y verifica 1..MaxNameLength caracteres.
func ValidateName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	n := utf8.RuneCountInString(trimmed)
	if n == 0 || n > MaxNameLength {
		return "", domain.ErrInvalidInput
	}
	return trimmed, nil
}

// Less define el orden total de los resultados de búsqueda:
// prioridad desc, longitud del nombre asc, uso desc y por último id asc.
func Less(a, b *entity.Alias) bool {
	if a.Priority != b.Priority {
		return a.Priority > b.Priority
	}
	la, lb := utf8.RuneCountInString(a.Name), utf8.RuneCountInString(b.Name)
	if la != lb {
		return la < lb
	}
	if a.UsageCount != b.UsageCount {
		return a.UsageCount > b.UsageCount
	}
	return a.ID < b.ID
}

// SortMatches ordena alias según Less.
func SortMatches(list []*entity.Alias) {
	sort.SliceStable(list, func(i, j int) bool { return Less(list[i], list[j]) })
}

// EscapeLike escapa los comodines de LIKE para que la búsqueda sea un prefijo literal.
func EscapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
