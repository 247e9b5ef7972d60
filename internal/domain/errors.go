package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
)

// AliasConflictError indica que ya existe un alias activo con el mismo nombre normalizado.
// Expone el alias existente para que el admin pueda vincular en lugar de duplicar.
type AliasConflictError struct {
	NormalizedName    string
	ExistingAliasID   string
	ExistingCompanyID *string
}

func (e *AliasConflictError) Error() string {
	return fmt.Sprintf("alias %q ya existe (id %s)", e.NormalizedName, e.ExistingAliasID)
}

// Unwrap permite errors.Is(err, ErrDuplicate).
func (e *AliasConflictError) Unwrap() error { return ErrDuplicate }
