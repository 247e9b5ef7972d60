package repository

import (
	"context"

	"github.com/jhoicas/housing-reviews-api/internal/domain/entity"
)

// AliasFilter filtro tipado del listado de administración. Los campos vacíos no filtran.
type AliasFilter struct {
	Query        string // prefijo ya normalizado
	CompanyID    string
	Category     string
	IsActive     *bool
	UnlinkedOnly bool
	Limit        int
	Offset       int
}

// AliasResolution alias activo junto con la empresa verificada a la que apunta.
type AliasResolution struct {
	Alias       *entity.Alias
	CompanyID   string
	CompanyName string
}

// AliasRepository define el puerto de persistencia para Alias.
type AliasRepository interface {
	// Create inserta el alias. Si ya hay un alias activo con el mismo nombre normalizado devuelve domain.ErrDuplicate.
	Create(ctx context.Context, a *entity.Alias) error
	// CreateIfAbsent inserta con ON CONFLICT DO NOTHING; created=false si el nombre ya estaba activo.
	CreateIfAbsent(ctx context.Context, a *entity.Alias) (created bool, err error)
	GetByID(ctx context.Context, id string) (*entity.Alias, error)
	// GetActiveByNormalized devuelve el alias activo con ese nombre normalizado, o (nil, nil).
	GetActiveByNormalized(ctx context.Context, normalized string) (*entity.Alias, error)
	// SearchPrefix alias activos cuyo nombre normalizado empieza por prefix,
	// ordenados por prioridad desc, longitud asc, uso desc.
	SearchPrefix(ctx context.Context, prefix string, limit int) ([]*entity.Alias, error)
	// ResolveVerified coincidencia exacta contra alias activos de empresas verificadas (prioridad desc, uso desc).
	ResolveVerified(ctx context.Context, normalized string) (*AliasResolution, error)
	// IncrementUsage suma 1 a usage_count y fija last_used_at de forma atómica.
	IncrementUsage(ctx context.Context, id string) error
	Update(ctx context.Context, a *entity.Alias) error
	Link(ctx context.Context, id, companyID string) error
	Deactivate(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f AliasFilter) ([]*entity.Alias, int, error)
}
