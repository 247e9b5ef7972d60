package usecase

import (
	"context"

	"github.com/jhoicas/housing-reviews-api/internal/domain/repository"
)

// CompanyTxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Alta de empresa y alias oficial se confirman juntos.
type CompanyTxRunner interface {
	RunCompany(ctx context.Context, fn func(
		companies repository.CompanyRepository,
		aliases repository.AliasRepository,
	) error) error
}
