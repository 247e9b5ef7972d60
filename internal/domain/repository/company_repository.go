package repository

import (
	"context"

	"github.com/jhoicas/housing-reviews-api/internal/domain/entity"
)

// CompanyFilter filtro del listado público de empresas.
type CompanyFilter struct {
	VerificationStatus string
	City               string
	Limit              int
	Offset             int
}

// CompanyScores columnas calculadas que se guardan en la empresa.
type CompanyScores struct {
	TrustScore       int
	DataCompleteness int
	Stats            entity.CompanyStats
}

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	// GetVerifiedByName coincidencia exacta sin distinguir mayúsculas contra empresas verificadas.
	GetVerifiedByName(ctx context.Context, name string) (*entity.Company, error)
	// GetPublicByIDs lectura en lote de los atributos públicos, indexada por id.
	GetPublicByIDs(ctx context.Context, ids []string) (map[string]*entity.CompanyPublic, error)
	Update(ctx context.Context, company *entity.Company) error
	UpdateVerification(ctx context.Context, id, status string) error
	UpdateScores(ctx context.Context, id string, s CompanyScores) error
	// Stats agrega reseñas, respuestas aprobadas y representantes activos.
	Stats(ctx context.Context, id string) (*entity.CompanyStats, error)
	List(ctx context.Context, f CompanyFilter) ([]*entity.Company, int, error)
	ListIDs(ctx context.Context) ([]string, error)
}
