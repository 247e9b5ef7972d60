package repository

import (
	"context"

	"github.com/jhoicas/housing-reviews-api/internal/domain/entity"
)

// ReviewRepository define el puerto de persistencia para reseñas y respuestas de empresa.
type ReviewRepository interface {
	// Create devuelve domain.ErrDuplicate si el usuario ya reseñó la empresa.
	Create(ctx context.Context, r *entity.Review) error
	GetByID(ctx context.Context, id string) (*entity.Review, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Review, error)
	// CountApprovedByCompany total de reseñas que lista ListByCompany.
	CountApprovedByCompany(ctx context.Context, companyID string) (int, error)
	// AddHelpfulVote registra el voto del usuario; counted=false si ya había votado.
	AddHelpfulVote(ctx context.Context, reviewID, userID string) (counted bool, err error)

	CreateResponse(ctx context.Context, resp *entity.ReviewResponse) error
	GetResponse(ctx context.Context, id string) (*entity.ReviewResponse, error)
	ModerateResponse(ctx context.Context, resp *entity.ReviewResponse) error
}
