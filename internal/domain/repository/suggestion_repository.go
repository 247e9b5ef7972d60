package repository

import (
	"context"

	"github.com/jhoicas/housing-reviews-api/internal/domain/entity"
)

// SuggestionFilter filtro del listado de sugerencias (Status vacío = todas).
type SuggestionFilter struct {
	Status string
	Limit  int
	Offset int
}

// SuggestionRepository define el puerto de persistencia para AliasSuggestion.
type SuggestionRepository interface {
	Create(ctx context.Context, s *entity.AliasSuggestion) error
	GetByID(ctx context.Context, id string) (*entity.AliasSuggestion, error)
	// UpdateReview persiste status, reviewed_by, reviewed_at y admin_notes.
	UpdateReview(ctx context.Context, s *entity.AliasSuggestion) error
	List(ctx context.Context, f SuggestionFilter) ([]*entity.AliasSuggestion, int, error)
}
