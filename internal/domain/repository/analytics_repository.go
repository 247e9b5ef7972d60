package repository

import (
	"context"

	"github.com/jhoicas/housing-reviews-api/internal/domain/entity"
)

// AnalyticsRepository consultas de solo lectura del panel de alias.
// Cada método es independiente para poder ejecutarse en paralelo.
type AnalyticsRepository interface {
	CountActiveAliases(ctx context.Context) (int, error)
	CountUnlinkedAliases(ctx context.Context) (int, error)
	CountPendingSuggestions(ctx context.Context) (int, error)
	// TopUsedAliases alias activos ordenados por usage_count desc.
	TopUsedAliases(ctx context.Context, limit int) ([]*entity.Alias, error)
}
