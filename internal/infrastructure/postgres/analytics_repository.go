package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/housing-reviews-api/internal/domain/entity"
	"github.com/jhoicas/housing-reviews-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura del panel de alias.
// Usa el pool directamente: cada consulta corre en su propia conexión y pueden ir en paralelo.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// CountActiveAliases alias activos.
func (r *AnalyticsRepo) CountActiveAliases(ctx context.Context) (int, error) {
	return r.count(ctx, "analytics.CountActiveAliases",
		`SELECT COUNT(*) FROM company_aliases WHERE is_active`)
}

// CountUnlinkedAliases alias activos sin empresa asignada.
func (r *AnalyticsRepo) CountUnlinkedAliases(ctx context.Context) (int, error) {
	return r.count(ctx, "analytics.CountUnlinkedAliases",
		`SELECT COUNT(*) FROM company_aliases WHERE is_active AND company_id IS NULL`)
}

// CountPendingSuggestions sugerencias a la espera de revisión.
func (r *AnalyticsRepo) CountPendingSuggestions(ctx context.Context) (int, error) {
	return r.count(ctx, "analytics.CountPendingSuggestions",
		`SELECT COUNT(*) FROM alias_suggestions WHERE status = 'pending'`)
}

// TopUsedAliases los `limit` alias activos más resueltos.
func (r *AnalyticsRepo) TopUsedAliases(ctx context.Context, limit int) ([]*entity.Alias, error) {
	query := `
	SELECT ` + aliasColumns + `
	FROM company_aliases
	WHERE is_active AND usage_count > 0
	ORDER BY usage_count DESC, last_used_at DESC NULLS LAST
	LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.TopUsedAliases: %w", err)
	}
	defer rows.Close()

	results := make([]*entity.Alias, 0, limit)
	for rows.Next() {
		a, err := scanAlias(rows)
		if err != nil {
			return nil, fmt.Errorf("analytics.TopUsedAliases scan: %w", err)
		}
		results = append(results, a)
	}
	return results, rows.Err()
}

func (r *AnalyticsRepo) count(ctx context.Context, op, query string) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}
