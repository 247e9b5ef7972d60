package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/housing-reviews-api/internal/domain"
	"github.com/jhoicas/housing-reviews-api/internal/domain/entity"
	"github.com/jhoicas/housing-reviews-api/internal/domain/repository"
)

var _ repository.SuggestionRepository = (*SuggestionRepo)(nil)

// SuggestionRepo implementación del puerto SuggestionRepository sobre PostgreSQL.
type SuggestionRepo struct {
	q Querier
}

// NewSuggestionRepository construye el adaptador de sugerencias.
func NewSuggestionRepository(q Querier) *SuggestionRepo {
	return &SuggestionRepo{q: q}
}

func scanSuggestion(row scanner) (*entity.AliasSuggestion, error) {
	var s entity.AliasSuggestion
	err := row.Scan(
		&s.ID, &s.SuggestedName, &s.NormalizedName, &s.SubmittedBy, &s.Context, &s.CandidateCompanyID,
		&s.ConfidenceScore, &s.Status, &s.ReviewedBy, &s.ReviewedAt, &s.AdminNotes, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create persiste una sugerencia pendiente.
func (r *SuggestionRepo) Create(ctx context.Context, s *entity.AliasSuggestion) error {
	query := `
		INSERT INTO alias_suggestions (id, suggested_name, normalized_name, submitted_by, context, candidate_company_id,
			confidence_score, status, reviewed_by, reviewed_at, admin_notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.SuggestedName, s.NormalizedName, s.SubmittedBy, s.Context, s.CandidateCompanyID,
		s.ConfidenceScore, s.Status, s.ReviewedBy, s.ReviewedAt, s.AdminNotes, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert suggestion: %w", err)
	}
	return nil
}

// GetByID obtiene una sugerencia por ID.
func (r *SuggestionRepo) GetByID(ctx context.Context, id string) (*entity.AliasSuggestion, error) {
	query := `SELECT ` + suggestionColumns + ` FROM alias_suggestions WHERE id = $1`
	s, err := scanSuggestion(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if isMissing(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get suggestion: %w", err)
	}
	return s, nil
}

// UpdateReview guarda la decisión del admin. Solo afecta a sugerencias todavía pendientes,
// así dos revisiones simultáneas no pueden pisarse.
func (r *SuggestionRepo) UpdateReview(ctx context.Context, s *entity.AliasSuggestion) error {
	query := `
		UPDATE alias_suggestions
		SET status = $2, reviewed_by = $3, reviewed_at = $4, admin_notes = $5
		WHERE id = $1 AND status = 'pending'`
	cmd, err := r.q.Exec(ctx, query, s.ID, s.Status, s.ReviewedBy, s.ReviewedAt, s.AdminNotes)
	if err != nil {
		return fmt.Errorf("update suggestion review: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrConflict
	}
	return nil
}

// List listado paginado filtrado por estado.
func (r *SuggestionRepo) List(ctx context.Context, f repository.SuggestionFilter) ([]*entity.AliasSuggestion, int, error) {
	listQ, countQ := SuggestionListQuery(f)

	countSQL, countArgs, err := countQ.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build suggestion count: %w", err)
	}
	var total int
	if err := r.q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count suggestions: %w", err)
	}

	listSQL, listArgs, err := listQ.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build suggestion list: %w", err)
	}
	rows, err := r.q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list suggestions: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.AliasSuggestion, 0)
	for rows.Next() {
		s, err := scanSuggestion(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan suggestion: %w", err)
		}
		list = append(list, s)
	}
	return list, total, rows.Err()
}
