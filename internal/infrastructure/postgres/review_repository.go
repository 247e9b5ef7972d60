package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/housing-reviews-api/internal/domain"
	"github.com/jhoicas/housing-reviews-api/internal/domain/entity"
	"github.com/jhoicas/housing-reviews-api/internal/domain/repository"
)

var _ repository.ReviewRepository = (*ReviewRepo)(nil)

const reviewColumns = "id, user_id, company_id, rating, title, content, photos, category_tags, is_verified_stay, " +
	"stay_start, stay_end, monthly_rent, quality_score, helpful_count, status, created_at, updated_at"

const responseColumns = "id, review_id, company_id, author_id, content, status, moderated_by, moderated_at, created_at"

// ReviewRepo implementación del puerto ReviewRepository sobre PostgreSQL.
type ReviewRepo struct {
	q Querier
}

// NewReviewRepository construye el adaptador de reseñas.
func NewReviewRepository(q Querier) *ReviewRepo {
	return &ReviewRepo{q: q}
}

func scanReview(row scanner) (*entity.Review, error) {
	var rv entity.Review
	err := row.Scan(
		&rv.ID, &rv.UserID, &rv.CompanyID, &rv.Rating, &rv.Title, &rv.Content, &rv.Photos, &rv.CategoryTags,
		&rv.IsVerifiedStay, &rv.StayStart, &rv.StayEnd, &rv.MonthlyRent, &rv.QualityScore, &rv.HelpfulCount,
		&rv.Status, &rv.CreatedAt, &rv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rv, nil
}

func scanResponse(row scanner) (*entity.ReviewResponse, error) {
	var resp entity.ReviewResponse
	err := row.Scan(
		&resp.ID, &resp.ReviewID, &resp.CompanyID, &resp.AuthorID, &resp.Content, &resp.Status,
		&resp.ModeratedBy, &resp.ModeratedAt, &resp.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Create persiste una reseña. Una sola reseña por usuario y empresa.
func (r *ReviewRepo) Create(ctx context.Context, rv *entity.Review) error {
	query := `
		INSERT INTO reviews (` + reviewColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(ctx, query,
		rv.ID, rv.UserID, rv.CompanyID, rv.Rating, rv.Title, rv.Content, textArray(rv.Photos), textArray(rv.CategoryTags),
		rv.IsVerifiedStay, rv.StayStart, rv.StayEnd, rv.MonthlyRent, rv.QualityScore, rv.HelpfulCount,
		rv.Status, rv.CreatedAt, rv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

// GetByID obtiene una reseña por ID.
func (r *ReviewRepo) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	rv, err := scanReview(r.q.QueryRow(ctx, `SELECT `+reviewColumns+` FROM reviews WHERE id = $1`, id))
	if err != nil {
		if isMissing(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get review: %w", err)
	}
	return rv, nil
}

// ListByCompany reseñas visibles de una empresa, mejor calidad primero.
func (r *ReviewRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE company_id = $1 AND status = 'approved'
		ORDER BY quality_score DESC, created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Review, 0)
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		list = append(list, rv)
	}
	return list, rows.Err()
}

// CountApprovedByCompany mismo filtro que ListByCompany.
func (r *ReviewRepo) CountApprovedByCompany(ctx context.Context, companyID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM reviews WHERE company_id = $1 AND status = 'approved'`, companyID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count reviews: %w", err)
	}
	return n, nil
}

// AddHelpfulVote registra el voto y suma helpful_count en la misma sentencia.
func (r *ReviewRepo) AddHelpfulVote(ctx context.Context, reviewID, userID string) (bool, error) {
	const query = `
		WITH vote AS (
			INSERT INTO review_helpful_votes (review_id, user_id, created_at)
			VALUES ($1, $2, now())
			ON CONFLICT DO NOTHING
			RETURNING review_id
		)
		UPDATE reviews SET helpful_count = helpful_count + 1
		WHERE id IN (SELECT review_id FROM vote)`
	cmd, err := r.q.Exec(ctx, query, reviewID, userID)
	if err != nil {
		return false, fmt.Errorf("add helpful vote: %w", err)
	}
	return cmd.RowsAffected() == 1, nil
}

// CreateResponse persiste la respuesta de una empresa, pendiente de moderación.
func (r *ReviewRepo) CreateResponse(ctx context.Context, resp *entity.ReviewResponse) error {
	query := `
		INSERT INTO review_responses (` + responseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		resp.ID, resp.ReviewID, resp.CompanyID, resp.AuthorID, resp.Content, resp.Status,
		resp.ModeratedBy, resp.ModeratedAt, resp.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert review response: %w", err)
	}
	return nil
}

// GetResponse obtiene una respuesta por ID.
func (r *ReviewRepo) GetResponse(ctx context.Context, id string) (*entity.ReviewResponse, error) {
	resp, err := scanResponse(r.q.QueryRow(ctx, `SELECT `+responseColumns+` FROM review_responses WHERE id = $1`, id))
	if err != nil {
		if isMissing(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get review response: %w", err)
	}
	return resp, nil
}

// ModerateResponse guarda la decisión; solo sobre respuestas pendientes.
func (r *ReviewRepo) ModerateResponse(ctx context.Context, resp *entity.ReviewResponse) error {
	query := `
		UPDATE review_responses
		SET status = $2, moderated_by = $3, moderated_at = $4
		WHERE id = $1 AND status = 'pending'`
	cmd, err := r.q.Exec(ctx, query, resp.ID, resp.Status, resp.ModeratedBy, resp.ModeratedAt)
	if err != nil {
		return fmt.Errorf("moderate review response: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrConflict
	}
	return nil
}
