package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/housing-reviews-api/internal/domain"
	"github.com/jhoicas/housing-reviews-api/internal/domain/entity"
	"github.com/jhoicas/housing-reviews-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

const companyColumns = "id, name, email, description, tax_id, website, phone, address, city, country, " +
	"housing_units, capacity, price_range, amenities, verification_status, response_rate, " +
	"avg_response_time_hours, average_rating, review_count, trust_score, data_completeness, status, created_at, updated_at"

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas. Pasar pool o tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

func scanCompany(row scanner) (*entity.Company, error) {
	var c entity.Company
	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.Description, &c.TaxID, &c.Website, &c.Phone, &c.Address, &c.City, &c.Country,
		&c.HousingUnits, &c.Capacity, &c.PriceRange, &c.Amenities, &c.VerificationStatus, &c.ResponseRate,
		&c.AvgResponseTimeHours, &c.AverageRating, &c.ReviewCount, &c.TrustScore, &c.DataCompleteness, &c.Status,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.Email, c.Description, c.TaxID, c.Website, c.Phone, c.Address, c.City, c.Country,
		c.HousingUnits, c.Capacity, c.PriceRange, textArray(c.Amenities), c.VerificationStatus, c.ResponseRate,
		c.AvgResponseTimeHours, c.AverageRating, c.ReviewCount, c.TrustScore, c.DataCompleteness, c.Status,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	c, err := scanCompany(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if isMissing(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return c, nil
}

// GetVerifiedByName busca una empresa verificada por nombre oficial, sin distinguir mayúsculas.
func (r *CompanyRepo) GetVerifiedByName(ctx context.Context, name string) (*entity.Company, error) {
	query := `
		SELECT ` + companyColumns + `
		FROM companies
		WHERE lower(name) = lower($1) AND verification_status = 'verified'
		ORDER BY trust_score DESC, id ASC
		LIMIT 1`
	c, err := scanCompany(r.q.QueryRow(ctx, query, name))
	if err != nil {
		if isMissing(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get verified company by name: %w", err)
	}
	return c, nil
}

// GetPublicByIDs lectura en lote de los atributos públicos. Los IDs inexistentes no aparecen en el mapa.
func (r *CompanyRepo) GetPublicByIDs(ctx context.Context, ids []string) (map[string]*entity.CompanyPublic, error) {
	out := make(map[string]*entity.CompanyPublic, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	query := `
		SELECT id, name, verification_status, average_rating, review_count
		FROM companies WHERE id = ANY($1::uuid[])`
	rows, err := r.q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("get public companies: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p entity.CompanyPublic
		if err := rows.Scan(&p.ID, &p.Name, &p.VerificationStatus, &p.AverageRating, &p.ReviewCount); err != nil {
			return nil, fmt.Errorf("scan public company: %w", err)
		}
		out[p.ID] = &p
	}
	return out, rows.Err()
}

// Update actualiza los datos de perfil editables de la empresa.
func (r *CompanyRepo) Update(ctx context.Context, c *entity.Company) error {
	query := `
		UPDATE companies SET
			name = $2, email = $3, description = $4, tax_id = $5, website = $6, phone = $7, address = $8,
			city = $9, country = $10, housing_units = $11, capacity = $12, price_range = $13, amenities = $14,
			updated_at = $15
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.Email, c.Description, c.TaxID, c.Website, c.Phone, c.Address,
		c.City, c.Country, c.HousingUnits, c.Capacity, c.PriceRange, textArray(c.Amenities),
		c.UpdatedAt,
	)
	if err != nil {
		if isInvalidText(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update company: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateVerification cambia el estado de verificación.
func (r *CompanyRepo) UpdateVerification(ctx context.Context, id, status string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE companies SET verification_status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		if isInvalidText(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update company verification: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateScores guarda el trust score, la completitud y las estadísticas agregadas.
func (r *CompanyRepo) UpdateScores(ctx context.Context, id string, s repository.CompanyScores) error {
	query := `
		UPDATE companies SET
			trust_score = $2, data_completeness = $3, review_count = $4, average_rating = $5,
			response_rate = $6, avg_response_time_hours = $7, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		id, s.TrustScore, s.DataCompleteness, s.Stats.ReviewCount, s.Stats.AverageRating,
		s.Stats.ResponseRate, s.Stats.AvgResponseTimeHours,
	)
	if err != nil {
		return fmt.Errorf("update company scores: %w", err)
	}
	return nil
}

// Stats agrega desde las tablas de origen: reseñas no rechazadas, respuestas aprobadas
// y representantes activos de la empresa.
func (r *CompanyRepo) Stats(ctx context.Context, id string) (*entity.CompanyStats, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM reviews WHERE company_id = $1 AND status <> 'rejected'),
	    (SELECT COALESCE(ROUND(AVG(rating)::numeric, 2), 0)
	       FROM reviews WHERE company_id = $1 AND status <> 'rejected'),
	    (SELECT COALESCE(ROUND(COUNT(DISTINCT rr.review_id)::numeric / NULLIF(COUNT(DISTINCT r.id), 0), 4), 0)
	       FROM reviews r
	       LEFT JOIN review_responses rr ON rr.review_id = r.id AND rr.status = 'approved'
	      WHERE r.company_id = $1 AND r.status <> 'rejected'),
	    (SELECT ROUND(AVG(EXTRACT(EPOCH FROM (rr.created_at - r.created_at)) / 3600)::numeric, 2)
	       FROM review_responses rr
	       JOIN reviews r ON r.id = rr.review_id
	      WHERE rr.company_id = $1 AND rr.status = 'approved'),
	    (SELECT COUNT(*) FROM users WHERE company_id = $1 AND role = 'company' AND status = 'active')`
	var s entity.CompanyStats
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ReviewCount, &s.AverageRating, &s.ResponseRate, &s.AvgResponseTimeHours, &s.VerifiedRepresentatives,
	)
	if err != nil {
		return nil, fmt.Errorf("company stats: %w", err)
	}
	return &s, nil
}

// List devuelve empresas activas con paginación y filtros opcionales.
func (r *CompanyRepo) List(ctx context.Context, f repository.CompanyFilter) ([]*entity.Company, int, error) {
	listQ, countQ := CompanyListQuery(f)

	countSQL, countArgs, err := countQ.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build company count: %w", err)
	}
	var total int
	if err := r.q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count companies: %w", err)
	}

	listSQL, listArgs, err := listQ.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build company list: %w", err)
	}
	rows, err := r.q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Company, 0)
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, c)
	}
	return list, total, rows.Err()
}

// ListIDs todos los IDs de empresa, para el recálculo masivo.
func (r *CompanyRepo) ListIDs(ctx context.Context) ([]string, error) {
	return queryIDs(ctx, r.q, `SELECT id FROM companies ORDER BY created_at`)
}

func queryIDs(ctx context.Context, q Querier, query string) ([]string, error) {
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
