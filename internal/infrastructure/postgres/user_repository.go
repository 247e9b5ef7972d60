package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/housing-reviews-api/internal/domain"
	"github.com/jhoicas/housing-reviews-api/internal/domain/entity"
	"github.com/jhoicas/housing-reviews-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = "id, company_id, email, password_hash, name, role, status, " +
	"nationality, gender, birth_date, preferred_language, spoken_languages, current_country, current_city, " +
	"home_university, destination_university, study_field, study_level, study_start_date, study_end_date, " +
	"housing_type, monthly_rent, is_renting, has_lived_abroad, trust_score, profile_completion, created_at, updated_at"

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// nullableText mapea el texto vacío a NULL en las columnas opcionales del perfil.
func nullableText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func scanUser(row scanner) (*entity.User, error) {
	var u entity.User
	p := &u.Profile
	var nationality, gender, prefLang, country, city, homeUni, destUni, field, level, housing *string
	err := row.Scan(
		&u.ID, &u.CompanyID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.Status,
		&nationality, &gender, &p.BirthDate, &prefLang, &p.SpokenLanguages, &country, &city,
		&homeUni, &destUni, &field, &level, &p.StudyStartDate, &p.StudyEndDate,
		&housing, &p.MonthlyRent, &p.IsRenting, &p.HasLivedAbroad, &u.TrustScore, &u.ProfileCompletion,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}
	p.Nationality = deref(nationality)
	p.Gender = deref(gender)
	p.PreferredLanguage = deref(prefLang)
	p.CurrentCountry = deref(country)
	p.CurrentCity = deref(city)
	p.HomeUniversity = deref(homeUni)
	p.DestinationUniversity = deref(destUni)
	p.StudyField = deref(field)
	p.StudyLevel = deref(level)
	p.HousingType = deref(housing)
	return &u, nil
}

// Create persiste un nuevo usuario con el perfil vacío.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, company_id, email, password_hash, name, role, status, trust_score, profile_completion, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		user.ID, user.CompanyID, user.Email, user.PasswordHash, user.Name, user.Role, user.Status,
		user.TrustScore, user.ProfileCompletion, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if isMissing(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// GetByEmail obtiene un usuario por email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email))
	if err != nil {
		if isMissing(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// UpdateProfile reemplaza los 17 campos del perfil.
func (r *UserRepo) UpdateProfile(ctx context.Context, id string, p *entity.UserProfile) error {
	query := `
		UPDATE users SET
			nationality = $2, gender = $3, birth_date = $4, preferred_language = $5, spoken_languages = $6,
			current_country = $7, current_city = $8, home_university = $9, destination_university = $10,
			study_field = $11, study_level = $12, study_start_date = $13, study_end_date = $14,
			housing_type = $15, monthly_rent = $16, is_renting = $17, has_lived_abroad = $18, updated_at = now()
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, id,
		nullableText(p.Nationality), nullableText(p.Gender), p.BirthDate, nullableText(p.PreferredLanguage),
		p.SpokenLanguages, nullableText(p.CurrentCountry), nullableText(p.CurrentCity),
		nullableText(p.HomeUniversity), nullableText(p.DestinationUniversity), nullableText(p.StudyField),
		nullableText(p.StudyLevel), p.StudyStartDate, p.StudyEndDate, nullableText(p.HousingType),
		p.MonthlyRent, p.IsRenting, p.HasLivedAbroad,
	)
	if err != nil {
		if isInvalidText(err) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("update user profile: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// UpdateScores guarda trust score y completitud del perfil.
func (r *UserRepo) UpdateScores(ctx context.Context, id string, trustScore, profileCompletion int) error {
	_, err := r.q.Exec(ctx,
		`UPDATE users SET trust_score = $2, profile_completion = $3 WHERE id = $1`,
		id, trustScore, profileCompletion)
	if err != nil {
		return fmt.Errorf("update user scores: %w", err)
	}
	return nil
}

// Stats número de reseñas publicadas y votos útiles recibidos.
func (r *UserRepo) Stats(ctx context.Context, id string) (*entity.UserStats, error) {
	const query = `
		SELECT COUNT(*), COALESCE(SUM(helpful_count), 0)
		FROM reviews WHERE user_id = $1 AND status <> 'rejected'`
	var s entity.UserStats
	if err := r.q.QueryRow(ctx, query, id).Scan(&s.ReviewCount, &s.HelpfulVotes); err != nil {
		return nil, fmt.Errorf("user stats: %w", err)
	}
	return &s, nil
}

// ListIDs todos los IDs de usuario, para el recálculo masivo.
func (r *UserRepo) ListIDs(ctx context.Context) ([]string, error) {
	return queryIDs(ctx, r.q, `SELECT id FROM users ORDER BY created_at`)
}
