package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/housing-reviews-api/internal/domain"
	"github.com/jhoicas/housing-reviews-api/internal/domain/alias"
	"github.com/jhoicas/housing-reviews-api/internal/domain/entity"
	"github.com/jhoicas/housing-reviews-api/internal/domain/repository"
)

var _ repository.AliasRepository = (*AliasRepo)(nil)

// AliasRepo implementación del puerto AliasRepository sobre PostgreSQL.
type AliasRepo struct {
	q Querier
}

// NewAliasRepository construye el adaptador de alias. Acepta pool o tx (Querier).
func NewAliasRepository(q Querier) *AliasRepo {
	return &AliasRepo{q: q}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAlias(row scanner, extra ...any) (*entity.Alias, error) {
	var a entity.Alias
	dest := []any{
		&a.ID, &a.Name, &a.NormalizedName, &a.CompanyID, &a.Category, &a.Priority,
		&a.IsActive, &a.UsageCount, &a.LastUsedAt, &a.CreatedAt, &a.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	return &a, nil
}

// prefixed antepone el alias de tabla a cada columna de la lista.
func prefixed(columns, table string) string {
	parts := strings.Split(columns, ", ")
	for i, p := range parts {
		parts[i] = table + "." + p
	}
	return strings.Join(parts, ", ")
}

// Create persiste un alias nuevo.
func (r *AliasRepo) Create(ctx context.Context, a *entity.Alias) error {
	query := `
		INSERT INTO company_aliases (id, name, normalized_name, company_id, category, priority, is_active, usage_count, last_used_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.Name, a.NormalizedName, a.CompanyID, a.Category, a.Priority,
		a.IsActive, a.UsageCount, a.LastUsedAt, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert alias: %w", err)
	}
	return nil
}

// CreateIfAbsent inserta el alias salvo que ya exista uno activo con el mismo nombre normalizado.
func (r *AliasRepo) CreateIfAbsent(ctx context.Context, a *entity.Alias) (bool, error) {
	query := `
		INSERT INTO company_aliases (id, name, normalized_name, company_id, category, priority, is_active, usage_count, last_used_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (normalized_name) WHERE is_active DO NOTHING`
	cmd, err := r.q.Exec(ctx, query,
		a.ID, a.Name, a.NormalizedName, a.CompanyID, a.Category, a.Priority,
		a.IsActive, a.UsageCount, a.LastUsedAt, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("insert alias if absent: %w", err)
	}
	return cmd.RowsAffected() == 1, nil
}

// GetByID obtiene un alias por ID, activo o no.
func (r *AliasRepo) GetByID(ctx context.Context, id string) (*entity.Alias, error) {
	query := `SELECT ` + aliasColumns + ` FROM company_aliases WHERE id = $1`
	a, err := scanAlias(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if isMissing(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get alias: %w", err)
	}
	return a, nil
}

// GetActiveByNormalized obtiene el alias activo con ese nombre normalizado.
func (r *AliasRepo) GetActiveByNormalized(ctx context.Context, normalized string) (*entity.Alias, error) {
	query := `SELECT ` + aliasColumns + ` FROM company_aliases WHERE normalized_name = $1 AND is_active`
	a, err := scanAlias(r.q.QueryRow(ctx, query, normalized))
	if err != nil {
		if isMissing(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get alias by name: %w", err)
	}
	return a, nil
}

// SearchPrefix búsqueda por prefijo sobre alias activos. Las empresas pendientes no se excluyen.
func (r *AliasRepo) SearchPrefix(ctx context.Context, prefix string, limit int) ([]*entity.Alias, error) {
	query := `
		SELECT ` + aliasColumns + `
		FROM company_aliases
		WHERE is_active AND normalized_name LIKE $1
		ORDER BY priority DESC, char_length(name) ASC, usage_count DESC, id ASC
		LIMIT $2`
	return r.queryAliases(ctx, "search aliases", query, alias.EscapeLike(prefix)+"%", limit)
}

// ResolveVerified coincidencia exacta contra alias activos de empresas verificadas.
func (r *AliasRepo) ResolveVerified(ctx context.Context, normalized string) (*repository.AliasResolution, error) {
	query := `
		SELECT ` + prefixed(aliasColumns, "a") + `, c.id, c.name
		FROM company_aliases a
		JOIN companies c ON c.id = a.company_id
		WHERE a.normalized_name = $1
		  AND a.is_active
		  AND c.verification_status = 'verified'
		ORDER BY a.priority DESC, a.usage_count DESC
		LIMIT 1`
	var res repository.AliasResolution
	a, err := scanAlias(r.q.QueryRow(ctx, query, normalized), &res.CompanyID, &res.CompanyName)
	if err != nil {
		if isMissing(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("resolve alias: %w", err)
	}
	res.Alias = a
	return &res, nil
}

// IncrementUsage incremento atómico en SQL; dos resoluciones simultáneas suman 2.
func (r *AliasRepo) IncrementUsage(ctx context.Context, id string) error {
	query := `
		UPDATE company_aliases
		SET usage_count = usage_count + 1, last_used_at = now()
		WHERE id = $1`
	if _, err := r.q.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("increment alias usage: %w", err)
	}
	return nil
}

// Update actualiza nombre, categoría, prioridad y estado del alias.
func (r *AliasRepo) Update(ctx context.Context, a *entity.Alias) error {
	query := `
		UPDATE company_aliases
		SET name = $2, normalized_name = $3, category = $4, priority = $5, is_active = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		a.ID, a.Name, a.NormalizedName, a.Category, a.Priority, a.IsActive, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isInvalidText(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update alias: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Link cambia solo la empresa del alias.
func (r *AliasRepo) Link(ctx context.Context, id, companyID string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE company_aliases SET company_id = $2, updated_at = now() WHERE id = $1`, id, companyID)
	if err != nil {
		if isInvalidText(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("link alias: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Deactivate borrado lógico.
func (r *AliasRepo) Deactivate(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE company_aliases SET is_active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		if isInvalidText(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("deactivate alias: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete borrado físico.
func (r *AliasRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM company_aliases WHERE id = $1`, id)
	if err != nil {
		if isInvalidText(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete alias: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List listado de administración con el filtro compilado por squirrel.
func (r *AliasRepo) List(ctx context.Context, f repository.AliasFilter) ([]*entity.Alias, int, error) {
	listQ, countQ := AliasListQuery(f)

	countSQL, countArgs, err := countQ.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build alias count: %w", err)
	}
	var total int
	if err := r.q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count aliases: %w", err)
	}

	listSQL, listArgs, err := listQ.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build alias list: %w", err)
	}
	list, err := r.queryAliases(ctx, "list aliases", listSQL, listArgs...)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *AliasRepo) queryAliases(ctx context.Context, op, query string, args ...any) ([]*entity.Alias, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	list := make([]*entity.Alias, 0)
	for rows.Next() {
		a, err := scanAlias(rows)
		if err != nil {
			return nil, fmt.Errorf("scan alias: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}
