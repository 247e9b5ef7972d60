package postgres

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/jhoicas/housing-reviews-api/internal/domain/alias"
	"github.com/jhoicas/housing-reviews-api/internal/domain/repository"
)

// psql genera placeholders $n; los valores del filtro nunca se concatenan al SQL.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const aliasColumns = "id, name, normalized_name, company_id, category, priority, is_active, usage_count, last_used_at, created_at, updated_at"

func aliasConditions(f repository.AliasFilter) sq.And {
	conds := sq.And{}
	if q := strings.TrimSpace(f.Query); q != "" {
		conds = append(conds, sq.Like{"normalized_name": alias.EscapeLike(q) + "%"})
	}
	if f.UnlinkedOnly {
		conds = append(conds, sq.Eq{"company_id": nil})
	} else if f.CompanyID != "" {
		conds = append(conds, sq.Eq{"company_id": f.CompanyID})
	}
	if f.Category != "" {
		conds = append(conds, sq.Eq{"category": f.Category})
	}
	if f.IsActive != nil {
		conds = append(conds, sq.Eq{"is_active": *f.IsActive})
	}
	return conds
}

// AliasListQuery compila el filtro de administración en la consulta paginada y su COUNT.
func AliasListQuery(f repository.AliasFilter) (list sq.SelectBuilder, count sq.SelectBuilder) {
	conds := aliasConditions(f)
	list = psql.Select(aliasColumns).
		From("company_aliases").
		Where(conds).
		OrderBy("priority DESC", "char_length(name) ASC", "usage_count DESC", "id ASC")
	if f.Limit > 0 {
		list = list.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		list = list.Offset(uint64(f.Offset))
	}
	count = psql.Select("COUNT(*)").From("company_aliases").Where(conds)
	return list, count
}

const suggestionColumns = "id, suggested_name, normalized_name, submitted_by, context, candidate_company_id, confidence_score, status, reviewed_by, reviewed_at, admin_notes, created_at"

// SuggestionListQuery consulta paginada de sugerencias, las más antiguas primero.
func SuggestionListQuery(f repository.SuggestionFilter) (list sq.SelectBuilder, count sq.SelectBuilder) {
	conds := sq.And{}
	if f.Status != "" {
		conds = append(conds, sq.Eq{"status": f.Status})
	}
	list = psql.Select(suggestionColumns).
		From("alias_suggestions").
		Where(conds).
		OrderBy("created_at ASC", "id ASC")
	if f.Limit > 0 {
		list = list.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		list = list.Offset(uint64(f.Offset))
	}
	count = psql.Select("COUNT(*)").From("alias_suggestions").Where(conds)
	return list, count
}

// CompanyListQuery listado público de empresas por trust score.
func CompanyListQuery(f repository.CompanyFilter) (list sq.SelectBuilder, count sq.SelectBuilder) {
	conds := sq.And{sq.Eq{"status": "active"}}
	if f.VerificationStatus != "" {
		conds = append(conds, sq.Eq{"verification_status": f.VerificationStatus})
	}
	if c := strings.TrimSpace(f.City); c != "" {
		conds = append(conds, sq.Expr("lower(city) = lower(?)", c))
	}
	list = psql.Select(companyColumns).
		From("companies").
		Where(conds).
		OrderBy("trust_score DESC", "name ASC")
	if f.Limit > 0 {
		list = list.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		list = list.Offset(uint64(f.Offset))
	}
	count = psql.Select("COUNT(*)").From("companies").Where(conds)
	return list, count
}
