package postgres_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/housing-reviews-api/internal/domain/repository"
	"github.com/jhoicas/housing-reviews-api/internal/infrastructure/postgres"
)

func TestAliasListQuery_TodosLosFiltros(t *testing.T) {
	active := true
	list, count := postgres.AliasListQuery(repository.AliasFilter{
		Query:     "ipg",
		CompanyID: "c-1",
		Category:  "abbreviation",
		IsActive:  &active,
		Limit:     20,
		Offset:    40,
	})

	sql, args, err := list.ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "FROM company_aliases")
	assert.Contains(t, sql, "normalized_name LIKE $1")
	assert.Contains(t, sql, "company_id = $2")
	assert.Contains(t, sql, "category = $3")
	assert.Contains(t, sql, "is_active = $4")
	assert.Contains(t, sql, "ORDER BY priority DESC, char_length(name) ASC, usage_count DESC, id ASC")
	assert.Contains(t, sql, "LIMIT 20")
	assert.Contains(t, sql, "OFFSET 40")
	assert.Equal(t, []any{"ipg%", "c-1", "abbreviation", true}, args)

	countSQL, countArgs, err := count.ToSql()
	require.NoError(t, err)
	assert.Contains(t, countSQL, "SELECT COUNT(*) FROM company_aliases")
	assert.Equal(t, args, countArgs)
}

// Los valores del usuario viajan como argumentos, nunca dentro del SQL.
func TestAliasListQuery_SinConcatenacion(t *testing.T) {
	list, _ := postgres.AliasListQuery(repository.AliasFilter{
		Query:    "x'; drop table company_aliases; --",
		Category: "misspelling' or '1'='1",
	})
	sql, args, err := list.ToSql()
	require.NoError(t, err)
	assert.NotContains(t, sql, "drop table")
	assert.NotContains(t, sql, "'1'='1")
	require.Len(t, args, 2)
	assert.Equal(t, "misspelling' or '1'='1", args[1])
}

func TestAliasListQuery_ComodinesEscapados(t *testing.T) {
	list, _ := postgres.AliasListQuery(repository.AliasFilter{Query: "50%_"})
	_, args, err := list.ToSql()
	require.NoError(t, err)
	assert.Equal(t, []any{`50\%\_%`}, args)
}

func TestAliasListQuery_SoloSinEmpresaIgnoraCompanyID(t *testing.T) {
	list, _ := postgres.AliasListQuery(repository.AliasFilter{UnlinkedOnly: true, CompanyID: "c-1"})
	sql, args, err := list.ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "company_id IS NULL")
	assert.Empty(t, args)
	assert.NotContains(t, sql, "LIMIT")
}

func TestSuggestionListQuery_PorEstado(t *testing.T) {
	list, count := postgres.SuggestionListQuery(repository.SuggestionFilter{Status: "pending", Limit: 10})
	sql, args, err := list.ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "FROM alias_suggestions")
	assert.Contains(t, sql, "status = $1")
	assert.Contains(t, sql, "LIMIT 10")
	assert.Equal(t, []any{"pending"}, args)

	_, countArgs, err := count.ToSql()
	require.NoError(t, err)
	assert.Equal(t, []any{"pending"}, countArgs)
}

func TestCompanyListQuery_CiudadSinMayusculas(t *testing.T) {
	list, _ := postgres.CompanyListQuery(repository.CompanyFilter{VerificationStatus: "verified", City: " Guarda "})
	sql, args, err := list.ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "status = $1")
	assert.Contains(t, sql, "verification_status = $2")
	assert.Contains(t, sql, "lower(city) = lower($3)")
	assert.Equal(t, []any{"active", "verified", "Guarda"}, args)
}
