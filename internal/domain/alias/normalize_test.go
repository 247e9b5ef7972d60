package alias_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/housing-reviews-api/internal/domain"
	"github.com/jhoicas/housing-reviews-api/internal/domain/alias"
	"github.com/jhoicas/housing-reviews-api/internal/domain/entity"
)

func TestNormalize_MinusculasYRecorte(t *testing.T) {
	assert.Equal(t, "instituto politécnico da guarda", alias.Normalize("  Instituto Politécnico da GUARDA \t"))
	assert.Equal(t, "ipg", alias.Normalize("IPG"))
	assert.Equal(t, "", alias.Normalize("   "))
}

// Normalize(Normalize(x)) == Normalize(x) para entradas variadas.
func TestNormalize_Idempotente(t *testing.T) {
	inputs := []string{
		"", " ", "IPG", "  ipg  ", "Universidade de Lisboa", "ÉCOLE Polytechnique",
		"\n\tSt. John's Residence  ", "ÅÄÖ Bostad", "Straße", "İstanbul Üniversitesi", "multi   space  inside",
	}
	for _, in := range inputs {
		once := alias.Normalize(in)
		assert.Equal(t, once, alias.Normalize(once), "no idempotente para %q", in)
	}
}

func TestValidateQuery(t *testing.T) {
	_, err := alias.ValidateQuery(" i ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = alias.ValidateQuery("")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	q, err := alias.ValidateQuery("  IP ")
	require.NoError(t, err)
	assert.Equal(t, "ip", q)

	// Dos caracteres multibyte cuentan como dos caracteres.
	q, err = alias.ValidateQuery("Éc")
	require.NoError(t, err)
	assert.Equal(t, "éc", q)
}

func TestValidateName(t *testing.T) {
	_, err := alias.ValidateName("   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	long := make([]rune, alias.MaxNameLength+1)
	for i := range long {
		long[i] = 'a'
	}
	_, err = alias.ValidateName(string(long))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	name, err := alias.ValidateName("  IPG ")
	require.NoError(t, err)
	assert.Equal(t, "IPG", name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Orden de resultados
// ──────────────────────────────────────────────────────────────────────────────

func TestSortMatches_PrioridadGana(t *testing.T) {
	long := &entity.Alias{ID: "b", Name: "Instituto Politécnico da Guarda", Priority: 100}
	short := &entity.Alias{ID: "a", Name: "IPG", Priority: 50}
	list := []*entity.Alias{short, long}

	alias.SortMatches(list)

	assert.Equal(t, "b", list[0].ID, "mayor prioridad primero aunque el nombre sea más largo")
}

func TestSortMatches_EmpateDePrioridadPorLongitud(t *testing.T) {
	long := &entity.Alias{ID: "a", Name: "Instituto Politécnico da Guarda", Priority: 50, UsageCount: 999}
	short := &entity.Alias{ID: "b", Name: "IPG", Priority: 50}
	list := []*entity.Alias{long, short}

	alias.SortMatches(list)

	assert.Equal(t, "IPG", list[0].Name, "con igual prioridad, el nombre más corto primero")
}

func TestSortMatches_EmpateDeLongitudPorUso(t *testing.T) {
	a := &entity.Alias{ID: "a", Name: "IPGA", Priority: 50, UsageCount: 1}
	b := &entity.Alias{ID: "b", Name: "IPGB", Priority: 50, UsageCount: 7}
	list := []*entity.Alias{a, b}

	alias.SortMatches(list)

	assert.Equal(t, "b", list[0].ID)
}

func TestLess_OrdenTotal(t *testing.T) {
	a := &entity.Alias{ID: "a", Name: "X1", Priority: 10, UsageCount: 3}
	b := &entity.Alias{ID: "b", Name: "X2", Priority: 10, UsageCount: 3}
	assert.True(t, alias.Less(a, b))
	assert.False(t, alias.Less(b, a))
	assert.False(t, alias.Less(a, a))
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\% off\_now\\`, alias.EscapeLike(`50% off_now\`))
}
