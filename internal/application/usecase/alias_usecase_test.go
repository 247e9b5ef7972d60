package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/housing-reviews-api/internal/application/dto"
	"github.com/jhoicas/housing-reviews-api/internal/application/usecase"
	"github.com/jhoicas/housing-reviews-api/internal/domain"
	"github.com/jhoicas/housing-reviews-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: IPG verificado con su alias de abreviatura
// ──────────────────────────────────────────────────────────────────────────────

const (
	ipgID      = "11111111-1111-1111-1111-111111111111"
	ipgName    = "Instituto Politécnico da Guarda"
	ipgAliasID = "aaaaaaaa-0000-0000-0000-000000000001"
	pendingID  = "22222222-2222-2222-2222-222222222222"
)

type aliasFixture struct {
	companies *memCompanies
	aliases   *memAliases
	uc        *usecase.AliasUseCase
}

func newAliasFixture(t *testing.T) *aliasFixture {
	t.Helper()
	companies := newMemCompanies()
	companies.put(&entity.Company{ID: ipgID, Name: ipgName, VerificationStatus: entity.VerificationVerified, Status: "active"})
	companies.put(&entity.Company{ID: pendingID, Name: "Residencia Sin Verificar", VerificationStatus: entity.VerificationPending, Status: "active"})

	aliases := newMemAliases(companies)
	cid := ipgID
	aliases.put(&entity.Alias{
		ID: ipgAliasID, Name: "IPG", NormalizedName: "ipg", CompanyID: &cid,
		Category: entity.AliasCategoryAbbreviation, Priority: 50, IsActive: true,
	})
	return &aliasFixture{
		companies: companies,
		aliases:   aliases,
		uc:        usecase.NewAliasUseCase(aliases, companies, nil, usecase.SearchLimits{}),
	}
}

func (f *aliasFixture) usage(t *testing.T, id string) int64 {
	t.Helper()
	a, err := f.aliases.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, a)
	return a.UsageCount
}

// ──────────────────────────────────────────────────────────────────────────────
// Resolve
// ──────────────────────────────────────────────────────────────────────────────

func TestResolve_AliasRedirigeYSumaUso(t *testing.T) {
	f := newAliasFixture(t)

	out, err := f.uc.Resolve(context.Background(), "IPG")
	require.NoError(t, err)

	assert.True(t, out.ShouldRedirect)
	assert.False(t, out.NotFound)
	assert.Equal(t, "IPG", out.Original)
	assert.Equal(t, ipgName, out.CanonicalName)
	assert.Equal(t, ipgID, out.CompanyID)
	assert.Equal(t, ipgAliasID, out.AliasID)
	assert.Equal(t, int64(1), f.usage(t, ipgAliasID), "cada resolución suma exactamente 1")

	_, err = f.uc.Resolve(context.Background(), "  ipg ")
	require.NoError(t, err)
	assert.Equal(t, int64(2), f.usage(t, ipgAliasID))
}

func TestResolve_NombreOficialSinRedireccionNiContador(t *testing.T) {
	f := newAliasFixture(t)

	out, err := f.uc.Resolve(context.Background(), "instituto politécnico da guarda")
	require.NoError(t, err)

	assert.False(t, out.ShouldRedirect)
	assert.False(t, out.NotFound)
	assert.Equal(t, ipgName, out.CanonicalName)
	assert.Equal(t, ipgID, out.CompanyID)
	assert.Empty(t, out.AliasID)
	assert.Equal(t, int64(0), f.usage(t, ipgAliasID), "el nombre oficial no toca contadores")
}

func TestResolve_SinCoincidenciaDevuelveEntrada(t *testing.T) {
	f := newAliasFixture(t)

	out, err := f.uc.Resolve(context.Background(), "Universidade Desconocida")
	require.NoError(t, err)

	assert.True(t, out.NotFound)
	assert.False(t, out.ShouldRedirect)
	assert.Equal(t, "Universidade Desconocida", out.CanonicalName)
}

func TestResolve_AliasDeEmpresaNoVerificadaNoResuelve(t *testing.T) {
	f := newAliasFixture(t)
	cid := pendingID
	f.aliases.put(&entity.Alias{
		ID: "aaaaaaaa-0000-0000-0000-000000000002", Name: "RSV", NormalizedName: "rsv",
		CompanyID: &cid, Category: entity.AliasCategoryAbbreviation, Priority: 50, IsActive: true,
	})

	out, err := f.uc.Resolve(context.Background(), "RSV")
	require.NoError(t, err)
	assert.True(t, out.NotFound)
}

// Un fallo al registrar el uso no invalida la resolución.
func TestResolve_FalloDelContadorNoRompeLaRespuesta(t *testing.T) {
	f := newAliasFixture(t)
	f.aliases.incrementErr = errors.New("conexión perdida")

	out, err := f.uc.Resolve(context.Background(), "IPG")
	require.NoError(t, err)
	assert.True(t, out.ShouldRedirect)
	assert.Equal(t, ipgName, out.CanonicalName)
}

func TestResolve_EntradaVacia(t *testing.T) {
	f := newAliasFixture(t)
	_, err := f.uc.Resolve(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Search
// ──────────────────────────────────────────────────────────────────────────────

func TestSearch_OrdenPrioridadLongitudUso(t *testing.T) {
	f := newAliasFixture(t)
	cid := ipgID
	f.aliases.put(&entity.Alias{ID: "b-1", Name: "IP Lisboa", NormalizedName: "ip lisboa", Priority: 50, IsActive: true})
	f.aliases.put(&entity.Alias{ID: "b-2", Name: "IPB", NormalizedName: "ipb", Priority: 50, UsageCount: 3, IsActive: true})
	f.aliases.put(&entity.Alias{ID: "b-3", Name: "IPC", NormalizedName: "ipc", Priority: 50, UsageCount: 9, IsActive: true})
	f.aliases.put(&entity.Alias{ID: "b-4", Name: ipgName, NormalizedName: "ip oficial", CompanyID: &cid, Priority: 100, IsActive: true})
	f.aliases.put(&entity.Alias{ID: "b-5", Name: "IPX", NormalizedName: "ipx", Priority: 90, IsActive: false})

	out, err := f.uc.Search(context.Background(), "ip", 0)
	require.NoError(t, err)

	names := make([]string, 0, len(out.Results))
	for _, r := range out.Results {
		names = append(names, r.AliasName)
	}
	assert.Equal(t, []string{ipgName, "IPC", "IPB", "IPG", "IP Lisboa"}, names)
	assert.Equal(t, 5, out.Count)
	assert.False(t, out.CanSuggest)
	assert.Equal(t, "ip", out.Query)

	require.NotNil(t, out.Results[0].Company)
	assert.Equal(t, ipgName, out.Results[0].Company.Name)
	assert.Equal(t, entity.VerificationVerified, out.Results[0].Company.VerificationStatus)
	assert.Nil(t, out.Results[1].Company, "alias sin vincular no trae empresa")
}

func TestSearch_SinResultadosPermiteSugerir(t *testing.T) {
	f := newAliasFixture(t)
	out, err := f.uc.Search(context.Background(), "zz", 10)
	require.NoError(t, err)
	assert.Empty(t, out.Results)
	assert.True(t, out.CanSuggest)
}

func TestSearch_LimiteYConsultaCorta(t *testing.T) {
	f := newAliasFixture(t)
	for _, n := range []string{"ipa", "ipb", "ipc"} {
		f.aliases.put(&entity.Alias{ID: n, Name: n, NormalizedName: n, Priority: 10, IsActive: true})
	}

	out, err := f.uc.Search(context.Background(), "IP", 2)
	require.NoError(t, err)
	assert.Len(t, out.Results, 2)

	_, err = f.uc.Search(context.Background(), " i ", 10)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Administración
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_DuplicadoDevuelveConflictoConIDs(t *testing.T) {
	f := newAliasFixture(t)

	_, err := f.uc.Create(context.Background(), dto.CreateAliasRequest{Name: "  ipg "})
	require.Error(t, err)

	var conflict *domain.AliasConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, ipgAliasID, conflict.ExistingAliasID)
	require.NotNil(t, conflict.ExistingCompanyID)
	assert.Equal(t, ipgID, *conflict.ExistingCompanyID)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreate_ValoresPorDefectoYValidaciones(t *testing.T) {
	f := newAliasFixture(t)
	ctx := context.Background()

	cid := ipgID
	out, err := f.uc.Create(ctx, dto.CreateAliasRequest{Name: " Politécnico Guarda ", CompanyID: &cid})
	require.NoError(t, err)
	assert.Equal(t, "Politécnico Guarda", out.Name)
	assert.Equal(t, "politécnico guarda", out.NormalizedName)
	assert.Equal(t, entity.AliasCategoryCommonName, out.Category)
	assert.Equal(t, entity.AliasPriorityDefault, out.Priority)
	assert.True(t, out.IsActive)

	_, err = f.uc.Create(ctx, dto.CreateAliasRequest{Name: "otro", Category: "apodo"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	p := 101
	_, err = f.uc.Create(ctx, dto.CreateAliasRequest{Name: "otro", Priority: &p})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	missing := "99999999-9999-9999-9999-999999999999"
	_, err = f.uc.Create(ctx, dto.CreateAliasRequest{Name: "otro", CompanyID: &missing})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	f.companies.rejectMalformed = true
	bad := "abc"
	_, err = f.uc.Create(ctx, dto.CreateAliasRequest{Name: "otro", CompanyID: &bad})
	assert.ErrorIs(t, err, domain.ErrNotFound, "un id mal formado no llega al repositorio")
}

func TestDelete_LogicoYPermanente(t *testing.T) {
	f := newAliasFixture(t)
	ctx := context.Background()

	require.NoError(t, f.uc.Delete(ctx, ipgAliasID, false))
	a, err := f.aliases.GetByID(ctx, ipgAliasID)
	require.NoError(t, err)
	require.NotNil(t, a, "el borrado lógico conserva la fila")
	assert.False(t, a.IsActive)

	out, err := f.uc.Resolve(ctx, "IPG")
	require.NoError(t, err)
	assert.True(t, out.NotFound, "un alias inactivo no resuelve")

	require.NoError(t, f.uc.Delete(ctx, ipgAliasID, true))
	a, err = f.aliases.GetByID(ctx, ipgAliasID)
	require.NoError(t, err)
	assert.Nil(t, a)

	assert.ErrorIs(t, f.uc.Delete(ctx, ipgAliasID, true), domain.ErrNotFound)
}

// Tras desactivar, el nombre queda libre; reactivar el original choca con el nuevo.
func TestUpdate_ReactivarChocaConAliasActivo(t *testing.T) {
	f := newAliasFixture(t)
	ctx := context.Background()

	require.NoError(t, f.uc.Delete(ctx, ipgAliasID, false))
	created, err := f.uc.Create(ctx, dto.CreateAliasRequest{Name: "IPG"})
	require.NoError(t, err)

	active := true
	_, err = f.uc.Update(ctx, ipgAliasID, dto.UpdateAliasRequest{IsActive: &active})
	var conflict *domain.AliasConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, created.ID, conflict.ExistingAliasID)
}

func TestUpdate_Parcial(t *testing.T) {
	f := newAliasFixture(t)
	p := 80
	cat := entity.AliasCategoryMisspelling
	out, err := f.uc.Update(context.Background(), ipgAliasID, dto.UpdateAliasRequest{Priority: &p, Category: &cat})
	require.NoError(t, err)
	assert.Equal(t, 80, out.Priority)
	assert.Equal(t, cat, out.Category)
	assert.Equal(t, "IPG", out.Name)
	assert.WithinDuration(t, time.Now(), out.UpdatedAt, time.Minute)

	_, err = f.uc.Update(context.Background(), "no-existe", dto.UpdateAliasRequest{Priority: &p})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLink_AsignaEmpresa(t *testing.T) {
	f := newAliasFixture(t)
	ctx := context.Background()
	out, err := f.uc.Create(ctx, dto.CreateAliasRequest{Name: "Guarda Poli"})
	require.NoError(t, err)
	assert.Nil(t, out.CompanyID)

	linked, err := f.uc.Link(ctx, out.ID, ipgID)
	require.NoError(t, err)
	require.NotNil(t, linked.CompanyID)
	assert.Equal(t, ipgID, *linked.CompanyID)

	_, err = f.uc.Link(ctx, out.ID, "99999999-9999-9999-9999-999999999999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_SoloSinVincular(t *testing.T) {
	f := newAliasFixture(t)
	ctx := context.Background()
	_, err := f.uc.Create(ctx, dto.CreateAliasRequest{Name: "Suelto"})
	require.NoError(t, err)

	out, err := f.uc.List(ctx, dto.AliasListRequest{UnlinkedOnly: true})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Suelto", out.Items[0].Name)
	assert.Equal(t, 20, out.Page.Limit)

	_, err = f.uc.List(ctx, dto.AliasListRequest{Category: "apodo"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
