package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/housing-reviews-api/internal/application/dto"
	"github.com/jhoicas/housing-reviews-api/internal/domain"
	"github.com/jhoicas/housing-reviews-api/internal/domain/alias"
	"github.com/jhoicas/housing-reviews-api/internal/domain/entity"
	"github.com/jhoicas/housing-reviews-api/internal/domain/repository"
	"github.com/jhoicas/housing-reviews-api/pkg/logger"
)

// SearchLimits límite por defecto y máximo de la búsqueda pública.
type SearchLimits struct {
	Default int
	Max     int
}

// AliasUseCase búsqueda, resolución y administración de alias de empresas.
type AliasUseCase struct {
	aliases   repository.AliasRepository
	companies repository.CompanyRepository
	log       *logger.Logger
	limits    SearchLimits
}

// NewAliasUseCase construye el caso de uso. Límites no positivos toman 10 y 50.
func NewAliasUseCase(
	aliases repository.AliasRepository,
	companies repository.CompanyRepository,
	log *logger.Logger,
	limits SearchLimits,
) *AliasUseCase {
	if limits.Default <= 0 {
		limits.Default = 10
	}
	if limits.Max <= 0 {
		limits.Max = 50
	}
	if log == nil {
		log = logger.Nop()
	}
	return &AliasUseCase{aliases: aliases, companies: companies, log: log.Component("alias"), limits: limits}
}

// Search búsqueda por prefijo sobre alias activos.
// Sin resultados, CanSuggest=true para ofrecer el alta de una sugerencia.
func (uc *AliasUseCase) Search(ctx context.Context, query string, limit int) (*dto.AliasSearchResponse, error) {
	normalized, err := alias.ValidateQuery(query)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = uc.limits.Default
	}
	if limit > uc.limits.Max {
		limit = uc.limits.Max
	}

	list, err := uc.aliases.SearchPrefix(ctx, normalized, limit)
	if err != nil {
		return nil, err
	}
	alias.SortMatches(list)
	if len(list) > limit {
		list = list[:limit]
	}

	ids := make([]string, 0, len(list))
	seen := make(map[string]bool, len(list))
	for _, a := range list {
		if a.IsLinked() && !seen[*a.CompanyID] {
			seen[*a.CompanyID] = true
			ids = append(ids, *a.CompanyID)
		}
	}
	public, err := uc.companies.GetPublicByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	results := make([]dto.AliasMatchResponse, 0, len(list))
	for _, a := range list {
		m := entity.AliasMatch{Alias: a}
		if a.IsLinked() {
			m.Company = public[*a.CompanyID]
		}
		results = append(results, toAliasMatchResponse(m))
	}
	return &dto.AliasSearchResponse{
		Query:      normalized,
		Results:    results,
		Count:      len(results),
		CanSuggest: len(results) == 0,
	}, nil
}

// Resolve canonicaliza un nombre libre.
//  1. Nombre oficial de una empresa verificada (sin distinguir mayúsculas): sin redirección, sin tocar contadores.
//  2. Alias activo de una empresa verificada: redirección y uso +1.
//  3. Nada: se devuelve la entrada tal cual con NotFound=true.
func (uc *AliasUseCase) Resolve(ctx context.Context, location string) (*dto.ResolveResponse, error) {
	trimmed := strings.TrimSpace(location)
	if trimmed == "" {
		return nil, domain.ErrInvalidInput
	}

	company, err := uc.companies.GetVerifiedByName(ctx, trimmed)
	if err != nil {
		return nil, err
	}
	if company != nil {
		return &dto.ResolveResponse{
			Original:      location,
			CanonicalName: company.Name,
			CompanyID:     company.ID,
		}, nil
	}

	res, err := uc.aliases.ResolveVerified(ctx, alias.Normalize(trimmed))
	if err != nil {
		return nil, err
	}
	if res == nil {
		return &dto.ResolveResponse{Original: location, CanonicalName: location, NotFound: true}, nil
	}

	// El contador es estadístico: un fallo no invalida la resolución.
	if err := uc.aliases.IncrementUsage(ctx, res.Alias.ID); err != nil {
		uc.log.Warn().Err(err).Str("alias_id", res.Alias.ID).Msg("no se pudo registrar el uso del alias")
	}

	return &dto.ResolveResponse{
		Original:       location,
		CanonicalName:  res.CompanyName,
		CompanyID:      res.CompanyID,
		AliasID:        res.Alias.ID,
		ShouldRedirect: true,
	}, nil
}

// Create alta de un alias por un admin. Un nombre ya activo devuelve *domain.AliasConflictError.
func (uc *AliasUseCase) Create(ctx context.Context, in dto.CreateAliasRequest) (*dto.AliasResponse, error) {
	name, err := alias.ValidateName(in.Name)
	if err != nil {
		return nil, err
	}
	category := in.Category
	if category == "" {
		category = entity.AliasCategoryCommonName
	}
	if !entity.IsValidAliasCategory(category) {
		return nil, fmt.Errorf("categoría %q: %w", category, domain.ErrInvalidInput)
	}
	priority := entity.AliasPriorityDefault
	if in.Priority != nil {
		priority = *in.Priority
	}
	if err := validatePriority(priority); err != nil {
		return nil, err
	}
	companyID, err := uc.ensureCompany(ctx, in.CompanyID)
	if err != nil {
		return nil, err
	}

	normalized := alias.Normalize(name)
	if err := uc.checkAvailable(ctx, normalized, ""); err != nil {
		return nil, err
	}

	now := time.Now()
	a := &entity.Alias{
		ID:             uuid.New().String(),
		Name:           name,
		NormalizedName: normalized,
		CompanyID:      companyID,
		Category:       category,
		Priority:       priority,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.aliases.Create(ctx, a); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			// Otro alta concurrente ganó la carrera entre la comprobación y el insert.
			return nil, uc.conflictOrDuplicate(ctx, normalized)
		}
		return nil, err
	}
	return entityToAliasResponse(a), nil
}

// Update reemplazo parcial. Renombrar o reactivar vuelve a comprobar la unicidad.
func (uc *AliasUseCase) Update(ctx context.Context, id string, in dto.UpdateAliasRequest) (*dto.AliasResponse, error) {
	a, err := uc.aliases.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}

	recheck := false
	if in.Name != nil {
		name, err := alias.ValidateName(*in.Name)
		if err != nil {
			return nil, err
		}
		if n := alias.Normalize(name); n != a.NormalizedName {
			a.NormalizedName = n
			recheck = true
		}
		a.Name = name
	}
	if in.Category != nil {
		if !entity.IsValidAliasCategory(*in.Category) {
			return nil, fmt.Errorf("categoría %q: %w", *in.Category, domain.ErrInvalidInput)
		}
		a.Category = *in.Category
	}
	if in.Priority != nil {
		if err := validatePriority(*in.Priority); err != nil {
			return nil, err
		}
		a.Priority = *in.Priority
	}
	if in.IsActive != nil {
		if *in.IsActive && !a.IsActive {
			recheck = true
		}
		a.IsActive = *in.IsActive
	}

	if recheck && a.IsActive {
		if err := uc.checkAvailable(ctx, a.NormalizedName, a.ID); err != nil {
			return nil, err
		}
	}

	a.UpdatedAt = time.Now()
	if err := uc.aliases.Update(ctx, a); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, uc.conflictOrDuplicate(ctx, a.NormalizedName)
		}
		return nil, err
	}
	return entityToAliasResponse(a), nil
}

// Link asigna una empresa al alias; no toca ningún otro campo.
func (uc *AliasUseCase) Link(ctx context.Context, id, companyID string) (*dto.AliasResponse, error) {
	if strings.TrimSpace(companyID) == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.ensureCompany(ctx, &companyID); err != nil {
		return nil, err
	}
	if err := uc.aliases.Link(ctx, id, companyID); err != nil {
		return nil, err
	}
	return uc.Get(ctx, id)
}

// Delete borrado lógico por defecto; permanent=true elimina la fila.
func (uc *AliasUseCase) Delete(ctx context.Context, id string, permanent bool) error {
	if permanent {
		return uc.aliases.Delete(ctx, id)
	}
	return uc.aliases.Deactivate(ctx, id)
}

// Get obtiene un alias por ID, activo o no.
func (uc *AliasUseCase) Get(ctx context.Context, id string) (*dto.AliasResponse, error) {
	a, err := uc.aliases.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	return entityToAliasResponse(a), nil
}

// List listado de administración con filtro tipado.
func (uc *AliasUseCase) List(ctx context.Context, in dto.AliasListRequest) (*dto.AliasListResponse, error) {
	in.DefaultPage()
	if in.Category != "" && !entity.IsValidAliasCategory(in.Category) {
		return nil, fmt.Errorf("categoría %q: %w", in.Category, domain.ErrInvalidInput)
	}
	list, total, err := uc.aliases.List(ctx, repository.AliasFilter{
		Query:        alias.Normalize(in.Query),
		CompanyID:    in.CompanyID,
		Category:     in.Category,
		IsActive:     in.IsActive,
		UnlinkedOnly: in.UnlinkedOnly,
		Limit:        in.Limit,
		Offset:       in.Offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.AliasResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *entityToAliasResponse(a))
	}
	return &dto.AliasListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	}, nil
}

// checkAvailable devuelve *domain.AliasConflictError si el nombre ya está activo en otro alias.
func (uc *AliasUseCase) checkAvailable(ctx context.Context, normalized, selfID string) error {
	existing, err := uc.aliases.GetActiveByNormalized(ctx, normalized)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return conflictFor(existing)
	}
	return nil
}

func (uc *AliasUseCase) conflictOrDuplicate(ctx context.Context, normalized string) error {
	existing, err := uc.aliases.GetActiveByNormalized(ctx, normalized)
	if err != nil || existing == nil {
		return domain.ErrDuplicate
	}
	return conflictFor(existing)
}

func (uc *AliasUseCase) ensureCompany(ctx context.Context, id *string) (*string, error) {
	if id == nil || strings.TrimSpace(*id) == "" {
		return nil, nil
	}
	if uuid.Validate(*id) != nil {
		return nil, fmt.Errorf("empresa %s: %w", *id, domain.ErrNotFound)
	}
	c, err := uc.companies.GetByID(ctx, *id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("empresa %s: %w", *id, domain.ErrNotFound)
	}
	return &c.ID, nil
}

func conflictFor(existing *entity.Alias) *domain.AliasConflictError {
	return &domain.AliasConflictError{
		NormalizedName:    existing.NormalizedName,
		ExistingAliasID:   existing.ID,
		ExistingCompanyID: existing.CompanyID,
	}
}

func validatePriority(p int) error {
	if p < entity.AliasPriorityMin || p > entity.AliasPriorityMax {
		return fmt.Errorf("prioridad %d fuera de rango: %w", p, domain.ErrInvalidInput)
	}
	return nil
}

func toAliasMatchResponse(m entity.AliasMatch) dto.AliasMatchResponse {
	out := dto.AliasMatchResponse{
		AliasID:    m.Alias.ID,
		AliasName:  m.Alias.Name,
		Category:   m.Alias.Category,
		Priority:   m.Alias.Priority,
		UsageCount: m.Alias.UsageCount,
		CompanyID:  m.Alias.CompanyID,
	}
	if m.Company != nil {
		out.Company = &dto.CompanySummary{
			ID:                 m.Company.ID,
			Name:               m.Company.Name,
			VerificationStatus: m.Company.VerificationStatus,
			AverageRating:      m.Company.AverageRating,
			ReviewCount:        m.Company.ReviewCount,
		}
	}
	return out
}

func entityToAliasResponse(a *entity.Alias) *dto.AliasResponse {
	if a == nil {
		return nil
	}
	return &dto.AliasResponse{
		ID:             a.ID,
		Name:           a.Name,
		NormalizedName: a.NormalizedName,
		CompanyID:      a.CompanyID,
		Category:       a.Category,
		Priority:       a.Priority,
		IsActive:       a.IsActive,
		UsageCount:     a.UsageCount,
		LastUsedAt:     a.LastUsedAt,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}
