package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/housing-reviews-api/internal/application/dto"
	"github.com/jhoicas/housing-reviews-api/internal/domain"
	"github.com/jhoicas/housing-reviews-api/internal/domain/alias"
	"github.com/jhoicas/housing-reviews-api/internal/domain/entity"
	"github.com/jhoicas/housing-reviews-api/internal/domain/repository"
	"github.com/jhoicas/housing-reviews-api/pkg/logger"
)

// Confianza inicial de una sugerencia.
var (
	ConfidenceDefault       = decimal.RequireFromString("0.50")
	ConfidenceWithCandidate = decimal.RequireFromString("0.75") // trae una empresa candidata que existe
)

// SuggestionUseCase alta pública de sugerencias de alias y su revisión por un admin.
type SuggestionUseCase struct {
	suggestions repository.SuggestionRepository
	aliases     repository.AliasRepository
	companies   repository.CompanyRepository
	log         *logger.Logger
}

// NewSuggestionUseCase construye el caso de uso.
func NewSuggestionUseCase(
	suggestions repository.SuggestionRepository,
	aliases repository.AliasRepository,
	companies repository.CompanyRepository,
	log *logger.Logger,
) *SuggestionUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &SuggestionUseCase{
		suggestions: suggestions,
		aliases:     aliases,
		companies:   companies,
		log:         log.Component("suggestion"),
	}
}

// Submit registra una sugerencia pendiente. Si el nombre ya es un alias activo no inserta nada
// y devuelve ShouldUseExisting con el alias encontrado.
func (uc *SuggestionUseCase) Submit(ctx context.Context, in dto.SubmitSuggestionRequest, submittedBy string) (*dto.SubmitSuggestionResponse, error) {
	name, err := alias.ValidateName(in.Name)
	if err != nil {
		return nil, err
	}
	normalized := alias.Normalize(name)

	existing, err := uc.aliases.GetActiveByNormalized(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &dto.SubmitSuggestionResponse{
			ShouldUseExisting: true,
			ExistingAlias: &dto.ExistingAlias{
				ID:        existing.ID,
				Name:      existing.Name,
				CompanyID: existing.CompanyID,
			},
		}, nil
	}

	confidence := ConfidenceDefault
	var candidate *string
	if in.CandidateCompanyID != nil && strings.TrimSpace(*in.CandidateCompanyID) != "" {
		c, err := uc.lookupCompany(ctx, strings.TrimSpace(*in.CandidateCompanyID))
		if err != nil {
			return nil, err
		}
		// Una candidata inexistente o mal formada se descarta en lugar de rechazar la sugerencia.
		if c != nil {
			candidate = &c.ID
			confidence = ConfidenceWithCandidate
		}
	}

	s := &entity.AliasSuggestion{
		ID:                 uuid.New().String(),
		SuggestedName:      name,
		NormalizedName:     normalized,
		SubmittedBy:        optionalID(submittedBy),
		Context:            strings.TrimSpace(in.Context),
		CandidateCompanyID: candidate,
		ConfidenceScore:    confidence,
		Status:             entity.SuggestionStatusPending,
		CreatedAt:          time.Now(),
	}
	if err := uc.suggestions.Create(ctx, s); err != nil {
		return nil, err
	}
	return &dto.SubmitSuggestionResponse{Suggestion: entityToSuggestionResponse(s)}, nil
}

// Review aprueba o rechaza una sugerencia pendiente. Con CreateAlias en una aprobación inserta
// un alias common_name de prioridad 50; si el nombre ya está activo o la empresa destino no
// existe se omite (AliasSkipped).
// El estado de la sugerencia se actualiza siempre, haya o no alias.
func (uc *SuggestionUseCase) Review(ctx context.Context, id, reviewerID string, in dto.ReviewSuggestionRequest) (*dto.ReviewSuggestionResponse, error) {
	if in.Decision != entity.SuggestionStatusApproved && in.Decision != entity.SuggestionStatusRejected {
		return nil, fmt.Errorf("decisión %q: %w", in.Decision, domain.ErrInvalidInput)
	}
	s, err := uc.suggestions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if !s.IsPending() {
		return nil, fmt.Errorf("sugerencia ya revisada (%s): %w", s.Status, domain.ErrConflict)
	}

	out := &dto.ReviewSuggestionResponse{}
	if in.Decision == entity.SuggestionStatusApproved && in.CreateAlias {
		target := s.CandidateCompanyID
		if in.CompanyID != nil && strings.TrimSpace(*in.CompanyID) != "" {
			target = in.CompanyID
		}
		if err := uc.createAliasFor(ctx, s, target, out); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	s.Status = in.Decision
	s.ReviewedBy = optionalID(reviewerID)
	s.ReviewedAt = &now
	s.AdminNotes = strings.TrimSpace(in.Notes)
	if err := uc.suggestions.UpdateReview(ctx, s); err != nil {
		return nil, err
	}
	out.Suggestion = *entityToSuggestionResponse(s)
	return out, nil
}

// createAliasFor inserta el alias de una sugerencia aprobada. Los fallos propios del alias
// (empresa destino inexistente, nombre ya activo, error de inserción) solo marcan AliasSkipped:
// la revisión sigue adelante. Solo un error al consultar la empresa se propaga.
func (uc *SuggestionUseCase) createAliasFor(ctx context.Context, s *entity.AliasSuggestion, target *string, out *dto.ReviewSuggestionResponse) error {
	if target != nil {
		c, err := uc.lookupCompany(ctx, strings.TrimSpace(*target))
		if err != nil {
			return err
		}
		if c == nil {
			uc.log.Warn().Str("suggestion_id", s.ID).Str("company_id", *target).Msg("empresa destino inexistente, se omite el alias")
			out.AliasSkipped = true
			return nil
		}
		target = &c.ID
	}

	now := time.Now()
	a := &entity.Alias{
		ID:             uuid.New().String(),
		Name:           s.SuggestedName,
		NormalizedName: s.NormalizedName,
		CompanyID:      target,
		Category:       entity.AliasCategoryCommonName,
		Priority:       entity.AliasPriorityDefault,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	created, err := uc.aliases.CreateIfAbsent(ctx, a)
	switch {
	case err != nil:
		uc.log.Error().Err(err).Str("suggestion_id", s.ID).Msg("no se pudo crear el alias de la sugerencia")
		out.AliasSkipped = true
	case !created:
		uc.log.Info().Str("suggestion_id", s.ID).Str("name", s.NormalizedName).Msg("alias ya activo, se omite")
		out.AliasSkipped = true
	default:
		out.AliasCreated = entityToAliasResponse(a)
	}
	return nil
}

// lookupCompany trata un id que no es UUID igual que una empresa inexistente.
func (uc *SuggestionUseCase) lookupCompany(ctx context.Context, id string) (*entity.Company, error) {
	if uuid.Validate(id) != nil {
		return nil, nil
	}
	return uc.companies.GetByID(ctx, id)
}

// List sugerencias filtradas por estado (vacío = todas), las más antiguas primero.
func (uc *SuggestionUseCase) List(ctx context.Context, status string, page dto.PageRequest) (*dto.SuggestionListResponse, error) {
	page.DefaultPage()
	if status != "" && !entity.IsValidSuggestionStatus(status) {
		return nil, fmt.Errorf("estado %q: %w", status, domain.ErrInvalidInput)
	}
	list, total, err := uc.suggestions.List(ctx, repository.SuggestionFilter{
		Status: status,
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.SuggestionResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *entityToSuggestionResponse(s))
	}
	return &dto.SuggestionListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

func optionalID(id string) *string {
	if strings.TrimSpace(id) == "" {
		return nil
	}
	return &id
}

func entityToSuggestionResponse(s *entity.AliasSuggestion) *dto.SuggestionResponse {
	if s == nil {
		return nil
	}
	return &dto.SuggestionResponse{
		ID:                 s.ID,
		SuggestedName:      s.SuggestedName,
		NormalizedName:     s.NormalizedName,
		SubmittedBy:        s.SubmittedBy,
		Context:            s.Context,
		CandidateCompanyID: s.CandidateCompanyID,
		ConfidenceScore:    s.ConfidenceScore,
		Status:             s.Status,
		ReviewedBy:         s.ReviewedBy,
		ReviewedAt:         s.ReviewedAt,
		AdminNotes:         s.AdminNotes,
		CreatedAt:          s.CreatedAt,
	}
}
