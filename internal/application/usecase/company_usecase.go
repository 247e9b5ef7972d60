package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/housing-reviews-api/internal/application/dto"
	"github.com/jhoicas/housing-reviews-api/internal/domain"
	"github.com/jhoicas/housing-reviews-api/internal/domain/alias"
	"github.com/jhoicas/housing-reviews-api/internal/domain/entity"
	"github.com/jhoicas/housing-reviews-api/internal/domain/repository"
	"github.com/jhoicas/housing-reviews-api/internal/domain/scoring"
	"github.com/jhoicas/housing-reviews-api/pkg/logger"
)

// WarningOfficialAliasSkipped el nombre oficial ya era un alias activo; la empresa se creó sin alias propio.
const WarningOfficialAliasSkipped = "OFFICIAL_ALIAS_SKIPPED"

// CompanyUseCase aplica reglas de negocio para empresas (casos de uso).
type CompanyUseCase struct {
	tx     CompanyTxRunner
	repo   repository.CompanyRepository
	scores *ScoreUseCase
	log    *logger.Logger
}

// NewCompanyUseCase construye el caso de uso. tx abre la transacción de alta; repo sirve las lecturas.
func NewCompanyUseCase(tx CompanyTxRunner, repo repository.CompanyRepository, scores *ScoreUseCase, log *logger.Logger) *CompanyUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &CompanyUseCase{tx: tx, repo: repo, scores: scores, log: log.Component("company")}
}

// Create crea la empresa y, en la misma transacción, su alias oficial con prioridad 100.
// Si el nombre oficial ya es un alias activo la empresa se crea igual y la respuesta lleva un aviso.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CreateCompanyResponse, error) {
	name, err := alias.ValidateName(in.Name)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	company := &entity.Company{
		ID:                 uuid.New().String(),
		Name:               name,
		Email:              strings.TrimSpace(in.Email),
		Description:        in.Description,
		TaxID:              strings.TrimSpace(in.TaxID),
		Website:            strings.TrimSpace(in.Website),
		Phone:              strings.TrimSpace(in.Phone),
		Address:            in.Address,
		City:               strings.TrimSpace(in.City),
		Country:            strings.TrimSpace(in.Country),
		HousingUnits:       in.HousingUnits,
		Capacity:           in.Capacity,
		PriceRange:         in.PriceRange,
		Amenities:          in.Amenities,
		VerificationStatus: entity.VerificationPending,
		Status:             "active",
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	company.DataCompleteness = scoring.CompanyDataCompleteness(company)
	company.TrustScore = uc.scores.calculator().CompanyTrust(scoring.CompanyTrustInputs{Company: company}).Score

	official := &entity.Alias{
		ID:             uuid.New().String(),
		Name:           name,
		NormalizedName: alias.Normalize(name),
		CompanyID:      &company.ID,
		Category:       entity.AliasCategoryCommonName,
		Priority:       entity.AliasPriorityOfficial,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	var warnings []dto.Warning
	err = uc.tx.RunCompany(ctx, func(companies repository.CompanyRepository, aliases repository.AliasRepository) error {
		if err := companies.Create(ctx, company); err != nil {
			return err
		}
		created, err := aliases.CreateIfAbsent(ctx, official)
		if err != nil {
			return err
		}
		if created {
			return nil
		}
		existing, err := aliases.GetActiveByNormalized(ctx, official.NormalizedName)
		if err != nil {
			return err
		}
		w := dto.Warning{
			Code:    WarningOfficialAliasSkipped,
			Message: fmt.Sprintf("ya existe un alias activo %q; no se creó el alias oficial", official.NormalizedName),
		}
		if existing != nil {
			w.ResourceID = existing.ID
		}
		warnings = append(warnings, w)
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, w := range warnings {
		uc.log.Warn().
			Str("company_id", company.ID).
			Str("alias_id", w.ResourceID).
			Msg("alias oficial omitido por colisión")
	}
	return &dto.CreateCompanyResponse{
		Company:  *entityToCompanyResponse(company),
		Warnings: warnings,
	}, nil
}

// GetByID obtiene una empresa por ID.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	company, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// List lista empresas activas con filtros y paginación, mejor trust score primero.
func (uc *CompanyUseCase) List(ctx context.Context, in dto.CompanyListRequest) (*dto.CompanyListResponse, error) {
	in.DefaultPage()
	if in.VerificationStatus != "" && !entity.IsValidVerificationStatus(in.VerificationStatus) {
		return nil, fmt.Errorf("verification_status %q: %w", in.VerificationStatus, domain.ErrInvalidInput)
	}
	list, total, err := uc.repo.List(ctx, repository.CompanyFilter{
		VerificationStatus: in.VerificationStatus,
		City:               strings.TrimSpace(in.City),
		Limit:              in.Limit,
		Offset:             in.Offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	}, nil
}

// Update aplica los campos presentes y recalcula completitud y trust score.
// Renombrar la empresa no toca sus alias.
func (uc *CompanyUseCase) Update(ctx context.Context, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	c, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name, err := alias.ValidateName(*in.Name)
		if err != nil {
			return nil, err
		}
		c.Name = name
	}
	setString(&c.Email, in.Email)
	setString(&c.Description, in.Description)
	setString(&c.TaxID, in.TaxID)
	setString(&c.Website, in.Website)
	setString(&c.Phone, in.Phone)
	setString(&c.Address, in.Address)
	setString(&c.City, in.City)
	setString(&c.Country, in.Country)
	setString(&c.PriceRange, in.PriceRange)
	if in.HousingUnits != nil {
		c.HousingUnits = in.HousingUnits
	}
	if in.Capacity != nil {
		c.Capacity = in.Capacity
	}
	if in.Amenities != nil {
		c.Amenities = *in.Amenities
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return uc.refreshed(ctx, c)
}

// SetVerification cambia el estado de verificación (admin) y recalcula el trust score.
func (uc *CompanyUseCase) SetVerification(ctx context.Context, id, status string) (*dto.CompanyResponse, error) {
	if !entity.IsValidVerificationStatus(status) {
		return nil, fmt.Errorf("verification_status %q: %w", status, domain.ErrInvalidInput)
	}
	c, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateVerification(ctx, id, status); err != nil {
		return nil, err
	}
	c.VerificationStatus = status
	return uc.refreshed(ctx, c)
}

// Tasks tareas de completitud del perfil de la empresa.
func (uc *CompanyUseCase) Tasks(ctx context.Context, id string) (*dto.TaskListResponse, error) {
	c, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toTaskListResponse(scoring.CompanyTasks(c)), nil
}

func (uc *CompanyUseCase) get(ctx context.Context, id string) (*entity.Company, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

// refreshed recalcula scores tras una escritura correcta. Si el recálculo falla se devuelve
// la empresa tal como quedó escrita.
func (uc *CompanyUseCase) refreshed(ctx context.Context, c *entity.Company) (*dto.CompanyResponse, error) {
	if uc.scores == nil {
		return entityToCompanyResponse(c), nil
	}
	uc.scores.refreshCompany(ctx, c.ID)
	fresh, err := uc.repo.GetByID(ctx, c.ID)
	if err != nil || fresh == nil {
		return entityToCompanyResponse(c), nil
	}
	return entityToCompanyResponse(fresh), nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

func entityToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	amenities := c.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return &dto.CompanyResponse{
		ID:                   c.ID,
		Name:                 c.Name,
		Email:                c.Email,
		Description:          c.Description,
		TaxID:                c.TaxID,
		Website:              c.Website,
		Phone:                c.Phone,
		Address:              c.Address,
		City:                 c.City,
		Country:              c.Country,
		HousingUnits:         c.HousingUnits,
		Capacity:             c.Capacity,
		PriceRange:           c.PriceRange,
		Amenities:            amenities,
		VerificationStatus:   c.VerificationStatus,
		ResponseRate:         c.ResponseRate,
		AvgResponseTimeHours: c.AvgResponseTimeHours,
		AverageRating:        c.AverageRating,
		ReviewCount:          c.ReviewCount,
		TrustScore:           c.TrustScore,
		DataCompleteness:     c.DataCompleteness,
		Status:               c.Status,
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            c.UpdatedAt,
	}
}
