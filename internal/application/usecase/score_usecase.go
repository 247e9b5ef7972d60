package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/housing-reviews-api/internal/application/dto"
	"github.com/jhoicas/housing-reviews-api/internal/domain"
	"github.com/jhoicas/housing-reviews-api/internal/domain/repository"
	"github.com/jhoicas/housing-reviews-api/internal/domain/scoring"
	"github.com/jhoicas/housing-reviews-api/pkg/logger"
)

// ScoreUseCase recalcula y persiste trust score y completitud de usuarios y empresas.
type ScoreUseCase struct {
	users     repository.UserRepository
	companies repository.CompanyRepository
	calc      *scoring.Calculator
	log       *logger.Logger
	now       func() time.Time
}

// NewScoreUseCase construye el caso de uso con la política de scoring por defecto.
func NewScoreUseCase(users repository.UserRepository, companies repository.CompanyRepository, log *logger.Logger) *ScoreUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ScoreUseCase{
		users:     users,
		companies: companies,
		calc:      scoring.NewDefault(),
		log:       log.Component("scoring"),
		now:       time.Now,
	}
}

// WithCalculator sustituye la política de scoring; la comparten los casos de uso que reciben este ScoreUseCase.
func (uc *ScoreUseCase) WithCalculator(c *scoring.Calculator) *ScoreUseCase {
	if c != nil {
		uc.calc = c
	}
	return uc
}

func (uc *ScoreUseCase) calculator() *scoring.Calculator {
	if uc == nil {
		return scoring.NewDefault()
	}
	return uc.calc
}

// RecalculateUser calcula el trust score del usuario con sus contadores actuales y lo guarda.
func (uc *ScoreUseCase) RecalculateUser(ctx context.Context, id string) (*dto.ScoreResponse, error) {
	u, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	stats, err := uc.users.Stats(ctx, id)
	if err != nil {
		return nil, err
	}

	completion := scoring.UserProfileCompletion(&u.Profile)
	completionF := float64(completion)
	ratio := 0.0
	if stats.ReviewCount > 0 {
		ratio = float64(stats.HelpfulVotes) / float64(stats.ReviewCount)
	}
	age := uc.ageDays(u.CreatedAt)

	b := uc.calc.UserTrust(scoring.UserTrustInputs{
		ProfileCompletion: &completionF,
		HelpfulRatio:      &ratio,
		AccountAgeDays:    &age,
		ReviewCount:       &stats.ReviewCount,
	})
	if err := uc.users.UpdateScores(ctx, id, b.Score, completion); err != nil {
		return nil, err
	}
	return toScoreResponse(b, completion, scoring.MissingUserFields(&u.Profile)), nil
}

// RecalculateCompany agrega reseñas y respuestas, calcula el trust score y guarda los contadores.
func (uc *ScoreUseCase) RecalculateCompany(ctx context.Context, id string) (*dto.ScoreResponse, error) {
	c, err := uc.companies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	stats, err := uc.companies.Stats(ctx, id)
	if err != nil {
		return nil, err
	}

	completeness := scoring.CompanyDataCompleteness(c)
	completenessF := float64(completeness)
	rate := stats.ResponseRate.InexactFloat64()
	rating := stats.AverageRating.InexactFloat64()
	age := uc.ageDays(c.CreatedAt)
	in := scoring.CompanyTrustInputs{
		VerificationStatus:      &c.VerificationStatus,
		DataCompleteness:        &completenessF,
		ResponseRate:            &rate,
		AverageRating:           &rating,
		ReviewCount:             &stats.ReviewCount,
		VerifiedRepresentatives: &stats.VerifiedRepresentatives,
		AccountAgeDays:          &age,
	}
	if stats.AvgResponseTimeHours != nil {
		hours := stats.AvgResponseTimeHours.InexactFloat64()
		in.AvgResponseTimeHours = &hours
	}

	b := uc.calc.CompanyTrust(in)
	if err := uc.companies.UpdateScores(ctx, id, repository.CompanyScores{
		TrustScore:       b.Score,
		DataCompleteness: completeness,
		Stats:            *stats,
	}); err != nil {
		return nil, err
	}
	return toScoreResponse(b, completeness, nil), nil
}

// RecalculateAll recorre todos los usuarios y empresas. Un fallo individual se registra y no corta el recorrido.
func (uc *ScoreUseCase) RecalculateAll(ctx context.Context) (*dto.RecalculateSummary, error) {
	sum := &dto.RecalculateSummary{}

	userIDs, err := uc.users.ListIDs(ctx)
	if err != nil {
		return nil, err
	}
	for _, id := range userIDs {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		if _, err := uc.RecalculateUser(ctx, id); err != nil {
			uc.log.Warn().Err(err).Str("user_id", id).Msg("recalculo de usuario fallido")
			sum.Failed++
			continue
		}
		sum.Users++
	}

	companyIDs, err := uc.companies.ListIDs(ctx)
	if err != nil {
		return sum, err
	}
	for _, id := range companyIDs {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		if _, err := uc.RecalculateCompany(ctx, id); err != nil {
			uc.log.Warn().Err(err).Str("company_id", id).Msg("recalculo de empresa fallido")
			sum.Failed++
			continue
		}
		sum.Companies++
	}

	uc.log.Info().
		Int("users", sum.Users).
		Int("companies", sum.Companies).
		Int("failed", sum.Failed).
		Msg("recalculo completo")
	return sum, nil
}

// refreshCompany recálculo tras un cambio que afecta al score; el error solo se registra.
func (uc *ScoreUseCase) refreshCompany(ctx context.Context, id string) {
	if _, err := uc.RecalculateCompany(ctx, id); err != nil {
		uc.log.Warn().Err(err).Str("company_id", id).Msg("no se pudo refrescar el score de la empresa")
	}
}

func (uc *ScoreUseCase) refreshUser(ctx context.Context, id string) {
	if _, err := uc.RecalculateUser(ctx, id); err != nil {
		uc.log.Warn().Err(err).Str("user_id", id).Msg("no se pudo refrescar el score del usuario")
	}
}

func (uc *ScoreUseCase) ageDays(created time.Time) float64 {
	if created.IsZero() {
		return 0
	}
	d := uc.now().Sub(created).Hours() / 24
	if d < 0 {
		return 0
	}
	return d
}

func toScoreResponse(b scoring.Breakdown, completion int, missing []string) *dto.ScoreResponse {
	factors := make([]dto.ScoreFactorDTO, 0, len(b.Factors))
	for _, f := range b.Factors {
		factors = append(factors, dto.ScoreFactorDTO{Name: f.Name, Weight: f.Weight, Value: f.Value})
	}
	return &dto.ScoreResponse{
		TrustScore:    b.Score,
		Completion:    completion,
		MissingFields: missing,
		Factors:       factors,
	}
}

func toTaskListResponse(l scoring.TaskList) *dto.TaskListResponse {
	tasks := make([]dto.TaskDTO, 0, len(l.Tasks))
	for _, t := range l.Tasks {
		tasks = append(tasks, dto.TaskDTO{Field: t.Field, Label: t.Label, Points: t.Points, Completed: t.Completed})
	}
	return &dto.TaskListResponse{Tasks: tasks, EarnedPoints: l.EarnedPoints, TotalPoints: l.TotalPoints}
}
