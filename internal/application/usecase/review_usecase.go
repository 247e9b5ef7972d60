package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/jhoicas/housing-reviews-api/internal/application/dto"
	"github.com/jhoicas/housing-reviews-api/internal/domain"
	"github.com/jhoicas/housing-reviews-api/internal/domain/entity"
	"github.com/jhoicas/housing-reviews-api/internal/domain/repository"
	"github.com/jhoicas/housing-reviews-api/internal/domain/scoring"
)

// Actor identidad del llamante tal como llega en el JWT.
type Actor struct {
	UserID    string
	CompanyID string
	Role      string
}

// ReviewUseCase reseñas de estudiantes, votos útiles y respuestas de empresa.
type ReviewUseCase struct {
	reviews   repository.ReviewRepository
	companies repository.CompanyRepository
	scores    *ScoreUseCase
}

// NewReviewUseCase construye el caso de uso.
func NewReviewUseCase(reviews repository.ReviewRepository, companies repository.CompanyRepository, scores *ScoreUseCase) *ReviewUseCase {
	return &ReviewUseCase{
		reviews:   reviews,
		companies: companies,
		scores:    scores,
	}
}

// Create publica la reseña de un estudiante. Una sola reseña por usuario y empresa (domain.ErrDuplicate).
// Tras guardar refresca los contadores de la empresa y ambos trust scores.
func (uc *ReviewUseCase) Create(ctx context.Context, actor Actor, in dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if actor.Role != entity.RoleStudent {
		return nil, domain.ErrForbidden
	}
	content := strings.TrimSpace(in.Content)
	if in.Rating < 1 || in.Rating > 5 || content == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.StayStart != nil && in.StayEnd != nil && in.StayEnd.Before(*in.StayStart) {
		return nil, fmt.Errorf("stay_end anterior a stay_start: %w", domain.ErrInvalidInput)
	}
	company, err := uc.companies.GetByID(ctx, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	r := &entity.Review{
		ID:             uuid.New().String(),
		UserID:         actor.UserID,
		CompanyID:      company.ID,
		Rating:         in.Rating,
		Title:          strings.TrimSpace(in.Title),
		Content:        content,
		Photos:         in.Photos,
		CategoryTags:   in.CategoryTags,
		IsVerifiedStay: in.IsVerifiedStay,
		StayStart:      in.StayStart,
		StayEnd:        in.StayEnd,
		MonthlyRent:    in.MonthlyRent,
		Status:         entity.ModerationApproved,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	r.QualityScore = uc.scores.calculator().ReviewQuality(scoring.ReviewQualityInputs{
		ContentLength:        utf8.RuneCountInString(content),
		HasPhotos:            len(r.Photos) > 0,
		HasCategoryTags:      len(r.CategoryTags) > 0,
		IsVerifiedStay:       r.IsVerifiedStay,
		HasDetailedInfo:      r.HasDetailedInfo(),
		SentimentConsistency: in.SentimentConsistency,
	}).Score

	if err := uc.reviews.Create(ctx, r); err != nil {
		return nil, err
	}
	if uc.scores != nil {
		uc.scores.refreshCompany(ctx, r.CompanyID)
		uc.scores.refreshUser(ctx, r.UserID)
	}
	return entityToReviewResponse(r), nil
}

// ListByCompany reseñas aprobadas de una empresa, más recientes primero.
func (uc *ReviewUseCase) ListByCompany(ctx context.Context, companyID string, page dto.PageRequest) (*dto.ReviewListResponse, error) {
	page.DefaultPage()
	company, err := uc.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.reviews.ListByCompany(ctx, companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.reviews.CountApprovedByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReviewResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *entityToReviewResponse(r))
	}
	return &dto.ReviewListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// Helpful registra el voto útil del usuario. El autor no puede votar su propia reseña;
// un segundo voto del mismo usuario no cuenta.
func (uc *ReviewUseCase) Helpful(ctx context.Context, actor Actor, reviewID string) (*dto.HelpfulVoteResponse, error) {
	r, err := uc.getReview(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if r.UserID == actor.UserID {
		return nil, fmt.Errorf("voto sobre reseña propia: %w", domain.ErrForbidden)
	}
	counted, err := uc.reviews.AddHelpfulVote(ctx, r.ID, actor.UserID)
	if err != nil {
		return nil, err
	}
	if counted && uc.scores != nil {
		uc.scores.refreshUser(ctx, r.UserID)
	}
	return &dto.HelpfulVoteResponse{ReviewID: r.ID, Counted: counted}, nil
}

// Respond crea la respuesta de la empresa reseñada; queda pendiente de moderación.
func (uc *ReviewUseCase) Respond(ctx context.Context, actor Actor, reviewID string, in dto.CreateResponseRequest) (*dto.ReviewReplyResponse, error) {
	r, err := uc.getReview(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if actor.Role != entity.RoleCompany || actor.CompanyID != r.CompanyID {
		return nil, domain.ErrForbidden
	}
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, domain.ErrInvalidInput
	}
	resp := &entity.ReviewResponse{
		ID:        uuid.New().String(),
		ReviewID:  r.ID,
		CompanyID: r.CompanyID,
		AuthorID:  actor.UserID,
		Content:   content,
		Status:    entity.ModerationPending,
		CreatedAt: time.Now(),
	}
	if err := uc.reviews.CreateResponse(ctx, resp); err != nil {
		return nil, err
	}
	return entityToReplyResponse(resp), nil
}

// Moderate aprueba o rechaza una respuesta pendiente (admin). La aprobación refresca
// tasa y tiempo de respuesta de la empresa.
func (uc *ReviewUseCase) Moderate(ctx context.Context, moderatorID, responseID, decision string) (*dto.ReviewReplyResponse, error) {
	if !entity.IsValidModerationDecision(decision) {
		return nil, fmt.Errorf("decisión %q: %w", decision, domain.ErrInvalidInput)
	}
	resp, err := uc.reviews.GetResponse(ctx, responseID)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, domain.ErrNotFound
	}
	if resp.Status != entity.ModerationPending {
		return nil, fmt.Errorf("respuesta ya moderada (%s): %w", resp.Status, domain.ErrConflict)
	}
	now := time.Now()
	resp.Status = decision
	resp.ModeratedBy = optionalID(moderatorID)
	resp.ModeratedAt = &now
	if err := uc.reviews.ModerateResponse(ctx, resp); err != nil {
		return nil, err
	}
	if decision == entity.ModerationApproved && uc.scores != nil {
		uc.scores.refreshCompany(ctx, resp.CompanyID)
	}
	return entityToReplyResponse(resp), nil
}

func (uc *ReviewUseCase) getReview(ctx context.Context, id string) (*entity.Review, error) {
	r, err := uc.reviews.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	return r, nil
}

func entityToReviewResponse(r *entity.Review) *dto.ReviewResponse {
	return &dto.ReviewResponse{
		ID:             r.ID,
		UserID:         r.UserID,
		CompanyID:      r.CompanyID,
		Rating:         r.Rating,
		Title:          r.Title,
		Content:        r.Content,
		Photos:         r.Photos,
		CategoryTags:   r.CategoryTags,
		IsVerifiedStay: r.IsVerifiedStay,
		StayStart:      r.StayStart,
		StayEnd:        r.StayEnd,
		MonthlyRent:    r.MonthlyRent,
		QualityScore:   r.QualityScore,
		HelpfulCount:   r.HelpfulCount,
		Status:         r.Status,
		CreatedAt:      r.CreatedAt,
	}
}

func entityToReplyResponse(r *entity.ReviewResponse) *dto.ReviewReplyResponse {
	return &dto.ReviewReplyResponse{
		ID:          r.ID,
		ReviewID:    r.ReviewID,
		CompanyID:   r.CompanyID,
		AuthorID:    r.AuthorID,
		Content:     r.Content,
		Status:      r.Status,
		ModeratedBy: r.ModeratedBy,
		ModeratedAt: r.ModeratedAt,
		CreatedAt:   r.CreatedAt,
	}
}
