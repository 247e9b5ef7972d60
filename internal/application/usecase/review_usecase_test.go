package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/housing-reviews-api/internal/application/dto"
	"github.com/jhoicas/housing-reviews-api/internal/application/usecase"
	"github.com/jhoicas/housing-reviews-api/internal/domain"
	"github.com/jhoicas/housing-reviews-api/internal/domain/entity"
	"github.com/jhoicas/housing-reviews-api/internal/domain/scoring"
)

const (
	studentID  = "44444444-4444-4444-4444-444444444444"
	student2ID = "55555555-5555-5555-5555-555555555555"
	repID      = "66666666-6666-6666-6666-666666666666"
)

type reviewFixture struct {
	companies *memCompanies
	users     *memUsers
	reviews   *memReviews
	uc        *usecase.ReviewUseCase
}

func newReviewFixture(t *testing.T) *reviewFixture {
	t.Helper()
	companies := newMemCompanies()
	companies.put(&entity.Company{ID: ipgID, Name: ipgName, VerificationStatus: entity.VerificationVerified, Status: "active"})
	users := newMemUsers()
	for _, u := range []*entity.User{
		{ID: studentID, Email: "ana@example.com", Role: entity.RoleStudent, Status: "active", CreatedAt: time.Now()},
		{ID: student2ID, Email: "luis@example.com", Role: entity.RoleStudent, Status: "active", CreatedAt: time.Now()},
	} {
		require.NoError(t, users.Create(context.Background(), u))
	}
	reviews := newMemReviews()
	scores := usecase.NewScoreUseCase(users, companies, nil)
	return &reviewFixture{
		companies: companies,
		users:     users,
		reviews:   reviews,
		uc:        usecase.NewReviewUseCase(reviews, companies, scores),
	}
}

func student(id string) usecase.Actor {
	return usecase.Actor{UserID: id, Role: entity.RoleStudent}
}

func (f *reviewFixture) create(t *testing.T, userID string) *dto.ReviewResponse {
	t.Helper()
	out, err := f.uc.Create(context.Background(), student(userID), dto.CreateReviewRequest{
		CompanyID: ipgID, Rating: 4, Content: "Buena residencia, cerca del campus.",
	})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateReview_CalculaCalidadYRefrescaScores(t *testing.T) {
	f := newReviewFixture(t)
	start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	rent := decimal.NewFromInt(350)
	full := 1.0

	out, err := f.uc.Create(context.Background(), student(studentID), dto.CreateReviewRequest{
		CompanyID:            ipgID,
		Rating:               5,
		Content:              strings.Repeat("a", 300),
		Photos:               []string{"https://cdn/1.jpg"},
		CategoryTags:         []string{"limpieza"},
		IsVerifiedStay:       true,
		StayStart:            &start,
		StayEnd:              &end,
		MonthlyRent:          &rent,
		SentimentConsistency: &full,
	})
	require.NoError(t, err)
	assert.Equal(t, 100, out.QualityScore)
	assert.Equal(t, entity.ModerationApproved, out.Status)

	assert.Equal(t, 1, f.users.scored[studentID], "el trust del autor se recalcula")
	_, ok := f.companies.scores[ipgID]
	assert.True(t, ok, "los contadores de la empresa se recalculan")
}

// La calidad de la reseña usa la política del ScoreUseCase inyectado.
func TestCreateReview_UsaPoliticaDeScoringInyectada(t *testing.T) {
	f := newReviewFixture(t)
	cfg := scoring.DefaultConfig()
	cfg.Review.SentimentConsistency = 1
	scores := usecase.NewScoreUseCase(f.users, f.companies, nil).WithCalculator(scoring.NewCalculator(cfg))
	uc := usecase.NewReviewUseCase(f.reviews, f.companies, scores)

	in := dto.CreateReviewRequest{
		CompanyID:      ipgID,
		Rating:         5,
		Content:        strings.Repeat("a", 300),
		Photos:         []string{"https://cdn/1.jpg"},
		CategoryTags:   []string{"limpieza"},
		IsVerifiedStay: true,
	}
	out, err := uc.Create(context.Background(), student(studentID), in)
	require.NoError(t, err)

	base, err := f.uc.Create(context.Background(), student(student2ID), in)
	require.NoError(t, err)
	assert.Greater(t, out.QualityScore, base.QualityScore, "sin sentimiento se usa el valor de la política")
}

func TestCreateReview_UnaPorUsuarioYEmpresa(t *testing.T) {
	f := newReviewFixture(t)
	f.create(t, studentID)

	_, err := f.uc.Create(context.Background(), student(studentID), dto.CreateReviewRequest{
		CompanyID: ipgID, Rating: 2, Content: "Otra vez",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreateReview_Validaciones(t *testing.T) {
	f := newReviewFixture(t)
	ctx := context.Background()

	_, err := f.uc.Create(ctx, usecase.Actor{UserID: repID, Role: entity.RoleCompany}, dto.CreateReviewRequest{
		CompanyID: ipgID, Rating: 5, Content: "autobombo",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden, "solo estudiantes reseñan")

	_, err = f.uc.Create(ctx, student(studentID), dto.CreateReviewRequest{CompanyID: ipgID, Rating: 6, Content: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Create(ctx, student(studentID), dto.CreateReviewRequest{CompanyID: ipgID, Rating: 3, Content: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Create(ctx, student(studentID), dto.CreateReviewRequest{
		CompanyID: "99999999-9999-9999-9999-999999999999", Rating: 3, Content: "x",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Votos útiles y respuestas
// ──────────────────────────────────────────────────────────────────────────────

func TestHelpful_AutorNoPuedeVotar(t *testing.T) {
	f := newReviewFixture(t)
	r := f.create(t, studentID)

	_, err := f.uc.Helpful(context.Background(), student(studentID), r.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestHelpful_SegundoVotoNoCuenta(t *testing.T) {
	f := newReviewFixture(t)
	r := f.create(t, studentID)

	out, err := f.uc.Helpful(context.Background(), student(student2ID), r.ID)
	require.NoError(t, err)
	assert.True(t, out.Counted)

	out, err = f.uc.Helpful(context.Background(), student(student2ID), r.ID)
	require.NoError(t, err)
	assert.False(t, out.Counted)

	got, err := f.reviews.GetByID(context.Background(), r.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.HelpfulCount)
}

func TestRespond_SoloRepresentanteDeLaEmpresa(t *testing.T) {
	f := newReviewFixture(t)
	r := f.create(t, studentID)
	ctx := context.Background()

	_, err := f.uc.Respond(ctx, usecase.Actor{UserID: repID, CompanyID: pendingID, Role: entity.RoleCompany}, r.ID,
		dto.CreateResponseRequest{Content: "Gracias"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.uc.Respond(ctx, student(student2ID), r.ID, dto.CreateResponseRequest{Content: "Gracias"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	out, err := f.uc.Respond(ctx, usecase.Actor{UserID: repID, CompanyID: ipgID, Role: entity.RoleCompany}, r.ID,
		dto.CreateResponseRequest{Content: "  Gracias por la reseña "})
	require.NoError(t, err)
	assert.Equal(t, entity.ModerationPending, out.Status)
	assert.Equal(t, "Gracias por la reseña", out.Content)
	assert.Equal(t, ipgID, out.CompanyID)
}

func TestModerate_AprobarUnaSolaVez(t *testing.T) {
	f := newReviewFixture(t)
	r := f.create(t, studentID)
	ctx := context.Background()
	resp, err := f.uc.Respond(ctx, usecase.Actor{UserID: repID, CompanyID: ipgID, Role: entity.RoleCompany}, r.ID,
		dto.CreateResponseRequest{Content: "Gracias"})
	require.NoError(t, err)

	out, err := f.uc.Moderate(ctx, adminID, resp.ID, entity.ModerationApproved)
	require.NoError(t, err)
	assert.Equal(t, entity.ModerationApproved, out.Status)
	require.NotNil(t, out.ModeratedBy)
	assert.Equal(t, adminID, *out.ModeratedBy)

	_, err = f.uc.Moderate(ctx, adminID, resp.ID, entity.ModerationRejected)
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = f.uc.Moderate(ctx, adminID, resp.ID, "quizás")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Moderate(ctx, adminID, "no-existe", entity.ModerationApproved)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListByCompany_Paginado(t *testing.T) {
	f := newReviewFixture(t)
	f.create(t, studentID)
	f.create(t, student2ID)

	// Pendiente de moderación: cuenta en review_count de la empresa pero no se lista.
	f.reviews.rows["77777777-7777-7777-7777-777777777777"] = &entity.Review{
		ID: "77777777-7777-7777-7777-777777777777", CompanyID: ipgID, UserID: repID,
		Rating: 2, Status: entity.ModerationPending, CreatedAt: time.Now(),
	}
	c := f.companies.lookup(ipgID)
	c.ReviewCount = 3
	f.companies.put(c)

	out, err := f.uc.ListByCompany(context.Background(), ipgID, dto.PageRequest{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, out.Items, 1)
	assert.Equal(t, 1, out.Page.Limit)
	assert.Equal(t, 2, out.Page.Total, "el total cuenta solo las reseñas listables")

	out, err = f.uc.ListByCompany(context.Background(), ipgID, dto.PageRequest{Limit: 10})
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)

	_, err = f.uc.ListByCompany(context.Background(), "no-existe", dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
