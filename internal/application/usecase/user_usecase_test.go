package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/housing-reviews-api/internal/application/dto"
	"github.com/jhoicas/housing-reviews-api/internal/application/usecase"
	"github.com/jhoicas/housing-reviews-api/internal/domain"
	"github.com/jhoicas/housing-reviews-api/internal/domain/entity"
	"github.com/jhoicas/housing-reviews-api/internal/domain/scoring"
)

func newUserFixture(t *testing.T) (*usecase.UserUseCase, *usecase.ScoreUseCase, *memUsers) {
	t.Helper()
	users := newMemUsers()
	require.NoError(t, users.Create(context.Background(), &entity.User{
		ID: studentID, Email: "ana@example.com", Role: entity.RoleStudent, Status: "active",
		CreatedAt: time.Now().Add(-365 * 24 * time.Hour),
	}))
	scores := usecase.NewScoreUseCase(users, newMemCompanies(), nil)
	return usecase.NewUserUseCase(users, scores), scores, users
}

func strPtr(s string) *string { return &s }

func TestUpdateProfile_MezclaParcialYRecalcula(t *testing.T) {
	uc, _, _ := newUserFixture(t)
	ctx := context.Background()

	out, err := uc.UpdateProfile(ctx, studentID, dto.UserProfileDTO{
		Nationality: strPtr(" PT "),
		StudyField:  strPtr("Ingeniería"),
	})
	require.NoError(t, err)
	require.NotNil(t, out.Profile.Nationality)
	assert.Equal(t, "PT", *out.Profile.Nationality)
	assert.Equal(t, 12, out.ProfileCompletion, "round(2/17×100)")

	no := false
	out, err = uc.UpdateProfile(ctx, studentID, dto.UserProfileDTO{IsRenting: &no})
	require.NoError(t, err)
	require.NotNil(t, out.Profile.StudyField, "los campos ausentes se conservan")
	assert.Equal(t, "Ingeniería", *out.Profile.StudyField)
	assert.Equal(t, 18, out.ProfileCompletion, "un false explícito cuenta como rellenado")
	assert.Positive(t, out.TrustScore)

	_, err = uc.UpdateProfile(ctx, "no-existe", dto.UserProfileDTO{})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserScore_DesgloseYCamposPendientes(t *testing.T) {
	uc, _, users := newUserFixture(t)
	users.stats[studentID] = &entity.UserStats{ReviewCount: 2, HelpfulVotes: 4}

	out, err := uc.Score(context.Background(), studentID)
	require.NoError(t, err)

	assert.Equal(t, 0, out.Completion)
	assert.Len(t, out.MissingFields, 17)
	assert.Equal(t, scoring.UserTrackedFields(), out.MissingFields)
	require.Len(t, out.Factors, 5)
	assert.Equal(t, "profile_completion", out.Factors[0].Name)
	assert.InDelta(t, 100, out.Factors[3].Value, 0.001, "ratio 2 se acota a 100")
	assert.GreaterOrEqual(t, out.TrustScore, 0)
	assert.LessOrEqual(t, out.TrustScore, 100)

	u, err := users.GetByID(context.Background(), studentID)
	require.NoError(t, err)
	assert.Equal(t, out.TrustScore, u.TrustScore, "el score queda persistido")
}

func TestUserTasks_PuntosConseguidos(t *testing.T) {
	uc, _, _ := newUserFixture(t)
	ctx := context.Background()
	yes := true
	_, err := uc.UpdateProfile(ctx, studentID, dto.UserProfileDTO{
		HomeUniversity: strPtr("Universidad de Salamanca"),
		IsRenting:      &yes,
	})
	require.NoError(t, err)

	out, err := uc.Tasks(ctx, studentID)
	require.NoError(t, err)
	assert.Len(t, out.Tasks, 17)
	assert.Equal(t, 20, out.EarnedPoints)
	assert.Equal(t, 130, out.TotalPoints)
}

func TestRecalculateAll_CuentaFallos(t *testing.T) {
	users := newMemUsers()
	require.NoError(t, users.Create(context.Background(), &entity.User{ID: studentID, Email: "a@example.com", Role: entity.RoleStudent}))
	companies := newMemCompanies()
	companies.put(&entity.Company{ID: ipgID, Name: ipgName, VerificationStatus: entity.VerificationVerified})

	sum, err := usecase.NewScoreUseCase(users, companies, nil).RecalculateAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Users)
	assert.Equal(t, 1, sum.Companies)
	assert.Equal(t, 0, sum.Failed)
}
