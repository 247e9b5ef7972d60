package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/housing-reviews-api/internal/application/auth"
	"github.com/jhoicas/housing-reviews-api/internal/application/dto"
	"github.com/jhoicas/housing-reviews-api/internal/domain"
	"github.com/jhoicas/housing-reviews-api/internal/domain/entity"
	"github.com/jhoicas/housing-reviews-api/internal/domain/repository"
	pkgjwt "github.com/jhoicas/housing-reviews-api/pkg/jwt"
)

const (
	testSecret    = "test-secret-key-for-unit-tests"
	testCompanyID = "00000000-0000-0000-0000-000000000002"
)

// Solo se implementan los métodos que usa AuthUseCase; el resto provoca panic si se llama.
type fakeUsers struct {
	repository.UserRepository
	byEmail map[string]*entity.User
}

func (f *fakeUsers) Create(_ context.Context, u *entity.User) error {
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return f.byEmail[email], nil
}

type fakeCompanies struct {
	repository.CompanyRepository
}

func (fakeCompanies) GetByID(_ context.Context, id string) (*entity.Company, error) {
	if id == testCompanyID {
		return &entity.Company{ID: id, Name: "Residencia Estrela"}, nil
	}
	return nil, nil
}

func newAuth() *auth.AuthUseCase {
	return auth.NewAuthUseCase(
		&fakeUsers{byEmail: map[string]*entity.User{}},
		fakeCompanies{},
		auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "housing-reviews-test"},
	)
}

func TestRegister_EstudiantePorDefecto(t *testing.T) {
	uc := newAuth()
	out, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{Email: " Ana@Example.com ", Password: "secreto123"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleStudent, out.Role)
	assert.Equal(t, "ana@example.com", out.Email)
	assert.Nil(t, out.CompanyID)

	_, err = uc.RegisterUser(context.Background(), dto.RegisterRequest{Email: "ana@example.com", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_RepresentanteExigeEmpresa(t *testing.T) {
	uc := newAuth()
	ctx := context.Background()

	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "rep@example.com", Password: "secreto123", Role: entity.RoleCompany})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	missing := "99999999-9999-9999-9999-999999999999"
	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Email: "rep@example.com", Password: "secreto123", Role: entity.RoleCompany, CompanyID: &missing})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	cid := testCompanyID
	out, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "rep@example.com", Password: "secreto123", Role: entity.RoleCompany, CompanyID: &cid})
	require.NoError(t, err)
	require.NotNil(t, out.CompanyID)
	assert.Equal(t, testCompanyID, *out.CompanyID)

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Email: "root@example.com", Password: "secreto123", Role: entity.RoleAdmin})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "los admin no se registran por API")
}

func TestLogin_TokenConRolYEmpresa(t *testing.T) {
	uc := newAuth()
	ctx := context.Background()
	cid := testCompanyID
	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "rep@example.com", Password: "secreto123", Role: entity.RoleCompany, CompanyID: &cid})
	require.NoError(t, err)

	out, err := uc.Login(ctx, dto.LoginRequest{Email: "REP@example.com", Password: "secreto123"})
	require.NoError(t, err)

	userID, companyID, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, testCompanyID, companyID)
	assert.Equal(t, entity.RoleCompany, role)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "rep@example.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "nadie@example.com", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
