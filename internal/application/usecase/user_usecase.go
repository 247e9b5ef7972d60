package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/housing-reviews-api/internal/application/dto"
	"github.com/jhoicas/housing-reviews-api/internal/domain"
	"github.com/jhoicas/housing-reviews-api/internal/domain/entity"
	"github.com/jhoicas/housing-reviews-api/internal/domain/repository"
	"github.com/jhoicas/housing-reviews-api/internal/domain/scoring"
)

// UserUseCase aplica reglas de negocio para usuarios.
type UserUseCase struct {
	repo   repository.UserRepository
	scores *ScoreUseCase
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository, scores *ScoreUseCase) *UserUseCase {
	return &UserUseCase{repo: repo, scores: scores}
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	u, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return entityToUserResponse(u), nil
}

// UpdateProfile mezcla los campos presentes en el perfil y recalcula completitud y trust score.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, id string, in dto.UserProfileDTO) (*dto.UserResponse, error) {
	u, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	mergeProfile(&u.Profile, in)
	if err := uc.repo.UpdateProfile(ctx, id, &u.Profile); err != nil {
		return nil, err
	}
	u.ProfileCompletion = scoring.UserProfileCompletion(&u.Profile)
	if uc.scores != nil {
		uc.scores.refreshUser(ctx, id)
		if fresh, err := uc.repo.GetByID(ctx, id); err == nil && fresh != nil {
			u = fresh
		}
	}
	return entityToUserResponse(u), nil
}

// Score recalcula y devuelve el desglose del trust score del usuario.
func (uc *UserUseCase) Score(ctx context.Context, id string) (*dto.ScoreResponse, error) {
	return uc.scores.RecalculateUser(ctx, id)
}

// Tasks tareas de gamificación del perfil, en orden fijo.
func (uc *UserUseCase) Tasks(ctx context.Context, id string) (*dto.TaskListResponse, error) {
	u, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toTaskListResponse(scoring.UserTasks(&u.Profile)), nil
}

func (uc *UserUseCase) get(ctx context.Context, id string) (*entity.User, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func mergeProfile(p *entity.UserProfile, in dto.UserProfileDTO) {
	setString(&p.Nationality, in.Nationality)
	setString(&p.Gender, in.Gender)
	setString(&p.PreferredLanguage, in.PreferredLanguage)
	setString(&p.CurrentCountry, in.CurrentCountry)
	setString(&p.CurrentCity, in.CurrentCity)
	setString(&p.HomeUniversity, in.HomeUniversity)
	setString(&p.DestinationUniversity, in.DestinationUniversity)
	setString(&p.StudyField, in.StudyField)
	setString(&p.StudyLevel, in.StudyLevel)
	setString(&p.HousingType, in.HousingType)
	if in.SpokenLanguages != nil {
		langs := make([]string, 0, len(*in.SpokenLanguages))
		for _, l := range *in.SpokenLanguages {
			if l = strings.TrimSpace(l); l != "" {
				langs = append(langs, l)
			}
		}
		p.SpokenLanguages = langs
	}
	if in.BirthDate != nil {
		p.BirthDate = in.BirthDate
	}
	if in.StudyStartDate != nil {
		p.StudyStartDate = in.StudyStartDate
	}
	if in.StudyEndDate != nil {
		p.StudyEndDate = in.StudyEndDate
	}
	if in.MonthlyRent != nil {
		p.MonthlyRent = in.MonthlyRent
	}
	if in.IsRenting != nil {
		p.IsRenting = in.IsRenting
	}
	if in.HasLivedAbroad != nil {
		p.HasLivedAbroad = in.HasLivedAbroad
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func profileToDTO(p entity.UserProfile) dto.UserProfileDTO {
	out := dto.UserProfileDTO{
		Nationality:           optionalString(p.Nationality),
		Gender:                optionalString(p.Gender),
		BirthDate:             p.BirthDate,
		PreferredLanguage:     optionalString(p.PreferredLanguage),
		CurrentCountry:        optionalString(p.CurrentCountry),
		CurrentCity:           optionalString(p.CurrentCity),
		HomeUniversity:        optionalString(p.HomeUniversity),
		DestinationUniversity: optionalString(p.DestinationUniversity),
		StudyField:            optionalString(p.StudyField),
		StudyLevel:            optionalString(p.StudyLevel),
		StudyStartDate:        p.StudyStartDate,
		StudyEndDate:          p.StudyEndDate,
		HousingType:           optionalString(p.HousingType),
		MonthlyRent:           p.MonthlyRent,
		IsRenting:             p.IsRenting,
		HasLivedAbroad:        p.HasLivedAbroad,
	}
	if len(p.SpokenLanguages) > 0 {
		langs := p.SpokenLanguages
		out.SpokenLanguages = &langs
	}
	return out
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:                u.ID,
		CompanyID:         u.CompanyID,
		Email:             u.Email,
		Name:              u.Name,
		Role:              u.Role,
		Status:            u.Status,
		Profile:           profileToDTO(u.Profile),
		TrustScore:        u.TrustScore,
		ProfileCompletion: u.ProfileCompletion,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}
