package repository

import (
	"context"

	"github.com/jhoicas/housing-reviews-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	UpdateProfile(ctx context.Context, id string, p *entity.UserProfile) error
	UpdateScores(ctx context.Context, id string, trustScore, profileCompletion int) error
	Stats(ctx context.Context, id string) (*entity.UserStats, error)
	ListIDs(ctx context.Context) ([]string, error)
}
