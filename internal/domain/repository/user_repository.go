package repository

import (
	"context"

	"friendlyeats/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
}
