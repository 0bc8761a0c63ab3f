package repository

import (
	"context"

	"friendlyeats/internal/domain/entity"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	ListByRestaurantID(ctx context.Context, restaurantID string) ([]*entity.Review, error)
}
