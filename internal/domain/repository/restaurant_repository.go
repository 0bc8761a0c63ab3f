package repository

import (
	"context"

	"friendlyeats/internal/domain/entity"
)

type RestaurantRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Restaurant, error)

	// ListPage returns a batch ordered by document ID starting after the
	// opaque cursor. The returned cursor is empty once the collection is
	// exhausted.
	ListPage(ctx context.Context, limit int, cursor string) ([]*entity.Restaurant, string, error)

	// ListCatalog returns a projection of every restaurant carrying just
	// the fields filtering needs.
	ListCatalog(ctx context.Context) ([]*entity.Restaurant, error)

	// GetByIDs batch-fetches full documents; ids that no longer exist are
	// silently omitted from the result.
	GetByIDs(ctx context.Context, ids []string) ([]*entity.Restaurant, error)

	UpdateRating(ctx context.Context, id string, average float64) error
}
