package usecase

import (
	"context"

	"friendlyeats/internal/domain/entity"
	"friendlyeats/internal/domain/repository"
)

// CatalogUseCase fetches restaurant data and hands out normalized
// snapshots. Every record is normalized once here, at ingestion, so the
// rest of the code only ever sees canonical fields.
type CatalogUseCase struct {
	restaurantRepo repository.RestaurantRepository
	images         ImageResolver
	pageSize       int
}

func NewCatalogUseCase(restaurantRepo repository.RestaurantRepository, images ImageResolver, pageSize int) *CatalogUseCase {
	if pageSize <= 0 {
		pageSize = 20
	}
	return &CatalogUseCase{
		restaurantRepo: restaurantRepo,
		images:         images,
		pageSize:       pageSize,
	}
}

// LoadCatalog fetches the filtering projection of the whole catalog.
func (uc *CatalogUseCase) LoadCatalog(ctx context.Context) ([]*entity.Restaurant, error) {
	catalog, err := uc.restaurantRepo.ListCatalog(ctx)
	if err != nil {
		return nil, err
	}
	for _, restaurant := range catalog {
		restaurant.Normalize()
	}
	return catalog, nil
}

// LoadPage fetches one cursor batch ordered by identifier. An empty
// returned cursor means the catalog is exhausted.
func (uc *CatalogUseCase) LoadPage(ctx context.Context, limit int, cursor string) ([]*entity.Restaurant, string, error) {
	if limit <= 0 {
		limit = uc.pageSize
	}
	restaurants, nextCursor, err := uc.restaurantRepo.ListPage(ctx, limit, cursor)
	if err != nil {
		return nil, "", err
	}
	for _, restaurant := range restaurants {
		restaurant.Normalize()
	}
	return restaurants, nextCursor, nil
}

// LoadDetails batch-fetches full records. Ids absent from the store come
// back in the second return so callers can stop asking for them.
func (uc *CatalogUseCase) LoadDetails(ctx context.Context, ids []string) ([]*entity.Restaurant, []string, error) {
	if len(ids) == 0 {
		return nil, nil, nil
	}

	restaurants, err := uc.restaurantRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	found := make(map[string]bool, len(restaurants))
	for _, restaurant := range restaurants {
		restaurant.Normalize()
		found[restaurant.ID] = true
	}

	var missing []string
	for _, id := range ids {
		if !found[id] {
			missing = append(missing, id)
		}
	}

	return restaurants, missing, nil
}

func (uc *CatalogUseCase) GetRestaurant(ctx context.Context, id string) (*entity.Restaurant, error) {
	restaurant, err := uc.restaurantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	restaurant.Normalize()
	return restaurant, nil
}

// NewView starts a browsing session seeded with the first raw batch.
func (uc *CatalogUseCase) NewView(ctx context.Context) (*CatalogView, error) {
	restaurants, nextCursor, err := uc.LoadPage(ctx, uc.pageSize, "")
	if err != nil {
		return nil, err
	}

	return &CatalogView{
		uc:          uc,
		pageSize:    uc.pageSize,
		restaurants: restaurants,
		nextCursor:  nextCursor,
		page:        1,
		detailed:    make(map[string]bool),
		missing:     make(map[string]bool),
	}, nil
}
