package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"friendlyeats/internal/domain/entity"
	"friendlyeats/internal/domain/repository"
	"friendlyeats/pkg/errors"
)

// catalogProjection is the field set the filter engine needs; detail
// fields (image, full address) are fetched lazily per page.
var catalogProjection = []string{
	"name", "categories", "category", "rating", "starsgiven",
	"country", "state", "city", "address", "street",
}

type firestoreRestaurantRepository struct {
	client *firestore.Client
}

func NewFirestoreRestaurantRepository(client *firestore.Client) repository.RestaurantRepository {
	return &firestoreRestaurantRepository{
		client: client,
	}
}

func (r *firestoreRestaurantRepository) GetByID(ctx context.Context, id string) (*entity.Restaurant, error) {
	doc, err := r.client.Collection("restaurants").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Restaurant", err)
		}
		return nil, errors.Internal("Unable to load restaurant details.", err)
	}

	var restaurant entity.Restaurant
	if err := doc.DataTo(&restaurant); err != nil {
		return nil, errors.Internal("Failed to parse restaurant data", err)
	}
	restaurant.ID = doc.Ref.ID

	return &restaurant, nil
}

func (r *firestoreRestaurantRepository) ListPage(ctx context.Context, limit int, cursor string) ([]*entity.Restaurant, string, error) {
	query := r.client.Collection("restaurants").
		OrderBy(firestore.DocumentID, firestore.Asc).
		Limit(limit)

	if cursor != "" {
		query = query.StartAfter(cursor)
	}

	iter := query.Documents(ctx)
	var restaurants []*entity.Restaurant
	lastID := ""

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, "", errors.Internal("Unable to load restaurants.", err)
		}
		var restaurant entity.Restaurant
		if err := doc.DataTo(&restaurant); err != nil {
			return nil, "", errors.Internal("Failed to parse restaurant data", err)
		}
		restaurant.ID = doc.Ref.ID
		restaurants = append(restaurants, &restaurant)
		lastID = doc.Ref.ID
	}

	// A short page means the collection is exhausted.
	nextCursor := ""
	if len(restaurants) == limit {
		nextCursor = lastID
	}

	return restaurants, nextCursor, nil
}

func (r *firestoreRestaurantRepository) ListCatalog(ctx context.Context) ([]*entity.Restaurant, error) {
	iter := r.client.Collection("restaurants").Select(catalogProjection...).Documents(ctx)

	var catalog []*entity.Restaurant
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Unable to load restaurant catalog.", err)
		}
		var restaurant entity.Restaurant
		if err := doc.DataTo(&restaurant); err != nil {
			return nil, errors.Internal("Failed to parse restaurant data", err)
		}
		restaurant.ID = doc.Ref.ID
		catalog = append(catalog, &restaurant)
	}

	return catalog, nil
}

func (r *firestoreRestaurantRepository) GetByIDs(ctx context.Context, ids []string) ([]*entity.Restaurant, error) {
	if len(ids) == 0 {
		return []*entity.Restaurant{}, nil
	}

	refs := make([]*firestore.DocumentRef, len(ids))
	for i, id := range ids {
		refs[i] = r.client.Collection("restaurants").Doc(id)
	}

	docs, err := r.client.GetAll(ctx, refs)
	if err != nil {
		return nil, errors.Internal("Unable to load restaurant details.", err)
	}

	restaurants := make([]*entity.Restaurant, 0, len(docs))
	for _, doc := range docs {
		if !doc.Exists() {
			continue
		}
		var restaurant entity.Restaurant
		if err := doc.DataTo(&restaurant); err != nil {
			return nil, errors.Internal("Failed to parse restaurant data", err)
		}
		restaurant.ID = doc.Ref.ID
		restaurants = append(restaurants, &restaurant)
	}

	return restaurants, nil
}

func (r *firestoreRestaurantRepository) UpdateRating(ctx context.Context, id string, average float64) error {
	// Both fields hold the average; older documents only ever read one of
	// the two.
	_, err := r.client.Collection("restaurants").Doc(id).Update(ctx, []firestore.Update{
		{Path: "rating", Value: average},
		{Path: "starsgiven", Value: average},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Restaurant", err)
		}
		return errors.Internal("Failed to update restaurant rating", err)
	}

	return nil
}
