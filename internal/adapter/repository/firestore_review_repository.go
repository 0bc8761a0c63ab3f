package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"friendlyeats/internal/domain/entity"
	"friendlyeats/internal/domain/repository"
	"friendlyeats/pkg/errors"

	"github.com/google/uuid"
)

type firestoreReviewRepository struct {
	client *firestore.Client
}

func NewFirestoreReviewRepository(client *firestore.Client) repository.ReviewRepository {
	return &firestoreReviewRepository{
		client: client,
	}
}

// The collection is named "review" (singular); it predates this service.
func (r *firestoreReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}

	_, err := r.client.Collection("review").Doc(review.ID).Set(ctx, review)
	if err != nil {
		return errors.Internal("Unable to submit commentary right now.", err)
	}

	return nil
}

func (r *firestoreReviewRepository) ListByRestaurantID(ctx context.Context, restaurantID string) ([]*entity.Review, error) {
	query := r.client.Collection("review").Where("restaurantId", "==", restaurantID)
	iter := query.Documents(ctx)

	var reviews []*entity.Review
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to query reviews", err)
		}
		var review entity.Review
		if err := doc.DataTo(&review); err != nil {
			return nil, errors.Internal("Failed to parse review data", err)
		}
		review.ID = doc.Ref.ID
		reviews = append(reviews, &review)
	}

	return reviews, nil
}
