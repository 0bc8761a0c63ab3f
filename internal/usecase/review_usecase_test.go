package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"friendlyeats/internal/domain/entity"
	"friendlyeats/pkg/errors"
	"friendlyeats/pkg/rating"
)

type fakeReviewRepo struct {
	reviews []*entity.Review
}

func (f *fakeReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	if review.ID == "" {
		review.ID = fmt.Sprintf("rev-%d", len(f.reviews)+1)
	}
	f.reviews = append(f.reviews, review)
	return nil
}

func (f *fakeReviewRepo) ListByRestaurantID(ctx context.Context, restaurantID string) ([]*entity.Review, error) {
	var matched []*entity.Review
	for _, review := range f.reviews {
		if review.RestaurantID == restaurantID {
			matched = append(matched, review)
		}
	}
	return matched, nil
}

func newReviewFixture(existing ...float64) (*ReviewUseCase, *fakeReviewRepo, *fakeRestaurantRepo) {
	restaurantRepo := newFakeRestaurantRepo([]*entity.Restaurant{
		{ID: "r01", Name: "Osteria del Sole"},
	})
	reviewRepo := &fakeReviewRepo{}
	for i, value := range existing {
		reviewRepo.reviews = append(reviewRepo.reviews, &entity.Review{
			ID:           fmt.Sprintf("seed-%d", i+1),
			RestaurantID: "r01",
			Rating:       value,
			Grade:        value,
		})
	}
	return NewReviewUseCase(reviewRepo, restaurantRepo), reviewRepo, restaurantRepo
}

func TestSubmitReviewComputesAverage(t *testing.T) {
	uc, reviewRepo, restaurantRepo := newReviewFixture(3, 5)

	result, err := uc.SubmitReview(context.Background(), "r01", SubmitReviewInput{
		Rating:          4,
		Text:            "Great pasta.",
		UserEmail:       "ada@example.com",
		UserDisplayName: "Ada",
	})
	require.NoError(t, err)

	assert.Equal(t, 4.0, result.Average)
	assert.Equal(t, 4.0, restaurantRepo.ratings["r01"])
	assert.Len(t, reviewRepo.reviews, 3)

	review := result.Review
	assert.Equal(t, "r01", review.RestaurantID)
	assert.Equal(t, 4.0, review.Rating)
	assert.Equal(t, 4.0, review.Grade)
	assert.Equal(t, "Ada", review.UserDisplayName)
	assert.NotEmpty(t, review.CreatedAt)
}

func TestSubmitReviewRoundsAverage(t *testing.T) {
	uc, _, restaurantRepo := newReviewFixture(2, 4)

	result, err := uc.SubmitReview(context.Background(), "r01", SubmitReviewInput{
		Rating:    5,
		Text:      "Fantastic.",
		UserEmail: "ada@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, 3.67, result.Average)
	assert.Equal(t, 3.67, restaurantRepo.ratings["r01"])
	assert.Equal(t, 4, rating.Stars(result.Average).Rounded)
}

func TestSubmitReviewParsesLooseRating(t *testing.T) {
	uc, _, _ := newReviewFixture()

	result, err := uc.SubmitReview(context.Background(), "r01", SubmitReviewInput{
		Rating:    "4,5 stars",
		Text:      "Lovely.",
		UserEmail: "ada@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, 4.5, result.Review.Rating)
	assert.Equal(t, 4.5, result.Average)
}

func TestSubmitReviewValidation(t *testing.T) {
	uc, reviewRepo, _ := newReviewFixture()

	_, err := uc.SubmitReview(context.Background(), "r01", SubmitReviewInput{
		Rating:    4,
		Text:      "   ",
		UserEmail: "ada@example.com",
	})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = uc.SubmitReview(context.Background(), "r01", SubmitReviewInput{
		Rating: 4,
		Text:   "Nice.",
	})
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))

	_, err = uc.SubmitReview(context.Background(), "r01", SubmitReviewInput{
		Rating:    6,
		Text:      "Nice.",
		UserEmail: "ada@example.com",
	})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = uc.SubmitReview(context.Background(), "r01", SubmitReviewInput{
		Rating:    -1,
		Text:      "Nice.",
		UserEmail: "ada@example.com",
	})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	// Nothing reached the store.
	assert.Empty(t, reviewRepo.reviews)
}

func TestSubmitReviewUnknownRestaurant(t *testing.T) {
	uc, reviewRepo, _ := newReviewFixture()

	_, err := uc.SubmitReview(context.Background(), "gone", SubmitReviewInput{
		Rating:    4,
		Text:      "Nice.",
		UserEmail: "ada@example.com",
	})
	assert.True(t, errors.Is(err, "NOT_FOUND"))
	assert.Empty(t, reviewRepo.reviews)
}

func TestSubmitReviewFallsBackToEmailName(t *testing.T) {
	uc, _, _ := newReviewFixture()

	result, err := uc.SubmitReview(context.Background(), "r01", SubmitReviewInput{
		Rating:    4,
		Text:      "Nice.",
		UserEmail: "ada@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", result.Review.UserDisplayName)
}

func TestListByRestaurantNewestFirst(t *testing.T) {
	uc, reviewRepo, _ := newReviewFixture()
	reviewRepo.reviews = []*entity.Review{
		{ID: "a", RestaurantID: "r01", Rating: 3.0, CreatedAt: "2025-01-01T10:00:00Z"},
		{ID: "b", RestaurantID: "r01", Rating: 5.0, CreatedAt: "2025-06-01T10:00:00Z"},
		{ID: "c", RestaurantID: "other", Rating: 1.0, CreatedAt: "2025-07-01T10:00:00Z"},
	}

	reviews, err := uc.ListByRestaurant(context.Background(), "r01")
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "b", reviews[0].ID)
	assert.Equal(t, "a", reviews[1].ID)
}

func TestAverageRating(t *testing.T) {
	assert.Equal(t, 0.0, AverageRating(nil))
	assert.Equal(t, 4.0, AverageRating([]*entity.Review{
		{Rating: 3.0},
		{Grade: "5"},
	}))
}
