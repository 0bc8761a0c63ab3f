package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"friendlyeats/internal/domain/entity"
	"friendlyeats/internal/domain/repository"
	"friendlyeats/pkg/errors"
	"friendlyeats/pkg/rating"
)

type ReviewUseCase struct {
	reviewRepo     repository.ReviewRepository
	restaurantRepo repository.RestaurantRepository
}

func NewReviewUseCase(reviewRepo repository.ReviewRepository, restaurantRepo repository.RestaurantRepository) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo:     reviewRepo,
		restaurantRepo: restaurantRepo,
	}
}

type SubmitReviewInput struct {
	Rating          interface{}
	Text            string
	UserEmail       string
	UserDisplayName string
}

type SubmitReviewResult struct {
	Review  *entity.Review
	Average float64
}

// SubmitReview validates locally, persists the review, then recomputes
// the restaurant's average over the authoritative review list and writes
// it back. The review write and the rating update are not atomic:
// concurrent submissions on the same restaurant may compute averages
// from slightly stale lists, which is accepted here.
func (uc *ReviewUseCase) SubmitReview(ctx context.Context, restaurantID string, input SubmitReviewInput) (*SubmitReviewResult, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, errors.BadRequest("Please add your commentary.", nil)
	}

	userEmail := strings.TrimSpace(input.UserEmail)
	if userEmail == "" {
		return nil, errors.Unauthorized("Please sign in to leave commentary.", nil)
	}

	ratingValue := rating.Parse(input.Rating)
	if ratingValue < 0 || ratingValue > 5 {
		return nil, errors.BadRequest("Invalid rating value.", nil)
	}

	if _, err := uc.restaurantRepo.GetByID(ctx, restaurantID); err != nil {
		return nil, err
	}

	// The email was already verified non-empty, so the fallback always
	// yields a display name.
	displayName := input.UserDisplayName
	if strings.TrimSpace(displayName) == "" {
		displayName = userEmail
	}

	review := &entity.Review{
		RestaurantID:    restaurantID,
		Rating:          ratingValue,
		Grade:           ratingValue,
		Text:            text,
		UserDisplayName: displayName,
		UserEmail:       userEmail,
		CreatedAt:       time.Now().UTC().Format(time.RFC3339),
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	average, err := uc.recomputeAverage(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	return &SubmitReviewResult{Review: review, Average: average}, nil
}

func (uc *ReviewUseCase) recomputeAverage(ctx context.Context, restaurantID string) (float64, error) {
	reviews, err := uc.reviewRepo.ListByRestaurantID(ctx, restaurantID)
	if err != nil {
		return 0, err
	}

	average := rating.Round2(AverageRating(reviews))
	if err := uc.restaurantRepo.UpdateRating(ctx, restaurantID, average); err != nil {
		return 0, err
	}
	return average, nil
}

// ListByRestaurant returns a restaurant's reviews, newest first.
func (uc *ReviewUseCase) ListByRestaurant(ctx context.Context, restaurantID string) ([]*entity.Review, error) {
	reviews, err := uc.reviewRepo.ListByRestaurantID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(reviews, func(i, j int) bool {
		return createdAtOf(reviews[i]).After(createdAtOf(reviews[j]))
	})
	return reviews, nil
}

// AverageRating is the mean over a review list; 0 for an empty list.
func AverageRating(reviews []*entity.Review) float64 {
	values := make([]float64, len(reviews))
	for i, review := range reviews {
		values[i] = review.RatingValue()
	}
	return rating.Average(values)
}

func createdAtOf(review *entity.Review) time.Time {
	parsed, err := time.Parse(time.RFC3339, review.CreatedAt)
	if err != nil {
		return time.Time{}
	}
	return parsed
}
