package entity

import (
	"time"

	"friendlyeats/pkg/rating"
)

// Review is a star-rated commentary on a restaurant. The rating is
// written to both "rating" and "grade" for compatibility with documents
// created before the field was renamed; reads take the first non-nil.
type Review struct {
	ID           string      `json:"id" firestore:"id"`
	RestaurantID string      `json:"restaurantId" firestore:"restaurantId"`
	Rating       interface{} `json:"rating" firestore:"rating"`
	Grade        interface{} `json:"grade" firestore:"grade"`
	Text         string      `json:"text" firestore:"text"`

	UserDisplayName string `json:"userDisplayName" firestore:"userDisplayName"`
	UserEmail       string `json:"userEmail,omitempty" firestore:"userEmail"`

	CreatedAt string    `json:"createdAt" firestore:"createdAt"`
	Timestamp time.Time `json:"-" firestore:"timestamp,serverTimestamp"`
}

func (r *Review) RatingValue() float64 {
	return rating.Parse(firstNonNil(r.Rating, r.Grade))
}
