package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"friendlyeats/internal/domain/entity"
	"friendlyeats/internal/usecase"
)

func newReviewHandlerFixture() (*ReviewHandler, *stubReviewRepo, *stubRestaurantRepo) {
	restaurantRepo := &stubRestaurantRepo{restaurants: seededRestaurants(1)}
	reviewRepo := &stubReviewRepo{}
	return NewReviewHandler(usecase.NewReviewUseCase(reviewRepo, restaurantRepo)), reviewRepo, restaurantRepo
}

func submitReviewContext(e *echo.Echo, payload string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("r01")
	return c, rec
}

func TestSubmitReviewUsesSessionIdentity(t *testing.T) {
	h, reviewRepo, _ := newReviewHandlerFixture()

	e := echo.New()
	c, rec := submitReviewContext(e, `{"rating":5,"text":"Wonderful.","userEmail":"spoofed@example.com"}`)
	c.Set("email", "ada@example.com")
	c.Set("displayName", "Ada Lovelace")

	require.NoError(t, h.SubmitReview(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, reviewRepo.reviews, 1)
	saved := reviewRepo.reviews[0]
	assert.Equal(t, "ada@example.com", saved.UserEmail)
	assert.Equal(t, "Ada Lovelace", saved.UserDisplayName)

	var body struct {
		Review *entity.Review `json:"review"`
		Rating float64        `json:"rating"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 5.0, body.Rating)
	assert.Equal(t, "Wonderful.", body.Review.Text)
}

func TestSubmitReviewStringRating(t *testing.T) {
	h, _, _ := newReviewHandlerFixture()

	e := echo.New()
	c, rec := submitReviewContext(e, `{"rating":"4,5","text":"Nearly perfect."}`)
	c.Set("email", "ada@example.com")
	c.Set("displayName", "Ada")

	require.NoError(t, h.SubmitReview(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Rating float64 `json:"rating"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 4.5, body.Rating)
}

func TestSubmitReviewWithoutSession(t *testing.T) {
	h, reviewRepo, _ := newReviewHandlerFixture()

	e := echo.New()
	c, rec := submitReviewContext(e, `{"rating":5,"text":"Wonderful."}`)

	require.NoError(t, h.SubmitReview(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, reviewRepo.reviews)
}

func TestSubmitReviewEmptyText(t *testing.T) {
	h, reviewRepo, _ := newReviewHandlerFixture()

	e := echo.New()
	c, rec := submitReviewContext(e, `{"rating":5,"text":"  "}`)
	c.Set("email", "ada@example.com")

	require.NoError(t, h.SubmitReview(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error"`)
	assert.Empty(t, reviewRepo.reviews)
}
