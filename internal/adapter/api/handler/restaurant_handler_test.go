package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"friendlyeats/internal/domain/entity"
	"friendlyeats/internal/usecase"
	"friendlyeats/pkg/errors"
)

type stubRestaurantRepo struct {
	restaurants []*entity.Restaurant
}

func (s *stubRestaurantRepo) GetByID(ctx context.Context, id string) (*entity.Restaurant, error) {
	for _, r := range s.restaurants {
		if r.ID == id {
			clone := *r
			return &clone, nil
		}
	}
	return nil, errors.NotFound("Restaurant", nil)
}

func (s *stubRestaurantRepo) ListPage(ctx context.Context, limit int, cursor string) ([]*entity.Restaurant, string, error) {
	start := 0
	if cursor != "" {
		for i, r := range s.restaurants {
			if r.ID == cursor {
				start = i + 1
				break
			}
		}
	}
	var batch []*entity.Restaurant
	for _, r := range s.restaurants[start:] {
		if len(batch) == limit {
			break
		}
		clone := *r
		batch = append(batch, &clone)
	}
	nextCursor := ""
	if len(batch) == limit {
		nextCursor = batch[len(batch)-1].ID
	}
	return batch, nextCursor, nil
}

func (s *stubRestaurantRepo) ListCatalog(ctx context.Context) ([]*entity.Restaurant, error) {
	catalog := make([]*entity.Restaurant, 0, len(s.restaurants))
	for _, r := range s.restaurants {
		clone := *r
		catalog = append(catalog, &clone)
	}
	return catalog, nil
}

func (s *stubRestaurantRepo) GetByIDs(ctx context.Context, ids []string) ([]*entity.Restaurant, error) {
	var found []*entity.Restaurant
	for _, id := range ids {
		for _, r := range s.restaurants {
			if r.ID == id {
				clone := *r
				found = append(found, &clone)
				break
			}
		}
	}
	return found, nil
}

func (s *stubRestaurantRepo) UpdateRating(ctx context.Context, id string, average float64) error {
	return nil
}

type stubReviewRepo struct {
	reviews []*entity.Review
}

func (s *stubReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	s.reviews = append(s.reviews, review)
	return nil
}

func (s *stubReviewRepo) ListByRestaurantID(ctx context.Context, restaurantID string) ([]*entity.Review, error) {
	var matched []*entity.Review
	for _, review := range s.reviews {
		if review.RestaurantID == restaurantID {
			matched = append(matched, review)
		}
	}
	return matched, nil
}

func seededRestaurants(n int) []*entity.Restaurant {
	restaurants := make([]*entity.Restaurant, 0, n)
	for i := 1; i <= n; i++ {
		restaurants = append(restaurants, &entity.Restaurant{
			ID:   fmt.Sprintf("r%02d", i),
			Name: fmt.Sprintf("Restaurant %02d", i),
		})
	}
	return restaurants
}

func newRestaurantHandlerFixture(restaurants []*entity.Restaurant) *RestaurantHandler {
	restaurantRepo := &stubRestaurantRepo{restaurants: restaurants}
	reviewRepo := &stubReviewRepo{}
	catalogUseCase := usecase.NewCatalogUseCase(restaurantRepo, nil, 20)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, restaurantRepo)
	return NewRestaurantHandler(catalogUseCase, reviewUseCase)
}

func TestListRestaurantsReturnsBatchAndCursor(t *testing.T) {
	h := newRestaurantHandlerFixture(seededRestaurants(25))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/restaurants?limit=20", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.ListRestaurants(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Restaurants []json.RawMessage `json:"restaurants"`
		NextCursor  *string           `json:"nextCursor"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Restaurants, 20)
	require.NotNil(t, body.NextCursor)
	assert.Equal(t, "r20", *body.NextCursor)
}

func TestListRestaurantsLastBatchHasNoCursor(t *testing.T) {
	h := newRestaurantHandlerFixture(seededRestaurants(25))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/restaurants?limit=20&cursor=r20", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.ListRestaurants(c))

	var body struct {
		Restaurants []json.RawMessage `json:"restaurants"`
		NextCursor  *string           `json:"nextCursor"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Restaurants, 5)
	assert.Nil(t, body.NextCursor)
}

func TestListRestaurantsEmptyCatalog(t *testing.T) {
	h := newRestaurantHandlerFixture(nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/restaurants", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.ListRestaurants(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"restaurants":[]`)
}

func TestGetByIDsOmitsDeleted(t *testing.T) {
	h := newRestaurantHandlerFixture(seededRestaurants(3))

	e := echo.New()
	payload := `{"ids":["r01","gone","","r03"]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/restaurants/by-ids", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.GetByIDs(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Restaurants []*entity.Restaurant `json:"restaurants"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Restaurants, 2)
	assert.Equal(t, "r01", body.Restaurants[0].ID)
	assert.Equal(t, "r03", body.Restaurants[1].ID)
}

func TestGetRestaurantWithReviews(t *testing.T) {
	restaurantRepo := &stubRestaurantRepo{restaurants: seededRestaurants(1)}
	reviewRepo := &stubReviewRepo{reviews: []*entity.Review{
		{ID: "a", RestaurantID: "r01", Rating: 4.0, Text: "Nice.", CreatedAt: "2025-01-01T10:00:00Z"},
	}}
	h := NewRestaurantHandler(
		usecase.NewCatalogUseCase(restaurantRepo, nil, 20),
		usecase.NewReviewUseCase(reviewRepo, restaurantRepo),
	)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("r01")

	require.NoError(t, h.GetRestaurant(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Restaurant 01"`)
	assert.Contains(t, rec.Body.String(), `"Nice."`)
}

func TestGetRestaurantNotFound(t *testing.T) {
	h := newRestaurantHandlerFixture(nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	require.NoError(t, h.GetRestaurant(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error"`)
}
