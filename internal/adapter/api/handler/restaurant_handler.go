package handler

import (
	"github.com/labstack/echo/v4"

	"friendlyeats/internal/domain/entity"
	"friendlyeats/internal/usecase"
	"friendlyeats/pkg/errors"
	"friendlyeats/pkg/response"
	"friendlyeats/pkg/utils"
)

type RestaurantHandler struct {
	catalogUseCase *usecase.CatalogUseCase
	reviewUseCase  *usecase.ReviewUseCase
}

func NewRestaurantHandler(catalogUseCase *usecase.CatalogUseCase, reviewUseCase *usecase.ReviewUseCase) *RestaurantHandler {
	return &RestaurantHandler{
		catalogUseCase: catalogUseCase,
		reviewUseCase:  reviewUseCase,
	}
}

type restaurantBatchResponse struct {
	Restaurants []*entity.Restaurant `json:"restaurants"`
	NextCursor  *string              `json:"nextCursor"`
}

func (h *RestaurantHandler) ListRestaurants(c echo.Context) error {
	params := utils.GetCursorParams(c)

	restaurants, nextCursor, err := h.catalogUseCase.LoadPage(c.Request().Context(), params.Limit, params.Cursor)
	if err != nil {
		return response.Error(c, err)
	}

	if restaurants == nil {
		restaurants = []*entity.Restaurant{}
	}

	resp := restaurantBatchResponse{Restaurants: restaurants}
	if nextCursor != "" {
		resp.NextCursor = &nextCursor
	}
	return response.Success(c, resp)
}

func (h *RestaurantHandler) GetCatalog(c echo.Context) error {
	catalog, err := h.catalogUseCase.LoadCatalog(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	if catalog == nil {
		catalog = []*entity.Restaurant{}
	}
	return response.Success(c, map[string]interface{}{"catalog": catalog})
}

type byIDsRequest struct {
	IDs []string `json:"ids"`
}

func (h *RestaurantHandler) GetByIDs(c echo.Context) error {
	var req byIDsRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request payload", err))
	}

	ids := make([]string, 0, len(req.IDs))
	for _, id := range req.IDs {
		if id != "" {
			ids = append(ids, id)
		}
	}

	restaurants := []*entity.Restaurant{}
	if len(ids) > 0 {
		// Deleted ids are simply omitted from the result.
		found, _, err := h.catalogUseCase.LoadDetails(c.Request().Context(), ids)
		if err != nil {
			return response.Error(c, err)
		}
		if found != nil {
			restaurants = found
		}
	}

	return response.Success(c, map[string]interface{}{"restaurants": restaurants})
}

func (h *RestaurantHandler) GetRestaurant(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.Error(c, errors.NotFound("Restaurant", nil))
	}

	restaurant, err := h.catalogUseCase.GetRestaurant(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	reviews, err := h.reviewUseCase.ListByRestaurant(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}
	if reviews == nil {
		reviews = []*entity.Review{}
	}

	return response.Success(c, map[string]interface{}{
		"restaurant": restaurant,
		"reviews":    reviews,
	})
}
