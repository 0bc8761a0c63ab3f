package handler

import (
	"github.com/labstack/echo/v4"

	"friendlyeats/internal/usecase"
	"friendlyeats/pkg/errors"
	"friendlyeats/pkg/response"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

type submitReviewRequest struct {
	// Rating may arrive as a number or a loosely formatted string.
	Rating interface{} `json:"rating"`
	Text   string      `json:"text"`
}

func (h *ReviewHandler) SubmitReview(c echo.Context) error {
	restaurantID := c.Param("id")
	if restaurantID == "" {
		return response.Error(c, errors.NotFound("Restaurant", nil))
	}

	var req submitReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request payload", err))
	}

	// Author identity comes from the session, never the request body.
	email, _ := c.Get("email").(string)
	displayName, _ := c.Get("displayName").(string)

	result, err := h.reviewUseCase.SubmitReview(c.Request().Context(), restaurantID, usecase.SubmitReviewInput{
		Rating:          req.Rating,
		Text:            req.Text,
		UserEmail:       email,
		UserDisplayName: displayName,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"review": result.Review,
		"rating": result.Average,
	})
}
