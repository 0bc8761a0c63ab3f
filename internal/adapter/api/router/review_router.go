package router

import (
	"github.com/labstack/echo/v4"

	"friendlyeats/internal/adapter/api/handler"
	"friendlyeats/internal/adapter/api/middleware"
)

func SetupReviewRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	reviewHandler := handler.GetReviewHandler()

	reviews := e.Group("/v1/restaurants/:id/reviews")
	reviews.Use(authMiddleware.Authenticate)
	reviews.POST("", reviewHandler.SubmitReview, middleware.ReviewRateLimit())
}
