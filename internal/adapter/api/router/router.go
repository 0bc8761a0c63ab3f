package router

import (
	"github.com/labstack/echo/v4"

	"friendlyeats/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupRestaurantRouter(e)
	SetupReviewRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
