package router

import (
	"github.com/labstack/echo/v4"

	"friendlyeats/internal/adapter/api/handler"
	"friendlyeats/internal/adapter/api/middleware"
)

func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	auth := e.Group("/v1/auth")
	auth.Use(middleware.AuthRateLimit())
	auth.POST("/signup", authHandler.SignUp)
	auth.POST("/login", authHandler.SignIn)

	logout := e.Group("/v1/auth")
	logout.Use(authMiddleware.Authenticate)
	logout.POST("/logout", authHandler.SignOut)
}
