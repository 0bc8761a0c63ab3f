package router

import (
	"github.com/labstack/echo/v4"

	"friendlyeats/internal/adapter/api/handler"
)

func SetupRestaurantRouter(e *echo.Echo) {
	restaurantHandler := handler.GetRestaurantHandler()

	restaurants := e.Group("/v1/restaurants")
	restaurants.GET("", restaurantHandler.ListRestaurants)
	restaurants.GET("/catalog", restaurantHandler.GetCatalog)
	restaurants.POST("/by-ids", restaurantHandler.GetByIDs)
	restaurants.GET("/:id", restaurantHandler.GetRestaurant)
}
