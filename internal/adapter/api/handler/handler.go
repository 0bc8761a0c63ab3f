package handler

import (
	"friendlyeats/internal/usecase"
)

var (
	authHandler       *AuthHandler
	restaurantHandler *RestaurantHandler
	reviewHandler     *ReviewHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	catalogUseCase *usecase.CatalogUseCase,
	reviewUseCase *usecase.ReviewUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	restaurantHandler = NewRestaurantHandler(catalogUseCase, reviewUseCase)
	reviewHandler = NewReviewHandler(reviewUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetRestaurantHandler() *RestaurantHandler {
	return restaurantHandler
}

func GetReviewHandler() *ReviewHandler {
	return reviewHandler
}
