package handler

import (
	"net/http"

	"campuseats/internal/dto"
	"campuseats/internal/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// PublicHandler serves the unauthenticated surface: the restaurant listing
// and per-restaurant menus, both restricted to available restaurants.
type PublicHandler struct {
	Restaurants *service.RestaurantService
	Menu        *service.MenuService
}

func NewPublicHandler(restaurants *service.RestaurantService, menu *service.MenuService) *PublicHandler {
	return &PublicHandler{Restaurants: restaurants, Menu: menu}
}

func (h *PublicHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *PublicHandler) ListRestaurants(c echo.Context) error {
	restaurants, err := h.Restaurants.ListPublic(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.PublicRestaurantsFromEntities(restaurants))
}

func (h *PublicHandler) RestaurantMenu(c echo.Context) error {
	restaurantID, err := uuid.Parse(c.Param("restaurantId"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, "invalid_restaurant_id")
	}
	restaurant, err := h.Restaurants.GetPublic(c.Request().Context(), restaurantID)
	if err != nil {
		return writeServiceError(c, err)
	}
	_, items, err := h.Menu.Menu(c.Request().Context(), restaurantID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.MenuResponse{
		Restaurant: dto.PublicRestaurantFromEntity(restaurant),
		Menu:       dto.GroupMenuByCategory(items),
	})
}
