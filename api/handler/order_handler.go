package handler

import (
	"net/http"

	"campuseats/api/middleware"
	"campuseats/internal/dto"
	"campuseats/internal/entity"
	"campuseats/internal/service"

	"github.com/labstack/echo/v4"
)

// OrderHandler exposes the end-user order surface.
type OrderHandler struct {
	Orders *service.OrderService
}

func NewOrderHandler(orders *service.OrderService) *OrderHandler {
	return &OrderHandler{Orders: orders}
}

func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	userID, ok := middleware.AccountIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, "unauthorized")
	}
	var req dto.PlaceOrderRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid_json")
	}

	items := make([]service.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.OrderItemInput{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
		})
	}
	order, err := h.Orders.PlaceOrder(c.Request().Context(), userID, service.PlaceOrderInput{
		RestaurantID:     req.RestaurantID,
		Items:            items,
		DeliveryLocation: req.DeliveryLocation,
		RoomNo:           req.RoomNo,
		Tip:              req.Tip,
		PaymentType:      entity.PaymentType(req.PaymentType),
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) ListMine(c echo.Context) error {
	userID, ok := middleware.AccountIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, "unauthorized")
	}
	orders, err := h.Orders.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, orders)
}
