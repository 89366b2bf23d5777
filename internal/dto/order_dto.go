package dto

import "github.com/google/uuid"

// Order payloads carry no validate tags: the order engine reports each
// structural problem under its own error code.
type OrderItemRequest struct {
	MenuItemID uuid.UUID `json:"menuItemId"`
	Quantity   int       `json:"quantity"`
}

type PlaceOrderRequest struct {
	RestaurantID     uuid.UUID          `json:"restaurantId"`
	Items            []OrderItemRequest `json:"items"`
	DeliveryLocation string             `json:"deliveryLocation"`
	RoomNo           string             `json:"roomNo"`
	Tip              float64            `json:"tip"`
	PaymentType      string             `json:"paymentType"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}
