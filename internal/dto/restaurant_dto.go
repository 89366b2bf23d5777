package dto

import (
	"time"

	"campuseats/internal/entity"

	"github.com/google/uuid"
)

type RestaurantSignupRequest struct {
	Email              string `json:"email" validate:"required,email"`
	Password           string `json:"password" validate:"required"`
	PhoneNo            string `json:"phoneNo" validate:"required"`
	Name               string `json:"name" validate:"required"`
	RestaurantName     string `json:"restaurantName" validate:"required"`
	RestaurantLocation string `json:"restaurantLocation" validate:"required"`
	License            string `json:"license" validate:"required"`
	TaxID              string `json:"taxID" validate:"required"`
}

// PublicRestaurant is the listing shape exposed without authentication:
// business attributes only, no contact or registration details.
type PublicRestaurant struct {
	ID                   uuid.UUID             `json:"id"`
	RestaurantName       string                `json:"restaurantName"`
	RestaurantLocation   string                `json:"restaurantLocation"`
	Status               entity.ApprovalStatus `json:"status"`
	NewOrdersCount       int                   `json:"newOrdersCount"`
	PreparingOrdersCount int                   `json:"preparingOrdersCount"`
	CompletedOrdersCount int                   `json:"completedOrdersCount"`
	CreatedAt            time.Time             `json:"createdAt"`
}

func PublicRestaurantFromEntity(restaurant *entity.Restaurant) PublicRestaurant {
	return PublicRestaurant{
		ID:                   restaurant.ID,
		RestaurantName:       restaurant.RestaurantName,
		RestaurantLocation:   restaurant.RestaurantLocation,
		Status:               restaurant.Status,
		NewOrdersCount:       restaurant.NewOrdersCount,
		PreparingOrdersCount: restaurant.PreparingOrdersCount,
		CompletedOrdersCount: restaurant.CompletedOrdersCount,
		CreatedAt:            restaurant.CreatedAt,
	}
}

func PublicRestaurantsFromEntities(restaurants []entity.Restaurant) []PublicRestaurant {
	out := make([]PublicRestaurant, 0, len(restaurants))
	for i := range restaurants {
		out = append(out, PublicRestaurantFromEntity(&restaurants[i]))
	}
	return out
}
