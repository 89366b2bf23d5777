package service

import (
	"context"
	"math"
	"strings"

	"campuseats/internal/entity"
	"campuseats/internal/repository"

	"github.com/google/uuid"
)

type AddMenuItemInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
}

type MenuService struct {
	menuItems   repository.MenuItemRepository
	restaurants repository.RestaurantRepository
}

func NewMenuService(menuItems repository.MenuItemRepository, restaurants repository.RestaurantRepository) *MenuService {
	return &MenuService{menuItems: menuItems, restaurants: restaurants}
}

func (s *MenuService) AddItem(ctx context.Context, restaurantID uuid.UUID, input AddMenuItemInput) (*entity.MenuItem, error) {
	restaurant, err := s.restaurants.FindByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, ErrRestaurantNotFound
	}
	if restaurant.Status != entity.ApprovalApproved {
		return nil, ErrMenuNotAllowed
	}

	name := strings.TrimSpace(input.Name)
	category := strings.TrimSpace(input.Category)
	if name == "" || category == "" {
		return nil, ErrMissingFields
	}
	if input.Price < 0 || math.IsNaN(input.Price) || math.IsInf(input.Price, 0) {
		return nil, ErrInvalidPrice
	}

	item := &entity.MenuItem{
		RestaurantID: restaurant.ID,
		Name:         name,
		Description:  strings.TrimSpace(input.Description),
		Price:        input.Price,
		Category:     category,
	}
	if err := s.menuItems.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Menu returns the restaurant together with its items sorted by category
// then name; grouping into category sections happens at the edge.
func (s *MenuService) Menu(ctx context.Context, restaurantID uuid.UUID) (*entity.Restaurant, []entity.MenuItem, error) {
	if restaurantID == uuid.Nil {
		return nil, nil, ErrMissingRestaurantID
	}
	restaurant, err := s.restaurants.FindByID(ctx, restaurantID)
	if err != nil {
		return nil, nil, err
	}
	if restaurant == nil {
		return nil, nil, ErrRestaurantNotFound
	}
	items, err := s.menuItems.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, nil, err
	}
	return restaurant, items, nil
}
