package service

import (
	"context"
	"errors"
	"testing"

	"campuseats/internal/entity"

	"github.com/google/uuid"
)

func newMenuFixture(t *testing.T) (*MenuService, *stubRestaurantRepo, *entity.Restaurant) {
	t.Helper()
	restaurants := newStubRestaurantRepo()
	menuItems := newStubMenuItemRepo()
	restaurant := &entity.Restaurant{Email: "diner@example.edu", Status: entity.ApprovalApproved}
	restaurant.Verified = true
	if err := restaurants.Create(context.Background(), restaurant); err != nil {
		t.Fatalf("seed restaurant: %v", err)
	}
	return NewMenuService(menuItems, restaurants), restaurants, restaurant
}

func TestAddItemRequiresApprovedRestaurant(t *testing.T) {
	service, _, restaurant := newMenuFixture(t)
	restaurant.Status = entity.ApprovalPending

	_, err := service.AddItem(context.Background(), restaurant.ID, AddMenuItemInput{
		Name: "Burger", Price: 8.5, Category: "Mains",
	})
	if !errors.Is(err, ErrMenuNotAllowed) {
		t.Fatalf("expected ErrMenuNotAllowed, got %v", err)
	}

	if _, err := service.AddItem(context.Background(), uuid.New(), AddMenuItemInput{
		Name: "Burger", Price: 8.5, Category: "Mains",
	}); !errors.Is(err, ErrRestaurantNotFound) {
		t.Fatalf("expected ErrRestaurantNotFound, got %v", err)
	}
}

func TestAddItemValidatesFields(t *testing.T) {
	service, _, restaurant := newMenuFixture(t)

	if _, err := service.AddItem(context.Background(), restaurant.ID, AddMenuItemInput{
		Name: " ", Price: 8.5, Category: "Mains",
	}); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
	if _, err := service.AddItem(context.Background(), restaurant.ID, AddMenuItemInput{
		Name: "Burger", Price: -1, Category: "Mains",
	}); !errors.Is(err, ErrInvalidPrice) {
		t.Fatalf("expected ErrInvalidPrice, got %v", err)
	}

	item, err := service.AddItem(context.Background(), restaurant.ID, AddMenuItemInput{
		Name: "  Burger  ", Description: " classic ", Price: 0, Category: "Mains",
	})
	if err != nil {
		t.Fatalf("add free item: %v", err)
	}
	if item.Name != "Burger" || item.Description != "classic" {
		t.Fatalf("fields not trimmed: %+v", item)
	}
}

func TestMenuReturnsRestaurantAndItems(t *testing.T) {
	service, _, restaurant := newMenuFixture(t)
	for _, name := range []string{"Burger", "Fries"} {
		if _, err := service.AddItem(context.Background(), restaurant.ID, AddMenuItemInput{
			Name: name, Price: 5, Category: "Mains",
		}); err != nil {
			t.Fatalf("add %s: %v", name, err)
		}
	}

	got, items, err := service.Menu(context.Background(), restaurant.ID)
	if err != nil {
		t.Fatalf("menu: %v", err)
	}
	if got.ID != restaurant.ID || len(items) != 2 {
		t.Fatalf("unexpected menu: restaurant=%v items=%d", got.ID, len(items))
	}
}
