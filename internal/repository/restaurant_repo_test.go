package repository

import (
	"context"
	"testing"

	"campuseats/internal/entity"
)

func seedRestaurant(t *testing.T, repo RestaurantRepository, email string, verified bool, status entity.ApprovalStatus) *entity.Restaurant {
	t.Helper()
	restaurant := &entity.Restaurant{
		Email:              email,
		PhoneNo:            "555-0100",
		OwnerName:          "Grace",
		RestaurantName:     "Diner " + email,
		RestaurantLocation: "Student Union",
		License:            "LIC-" + email,
		TaxID:              "TAX-" + email,
		Status:             status,
	}
	restaurant.PasswordHash = "hash"
	restaurant.Verified = verified
	if err := repo.Create(context.Background(), restaurant); err != nil {
		t.Fatalf("create restaurant: %v", err)
	}
	return restaurant
}

func TestRestaurantRepositoryFindByEmailNotFoundIsNilNil(t *testing.T) {
	repo := NewRestaurantRepository(newTestDB(t))

	restaurant, err := repo.FindByEmail(context.Background(), "nobody@example.edu")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if restaurant != nil {
		t.Fatalf("expected nil, got %+v", restaurant)
	}
}

func TestRestaurantRepositoryIncrementNewOrders(t *testing.T) {
	repo := NewRestaurantRepository(newTestDB(t))
	restaurant := seedRestaurant(t, repo, "diner@example.edu", true, entity.ApprovalApproved)

	for i := 0; i < 3; i++ {
		if err := repo.IncrementNewOrders(context.Background(), restaurant.ID); err != nil {
			t.Fatalf("increment: %v", err)
		}
	}

	reloaded, err := repo.FindByID(context.Background(), restaurant.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.NewOrdersCount != 3 {
		t.Fatalf("expected counter 3, got %d", reloaded.NewOrdersCount)
	}
}

func TestRestaurantRepositoryListAvailable(t *testing.T) {
	repo := NewRestaurantRepository(newTestDB(t))
	seedRestaurant(t, repo, "open@example.edu", true, entity.ApprovalApproved)
	seedRestaurant(t, repo, "pending@example.edu", true, entity.ApprovalPending)
	seedRestaurant(t, repo, "unverified@example.edu", false, entity.ApprovalApproved)

	available, err := repo.ListAvailable(context.Background())
	if err != nil {
		t.Fatalf("list available: %v", err)
	}
	if len(available) != 1 || available[0].Email != "open@example.edu" {
		t.Fatalf("unexpected available list %+v", available)
	}

	pending := entity.ApprovalPending
	filtered, err := repo.List(context.Background(), &pending)
	if err != nil {
		t.Fatalf("list filtered: %v", err)
	}
	if len(filtered) != 1 || filtered[0].Email != "pending@example.edu" {
		t.Fatalf("unexpected filtered list %+v", filtered)
	}
}
