package repository

import (
	"context"
	"testing"

	"campuseats/internal/entity"

	"github.com/google/uuid"
)

func TestOrderRepositoryFindForRestaurantScoping(t *testing.T) {
	db := newTestDB(t)
	orders := NewOrderRepository(db)
	restaurants := NewRestaurantRepository(db)
	items := NewMenuItemRepository(db)

	restaurant := seedRestaurant(t, restaurants, "diner@example.edu", true, entity.ApprovalApproved)
	burger := &entity.MenuItem{RestaurantID: restaurant.ID, Name: "Burger", Price: 8.5, Category: "Mains"}
	if err := items.Create(context.Background(), burger); err != nil {
		t.Fatalf("create item: %v", err)
	}

	order := &entity.Order{
		UserID:       uuid.New(),
		RestaurantID: restaurant.ID,
		Items:        []entity.OrderItem{{MenuItemID: burger.ID, Quantity: 2}},
		PaymentType:  entity.PaymentFullCard,
		Status:       entity.OrderStatusNew,
	}
	if err := orders.Create(context.Background(), order); err != nil {
		t.Fatalf("create order: %v", err)
	}

	found, err := orders.FindForRestaurant(context.Background(), order.ID, restaurant.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found == nil || len(found.Items) != 1 || found.Items[0].Quantity != 2 {
		t.Fatalf("items not loaded: %+v", found)
	}

	foreign, err := orders.FindForRestaurant(context.Background(), order.ID, uuid.New())
	if err != nil {
		t.Fatalf("foreign find: %v", err)
	}
	if foreign != nil {
		t.Fatal("order must not be visible to another restaurant")
	}
}

func TestOrderRepositoryListByUser(t *testing.T) {
	db := newTestDB(t)
	orders := NewOrderRepository(db)
	restaurants := NewRestaurantRepository(db)

	restaurant := seedRestaurant(t, restaurants, "diner@example.edu", true, entity.ApprovalApproved)
	userID := uuid.New()
	for i := 0; i < 2; i++ {
		order := &entity.Order{
			UserID:       userID,
			RestaurantID: restaurant.ID,
			PaymentType:  entity.PaymentFullCard,
			Status:       entity.OrderStatusNew,
		}
		if err := orders.Create(context.Background(), order); err != nil {
			t.Fatalf("create order: %v", err)
		}
	}
	stranger := &entity.Order{
		UserID:       uuid.New(),
		RestaurantID: restaurant.ID,
		PaymentType:  entity.PaymentFullCard,
		Status:       entity.OrderStatusNew,
	}
	if err := orders.Create(context.Background(), stranger); err != nil {
		t.Fatalf("create stranger order: %v", err)
	}

	mine, err := orders.ListByUser(context.Background(), userID)
	if err != nil {
		t.Fatalf("list by user: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(mine))
	}
}
