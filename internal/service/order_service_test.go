package service

import (
	"context"
	"errors"
	"testing"

	"campuseats/internal/entity"

	"github.com/google/uuid"
)

type stubRestaurantRepo struct {
	restaurants  map[uuid.UUID]*entity.Restaurant
	incrementErr error
	updateErr    error
	increments   int
}

func newStubRestaurantRepo() *stubRestaurantRepo {
	return &stubRestaurantRepo{restaurants: make(map[uuid.UUID]*entity.Restaurant)}
}

func (r *stubRestaurantRepo) Create(_ context.Context, restaurant *entity.Restaurant) error {
	if restaurant.ID == uuid.Nil {
		restaurant.ID = uuid.New()
	}
	r.restaurants[restaurant.ID] = restaurant
	return nil
}

func (r *stubRestaurantRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	return r.restaurants[id], nil
}

func (r *stubRestaurantRepo) FindByEmail(_ context.Context, email string) (*entity.Restaurant, error) {
	for _, restaurant := range r.restaurants {
		if restaurant.Email == email {
			return restaurant, nil
		}
	}
	return nil, nil
}

func (r *stubRestaurantRepo) Update(_ context.Context, restaurant *entity.Restaurant) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.restaurants[restaurant.ID] = restaurant
	return nil
}

func (r *stubRestaurantRepo) DeleteByID(_ context.Context, id uuid.UUID) error {
	delete(r.restaurants, id)
	return nil
}

func (r *stubRestaurantRepo) IncrementNewOrders(_ context.Context, id uuid.UUID) error {
	if r.incrementErr != nil {
		return r.incrementErr
	}
	if restaurant, ok := r.restaurants[id]; ok {
		restaurant.NewOrdersCount++
		r.increments++
	}
	return nil
}

func (r *stubRestaurantRepo) List(_ context.Context, status *entity.ApprovalStatus) ([]entity.Restaurant, error) {
	var out []entity.Restaurant
	for _, restaurant := range r.restaurants {
		if status == nil || restaurant.Status == *status {
			out = append(out, *restaurant)
		}
	}
	return out, nil
}

func (r *stubRestaurantRepo) ListAvailable(_ context.Context) ([]entity.Restaurant, error) {
	var out []entity.Restaurant
	for _, restaurant := range r.restaurants {
		if restaurant.Available() {
			out = append(out, *restaurant)
		}
	}
	return out, nil
}

func (r *stubRestaurantRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.restaurants)), nil
}

type stubOrderRepo struct {
	orders    map[uuid.UUID]*entity.Order
	createErr error
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[uuid.UUID]*entity.Order)}
}

func (r *stubOrderRepo) Create(_ context.Context, order *entity.Order) error {
	if r.createErr != nil {
		return r.createErr
	}
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	r.orders[order.ID] = order
	return nil
}

func (r *stubOrderRepo) FindForRestaurant(_ context.Context, id, restaurantID uuid.UUID) (*entity.Order, error) {
	order, ok := r.orders[id]
	if !ok || order.RestaurantID != restaurantID {
		return nil, nil
	}
	return order, nil
}

func (r *stubOrderRepo) Update(_ context.Context, order *entity.Order) error {
	r.orders[order.ID] = order
	return nil
}

func (r *stubOrderRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]entity.Order, error) {
	var out []entity.Order
	for _, order := range r.orders {
		if order.UserID == userID {
			out = append(out, *order)
		}
	}
	return out, nil
}

func (r *stubOrderRepo) ListByRestaurant(_ context.Context, restaurantID uuid.UUID) ([]entity.Order, error) {
	var out []entity.Order
	for _, order := range r.orders {
		if order.RestaurantID == restaurantID {
			out = append(out, *order)
		}
	}
	return out, nil
}

type stubMenuItemRepo struct {
	items map[uuid.UUID]*entity.MenuItem
}

func newStubMenuItemRepo() *stubMenuItemRepo {
	return &stubMenuItemRepo{items: make(map[uuid.UUID]*entity.MenuItem)}
}

func (r *stubMenuItemRepo) Create(_ context.Context, item *entity.MenuItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	r.items[item.ID] = item
	return nil
}

func (r *stubMenuItemRepo) FindForRestaurant(_ context.Context, id, restaurantID uuid.UUID) (*entity.MenuItem, error) {
	item, ok := r.items[id]
	if !ok || item.RestaurantID != restaurantID {
		return nil, nil
	}
	return item, nil
}

func (r *stubMenuItemRepo) ListByRestaurant(_ context.Context, restaurantID uuid.UUID) ([]entity.MenuItem, error) {
	var out []entity.MenuItem
	for _, item := range r.items {
		if item.RestaurantID == restaurantID {
			out = append(out, *item)
		}
	}
	return out, nil
}

type orderFixture struct {
	service      *OrderService
	restaurants  *stubRestaurantRepo
	orders       *stubOrderRepo
	menuItems    *stubMenuItemRepo
	restaurant   *entity.Restaurant
	burger       *entity.MenuItem
	otherItem    *entity.MenuItem
	customerID   uuid.UUID
	restaurantID uuid.UUID
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	restaurants := newStubRestaurantRepo()
	orders := newStubOrderRepo()
	menuItems := newStubMenuItemRepo()

	restaurant := &entity.Restaurant{
		Email:          "diner@example.edu",
		RestaurantName: "Campus Diner",
		Status:         entity.ApprovalApproved,
	}
	restaurant.Verified = true
	if err := restaurants.Create(context.Background(), restaurant); err != nil {
		t.Fatalf("seed restaurant: %v", err)
	}

	other := &entity.Restaurant{Email: "rival@example.edu", Status: entity.ApprovalApproved}
	other.Verified = true
	if err := restaurants.Create(context.Background(), other); err != nil {
		t.Fatalf("seed rival: %v", err)
	}

	burger := &entity.MenuItem{RestaurantID: restaurant.ID, Name: "Burger", Price: 8.5, Category: "Mains"}
	otherItem := &entity.MenuItem{RestaurantID: other.ID, Name: "Pizza", Price: 11, Category: "Mains"}
	for _, item := range []*entity.MenuItem{burger, otherItem} {
		if err := menuItems.Create(context.Background(), item); err != nil {
			t.Fatalf("seed item: %v", err)
		}
	}

	return &orderFixture{
		service:      NewOrderService(orders, restaurants, menuItems, nil, nil),
		restaurants:  restaurants,
		orders:       orders,
		menuItems:    menuItems,
		restaurant:   restaurant,
		burger:       burger,
		otherItem:    otherItem,
		customerID:   uuid.New(),
		restaurantID: restaurant.ID,
	}
}

func (f *orderFixture) placeInput() PlaceOrderInput {
	return PlaceOrderInput{
		RestaurantID:     f.restaurantID,
		Items:            []OrderItemInput{{MenuItemID: f.burger.ID, Quantity: 2}},
		DeliveryLocation: "North Hall",
		RoomNo:           "214",
		Tip:              1.5,
		PaymentType:      entity.PaymentFullCard,
	}
}

func TestPlaceOrderCreatesOrderAndBumpsCounter(t *testing.T) {
	f := newOrderFixture(t)

	order, err := f.service.PlaceOrder(context.Background(), f.customerID, f.placeInput())
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	if order.Status != entity.OrderStatusNew {
		t.Fatalf("expected status new, got %s", order.Status)
	}
	if len(order.Items) != 1 || order.Items[0].Quantity != 2 {
		t.Fatalf("unexpected items %+v", order.Items)
	}
	if f.restaurant.NewOrdersCount != 1 {
		t.Fatalf("expected new counter 1, got %d", f.restaurant.NewOrdersCount)
	}
}

func TestPlaceOrderRejectsUnavailableRestaurant(t *testing.T) {
	f := newOrderFixture(t)
	f.restaurant.Status = entity.ApprovalPending

	if _, err := f.service.PlaceOrder(context.Background(), f.customerID, f.placeInput()); !errors.Is(err, ErrRestaurantUnavailable) {
		t.Fatalf("expected ErrRestaurantUnavailable, got %v", err)
	}

	f.restaurant.Status = entity.ApprovalApproved
	f.restaurant.Verified = false
	if _, err := f.service.PlaceOrder(context.Background(), f.customerID, f.placeInput()); !errors.Is(err, ErrRestaurantUnavailable) {
		t.Fatalf("expected ErrRestaurantUnavailable for unverified, got %v", err)
	}
}

func TestPlaceOrderValidatesItems(t *testing.T) {
	f := newOrderFixture(t)

	input := f.placeInput()
	input.Items = nil
	if _, err := f.service.PlaceOrder(context.Background(), f.customerID, input); !errors.Is(err, ErrMissingItems) {
		t.Fatalf("expected ErrMissingItems, got %v", err)
	}

	input = f.placeInput()
	input.Items[0].Quantity = 0
	if _, err := f.service.PlaceOrder(context.Background(), f.customerID, input); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}

	input = f.placeInput()
	input.Items[0].MenuItemID = f.otherItem.ID
	if _, err := f.service.PlaceOrder(context.Background(), f.customerID, input); !errors.Is(err, ErrItemNotOnMenu) {
		t.Fatalf("expected ErrItemNotOnMenu, got %v", err)
	}

	input = f.placeInput()
	input.PaymentType = "barter"
	if _, err := f.service.PlaceOrder(context.Background(), f.customerID, input); !errors.Is(err, ErrInvalidPaymentType) {
		t.Fatalf("expected ErrInvalidPaymentType, got %v", err)
	}

	input = f.placeInput()
	input.Tip = -0.5
	if _, err := f.service.PlaceOrder(context.Background(), f.customerID, input); !errors.Is(err, ErrInvalidTip) {
		t.Fatalf("expected ErrInvalidTip, got %v", err)
	}
}

func TestPlaceOrderSurvivesCounterFailure(t *testing.T) {
	f := newOrderFixture(t)
	f.restaurants.incrementErr = errors.New("db timeout")

	order, err := f.service.PlaceOrder(context.Background(), f.customerID, f.placeInput())
	if err != nil {
		t.Fatalf("order must stand despite counter failure: %v", err)
	}
	if f.orders.orders[order.ID] == nil {
		t.Fatal("order not persisted")
	}
	if f.restaurant.NewOrdersCount != 0 {
		t.Fatalf("counter should be untouched, got %d", f.restaurant.NewOrdersCount)
	}
}

func TestUpdateOrderStatusMovesCounters(t *testing.T) {
	f := newOrderFixture(t)
	order, err := f.service.PlaceOrder(context.Background(), f.customerID, f.placeInput())
	if err != nil {
		t.Fatalf("place order: %v", err)
	}

	updated, changed, err := f.service.UpdateOrderStatus(context.Background(), f.restaurantID, order.ID, entity.OrderStatusPreparing)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if !changed || updated.Status != entity.OrderStatusPreparing {
		t.Fatalf("expected changed preparing, got changed=%v status=%s", changed, updated.Status)
	}
	if f.restaurant.NewOrdersCount != 0 || f.restaurant.PreparingOrdersCount != 1 {
		t.Fatalf("counters not moved: new=%d preparing=%d", f.restaurant.NewOrdersCount, f.restaurant.PreparingOrdersCount)
	}

	if _, _, err := f.service.UpdateOrderStatus(context.Background(), f.restaurantID, order.ID, entity.OrderStatusCompleted); err != nil {
		t.Fatalf("update to completed: %v", err)
	}
	if f.restaurant.PreparingOrdersCount != 0 || f.restaurant.CompletedOrdersCount != 1 {
		t.Fatalf("counters not moved: preparing=%d completed=%d", f.restaurant.PreparingOrdersCount, f.restaurant.CompletedOrdersCount)
	}
}

func TestUpdateOrderStatusSameStatusIsNoOp(t *testing.T) {
	f := newOrderFixture(t)
	order, err := f.service.PlaceOrder(context.Background(), f.customerID, f.placeInput())
	if err != nil {
		t.Fatalf("place order: %v", err)
	}

	_, changed, err := f.service.UpdateOrderStatus(context.Background(), f.restaurantID, order.ID, entity.OrderStatusNew)
	if err != nil {
		t.Fatalf("same-status update: %v", err)
	}
	if changed {
		t.Fatal("same-status update must report no change")
	}
	if f.restaurant.NewOrdersCount != 1 {
		t.Fatalf("counter must stay at 1, got %d", f.restaurant.NewOrdersCount)
	}
}

func TestUpdateOrderStatusFloorsCountersAtZero(t *testing.T) {
	f := newOrderFixture(t)
	order, err := f.service.PlaceOrder(context.Background(), f.customerID, f.placeInput())
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	// simulate drift: the new counter was already reset elsewhere
	f.restaurant.NewOrdersCount = 0

	if _, _, err := f.service.UpdateOrderStatus(context.Background(), f.restaurantID, order.ID, entity.OrderStatusPreparing); err != nil {
		t.Fatalf("update status: %v", err)
	}
	if f.restaurant.NewOrdersCount != 0 {
		t.Fatalf("counter must floor at zero, got %d", f.restaurant.NewOrdersCount)
	}
	if f.restaurant.PreparingOrdersCount != 1 {
		t.Fatalf("preparing counter should still rise, got %d", f.restaurant.PreparingOrdersCount)
	}
}

func TestUpdateOrderStatusKeepsChangeWhenCounterWriteFails(t *testing.T) {
	f := newOrderFixture(t)
	order, err := f.service.PlaceOrder(context.Background(), f.customerID, f.placeInput())
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	f.restaurants.updateErr = errors.New("db timeout")

	updated, changed, err := f.service.UpdateOrderStatus(context.Background(), f.restaurantID, order.ID, entity.OrderStatusPreparing)
	if err != nil {
		t.Fatalf("status change must not surface counter failure: %v", err)
	}
	if !changed || updated.Status != entity.OrderStatusPreparing {
		t.Fatalf("status change lost: changed=%v status=%s", changed, updated.Status)
	}
}

func TestUpdateOrderStatusScopedToOwningRestaurant(t *testing.T) {
	f := newOrderFixture(t)
	order, err := f.service.PlaceOrder(context.Background(), f.customerID, f.placeInput())
	if err != nil {
		t.Fatalf("place order: %v", err)
	}

	if _, _, err := f.service.UpdateOrderStatus(context.Background(), uuid.New(), order.ID, entity.OrderStatusPreparing); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("foreign restaurant must not see the order, got %v", err)
	}
	if _, _, err := f.service.UpdateOrderStatus(context.Background(), f.restaurantID, order.ID, "cancelled"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}
