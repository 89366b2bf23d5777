package service

import (
	"context"
	"math"
	"strings"

	"campuseats/internal/entity"
	"campuseats/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type OrderItemInput struct {
	MenuItemID uuid.UUID
	Quantity   int
}

type PlaceOrderInput struct {
	RestaurantID     uuid.UUID
	Items            []OrderItemInput
	DeliveryLocation string
	RoomNo           string
	Tip              float64
	PaymentType      entity.PaymentType
}

// OrderService places orders and moves them through the status lifecycle.
// The per-restaurant rolling counters it maintains are an approximate
// derived statistic: adjustments happen after the authoritative write and
// their failure is logged, never surfaced.
type OrderService struct {
	orders      repository.OrderRepository
	restaurants repository.RestaurantRepository
	menuItems   repository.MenuItemRepository
	audit       *Auditor
	logger      *logrus.Logger
}

func NewOrderService(
	orders repository.OrderRepository,
	restaurants repository.RestaurantRepository,
	menuItems repository.MenuItemRepository,
	audit *Auditor,
	logger *logrus.Logger,
) *OrderService {
	return &OrderService{
		orders:      orders,
		restaurants: restaurants,
		menuItems:   menuItems,
		audit:       audit,
		logger:      logger,
	}
}

func (s *OrderService) PlaceOrder(ctx context.Context, userID uuid.UUID, input PlaceOrderInput) (*entity.Order, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	if input.RestaurantID == uuid.Nil {
		return nil, ErrMissingRestaurantID
	}
	if len(input.Items) == 0 {
		return nil, ErrMissingItems
	}
	if !entity.ValidPaymentType(input.PaymentType) {
		return nil, ErrInvalidPaymentType
	}

	restaurant, err := s.restaurants.FindByID(ctx, input.RestaurantID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, ErrRestaurantNotFound
	}
	if !restaurant.Available() {
		return nil, ErrRestaurantUnavailable
	}

	items := make([]entity.OrderItem, 0, len(input.Items))
	for _, raw := range input.Items {
		if raw.MenuItemID == uuid.Nil {
			return nil, ErrInvalidItem
		}
		if raw.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		menuItem, err := s.menuItems.FindForRestaurant(ctx, raw.MenuItemID, restaurant.ID)
		if err != nil {
			return nil, err
		}
		if menuItem == nil {
			return nil, ErrItemNotOnMenu
		}
		items = append(items, entity.OrderItem{
			MenuItemID: menuItem.ID,
			Quantity:   raw.Quantity,
		})
	}

	if input.Tip < 0 || math.IsNaN(input.Tip) || math.IsInf(input.Tip, 0) {
		return nil, ErrInvalidTip
	}

	order := &entity.Order{
		UserID:           userID,
		RestaurantID:     restaurant.ID,
		Items:            items,
		DeliveryLocation: strings.TrimSpace(input.DeliveryLocation),
		RoomNo:           strings.TrimSpace(input.RoomNo),
		Tip:              input.Tip,
		PaymentType:      input.PaymentType,
		Status:           entity.OrderStatusNew,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	// Counter bump is best effort; the order stands either way.
	if err := s.restaurants.IncrementNewOrders(ctx, restaurant.ID); err != nil {
		s.logCounterFailure(ctx, order.ID, restaurant.ID, err)
	}

	return order, nil
}

// UpdateOrderStatus persists the status change and then adjusts the two
// affected counters, flooring at zero. Any pairwise transition among the
// three statuses is accepted; a same-status update is a no-op. The returned
// bool reports whether the status actually changed.
func (s *OrderService) UpdateOrderStatus(
	ctx context.Context,
	restaurantID uuid.UUID,
	orderID uuid.UUID,
	nextStatus entity.OrderStatus,
) (*entity.Order, bool, error) {
	if restaurantID == uuid.Nil {
		return nil, false, ErrUnauthorized
	}
	if orderID == uuid.Nil {
		return nil, false, ErrMissingOrderID
	}
	if !entity.ValidOrderStatus(nextStatus) {
		return nil, false, ErrInvalidStatus
	}

	order, err := s.orders.FindForRestaurant(ctx, orderID, restaurantID)
	if err != nil {
		return nil, false, err
	}
	if order == nil {
		return nil, false, ErrOrderNotFound
	}

	prevStatus := order.Status
	if prevStatus == nextStatus {
		return order, false, nil
	}

	order.Status = nextStatus
	if err := s.orders.Update(ctx, order); err != nil {
		return nil, false, err
	}

	s.adjustCounters(ctx, restaurantID, order.ID, prevStatus, nextStatus)
	return order, true, nil
}

func (s *OrderService) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Order, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	return s.orders.ListByUser(ctx, userID)
}

func (s *OrderService) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]entity.Order, error) {
	if restaurantID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	return s.orders.ListByRestaurant(ctx, restaurantID)
}

// adjustCounters runs after the status change is already durable and must
// not revert it: every failure path ends in a log line, nothing more.
func (s *OrderService) adjustCounters(
	ctx context.Context,
	restaurantID uuid.UUID,
	orderID uuid.UUID,
	prevStatus, nextStatus entity.OrderStatus,
) {
	restaurant, err := s.restaurants.FindByID(ctx, restaurantID)
	if err != nil || restaurant == nil {
		s.logCounterFailure(ctx, orderID, restaurantID, err)
		return
	}

	if counter := restaurant.CounterFor(prevStatus); counter != nil && *counter > 0 {
		*counter--
	}
	if counter := restaurant.CounterFor(nextStatus); counter != nil {
		*counter++
	}
	if err := s.restaurants.Update(ctx, restaurant); err != nil {
		s.logCounterFailure(ctx, orderID, restaurantID, err)
	}
}

func (s *OrderService) logCounterFailure(ctx context.Context, orderID, restaurantID uuid.UUID, err error) {
	if s.logger != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"order_id":      orderID,
			"restaurant_id": restaurantID,
		}).Warn("order counter adjustment failed")
	}
	s.audit.Record(ctx, &restaurantID, "restaurant", nil, entity.AuditCounterAdjustFailure,
		map[string]any{"order_id": orderID.String()})
}
