package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "new"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusCompleted OrderStatus = "completed"
)

func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusNew, OrderStatusPreparing, OrderStatusCompleted:
		return true
	}
	return false
}

type PaymentType string

const (
	PaymentFullCard            PaymentType = "full_card"
	PaymentSplitMealpointsCard PaymentType = "split_mealpoints_card"
)

func ValidPaymentType(p PaymentType) bool {
	return p == PaymentFullCard || p == PaymentSplitMealpointsCard
}

type Order struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;index" json:"restaurantId"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`

	DeliveryLocation string      `gorm:"type:varchar(255)" json:"deliveryLocation,omitempty"`
	RoomNo           string      `gorm:"type:varchar(30)" json:"roomNo,omitempty"`
	Tip              float64     `gorm:"default:0" json:"tip"`
	PaymentType      PaymentType `gorm:"type:varchar(30);not null" json:"paymentType"`
	Status           OrderStatus `gorm:"type:varchar(20);default:'new';not null" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (o *Order) BeforeCreate(_ *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// OrderItem references a menu item by id rather than snapshotting it, so a
// later price change shows up when the order is re-fetched.
type OrderItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	MenuItemID uuid.UUID `gorm:"type:uuid;not null" json:"menuItemId"`
	Quantity   int       `gorm:"not null" json:"quantity"`
}

func (i *OrderItem) BeforeCreate(_ *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
