package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

type Restaurant struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`

	Credential

	PhoneNo            string `gorm:"type:varchar(30);not null" json:"phoneNo"`
	OwnerName          string `gorm:"type:varchar(100);not null" json:"name"`
	RestaurantName     string `gorm:"type:varchar(255);not null" json:"restaurantName"`
	RestaurantLocation string `gorm:"type:varchar(255);not null" json:"restaurantLocation"`
	License            string `gorm:"type:varchar(100);not null" json:"license"`
	TaxID              string `gorm:"type:varchar(100);not null" json:"taxID"`

	Status ApprovalStatus `gorm:"type:varchar(20);default:'pending';not null" json:"status"`

	// Rolling per-status order tallies. Adjustments are best-effort and
	// floored at zero; the per-order status field is the source of truth.
	NewOrdersCount       int `gorm:"default:0" json:"newOrdersCount"`
	PreparingOrdersCount int `gorm:"default:0" json:"preparingOrdersCount"`
	CompletedOrdersCount int `gorm:"default:0" json:"completedOrdersCount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r *Restaurant) BeforeCreate(_ *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

func (r *Restaurant) AccountID() uuid.UUID { return r.ID }

func (r *Restaurant) AccountEmail() string { return r.Email }

func (r *Restaurant) CredentialState() *Credential { return &r.Credential }

// Available reports whether the restaurant may receive orders.
func (r *Restaurant) Available() bool {
	return r.Verified && r.Status == ApprovalApproved
}

// CounterFor returns a pointer to the rolling counter tracking the given
// order status, or nil for an unknown status.
func (r *Restaurant) CounterFor(status OrderStatus) *int {
	switch status {
	case OrderStatusNew:
		return &r.NewOrdersCount
	case OrderStatusPreparing:
		return &r.PreparingOrdersCount
	case OrderStatusCompleted:
		return &r.CompletedOrdersCount
	}
	return nil
}
