package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AuditAction string

const (
	AuditLoginSuccess         AuditAction = "login_success"
	AuditLoginFailed          AuditAction = "login_failed"
	AuditPasswordReset        AuditAction = "password_reset"
	AuditRestaurantApproved   AuditAction = "restaurant_approved"
	AuditRestaurantRejected   AuditAction = "restaurant_rejected"
	AuditAdminMFAFailed       AuditAction = "admin_mfa_failed"
	AuditCounterAdjustFailure AuditAction = "counter_adjust_failed"
)

// AuditLog is an append-only trail of security-relevant events. Writes are
// best effort; a failed insert never fails the operation being audited.
type AuditLog struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	AccountID *uuid.UUID  `gorm:"type:uuid;index"`
	ActorKind string      `gorm:"type:varchar(20)"`
	IPAddress *string     `gorm:"type:varchar(45)"`
	Action    AuditAction `gorm:"type:varchar(40);not null"`

	Metadata datatypes.JSON

	CreatedAt time.Time
}

func (l *AuditLog) BeforeCreate(_ *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
