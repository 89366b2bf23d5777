package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Admin accounts are seeded at startup and never go through email
// verification. TOTP fields are set only when the admin opts into MFA.
type Admin struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Name         string    `gorm:"type:varchar(100)" json:"name"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`

	TOTPSecret    *string    `gorm:"type:text" json:"-"`
	TOTPEnabledAt *time.Time `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *Admin) BeforeCreate(_ *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

func (a *Admin) MFAEnabled() bool {
	return a.TOTPSecret != nil && a.TOTPEnabledAt != nil
}
