package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`

	Credential

	FirstName string `gorm:"type:varchar(100);not null" json:"firstName"`
	LastName  string `gorm:"type:varchar(100);not null" json:"lastName"`
	PhoneNo   string `gorm:"type:varchar(30);not null" json:"phoneNo"`
	CWID      string `gorm:"type:varchar(30)" json:"CWID,omitempty"`
	Location  string `gorm:"type:varchar(255)" json:"location,omitempty"`

	MealPoints float64 `gorm:"default:0" json:"mealPoints"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (u *User) AccountID() uuid.UUID { return u.ID }

func (u *User) AccountEmail() string { return u.Email }

func (u *User) CredentialState() *Credential { return &u.Credential }
