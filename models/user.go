package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	PhoneNumber    string    `json:"phoneNumber"`
	ProfileImage   string    `json:"profileImage"`
	Role           string    `gorm:"default:'customer'" json:"role"`
	TotalPurchases int64     `gorm:"-" json:"totalPurchases"`
	Addresses      []Address `gorm:"foreignKey:UserID" json:"addresses,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
