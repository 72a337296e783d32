package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store is a vendor profile. Products, orders and coupons are the aggregates
// the vendor cards render as counts.
type Store struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"uniqueIndex;not null" json:"name"`
	Description    string    `json:"description"`
	Logo           string    `json:"logo"`
	ContactEmail   string    `json:"contactEmail"`
	ContactPhone   string    `json:"contactPhone"`
	Address        string    `json:"address"`
	Facebook       string    `json:"facebook"`
	Instagram      string    `json:"instagram"`
	Twitter        string    `json:"twitter"`
	ShippingPolicy string    `json:"shippingPolicy"`
	ReturnPolicy   string    `json:"returnPolicy"`
	Rating         float64   `json:"rating"`
	Products       []Product `gorm:"foreignKey:StoreID" json:"products"`
	Coupons        []Coupon  `gorm:"foreignKey:StoreID" json:"coupons"`
	Orders         []Order   `gorm:"-" json:"orders"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (s *Store) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
