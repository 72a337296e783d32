package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID                 string       `gorm:"primaryKey" json:"id"`
	Name               string       `gorm:"not null" json:"name"`
	Slug               string       `gorm:"uniqueIndex;not null" json:"slug"`
	ShortDesc          string       `json:"shortDesc"`
	Description        string       `json:"description"`
	Price              float64      `gorm:"not null" json:"price"`
	DiscountPrice      float64      `json:"discountPrice"`
	DiscountPercentage float64      `json:"discountPercentage"`
	StockQuantity      int          `json:"stockQuantity"`
	Status             Status       `gorm:"type:VARCHAR(10);default:'active'" json:"status"`
	Sizes              []string     `gorm:"serializer:json" json:"sizes"`
	Colors             []string     `gorm:"serializer:json" json:"colors"`
	Tags               []string     `gorm:"serializer:json" json:"tags"`
	Images             []string     `gorm:"serializer:json" json:"images"`
	Thumbnail          string       `json:"thumbnail"`
	CategoryID         string       `gorm:"index" json:"categoryId"`
	Category           *Category    `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	SubCategoryID      string       `gorm:"index" json:"subCategoryId"`
	SubCategory        *SubCategory `gorm:"foreignKey:SubCategoryID" json:"subCategory,omitempty"`
	StoreID            *string      `gorm:"index" json:"storeId,omitempty"`
	CreatedAt          time.Time    `json:"createdAt"`
	UpdatedAt          time.Time    `json:"updatedAt"`
}

// EffectivePrice is the price the console displays: the discounted price when
// a discount is set, the regular price otherwise.
func (p Product) EffectivePrice() float64 {
	if p.DiscountPercentage != 0 {
		return p.DiscountPrice
	}
	return p.Price
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
