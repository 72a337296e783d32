package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category struct {
	ID            string         `gorm:"primaryKey" json:"id"`
	Name          string         `gorm:"uniqueIndex;not null" json:"name"`
	Slug          string         `gorm:"uniqueIndex;not null" json:"slug"`
	ShortDesc     string         `json:"shortDesc"`
	FullDesc      string         `json:"fullDesc"`
	ImageURL      string         `json:"imageUrl"`
	Status        Status         `gorm:"type:VARCHAR(10);default:'active'" json:"status"`
	SubCategories []SubCategory  `gorm:"foreignKey:MainCategoryID;constraint:OnDelete:CASCADE" json:"subCategories"`
	Count         *CategoryCount `gorm:"-" json:"_count,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// CategoryCount mirrors the aggregate block the console renders next to each
// category row.
type CategoryCount struct {
	Products int64 `json:"products"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
