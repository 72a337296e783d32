package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubCategory struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"not null" json:"name"`
	Slug           string    `gorm:"uniqueIndex;not null" json:"slug"`
	ImageURL       string    `json:"imageUrl"`
	Status         Status    `gorm:"type:VARCHAR(10);default:'active'" json:"status"`
	MainCategoryID string    `gorm:"index;not null" json:"mainCategoryId"`
	MainCategory   *Category `gorm:"foreignKey:MainCategoryID" json:"mainCategory,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (s *SubCategory) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
