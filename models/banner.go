package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BannerAnimation string

const (
	AnimationSlideFromLeft  BannerAnimation = "slideFromLeft"
	AnimationSlideFromRight BannerAnimation = "slideFromRight"
)

type Banner struct {
	ID         string          `gorm:"primaryKey" json:"id"`
	Image      string          `gorm:"not null" json:"image"`
	Title      string          `gorm:"not null" json:"title"`
	Subtitle   string          `json:"subtitle"`
	Discount   string          `json:"discount"`
	ButtonText string          `json:"buttonText"`
	ButtonURL  string          `json:"buttonUrl"`
	Animation  BannerAnimation `gorm:"type:VARCHAR(20)" json:"animation"`
}

func (b *Banner) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
