package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DiscountType string
type CouponStatus string

const (
	DiscountTypePercentage  DiscountType = "percentage"
	DiscountTypeFixedAmount DiscountType = "fixedAmount"

	CouponStatusActive   CouponStatus = "active"
	CouponStatusInactive CouponStatus = "inactive"
	CouponStatusExpired  CouponStatus = "expired"
)

type Coupon struct {
	ID             string       `gorm:"primaryKey" json:"id"`
	Code           string       `gorm:"uniqueIndex;not null" json:"code"`
	Description    string       `json:"description"`
	DiscountAmount float64      `json:"discountAmount"`
	DiscountType   DiscountType `gorm:"type:VARCHAR(20);default:'percentage'" json:"discountType"`
	StartDate      time.Time    `json:"startDate"`
	EndDate        time.Time    `json:"endDate"`
	Status         CouponStatus `gorm:"type:VARCHAR(10);default:'active'" json:"status"`
	StoreID        *string      `gorm:"index" json:"storeId,omitempty"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}

func (c *Coupon) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
