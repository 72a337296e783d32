package couponcontroller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Abdulllah321/ekka-admin-dashboard/models"
)

type CouponRequest struct {
	Code           string              `json:"code" binding:"required"`
	Description    string              `json:"description"`
	DiscountAmount float64             `json:"discountAmount" binding:"required"`
	DiscountType   models.DiscountType `json:"discountType"`
	StartDate      time.Time           `json:"startDate" binding:"required"`
	EndDate        time.Time           `json:"endDate" binding:"required"`
	Status         models.CouponStatus `json:"status"`
}

func GetCoupons(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var coupons []models.Coupon
		if err := db.Order("created_at DESC").Find(&coupons).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch coupons"})
			return
		}
		c.JSON(http.StatusOK, coupons)
	}
}

func GetCouponByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var coupon models.Coupon
		if err := db.First(&coupon, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
			return
		}
		c.JSON(http.StatusOK, coupon)
	}
}

func CreateCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CouponRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "code, discountAmount, startDate and endDate are required"})
			return
		}
		if req.EndDate.Before(req.StartDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "endDate must be after startDate"})
			return
		}

		var existing models.Coupon
		if err := db.Where("code = ?", req.Code).First(&existing).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "A coupon with this code already exists"})
			return
		}

		if req.DiscountType == "" {
			req.DiscountType = models.DiscountTypePercentage
		}
		if req.Status == "" {
			req.Status = models.CouponStatusActive
		}

		coupon := models.Coupon{
			Code:           req.Code,
			Description:    req.Description,
			DiscountAmount: req.DiscountAmount,
			DiscountType:   req.DiscountType,
			StartDate:      req.StartDate,
			EndDate:        req.EndDate,
			Status:         req.Status,
		}
		if err := db.Create(&coupon).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create coupon"})
			return
		}

		c.JSON(http.StatusCreated, coupon)
	}
}

func UpdateCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var coupon models.Coupon
		if err := db.First(&coupon, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		var req CouponRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "code, discountAmount, startDate and endDate are required"})
			return
		}
		if req.EndDate.Before(req.StartDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "endDate must be after startDate"})
			return
		}
		if req.Code != coupon.Code {
			var existing models.Coupon
			if err := db.Where("code = ?", req.Code).First(&existing).Error; err == nil {
				c.JSON(http.StatusConflict, gin.H{"error": "A coupon with this code already exists"})
				return
			}
			coupon.Code = req.Code
		}

		coupon.Description = req.Description
		coupon.DiscountAmount = req.DiscountAmount
		if req.DiscountType != "" {
			coupon.DiscountType = req.DiscountType
		}
		coupon.StartDate = req.StartDate
		coupon.EndDate = req.EndDate
		if req.Status != "" {
			coupon.Status = req.Status
		}

		if err := db.Save(&coupon).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update coupon"})
			return
		}

		c.JSON(http.StatusOK, coupon)
	}
}

func DeleteCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var coupon models.Coupon
		if err := db.First(&coupon, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
			return
		}
		if err := db.Delete(&coupon).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete coupon"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Coupon deleted successfully"})
	}
}
