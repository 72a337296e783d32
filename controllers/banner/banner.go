package bannercontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Abdulllah321/ekka-admin-dashboard/models"
)

type BannerRequest struct {
	Image      string                 `json:"image" binding:"required"`
	Title      string                 `json:"title" binding:"required"`
	Subtitle   string                 `json:"subtitle"`
	Discount   string                 `json:"discount"`
	ButtonText string                 `json:"buttonText"`
	ButtonURL  string                 `json:"buttonUrl"`
	Animation  models.BannerAnimation `json:"animation"`
}

func validAnimation(a models.BannerAnimation) bool {
	return a == models.AnimationSlideFromLeft || a == models.AnimationSlideFromRight
}

func GetBanners(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var banners []models.Banner
		if err := db.Find(&banners).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get banners"})
			return
		}
		c.JSON(http.StatusOK, banners)
	}
}

func CreateBanner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req BannerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image and title are required"})
			return
		}
		if req.Animation == "" {
			req.Animation = models.AnimationSlideFromLeft
		}
		if !validAnimation(req.Animation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid animation direction"})
			return
		}

		banner := models.Banner{
			Image:      req.Image,
			Title:      req.Title,
			Subtitle:   req.Subtitle,
			Discount:   req.Discount,
			ButtonText: req.ButtonText,
			ButtonURL:  req.ButtonURL,
			Animation:  req.Animation,
		}
		if err := db.Create(&banner).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create banner"})
			return
		}

		c.JSON(http.StatusCreated, banner)
	}
}

func UpdateBanner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var banner models.Banner
		if err := db.First(&banner, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Banner not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		var req BannerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image and title are required"})
			return
		}
		if req.Animation != "" && !validAnimation(req.Animation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid animation direction"})
			return
		}

		banner.Image = req.Image
		banner.Title = req.Title
		banner.Subtitle = req.Subtitle
		banner.Discount = req.Discount
		banner.ButtonText = req.ButtonText
		banner.ButtonURL = req.ButtonURL
		if req.Animation != "" {
			banner.Animation = req.Animation
		}

		if err := db.Save(&banner).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update banner"})
			return
		}

		c.JSON(http.StatusOK, banner)
	}
}

func DeleteBanner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var banner models.Banner
		if err := db.First(&banner, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Banner not found"})
			return
		}
		if err := db.Delete(&banner).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete from database"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Banner deleted"})
	}
}
