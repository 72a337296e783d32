package catalogcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Abdulllah321/ekka-admin-dashboard/models"
)

type SubCategoryRequest struct {
	Name           string        `json:"name" binding:"required"`
	Slug           string        `json:"slug"`
	ImageURL       string        `json:"imageUrl"`
	Status         models.Status `json:"status"`
	MainCategoryID string        `json:"mainCategoryId" binding:"required"`
}

func GetAllSubCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var subCategories []models.SubCategory
		if err := db.Preload("MainCategory").Order("created_at DESC").Find(&subCategories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sub categories"})
			return
		}
		c.JSON(http.StatusOK, subCategories)
	}
}

func CreateSubCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SubCategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and mainCategoryId are required"})
			return
		}

		var parent models.Category
		if err := db.First(&parent, "id = ?", req.MainCategoryID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Main category does not exist"})
			return
		}

		if req.Slug == "" {
			req.Slug = models.Slugify(req.Name)
		}
		if req.Status == "" {
			req.Status = models.StatusActive
		}

		subCategory := models.SubCategory{
			Name:           req.Name,
			Slug:           req.Slug,
			ImageURL:       req.ImageURL,
			Status:         req.Status,
			MainCategoryID: req.MainCategoryID,
		}
		if err := db.Create(&subCategory).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create sub category"})
			return
		}
		subCategory.MainCategory = &parent

		c.JSON(http.StatusCreated, subCategory)
	}
}

func UpdateSubCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var subCategory models.SubCategory
		if err := db.First(&subCategory, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Sub category not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		var req SubCategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and mainCategoryId are required"})
			return
		}
		if req.MainCategoryID != subCategory.MainCategoryID {
			var parent models.Category
			if err := db.First(&parent, "id = ?", req.MainCategoryID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Main category does not exist"})
				return
			}
			subCategory.MainCategoryID = req.MainCategoryID
		}
		subCategory.Name = req.Name
		if req.Slug != "" {
			subCategory.Slug = models.Slugify(req.Slug)
		}
		if req.ImageURL != "" {
			subCategory.ImageURL = req.ImageURL
		}
		if req.Status != "" {
			subCategory.Status = req.Status
		}

		if err := db.Save(&subCategory).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update sub category"})
			return
		}
		if err := db.Preload("MainCategory").First(&subCategory, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		c.JSON(http.StatusOK, subCategory)
	}
}

func DeleteSubCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var subCategory models.SubCategory
		if err := db.First(&subCategory, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sub category not found"})
			return
		}
		if err := db.Delete(&subCategory).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete sub category"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Sub category deleted successfully"})
	}
}
