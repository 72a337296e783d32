package catalogcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Abdulllah321/ekka-admin-dashboard/models"
)

type CategoryRequest struct {
	Name      string        `json:"name" binding:"required"`
	Slug      string        `json:"slug"`
	ShortDesc string        `json:"shortDesc"`
	FullDesc  string        `json:"fullDesc"`
	ImageURL  string        `json:"imageUrl"`
	Status    models.Status `json:"status"`
}

// GetAllCategories returns every category with its sub-categories and the
// product count the console shows per row.
func GetAllCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Preload("SubCategories").Order("created_at DESC").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}

		type countRow struct {
			CategoryID string
			N          int64
		}
		var rows []countRow
		if err := db.Model(&models.Product{}).
			Select("category_id, COUNT(*) AS n").
			Group("category_id").
			Scan(&rows).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count products"})
			return
		}
		counts := make(map[string]int64, len(rows))
		for _, r := range rows {
			counts[r.CategoryID] = r.N
		}
		for i := range categories {
			categories[i].Count = &models.CategoryCount{Products: counts[categories[i].ID]}
		}

		c.JSON(http.StatusOK, categories)
	}
}

func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}
		if req.Slug == "" {
			req.Slug = models.Slugify(req.Name)
		}
		if req.Status == "" {
			req.Status = models.StatusActive
		}

		var existing models.Category
		if err := db.Where("slug = ?", req.Slug).First(&existing).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "A category with this slug already exists"})
			return
		}

		category := models.Category{
			Name:      req.Name,
			Slug:      req.Slug,
			ShortDesc: req.ShortDesc,
			FullDesc:  req.FullDesc,
			ImageURL:  req.ImageURL,
			Status:    req.Status,
		}
		if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}
		category.SubCategories = []models.SubCategory{}
		category.Count = &models.CategoryCount{}

		c.JSON(http.StatusCreated, category)
	}
}

func UpdateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var category models.Category
		if err := db.Preload("SubCategories").First(&category, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		var req CategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}
		category.Name = req.Name
		if req.Slug != "" {
			category.Slug = models.Slugify(req.Slug)
		}
		category.ShortDesc = req.ShortDesc
		category.FullDesc = req.FullDesc
		if req.ImageURL != "" {
			category.ImageURL = req.ImageURL
		}
		if req.Status != "" {
			category.Status = req.Status
		}

		if err := db.Save(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
			return
		}

		c.JSON(http.StatusOK, category)
	}
}

func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var category models.Category
		if err := db.First(&category, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}

		tx := db.Begin()
		if tx.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
			return
		}
		if err := tx.Where("main_category_id = ?", id).Delete(&models.SubCategory{}).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete sub categories"})
			return
		}
		if err := tx.Delete(&category).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			return
		}
		if err := tx.Commit().Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit category deletion"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
	}
}
