package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Abdulllah321/ekka-admin-dashboard/models"
)

type ProductRequest struct {
	Name               string        `json:"name" binding:"required"`
	Slug               string        `json:"slug"`
	ShortDesc          string        `json:"shortDesc"`
	Description        string        `json:"description"`
	Price              float64       `json:"price" binding:"required"`
	DiscountPrice      float64       `json:"discountPrice"`
	DiscountPercentage float64       `json:"discountPercentage"`
	StockQuantity      int           `json:"stockQuantity"`
	Status             models.Status `json:"status"`
	Sizes              []string      `json:"sizes"`
	Colors             []string      `json:"colors"`
	Tags               []string      `json:"tags"`
	Images             []string      `json:"images"`
	Thumbnail          string        `json:"thumbnail"`
	CategoryID         string        `json:"categoryId" binding:"required"`
	SubCategoryID      string        `json:"subCategoryId" binding:"required"`
	StoreID            *string       `json:"storeId"`
}

// CreateProduct creates a product from a validated console draft.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, price, categoryId and subCategoryId are required"})
			return
		}

		var category models.Category
		if err := db.First(&category, "id = ?", req.CategoryID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
			return
		}
		var subCategory models.SubCategory
		if err := db.First(&subCategory, "id = ?", req.SubCategoryID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Sub category does not exist"})
			return
		}

		if req.Slug == "" {
			req.Slug = models.Slugify(req.Name)
		}
		if req.Status == "" {
			req.Status = models.StatusActive
		}

		product := models.Product{
			Name:               req.Name,
			Slug:               req.Slug,
			ShortDesc:          req.ShortDesc,
			Description:        req.Description,
			Price:              req.Price,
			DiscountPrice:      req.DiscountPrice,
			DiscountPercentage: req.DiscountPercentage,
			StockQuantity:      req.StockQuantity,
			Status:             req.Status,
			Sizes:              req.Sizes,
			Colors:             req.Colors,
			Tags:               req.Tags,
			Images:             req.Images,
			Thumbnail:          req.Thumbnail,
			CategoryID:         req.CategoryID,
			SubCategoryID:      req.SubCategoryID,
			StoreID:            req.StoreID,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
