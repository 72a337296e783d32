package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Abdulllah321/ekka-admin-dashboard/models"
)

// UpdateProduct updates an existing product by ID. Accepts the same body as
// CreateProduct; zero-valued optional fields overwrite, matching what the
// edit form sends (the full draft).
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var req ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, price, categoryId and subCategoryId are required"})
			return
		}
		if req.CategoryID != product.CategoryID {
			var category models.Category
			if err := db.First(&category, "id = ?", req.CategoryID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
				return
			}
		}
		if req.SubCategoryID != product.SubCategoryID {
			var subCategory models.SubCategory
			if err := db.First(&subCategory, "id = ?", req.SubCategoryID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Sub category does not exist"})
				return
			}
		}

		product.Name = req.Name
		if req.Slug != "" {
			product.Slug = models.Slugify(req.Slug)
		}
		product.ShortDesc = req.ShortDesc
		product.Description = req.Description
		product.Price = req.Price
		product.DiscountPrice = req.DiscountPrice
		product.DiscountPercentage = req.DiscountPercentage
		product.StockQuantity = req.StockQuantity
		if req.Status != "" {
			product.Status = req.Status
		}
		product.Sizes = req.Sizes
		product.Colors = req.Colors
		product.Tags = req.Tags
		product.Images = req.Images
		if req.Thumbnail != "" {
			product.Thumbnail = req.Thumbnail
		}
		product.CategoryID = req.CategoryID
		product.SubCategoryID = req.SubCategoryID
		product.StoreID = req.StoreID

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
