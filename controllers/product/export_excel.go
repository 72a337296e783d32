package productcontroller

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/Abdulllah321/ekka-admin-dashboard/models"
)

// ExportProductsToExcel streams the whole catalog as an .xlsx download.
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Category").Preload("SubCategory").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "Name", "Slug", "Price", "Discount Price", "Stock",
			"Status", "Category", "Sub Category", "Sizes", "Colors", "Tags",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().Value = h
		}

		for _, p := range products {
			categoryName := ""
			if p.Category != nil {
				categoryName = p.Category.Name
			}
			subCategoryName := ""
			if p.SubCategory != nil {
				subCategoryName = p.SubCategory.Name
			}
			row := sheet.AddRow()
			row.AddCell().Value = p.ID
			row.AddCell().Value = p.Name
			row.AddCell().Value = p.Slug
			row.AddCell().Value = strconv.FormatFloat(p.Price, 'f', 2, 64)
			row.AddCell().Value = strconv.FormatFloat(p.DiscountPrice, 'f', 2, 64)
			row.AddCell().Value = strconv.Itoa(p.StockQuantity)
			row.AddCell().Value = string(p.Status)
			row.AddCell().Value = categoryName
			row.AddCell().Value = subCategoryName
			row.AddCell().Value = strings.Join(p.Sizes, ", ")
			row.AddCell().Value = strings.Join(p.Colors, ", ")
			row.AddCell().Value = strings.Join(p.Tags, ", ")
		}

		c.Header("Content-Disposition", `attachment; filename="products.xlsx"`)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to write Excel file: %v", err)})
			return
		}
	}
}
