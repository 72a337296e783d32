package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "github.com/Abdulllah321/ekka-admin-dashboard/controllers/product"
	"github.com/Abdulllah321/ekka-admin-dashboard/middleware"
)

func SetupProductRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(db))
		products.GET("/:slug", productcontroller.GetProductBySlug(db))
		products.POST("", middleware.RequireAdmin, productcontroller.CreateProduct(db))
		products.PUT("/:id", middleware.RequireAdmin, productcontroller.UpdateProduct(db))
		products.DELETE("/:id", middleware.RequireAdmin, productcontroller.DeleteProduct(db))
	}

	// Catalog download lives outside /products to keep the detail-by-slug
	// route unambiguous.
	r.GET("/export/products", middleware.RequireAdmin, productcontroller.ExportProductsToExcel(db))
}
