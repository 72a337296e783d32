package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	catalogcontroller "github.com/Abdulllah321/ekka-admin-dashboard/controllers/catalog"
	"github.com/Abdulllah321/ekka-admin-dashboard/middleware"
)

// SetupCatalogRoutes registers category and sub-category endpoints. Reads are
// public; every mutation sits behind the session cookie.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	categories := r.Group("/categories")
	{
		categories.GET("", catalogcontroller.GetAllCategories(db))
		categories.POST("", middleware.RequireAdmin, catalogcontroller.CreateCategory(db))
		categories.PUT("/:id", middleware.RequireAdmin, catalogcontroller.UpdateCategory(db))
		categories.DELETE("/:id", middleware.RequireAdmin, catalogcontroller.DeleteCategory(db))
	}

	subCategories := r.Group("/subcategories")
	{
		subCategories.GET("", catalogcontroller.GetAllSubCategories(db))
		subCategories.POST("", middleware.RequireAdmin, catalogcontroller.CreateSubCategory(db))
		subCategories.PUT("/:id", middleware.RequireAdmin, catalogcontroller.UpdateSubCategory(db))
		subCategories.DELETE("/:id", middleware.RequireAdmin, catalogcontroller.DeleteSubCategory(db))
	}
}
