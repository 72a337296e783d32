package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB, uploadDir string) {
	// Public auth routes + session check
	SetupAuthRoutes(r, db)

	// Catalog: categories and sub-categories
	SetupCatalogRoutes(r, db)

	// Products incl. detail-by-slug and Excel export
	SetupProductRoutes(r, db)

	// Orders incl. the websocket feed
	SetupOrderRoutes(r, db)

	// Banners, coupons, reviews, stores, users, upload
	SetupConsoleRoutes(r, db, uploadDir)
}
