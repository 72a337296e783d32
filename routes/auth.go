package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Abdulllah321/ekka-admin-dashboard/auth"
	"github.com/Abdulllah321/ekka-admin-dashboard/middleware"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth/admin")
	{
		authGroup.POST("/login", auth.AdminLoginHandler(db))
		authGroup.GET("/check", middleware.RequireAdmin, auth.AdminCheckHandler)
		authGroup.POST("/logout", auth.AdminLogoutHandler)
	}
}
