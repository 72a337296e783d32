package userControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Abdulllah321/ekka-admin-dashboard/models"
)

// GetAllUsers lists every customer with the purchase count the users table
// shows.
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.Order("created_at DESC").Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}

		type countRow struct {
			UserID string
			N      int64
		}
		var rows []countRow
		if err := db.Model(&models.Order{}).
			Select("user_id, COUNT(*) AS n").
			Group("user_id").
			Scan(&rows).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count purchases"})
			return
		}
		counts := make(map[string]int64, len(rows))
		for _, r := range rows {
			counts[r.UserID] = r.N
		}
		for i := range users {
			users[i].TotalPurchases = counts[users[i].ID]
		}

		c.JSON(http.StatusOK, users)
	}
}
