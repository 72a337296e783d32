package orderControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Abdulllah321/ekka-admin-dashboard/models"
)

// -------- Request Structs --------

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// -------- Handlers --------

func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("User").
			Preload("SelectedAddress").
			Preload("OrderItems").
			Preload("OrderItems.Product").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

func GetOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var order models.Order
		if err := db.
			Preload("User").
			Preload("SelectedAddress").
			Preload("OrderItems").
			Preload("OrderItems.Product").
			First(&order, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// UpdateOrderStatusHandler advances an order through the delivery progression.
// Moves out of delivered or cancelled, and backward moves, are rejected.
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
			return
		}
		if !models.ValidOrderStatus(req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order status"})
			return
		}

		var order models.Order
		if err := db.
			Preload("User").
			Preload("SelectedAddress").
			Preload("OrderItems").
			Preload("OrderItems.Product").
			First(&order, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		if !models.CanTransition(order.Status, req.Status) {
			c.JSON(http.StatusConflict, gin.H{"error": "Order cannot move from " + string(order.Status) + " to " + string(req.Status)})
			return
		}

		order.Status = req.Status
		if err := db.Save(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}

		broadcastOrderUpdate(order)

		c.JSON(http.StatusOK, order)
	}
}
