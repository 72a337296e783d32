package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/Abdulllah321/ekka-admin-dashboard/controllers/order"
	"github.com/Abdulllah321/ekka-admin-dashboard/middleware"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	// Orders carry customer names and addresses, so reads are admin-only too.
	orders := r.Group("/orders", middleware.RequireAdmin)
	{
		// Fetch all orders (admin table)
		orders.GET("", orderControllers.GetAllOrdersHandler(db))

		// websocket endpoint for real-time order updates
		orders.GET("/ws", orderControllers.OrderWebSocketHandler)

		// Fetch a single order
		orders.GET("/:id", orderControllers.GetOrderHandler(db))

		// Update order status (e.g. shipped, cancelled)
		orders.PATCH("/:id", orderControllers.UpdateOrderStatusHandler(db))
	}
}
