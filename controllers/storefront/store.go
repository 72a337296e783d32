package storecontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Abdulllah321/ekka-admin-dashboard/models"
)

// GetAllStores lists vendor profiles with the aggregates the vendor cards
// render (owned products, coupons, and order counts).
func GetAllStores(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var stores []models.Store
		if err := db.Preload("Products").Preload("Coupons").
			Order("created_at DESC").Find(&stores).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stores"})
			return
		}
		for i := range stores {
			attachStoreOrders(db, &stores[i])
		}
		c.JSON(http.StatusOK, stores)
	}
}

func GetStoreByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var store models.Store
		if err := db.Preload("Products").Preload("Coupons").
			First(&store, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
			return
		}
		attachStoreOrders(db, &store)

		c.JSON(http.StatusOK, store)
	}
}

// attachStoreOrders collects the orders that contain any of the store's
// products. Orders have no direct store column; the link goes through items.
func attachStoreOrders(db *gorm.DB, store *models.Store) {
	store.Orders = []models.Order{}
	if len(store.Products) == 0 {
		return
	}
	productIDs := make([]string, 0, len(store.Products))
	for _, p := range store.Products {
		productIDs = append(productIDs, p.ID)
	}
	var orderIDs []string
	if err := db.Model(&models.OrderItem{}).
		Distinct("order_id").
		Where("product_id IN ?", productIDs).
		Pluck("order_id", &orderIDs).Error; err != nil || len(orderIDs) == 0 {
		return
	}
	var orders []models.Order
	if err := db.Where("id IN ?", orderIDs).Find(&orders).Error; err == nil {
		store.Orders = orders
	}
}
