package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	bannercontroller "github.com/Abdulllah321/ekka-admin-dashboard/controllers/banner"
	couponcontroller "github.com/Abdulllah321/ekka-admin-dashboard/controllers/coupon"
	reviewcontroller "github.com/Abdulllah321/ekka-admin-dashboard/controllers/review"
	storecontroller "github.com/Abdulllah321/ekka-admin-dashboard/controllers/storefront"
	uploadcontroller "github.com/Abdulllah321/ekka-admin-dashboard/controllers/upload"
	userControllers "github.com/Abdulllah321/ekka-admin-dashboard/controllers/user"
	"github.com/Abdulllah321/ekka-admin-dashboard/middleware"
)

// SetupConsoleRoutes registers the remaining console resources: banners,
// coupons, reviews, vendor stores, the user listing and the image upload.
func SetupConsoleRoutes(r *gin.Engine, db *gorm.DB, uploadDir string) {
	banners := r.Group("/banners")
	{
		banners.GET("", bannercontroller.GetBanners(db))
		banners.POST("", middleware.RequireAdmin, bannercontroller.CreateBanner(db))
		banners.PUT("/:id", middleware.RequireAdmin, bannercontroller.UpdateBanner(db))
		banners.DELETE("/:id", middleware.RequireAdmin, bannercontroller.DeleteBanner(db))
	}

	coupons := r.Group("/coupons")
	{
		coupons.GET("", couponcontroller.GetCoupons(db))
		coupons.GET("/:id", couponcontroller.GetCouponByID(db))
		coupons.POST("", middleware.RequireAdmin, couponcontroller.CreateCoupon(db))
		coupons.PUT("/:id", middleware.RequireAdmin, couponcontroller.UpdateCoupon(db))
		coupons.DELETE("/:id", middleware.RequireAdmin, couponcontroller.DeleteCoupon(db))
	}

	reviews := r.Group("/reviews")
	{
		reviews.GET("", reviewcontroller.GetAllReviews(db))
		reviews.GET("/id/:id", reviewcontroller.GetReviewByID(db))
		reviews.GET("/:productId", reviewcontroller.GetReviewsByProduct(db))
		reviews.POST("", middleware.RequireAdmin, reviewcontroller.CreateReview(db))
		reviews.DELETE("/:id", middleware.RequireAdmin, reviewcontroller.DeleteReview(db))
	}

	stores := r.Group("/stores")
	{
		stores.GET("", storecontroller.GetAllStores(db))
		stores.GET("/:id", storecontroller.GetStoreByID(db))
	}

	r.GET("/users/all", middleware.RequireAdmin, userControllers.GetAllUsers(db))

	r.POST("/upload", middleware.RequireAdmin, uploadcontroller.HandleImageUpload(uploadDir))
}
