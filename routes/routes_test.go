package routes

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Abdulllah321/ekka-admin-dashboard/auth"
	"github.com/Abdulllah321/ekka-admin-dashboard/models"
)

func setupApp(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Admin{}, &models.User{}, &models.Address{},
		&models.Category{}, &models.SubCategory{}, &models.Store{},
		&models.Product{}, &models.Order{}, &models.OrderItem{},
		&models.Banner{}, &models.Coupon{}, &models.Review{},
	))

	r := gin.New()
	SetupRoutes(r, db, t.TempDir())
	return r, db
}

func adminCookie(t *testing.T) *http.Cookie {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      "a1",
		"username": "admin",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return &http.Cookie{Name: auth.CookieName, Value: signed}
}

func request(r *gin.Engine, method, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestReviewDeleteRouteIsRegistered(t *testing.T) {
	r, db := setupApp(t)

	review := models.Review{Rating: 4, Comment: "ok", ProductID: "p1", UserID: "u1"}
	require.NoError(t, db.Create(&review).Error)

	w := request(r, http.MethodDelete, "/reviews/"+review.ID, adminCookie(t))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var count int64
	require.NoError(t, db.Model(&models.Review{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestReviewDetailRouteIsRegistered(t *testing.T) {
	r, db := setupApp(t)

	review := models.Review{Rating: 4, Comment: "ok", ProductID: "p1", UserID: "u1"}
	require.NoError(t, db.Create(&review).Error)

	w := request(r, http.MethodGet, "/reviews/id/"+review.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestOrderReadsRequireAdmin(t *testing.T) {
	r, db := setupApp(t)

	order := models.Order{UserID: "u1", Status: models.OrderStatusPending, TotalAmount: 50}
	require.NoError(t, db.Create(&order).Error)

	assert.Equal(t, http.StatusUnauthorized, request(r, http.MethodGet, "/orders", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, request(r, http.MethodGet, "/orders/"+order.ID, nil).Code)

	cookie := adminCookie(t)
	assert.Equal(t, http.StatusOK, request(r, http.MethodGet, "/orders", cookie).Code)
	assert.Equal(t, http.StatusOK, request(r, http.MethodGet, "/orders/"+order.ID, cookie).Code)
}

func TestCatalogReadsStayPublic(t *testing.T) {
	r, _ := setupApp(t)

	assert.Equal(t, http.StatusOK, request(r, http.MethodGet, "/categories", nil).Code)
	assert.Equal(t, http.StatusOK, request(r, http.MethodGet, "/products", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, request(r, http.MethodPost, "/categories", nil).Code)
}
