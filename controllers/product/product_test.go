package productcontroller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Abdulllah321/ekka-admin-dashboard/models"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB, models.Category, models.SubCategory) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Category{}, &models.SubCategory{}, &models.Product{}, &models.Review{},
	))

	cat := models.Category{Name: "Shoes", Slug: "shoes", Status: models.StatusActive}
	require.NoError(t, db.Create(&cat).Error)
	sub := models.SubCategory{Name: "Sneakers", Slug: "sneakers", Status: models.StatusActive, MainCategoryID: cat.ID}
	require.NoError(t, db.Create(&sub).Error)

	r := gin.New()
	r.GET("/products", GetProducts(db))
	r.GET("/products/:slug", GetProductBySlug(db))
	r.POST("/products", CreateProduct(db))
	r.PUT("/products/:id", UpdateProduct(db))
	r.DELETE("/products/:id", DeleteProduct(db))
	return r, db, cat, sub
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createProduct(t *testing.T, r *gin.Engine, catID, subID, name string, price float64) models.Product {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/products", gin.H{
		"name": name, "price": price, "categoryId": catID, "subCategoryId": subID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var p models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	return p
}

func TestCreateProductDerivesSlug(t *testing.T) {
	r, _, cat, sub := setupRouter(t)

	p := createProduct(t, r, cat.ID, sub.ID, "Air Max 90", 129.99)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "air-max-90", p.Slug)
	assert.Equal(t, models.StatusActive, p.Status)
}

func TestCreateProductRejectsUnknownCategory(t *testing.T) {
	r, _, _, sub := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/products", gin.H{
		"name": "Air Max", "price": 129.99, "categoryId": "missing", "subCategoryId": sub.ID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetProductBySlug(t *testing.T) {
	r, _, cat, sub := setupRouter(t)
	createProduct(t, r, cat.ID, sub.ID, "Air Max 90", 129.99)

	w := doJSON(t, r, http.MethodGet, "/products/air-max-90", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var p models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, "Air Max 90", p.Name)
	require.NotNil(t, p.Category)
	assert.Equal(t, "Shoes", p.Category.Name)

	w = doJSON(t, r, http.MethodGet, "/products/missing-slug", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetProductsSearchAndSort(t *testing.T) {
	r, _, cat, sub := setupRouter(t)
	createProduct(t, r, cat.ID, sub.ID, "Air Max 90", 129.99)
	createProduct(t, r, cat.ID, sub.ID, "Air Force 1", 99.99)
	createProduct(t, r, cat.ID, sub.ID, "Classic Clog", 49.99)

	w := doJSON(t, r, http.MethodGet, "/products?search=AIR", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	assert.Len(t, products, 2)

	w = doJSON(t, r, http.MethodGet, "/products?sort_by=price&order=asc", nil)
	require.Equal(t, http.StatusOK, w.Code)
	products = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 3)
	assert.Equal(t, "Classic Clog", products[0].Name)
	assert.Equal(t, "Air Max 90", products[2].Name)
}

func TestUpdateProductOverwritesDraftFields(t *testing.T) {
	r, _, cat, sub := setupRouter(t)
	p := createProduct(t, r, cat.ID, sub.ID, "Air Max 90", 129.99)

	w := doJSON(t, r, http.MethodPut, "/products/"+p.ID, gin.H{
		"name": "Air Max 95", "price": 149.99, "discountPrice": 119.99,
		"discountPercentage": 20, "categoryId": cat.ID, "subCategoryId": sub.ID,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Air Max 95", updated.Name)
	assert.Equal(t, 149.99, updated.Price)
	assert.Equal(t, 119.99, updated.EffectivePrice())
	assert.Equal(t, "air-max-90", updated.Slug, "slug is kept unless the draft sets one")
}

func TestDeleteProductRemovesReviews(t *testing.T) {
	r, db, cat, sub := setupRouter(t)
	p := createProduct(t, r, cat.ID, sub.ID, "Air Max 90", 129.99)

	review := models.Review{Rating: 5, Comment: "great", ProductID: p.ID, UserID: "u1"}
	require.NoError(t, db.Create(&review).Error)

	w := doJSON(t, r, http.MethodDelete, "/products/"+p.ID, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var reviews int64
	require.NoError(t, db.Model(&models.Review{}).Count(&reviews).Error)
	assert.Zero(t, reviews)

	w = doJSON(t, r, http.MethodDelete, "/products/"+p.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
