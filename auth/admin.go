package auth

import (
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Abdulllah321/ekka-admin-dashboard/models"
)

// CookieName is the session cookie the console sends with every request.
const CookieName = "token"

const sessionTTL = 24 * time.Hour

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SeedAdmin ensures the admin account from ADMIN_USERNAME/ADMIN_PASSWORD
// exists, storing only the bcrypt hash.
func SeedAdmin(db *gorm.DB) error {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		log.Println("⚠️ ADMIN_USERNAME/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	var existing models.Admin
	err := db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return db.Create(&models.Admin{Username: username, PasswordHash: string(hash)}).Error
}

// AdminLoginHandler checks the credential and sets the session cookie.
func AdminLoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
			return
		}

		var admin models.Admin
		if err := db.Where("username = ?", req.Username).First(&admin).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}

		token, err := generateToken(admin)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
			return
		}
		c.SetCookie(CookieName, token, int(sessionTTL.Seconds()), "/", "", false, true)

		c.JSON(http.StatusOK, gin.H{
			"user": gin.H{"id": admin.ID, "username": admin.Username},
		})
	}
}

// AdminCheckHandler answers whether the session cookie is still valid. The
// cookie middleware has already rejected the request otherwise.
func AdminCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":       c.GetString("admin_id"),
			"username": c.GetString("admin_username"),
		},
	})
}

// AdminLogoutHandler clears the session cookie.
func AdminLogoutHandler(c *gin.Context) {
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func generateToken(admin models.Admin) (string, error) {
	claims := jwt.MapClaims{
		"sub":      admin.ID,
		"username": admin.Username,
		"exp":      time.Now().Add(sessionTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
