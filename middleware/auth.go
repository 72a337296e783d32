package middleware

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Abdulllah321/ekka-admin-dashboard/auth"
)

// RequireAdmin validates the session cookie and puts the admin identity on
// the context.
func RequireAdmin(c *gin.Context) {
	tokenString, err := c.Cookie(auth.CookieName)
	if err != nil || tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		c.Abort()
		return
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
		c.Abort()
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		c.Abort()
		return
	}
	if sub, ok := claims["sub"].(string); ok {
		c.Set("admin_id", sub)
	}
	if username, ok := claims["username"].(string); ok {
		c.Set("admin_username", username)
	}

	c.Next()
}
