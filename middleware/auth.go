package middleware

import (
	"net/http"
	"time"

	"fastbites-api/config"
	"fastbites-api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserID uint   `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed JWT for a given user
func GenerateToken(user *models.User) (string, error) {
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret)
}

// SetAuthCookie attaches the token as an HTTP-only cookie
func SetAuthCookie(c *gin.Context, token string) {
	c.SetCookie(config.CookieName, token, int((24 * time.Hour).Seconds()), "/", "", false, true)
}

// ClearAuthCookie removes the auth cookie on logout
func ClearAuthCookie(c *gin.Context) {
	c.SetCookie(config.CookieName, "", -1, "/", "", false, true)
}

// IsAuthenticated validates the cookie JWT and injects the user id
func IsAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(config.CookieName)
		if err != nil || tokenStr == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated"})
			c.Abort()
			return
		}
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return config.JWTSecret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid or expired token"})
			c.Abort()
			return
		}
		c.Set("userID", claims.UserID)
		c.Set("email", claims.Email)
		c.Next()
	}
}

// GetUserID extracts caller user ID from context
func GetUserID(c *gin.Context) uint {
	val, _ := c.Get("userID")
	return val.(uint)
}
