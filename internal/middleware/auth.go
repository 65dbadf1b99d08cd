package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"swasthyasetu-backend/pkg/utils"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Token missing", nil)
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Malformed token", nil)
			c.Abort()
			return
		}

		token, err := utils.ValidateToken(parts[1])
		if err != nil || !token.Valid {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Invalid token", nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Invalid token claims", nil)
			c.Abort()
			return
		}

		// JWT numbers decode as float64.
		var userID uint64
		if val, ok := claims["user_id"].(float64); ok {
			userID = uint64(val)
		}

		role, _ := claims["role"].(string)

		c.Set("userID", userID)
		c.Set("role", role)

		c.Next()
	}
}

// AdminOnly allows hospital admin accounts through.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists || role.(string) != "admin" {
			utils.APIResponse(c, http.StatusForbidden, false, "Access denied: admin only", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// GovernmentOnly allows government analysts; hospital admins may look too.
func GovernmentOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			utils.APIResponse(c, http.StatusForbidden, false, "Access denied", nil)
			c.Abort()
			return
		}

		r := role.(string)
		if r != "government" && r != "admin" {
			utils.APIResponse(c, http.StatusForbidden, false, "Access denied: government only", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
