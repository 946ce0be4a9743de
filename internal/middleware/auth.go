// internal/middleware/auth.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hautevault/boutique-backend/internal/utils"
)

// AdminRequired rejects any request without a valid admin bearer token.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c)
		if !ok {
			utils.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		c.Set("is_admin", claims.Role == "admin")
		c.Next()
	}
}

// OptionalAdmin lets anonymous requests through but still rejects a
// present-yet-invalid token instead of silently downgrading it.
func OptionalAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}

		claims, ok := bearerClaims(c)
		if !ok {
			utils.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		c.Set("is_admin", claims.Role == "admin")
		c.Next()
	}
}

func bearerClaims(c *gin.Context) (*utils.AdminClaims, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return nil, false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, false
	}

	claims, err := utils.ValidateAdminToken(parts[1])
	if err != nil {
		return nil, false
	}
	return claims, true
}

// IsAdmin reports whether the current request carried a valid admin
// token.
func IsAdmin(c *gin.Context) bool {
	isAdmin, exists := c.Get("is_admin")
	return exists && isAdmin == true
}
