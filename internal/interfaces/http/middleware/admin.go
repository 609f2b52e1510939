package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/memberconnect/backend/internal/domain/directory"
)

// RequireAdmin aborts with 403 unless the authenticated caller carries the
// admin role. Must run after JWTAuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetJWTRole(c) != string(directory.UserRoleAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "FORBIDDEN",
					"message": "Admin access required",
				},
			})
			return
		}
		c.Next()
	}
}
