package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole guards a route group to the given roles. It assumes
// JWTAuthMiddleware already resolved the identity.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient privileges", "code": "forbidden"})
	}
}
