package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	userRepo "github.com/RajRabadiya018/CarringNanny/database/repository/user"
	"github.com/RajRabadiya018/CarringNanny/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// JWTAuthMiddleware resolves the bearer token to a user identity and role.
// The current token hash is cached in Redis; on a miss the stored hash on the
// user document is checked, so revoked tokens die even when the cache is cold.
func JWTAuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header", "code": "unauthenticated"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, role, err := utils.ExtractIdentityFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "code": "unauthenticated"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + userID
		ctx := context.Background()

		authCache := utils.GetAuthCacheClient()
		if cachedHash, err := authCache.Get(ctx, cacheKey).Result(); err == nil {
			if cachedHash != computedHash {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch", "code": "unauthenticated"})
				return
			}
			_ = authCache.Expire(ctx, cacheKey, time.Hour).Err()
			c.Set("userID", userID)
			c.Set("role", role)
			c.Next()
			return
		} else if err != redis.Nil {
			zap.L().Warn("auth cache lookup failed, falling back to DB", zap.Error(err))
		}

		// Cache miss: verify against the stored token hash.
		proj := bson.M{"id": 1, "role": 1, "tokenHash": 1}
		usr, err := users.GetByIDWithProjection(userID, proj)
		if err != nil || usr == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication error", "code": "unauthenticated"})
			return
		}
		if usr.TokenHash == "" || usr.TokenHash != computedHash {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch", "code": "unauthenticated"})
			return
		}

		_ = authCache.Set(ctx, cacheKey, computedHash, time.Hour).Err()

		c.Set("userID", userID)
		c.Set("role", usr.Role)
		c.Next()
	}
}
