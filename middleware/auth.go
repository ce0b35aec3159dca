package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"glowbook/utils"
)

// AuthCachePrefix namespaces verified-token entries in the auth cache.
const AuthCachePrefix = "authtoken:"

// authCacheTTL bounds how long a verified token is trusted without
// re-verification. Firebase ID tokens themselves expire after an hour.
const authCacheTTL = time.Hour

// hashToken derives the cache key material for a bearer token; raw tokens
// never go into Redis.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// AuthMiddleware verifies the bearer ID token against the identity
// verifier and exposes the subject id as "userID" in the request context.
// Verified tokens are cached in Redis; a cache outage degrades to verifying
// every request rather than rejecting them.
func AuthMiddleware(verifier *auth.Client, authCache *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		ctx := context.Background()
		cacheKey := AuthCachePrefix + hashToken(tokenString)

		if authCache != nil {
			cachedUID, err := authCache.Get(ctx, cacheKey).Result()
			if err == nil && cachedUID != "" {
				c.Set("userID", cachedUID)
				c.Next()
				return
			}
			if err != nil && err != redis.Nil {
				logger.Warn("Auth cache lookup failed, falling back to verifier", zap.Error(err))
			}
		}

		verifyCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		token, err := verifier.VerifyIDToken(verifyCtx, tokenString)
		cancel()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		if authCache != nil {
			if err := authCache.Set(ctx, cacheKey, token.UID, authCacheTTL).Err(); err != nil {
				logger.Warn("Failed to cache verified token", zap.Error(err))
			}
		}

		c.Set("userID", token.UID)
		c.Next()
	}
}
