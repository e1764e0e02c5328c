package middleware

import (
	"lms_backend/internal/config"
	"lms_backend/internal/model"
	"lms_backend/internal/util"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

const blacklistPrefix = "jwt:blacklist:"

// AuthMiddleware parses the bearer token, rejects blacklisted (logged-out)
// tokens, and stores the claims in the request context.
func AuthMiddleware(cfg *config.Config, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		if rdb != nil && claims.ID != "" {
			exists, err := rdb.Exists(c.Request.Context(), blacklistPrefix+claims.ID).Result()
			if err == nil && exists > 0 {
				util.Unauthorized(c)
				c.Abort()
				return
			}
		}

		c.Set("user", claims)
		c.Set("token", tokenString)
		c.Next()
	}
}

// RoleMiddleware gates a route group to the given roles. Admin passes every
// gate.
func RoleMiddleware(roles ...model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := util.GetUserFromContext(c)
		if user == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		hasRole := false
		for _, role := range roles {
			if user.Role == model.Admin || user.Role == role {
				hasRole = true
				break
			}
		}

		if !hasRole {
			util.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
