package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sevenxleaks/core/internal/pkg/jwt"
	"github.com/sevenxleaks/core/internal/pkg/response"
)

const (
	ContextKeyUserID = "user_id"
	ContextKeyClaims = "claims"
)

// Auth returns a middleware that enforces bearer token authentication.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := jwt.Parse(extractToken(c))
		if err != nil {
			response.Unauthorized(c, "Authentication required")
			return
		}
		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyClaims, claims)
		c.Next()
	}
}

// AdminOnly enforces authentication and the admin flag. Mount after, or
// instead of, Auth.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := jwt.Parse(extractToken(c))
		if err != nil {
			response.Unauthorized(c, "Authentication required")
			return
		}
		if !claims.IsAdmin {
			response.Forbidden(c, "Admin access required")
			return
		}
		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyClaims, claims)
		c.Next()
	}
}

// OptionalAuth sets claims if a valid token is present, without blocking.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := jwt.Parse(extractToken(c)); err == nil {
			c.Set(ContextKeyUserID, claims.UserID)
			c.Set(ContextKeyClaims, claims)
		}
		c.Next()
	}
}

// CurrentUserID extracts the authenticated user ID from context.
func CurrentUserID(c *gin.Context) string {
	v, _ := c.Get(ContextKeyUserID)
	id, _ := v.(string)
	return id
}

// CurrentClaims extracts the validated token claims, or nil.
func CurrentClaims(c *gin.Context) *jwt.Claims {
	v, _ := c.Get(ContextKeyClaims)
	claims, _ := v.(*jwt.Claims)
	return claims
}

// IsAuthenticated reports whether the request carries a valid token.
func IsAuthenticated(c *gin.Context) bool {
	return CurrentUserID(c) != ""
}

func extractToken(c *gin.Context) string {
	token := strings.TrimSpace(c.GetHeader("Authorization"))
	if token == "" {
		token = strings.TrimSpace(c.Query("token"))
	}
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return token
}
