package middleware

import (
	"net/http"
	"strings"

	"careconnect/models"
	"careconnect/utils"

	"github.com/gin-gonic/gin"
)

// IdentityKey is the gin context key holding the authenticated identity.
const IdentityKey = "identity"

// JWTAuthMiddleware validates the bearer token and attaches the acting
// identity (subject + role) to the request context. Tokens are minted by
// the identity service; this service only verifies them.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		ident, err := utils.ExtractIdentityFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		c.Set(IdentityKey, ident)
		c.Next()
	}
}

// RequireRole aborts requests whose identity does not carry one of the
// given roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := GetIdentity(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}
		for _, role := range roles {
			if ident.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": "Forbidden",
		})
	}
}

// GetIdentity pulls the authenticated identity out of the gin context.
func GetIdentity(c *gin.Context) (models.Identity, bool) {
	v, exists := c.Get(IdentityKey)
	if !exists {
		return models.Identity{}, false
	}
	ident, ok := v.(models.Identity)
	return ident, ok
}
