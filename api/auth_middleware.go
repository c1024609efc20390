package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tidyhive/home-cleaning-backend/auth"
)

// SessionAuth resolves the bearer session token into the acting user's
// identity and stores it in the request context under "user".
func SessionAuth(provider auth.IdentityProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")

		if !found || len(strings.TrimSpace(token)) == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authentication"})
			c.Abort()
			return
		}

		identity, err := provider.IdentityForToken(c.Request.Context(), token)

		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authentication"})
			c.Abort()
			return
		}

		c.Set("user", identity)
	}
}

// HomeOwnerOnly guards routes reserved for the home-owner side.
func HomeOwnerOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(auth.Identity)

		if user.Role != auth.RoleHomeOwner {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed"})
			c.Abort()
			return
		}
	}
}

// CleanerOnly guards routes reserved for the cleaner side.
func CleanerOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(auth.Identity)

		if user.Role != auth.RoleCleaner {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed"})
			c.Abort()
			return
		}
	}
}
