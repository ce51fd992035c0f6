package middleware

import (
	"net/http"

	usersapi "github.com/alamin-islam0/artify-server-assignment/internal/api/users"
	"github.com/alamin-islam0/artify-server-assignment/internal/domain/identity"
	"github.com/gin-gonic/gin"
)

// RequireAdmin gates a route group on the caller's role. Identity arrives
// as a trusted X-User-Email header from the upstream auth layer; this
// service only checks the directory role behind it.
func RequireAdmin(users *usersapi.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := identity.NormalizeEmail(c.GetHeader("X-User-Email"))
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing user identity"})
			return
		}

		isAdmin, err := users.IsAdmin(email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		if !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}

		c.Set("email", email)
		c.Next()
	}
}
