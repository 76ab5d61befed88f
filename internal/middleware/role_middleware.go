package middleware

import (
	"slices"

	"github.com/gin-gonic/gin"
	autherrors "github.com/vetrivel962969-dotcom/Paperid/internal/auth/errors"
)

// RoleMiddleware must run after AuthMiddleware.
func RoleMiddleware(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if !slices.Contains(allowed, role) {
			abortWith(c, autherrors.ErrForbidden)
			return
		}
		c.Next()
	}
}
