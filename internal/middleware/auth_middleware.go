package middleware

import (
	"github.com/gin-gonic/gin"
	autherrors "github.com/vetrivel962969-dotcom/Paperid/internal/auth/errors"
	"github.com/vetrivel962969-dotcom/Paperid/internal/pkg/apperror"
	"github.com/vetrivel962969-dotcom/Paperid/internal/pkg/response"
)

func AuthMiddleware(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			abortWith(c, autherrors.ErrUnauthorized)
			return
		}

		cl, err := parseToken(key, tokenString)
		if err != nil {
			abortWith(c, err)
			return
		}

		c.Set("user_id_validated", cl.UserID)
		c.Set("role", cl.Role)

		c.Next()
	}
}

func abortWith(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
	c.Abort()
}
