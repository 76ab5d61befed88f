package middleware

import "github.com/gin-gonic/gin"

// OptionalAuthMiddleware lets guests through. A valid token sets user_id;
// a missing or invalid one is ignored.
func OptionalAuthMiddleware(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			c.Next()
			return
		}

		cl, err := parseToken(key, tokenString)
		if err != nil {
			c.Next()
			return
		}

		c.Set("user_id", cl.UserID)
		c.Set("role", cl.Role)

		c.Next()
	}
}
