package auth

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts /auth. loginLimit guards the login endpoint and
// authRequired protects the session-only routes.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, loginLimit, authRequired gin.HandlerFunc) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", loginLimit, handler.Login)
		auth.POST("/logout", handler.Logout)

		authenticated := auth.Group("/")
		authenticated.Use(authRequired)
		{
			authenticated.GET("/me", handler.Me)
		}
	}
}
