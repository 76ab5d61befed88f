package customer

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, auth gin.HandlerFunc) {
	profile := r.Group("/profile")
	profile.Use(auth)
	{
		profile.GET("", handler.GetProfile)
		profile.PATCH("", handler.UpdateProfile)
	}
}
