package address

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, auth gin.HandlerFunc) {
	address := r.Group("/addresses")
	address.Use(auth)
	{
		address.GET("", handler.List)
		address.POST("", handler.Create)
		address.DELETE("/:id", handler.Delete)
	}
}
