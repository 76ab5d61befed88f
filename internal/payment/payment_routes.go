package payment

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, auth gin.HandlerFunc) {
	payments := r.Group("/payments")
	payments.Use(auth)
	{
		payments.GET("", handler.List)
		payments.POST("", handler.Create)
		payments.DELETE("/:id", handler.Delete)
	}
}
