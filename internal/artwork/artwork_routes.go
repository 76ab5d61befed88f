package artwork

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, optionalAuth gin.HandlerFunc) {
	r.POST("/artwork", optionalAuth, handler.Upload)
}
