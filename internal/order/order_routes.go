package order

import "github.com/gin-gonic/gin"

// Middlewares groups what the order routes need from the router.
type Middlewares struct {
	Auth         gin.HandlerFunc
	OptionalAuth gin.HandlerFunc
	Admin        gin.HandlerFunc
	Idempotency  gin.HandlerFunc
}

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, mw Middlewares) {
	orders := r.Group("/orders")
	{
		// Guests can check out, so creation only looks at the token.
		orders.POST("", mw.OptionalAuth, mw.Idempotency, handler.Create)
		orders.GET("", mw.Auth, handler.List)
		orders.GET("/:id", handler.Detail)
		orders.GET("/:id/track", handler.Track)
		orders.GET("/:id/invoice", handler.Invoice)
	}

	admin := r.Group("/admin/orders")
	admin.Use(mw.Auth, mw.Admin)
	{
		admin.PATCH("/:id/status", handler.UpdateStatus)
	}
}
