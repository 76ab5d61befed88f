package app

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/vetrivel962969-dotcom/Paperid/internal/address"
	"github.com/vetrivel962969-dotcom/Paperid/internal/artwork"
	"github.com/vetrivel962969-dotcom/Paperid/internal/auth"
	"github.com/vetrivel962969-dotcom/Paperid/internal/customer"
	"github.com/vetrivel962969-dotcom/Paperid/internal/middleware"
	"github.com/vetrivel962969-dotcom/Paperid/internal/order"
	"github.com/vetrivel962969-dotcom/Paperid/internal/payment"
	"github.com/vetrivel962969-dotcom/Paperid/internal/product"
	"go.uber.org/zap"
)

const idempotencyTTL = 24 * time.Hour

var defaultCORSOrigins = []string{"http://localhost:5173", "http://localhost:3000"}

// NewRouter mounts every backend module under /api/v1. rdb may be nil, in
// which case rate limiting and idempotency locks are disabled.
func NewRouter(b *Backend, cfg Config, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = defaultCORSOrigins
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.IdempotencyHeader, "X-Request-ID"},
			ExposeHeaders:    []string{"Content-Disposition", "Content-Length", "X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authRequired := middleware.AuthMiddleware(cfg.JWTSecret)
	optionalAuth := middleware.OptionalAuthMiddleware(cfg.JWTSecret)

	// --- Handlers ---
	productHandler := product.NewHandler(b.Products)
	authHandler := auth.NewHandler(b.Auth, cfg.Production(), logger)
	customerHandler := customer.NewHandler(b.Customers, logger)
	addressHandler := address.NewHandler(b.Addresses)
	paymentHandler := payment.NewHandler(b.Payments)
	orderHandler := order.NewHandler(b.Orders, logger)
	artworkHandler := artwork.NewHandler(b.Artwork, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		product.RegisterRoutes(api, productHandler)
		auth.RegisterRoutes(api, authHandler,
			middleware.RateLimitByIP(rdb, cfg.LoginLimit, cfg.LoginWindow, logger),
			authRequired,
		)
		customer.RegisterRoutes(api, customerHandler, authRequired)
		address.RegisterRoutes(api, addressHandler, authRequired)
		payment.RegisterRoutes(api, paymentHandler, authRequired)
		order.RegisterRoutes(api, orderHandler, order.Middlewares{
			Auth:         authRequired,
			OptionalAuth: optionalAuth,
			Admin:        middleware.RoleMiddleware("ADMIN"),
			Idempotency:  middleware.Idempotency(rdb, idempotencyTTL),
		})
		artwork.RegisterRoutes(api, artworkHandler, optionalAuth)
	}

	return router
}
