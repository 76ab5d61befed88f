package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/vetrivel962969-dotcom/Paperid/internal/pkg/apperror"
	"github.com/vetrivel962969-dotcom/Paperid/internal/pkg/response"
)

const IdempotencyHeader = "Idempotency-Key"

// Idempotency rejects a replayed Idempotency-Key with 409 for ttl. Requests
// without the header pass through unchanged, as do all requests when rdb is
// nil. The key is released if the handler fails so the client can retry.
func Idempotency(rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyHeader)
		if rdb == nil || key == "" {
			c.Next()
			return
		}

		lockKey := "idem:" + c.Request.Method + ":" + c.FullPath() + ":" + key
		ok, err := rdb.SetNX(c.Request.Context(), lockKey, "1", ttl).Result()
		if err != nil {
			c.Next()
			return
		}
		if !ok {
			response.Error(c, http.StatusConflict, apperror.CodeConflict, "Duplicate request", nil)
			c.Abort()
			return
		}

		c.Set("idempotency_lock_key", lockKey)
		c.Next()

		if c.Writer.Status() >= http.StatusBadRequest {
			rdb.Del(c.Request.Context(), lockKey)
		}
	}
}
