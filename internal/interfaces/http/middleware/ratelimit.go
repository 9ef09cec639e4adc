package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"dialpool/internal/shared/logger"
	"dialpool/internal/shared/utils"
)

// RateLimiter is a redis fixed-window counter keyed by client IP, so every
// instance sharing the redis sees the same budget.
type RateLimiter struct {
	redisClient *redis.Client
	scope       string
	limit       int
	window      time.Duration
	now         func() time.Time
	logger      logger.Interface
}

func NewRateLimiter(redisClient *redis.Client, scope string, limit int, window time.Duration, log logger.Interface) *RateLimiter {
	return &RateLimiter{
		redisClient: redisClient,
		scope:       scope,
		limit:       limit,
		window:      window,
		now:         time.Now,
		logger:      log,
	}
}

// Limit fails open when redis errors.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		windowSeconds := int64(rl.window.Seconds())
		if windowSeconds < 1 {
			windowSeconds = 1
		}
		bucket := rl.now().Unix() / windowSeconds
		key := fmt.Sprintf("dialpool:ratelimit:%s:%s:%d", rl.scope, c.ClientIP(), bucket)

		ctx := c.Request.Context()
		count, err := rl.redisClient.Incr(ctx, key).Result()
		if err != nil {
			rl.logger.Warnw("rate limiter unavailable, allowing request", "scope", rl.scope, "error", err)
			c.Next()
			return
		}

		if count == 1 {
			rl.redisClient.Expire(ctx, key, rl.window+time.Second)
		}

		if count > int64(rl.limit) {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "too many attempts, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
