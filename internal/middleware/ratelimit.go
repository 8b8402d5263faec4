package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/hotel-management/internal/config"
)

// RateLimit returns a fixed-window rate limiter backed by Redis.  Each
// client IP may issue cfg.Requests requests per cfg.Window; exceeding
// the budget yields 429 with a Retry-After header.  The limiter fails
// open: when Redis is unreachable the request is passed through, and a
// nil client or disabled config yields a no-op middleware.
func RateLimit(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}
	window := cfg.Window
	if window <= 0 {
		window = time.Minute
	}
	// Slots are counted in whole seconds; a sub-second window would make
	// the divisor zero.
	if window < time.Second {
		window = time.Second
	}
	windowSecs := int64(window / time.Second)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			now := time.Now()
			slot := now.Unix() / windowSecs
			key := fmt.Sprintf("%s:%s:%d", cfg.Prefix, c.RealIP(), slot)

			count, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				return next(c) // fail open on redis errors
			}
			if count == 1 {
				_ = rdb.Expire(ctx, key, window).Err()
			}
			if count > int64(cfg.Requests) {
				retry := window - time.Duration(now.Unix()%windowSecs)*time.Second
				c.Response().Header().Set("Retry-After", strconv.Itoa(int(retry/time.Second)))
				return c.JSON(http.StatusTooManyRequests, echo.Map{"error": "rate limit exceeded"})
			}
			return next(c)
		}
	}
}
