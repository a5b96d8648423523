package middleware

import (
	"net/http"

	"GoldPulse/pkg/ratelimit"

	"github.com/labstack/echo/v4"
)

// RateLimit throttles requests per client IP with a token bucket.
func RateLimit(limiter *ratelimit.Limiter, capacity, refillPerSec float64) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow(c.RealIP(), capacity, refillPerSec) {
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"status":  http.StatusTooManyRequests,
					"message": "Too Many Requests",
				})
			}
			return next(c)
		}
	}
}
