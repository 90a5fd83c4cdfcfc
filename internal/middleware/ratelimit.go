package middleware

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/rcmunich/robert-chang-portfolio/internal/config"
)

// Throttle applies one shared token bucket to every route it wraps. It guards
// the unauthenticated content write endpoints against bulk edits. A disabled
// config yields a passthrough.
func Throttle(cfg config.RateLimitConfig) echo.MiddlewareFunc {
	if !cfg.Enabled() {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	perRequest := cfg.Interval / time.Duration(cfg.Requests)
	if perRequest <= 0 {
		perRequest = time.Second
	}

	limiter := rate.NewLimiter(rate.Every(perRequest), cfg.Requests)
	retryAfter := strconv.Itoa(int(math.Ceil(perRequest.Seconds())))

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow() {
				c.Response().Header().Set("Retry-After", retryAfter)
				return echo.NewHTTPError(http.StatusTooManyRequests, "Too many write requests. Please try again later.")
			}
			return next(c)
		}
	}
}
