package middleware

import (
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/infra/ratelimit"

	"github.com/labstack/echo/v4"
)

// RateLimitMiddleware throttles requests per client IP and scope.
type RateLimitMiddleware struct {
	limiter ratelimit.Limiter
}

func NewRateLimitMiddleware(limiter ratelimit.Limiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter}
}

// Limit returns a middleware drawing from the budget of scope.
func (m *RateLimitMiddleware) Limit(scope string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !m.limiter.Allow(scope + ":" + c.RealIP()) {
				return domainerrors.ErrTooManyRequests.WrapMessage(scope + " rate limit exceeded")
			}

			return next(c)
		}
	}
}
