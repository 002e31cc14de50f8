package middleware

import (
	domainerrors "reachqr/internal/domain/errors"
	"reachqr/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// RateLimitMiddleware applies the per-client request budget to abuse-prone
// routes. Clients are keyed by their network address.
type RateLimitMiddleware struct {
	limiter service.RateLimiter
}

// NewRateLimitMiddleware is the constructor for RateLimitMiddleware.
func NewRateLimitMiddleware(limiter service.RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter}
}

// Limit rejects requests exceeding the per-client budget with 429.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.limiter.Allow(c.RealIP()) {
			return domainerrors.ErrRateLimited
		}

		return next(c)
	}
}
