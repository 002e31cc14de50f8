package middleware

import (
	"crypto/subtle"

	"reachqr/config"
	domainerrors "reachqr/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// HeaderAdminPassword carries the shared admin secret on every admin request.
const HeaderAdminPassword = "X-Admin-Password"

// AdminMiddleware guards the administrative surface with a single shared
// secret. There are no admin identities and no sessions.
type AdminMiddleware struct {
	password string
}

// NewAdminMiddleware is the constructor for AdminMiddleware.
func NewAdminMiddleware(cfg *config.Config) *AdminMiddleware {
	m := &AdminMiddleware{}
	if cfg.Admin != nil {
		m.password = cfg.Admin.Password
	}

	return m
}

// Authenticate rejects requests whose header does not match the configured
// secret. An unconfigured secret locks the surface entirely rather than
// leaving it open.
func (m *AdminMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		supplied := c.Request().Header.Get(HeaderAdminPassword)

		if m.password == "" || supplied == "" {
			return domainerrors.ErrUnauthorized
		}
		if subtle.ConstantTimeCompare([]byte(supplied), []byte(m.password)) != 1 {
			return domainerrors.ErrUnauthorized
		}

		return next(c)
	}
}
