package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"reachqr/config"
	domainerrors "reachqr/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invokeAdminMiddleware(t *testing.T, cfg *config.Config, password string) error {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/profiles", nil)
	if password != "" {
		req.Header.Set(HeaderAdminPassword, password)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}

	return NewAdminMiddleware(cfg).Authenticate(next)(c)
}

func TestAdminMiddleware_CorrectPassword(t *testing.T) {
	cfg := &config.Config{Admin: &config.AdminConfig{Password: "hunter2"}}

	err := invokeAdminMiddleware(t, cfg, "hunter2")

	require.NoError(t, err)
}

func TestAdminMiddleware_WrongPassword(t *testing.T) {
	cfg := &config.Config{Admin: &config.AdminConfig{Password: "hunter2"}}

	err := invokeAdminMiddleware(t, cfg, "guess")

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAdminMiddleware_MissingHeader(t *testing.T) {
	cfg := &config.Config{Admin: &config.AdminConfig{Password: "hunter2"}}

	err := invokeAdminMiddleware(t, cfg, "")

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAdminMiddleware_UnconfiguredSecretLocksSurface(t *testing.T) {
	// No configured password means nothing can match, not open access.
	err := invokeAdminMiddleware(t, &config.Config{}, "anything")

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}
