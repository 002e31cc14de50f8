package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "reachqr/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleError(t *testing.T, err error) (int, domainerrors.Response) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	NewErrorMiddleware(logger).HandleHTTPError(err, c)

	var body domainerrors.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec.Code, body
}

func TestErrorMiddleware_AppError(t *testing.T) {
	code, body := handleError(t, domainerrors.ErrSlugTaken)

	assert.Equal(t, http.StatusConflict, code)
	assert.False(t, body.Success)
	assert.Equal(t, "This name is already taken", body.Message)
	require.NotNil(t, body.Error)
	assert.Equal(t, "SLUG_TAKEN", body.Error.Code)
}

func TestErrorMiddleware_WrappedAppError(t *testing.T) {
	wrapped := errors.Wrap(domainerrors.ErrEditLinkInvalid, "lookup failed")

	code, body := handleError(t, wrapped)

	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "This edit link is invalid or has expired", body.Message)
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	code, body := handleError(t, echo.NewHTTPError(http.StatusRequestEntityTooLarge, "Request Entity Too Large"))

	assert.Equal(t, http.StatusRequestEntityTooLarge, code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
}

func TestErrorMiddleware_UnknownErrorStaysGeneric(t *testing.T) {
	code, body := handleError(t, errors.New("pq: connection reset"))

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Something went wrong. Please try again", body.Message)
	// The raw error text must not leak to the client.
	assert.NotContains(t, body.Message, "pq:")
}
