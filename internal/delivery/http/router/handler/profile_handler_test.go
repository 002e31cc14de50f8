package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"reachqr/config"
	"reachqr/internal/delivery/http/response"
	"reachqr/internal/domain/entity"
	mockRepo "reachqr/internal/mocks/repository"
	mockSvc "reachqr/internal/mocks/service"
	"reachqr/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestProfileHandler(t *testing.T) (*ProfileHandler, *mockRepo.MockProfileRepository, *mockSvc.MockTokenCodec) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	tokenCodec := mockSvc.NewMockTokenCodec(t)
	mailer := mockSvc.NewMockMailer(t)
	qrSvc := mockSvc.NewMockQRCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.App.BaseURL = "https://reachqr.example"

	mailer.On("SendEditLink", mock.Anything, mock.Anything).Return(nil).Maybe()

	uc := impl.NewProfileService(cfg, profileRepo, tokenCodec, mailer, logger)

	return NewProfileHandler(uc, qrSvc, logger), profileRepo, tokenCodec
}

func TestProfileHandler_Create(t *testing.T) {
	h, profileRepo, tokenCodec := newTestProfileHandler(t)

	tokenCodec.On("GenerateToken").Return("tok", nil)
	tokenCodec.On("HashToken", "tok").Return("tok-hash")
	profileRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	body := `{"slug":"Corner Cafe","business_name":"Corner Cafe","email":"owner@example.com","whatsapp_e164":"+14155551234"}`
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/profiles", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var envelope response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)

	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "corner-cafe", data["slug"])
	assert.Equal(t, "tok", data["editToken"])
}

func TestProfileHandler_GetByToken_StripsHash(t *testing.T) {
	h, profileRepo, tokenCodec := newTestProfileHandler(t)

	tokenCodec.On("HashToken", "tok").Return("tok-hash")
	profileRepo.On("FindByTokenHash", mock.Anything, "tok-hash").
		Return(&entity.Profile{Slug: "corner-cafe", EditTokenHash: "tok-hash"}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/profiles/:token")
	c.SetParamNames("token")
	c.SetParamValues("tok")

	require.NoError(t, h.GetByToken(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "tok-hash")
	assert.Contains(t, rec.Body.String(), "corner-cafe")
}

func TestProfileHandler_CheckSlug(t *testing.T) {
	h, profileRepo, _ := newTestProfileHandler(t)

	profileRepo.On("FindBySlug", mock.Anything, "corner-cafe").
		Return(&entity.Profile{Slug: "corner-cafe"}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/check-slug?slug=corner-cafe", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.CheckSlug(c))

	var envelope response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, data["available"])
}
