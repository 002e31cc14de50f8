// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"reachqr/internal/delivery/http/response"
	domainerrors "reachqr/internal/domain/errors"
	"reachqr/internal/domain/service"
	"reachqr/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile-related handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	qrSvc  service.QRCodeService
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, qrSvc service.QRCodeService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		qrSvc:  qrSvc,
		logger: logger,
	}
}

// Create handles new page creation. The edit token in the response is shown
// to the caller exactly once.
func (h *ProfileHandler) Create(c echo.Context) error {
	var input *usecase.CreateProfileInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	output, err := h.uc.CreateProfile(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Page created successfully")
}

// GetByToken returns the profile owned by the edit token in the path.
func (h *ProfileHandler) GetByToken(c echo.Context) error {
	profile, err := h.uc.GetProfileByToken(c.Request().Context(), c.Param("token"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(profile), "")
}

// UpdateByToken rewrites the profile owned by the edit token in the path.
func (h *ProfileHandler) UpdateByToken(c echo.Context) error {
	var input *usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	slug, err := h.uc.UpdateProfileByToken(c.Request().Context(), c.Param("token"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"slug": slug}, "Changes saved")
}

// CheckSlug reports whether the slug query parameter is still available.
func (h *ProfileHandler) CheckSlug(c echo.Context) error {
	slug := c.QueryParam("slug")
	if slug == "" {
		return domainerrors.ErrValidationFailed.WithMessage("Slug is required")
	}

	available, err := h.uc.CheckSlugAvailability(c.Request().Context(), slug)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"available": available}, "")
}

// GetPublic returns the public page behind a slug.
func (h *ProfileHandler) GetPublic(c echo.Context) error {
	profile, err := h.uc.ResolvePublicProfile(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(profile), "")
}

type recordViewInput struct {
	Slug string `json:"slug"`
}

// RecordView bumps the view counter of a public page.
func (h *ProfileHandler) RecordView(c echo.Context) error {
	var input recordViewInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid view input")
	}
	if input.Slug == "" {
		return domainerrors.ErrValidationFailed.WithMessage("Slug is required")
	}

	if err := h.uc.RecordView(c.Request().Context(), input.Slug); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "")
}

// QRCode renders a PNG QR code pointing at the public page behind a slug.
func (h *ProfileHandler) QRCode(c echo.Context) error {
	profile, err := h.uc.ResolvePublicProfile(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	png, err := h.qrSvc.GenerateProfileQR(profile.Slug)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=3600")

	return c.Blob(http.StatusOK, "image/png", png)
}
