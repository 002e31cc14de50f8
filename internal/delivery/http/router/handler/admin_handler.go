package handler

import (
	"log/slog"
	"net/http"

	"reachqr/internal/delivery/http/response"
	domainerrors "reachqr/internal/domain/errors"
	"reachqr/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for the administrative surface. Routes
// using it are guarded by the admin middleware.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListProfiles returns every profile, newest first.
func (h *AdminHandler) ListProfiles(c echo.Context) error {
	profiles, err := h.uc.ListProfiles(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileResponses(profiles), "")
}

// DeleteProfile hard-deletes a profile by ID.
func (h *AdminHandler) DeleteProfile(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("Invalid profile ID")
	}

	if err := h.uc.DeleteProfile(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Profile deleted")
}

// NotifyAll mails every page owner and reports the outcome counts.
func (h *AdminHandler) NotifyAll(c echo.Context) error {
	result, err := h.uc.NotifyAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Notification run finished")
}
