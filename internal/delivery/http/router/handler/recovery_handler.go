package handler

import (
	"log/slog"
	"net/http"

	"reachqr/internal/delivery/http/response"
	"reachqr/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RecoveryHandler holds dependencies for edit link recovery.
type RecoveryHandler struct {
	uc     usecase.RecoveryUsecase
	logger *slog.Logger
}

// NewRecoveryHandler is the constructor for RecoveryHandler, injected by Fx.
func NewRecoveryHandler(uc usecase.RecoveryUsecase, logger *slog.Logger) *RecoveryHandler {
	return &RecoveryHandler{
		uc:     uc,
		logger: logger,
	}
}

// Recover triggers edit link recovery for an email address. The response is
// identical whether or not the address matched any page.
func (h *RecoveryHandler) Recover(c echo.Context) error {
	var input *usecase.RecoverInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recovery input")
	}

	if err := h.uc.Recover(c.Request().Context(), input.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil,
		"If a page exists with this email, you will receive a recovery link.")
}
