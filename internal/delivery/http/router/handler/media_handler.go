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

// MediaHandler holds dependencies for logo uploads.
type MediaHandler struct {
	uc     usecase.MediaUsecase
	logger *slog.Logger
}

// NewMediaHandler is the constructor for MediaHandler, injected by Fx.
func NewMediaHandler(uc usecase.MediaUsecase, logger *slog.Logger) *MediaHandler {
	return &MediaHandler{
		uc:     uc,
		logger: logger,
	}
}

// UploadLogo accepts a multipart file field named "file" and returns the
// public URL of the stored image.
func (h *MediaHandler) UploadLogo(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return domainerrors.ErrUploadInvalid.WithMessage("No file provided")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer src.Close()

	url, err := h.uc.UploadLogo(c.Request().Context(), &service.LogoUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Body:        src,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"url": url}, "Logo uploaded")
}
