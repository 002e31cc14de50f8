package impl

import (
	"context"
	"log/slog"

	"reachqr/internal/domain/service"
	"reachqr/internal/usecase"
)

// mediaService implements the MediaUsecase interface.
type mediaService struct {
	logoStorage service.LogoStorage
	logger      *slog.Logger
}

// NewMediaService is the constructor for mediaService.
func NewMediaService(logoStorage service.LogoStorage, logger *slog.Logger) usecase.MediaUsecase {
	return &mediaService{
		logoStorage: logoStorage,
		logger:      logger,
	}
}

// UploadLogo validates and stores a logo image. Validation lives in the
// storage implementation so every path into the bucket enforces it.
func (srv *mediaService) UploadLogo(ctx context.Context, upload *service.LogoUpload) (string, error) {
	url, err := srv.logoStorage.Upload(ctx, upload)
	if err != nil {
		return "", err
	}

	srv.logger.InfoContext(ctx, "logo uploaded", slog.String("url", url))

	return url, nil
}
