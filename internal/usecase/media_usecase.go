package usecase

import (
	"context"

	"reachqr/internal/domain/service"
)

// MediaUsecase defines the interface for logo upload handling.
type MediaUsecase interface {
	// UploadLogo validates and stores a logo image, returning its public URL.
	UploadLogo(ctx context.Context, upload *service.LogoUpload) (string, error)
}
