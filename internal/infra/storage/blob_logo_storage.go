// Package storage persists uploaded logo images in an object-storage bucket.
package storage

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"reachqr/config"
	domainerrors "reachqr/internal/domain/errors"
	"reachqr/internal/domain/lifecycle"
	"reachqr/internal/domain/service"
	"reachqr/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

// MaxLogoSize caps logo uploads at 5 MB.
const MaxLogoSize = 5 * 1024 * 1024

// allowedImageTypes is the raster image whitelist. SVG is rejected because it
// can embed script.
var allowedImageTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type blobLogoStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewBlobLogoStorage opens the configured bucket. The bucket URL scheme picks
// the backend (file:// for disk, mem:// for tests); the opened bucket is
// closed on shutdown.
func NewBlobLogoStorage(params Params) (service.LogoStorage, error) {
	if params.Config.Storage == nil || params.Config.Storage.BucketURL == "" {
		return nil, errors.New("storage configuration is missing")
	}

	openCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open logo bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobLogoStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(params.Config.Storage.PublicBaseURL, "/"),
		logger:        params.Logger,
	}, nil
}

// Upload validates and stores a logo, returning its public URL. The stored
// key is a fresh UUID so client-supplied names never reach the bucket.
func (s *blobLogoStorage) Upload(ctx context.Context, upload *service.LogoUpload) (string, error) {
	if upload.Size <= 0 {
		return "", domainerrors.ErrUploadInvalid.WithMessage("No file provided")
	}
	if upload.Size > MaxLogoSize {
		return "", domainerrors.ErrUploadInvalid.WithMessage("File too large. Maximum size is 5MB")
	}

	ext, ok := allowedImageTypes[normalizeContentType(upload.ContentType)]
	if !ok {
		return "", domainerrors.ErrUploadInvalid.WithMessage("Only image files are allowed")
	}
	if fromName := strings.ToLower(filepath.Ext(upload.Filename)); fromName != "" {
		ext = fromName
	}

	key := uuid.NewString() + ext

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType:  upload.ContentType,
		CacheControl: "public, max-age=31536000",
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open bucket writer")
	}

	if _, err := writer.ReadFrom(upload.Body); err != nil {
		// Abort the write so no partial object is left behind.
		_ = writer.Close()
		_ = s.bucket.Delete(ctx, key)

		return "", errors.Wrap(err, "failed to write logo to bucket")
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize logo write")
	}

	s.logger.InfoContext(ctx, "logo stored",
		slog.String("key", key),
		slog.Int64("size", upload.Size))

	return s.publicBaseURL + "/" + key, nil
}

func normalizeContentType(contentType string) string {
	contentType = strings.ToLower(strings.TrimSpace(contentType))
	if idx := strings.Index(contentType, ";"); idx >= 0 {
		contentType = strings.TrimSpace(contentType[:idx])
	}

	return contentType
}
