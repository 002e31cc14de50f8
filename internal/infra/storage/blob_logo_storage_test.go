package storage

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"testing"

	domainerrors "reachqr/internal/domain/errors"
	"reachqr/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newTestStorage(t *testing.T) *blobLogoStorage {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { bucket.Close() })

	return &blobLogoStorage{
		bucket:        bucket,
		publicBaseURL: "https://cdn.reachqr.example",
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestBlobLogoStorage_Upload(t *testing.T) {
	s := newTestStorage(t)

	url, err := s.Upload(context.Background(), &service.LogoUpload{
		Filename:    "logo.png",
		ContentType: "image/png",
		Size:        1024,
		Body:        strings.NewReader("fake png bytes"),
	})

	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^https://cdn\.reachqr\.example/[0-9a-f-]{36}\.png$`), url)
}

func TestBlobLogoStorage_Upload_ExtensionFromContentType(t *testing.T) {
	s := newTestStorage(t)

	url, err := s.Upload(context.Background(), &service.LogoUpload{
		Filename:    "logo",
		ContentType: "image/webp; charset=binary",
		Size:        1024,
		Body:        strings.NewReader("fake webp bytes"),
	})

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, ".webp"))
}

func TestBlobLogoStorage_Upload_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		upload  *service.LogoUpload
		message string
	}{
		{
			"no file",
			&service.LogoUpload{Filename: "logo.png", ContentType: "image/png", Size: 0},
			"No file provided",
		},
		{
			"too large",
			&service.LogoUpload{Filename: "logo.png", ContentType: "image/png", Size: MaxLogoSize + 1},
			"File too large. Maximum size is 5MB",
		},
		{
			"not an image",
			&service.LogoUpload{Filename: "payload.exe", ContentType: "application/octet-stream", Size: 10},
			"Only image files are allowed",
		},
		{
			"svg rejected",
			&service.LogoUpload{Filename: "logo.svg", ContentType: "image/svg+xml", Size: 10},
			"Only image files are allowed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStorage(t)

			url, err := s.Upload(context.Background(), tt.upload)

			require.Error(t, err)
			assert.Empty(t, url)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, 400, appErr.HTTPCode())
			assert.Equal(t, tt.message, appErr.Message())
		})
	}
}
