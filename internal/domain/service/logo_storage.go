package service

import (
	"context"
	"io"
)

// LogoUpload describes an incoming logo image.
type LogoUpload struct {
	Filename    string // Client-supplied name, used only for its extension.
	ContentType string
	Size        int64
	Body        io.Reader
}

// LogoStorage defines the interface for the object-storage collaborator that
// holds uploaded logo images. Implementations enforce the size cap and the
// raster image MIME whitelist, store under a generated unique filename, and
// return a publicly retrievable URL.
type LogoStorage interface {
	Upload(ctx context.Context, upload *LogoUpload) (publicURL string, err error)
}
