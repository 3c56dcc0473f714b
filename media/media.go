// Package media stores uploaded images (avatars, thumbnails, banners) and
// returns the reference kept on the owning record.
package media

import (
	"context"
	"elearning/config"
	"elearning/models"
	"errors"
	"strings"
)

// ErrNotImage rejects uploads whose content is not an image.
var ErrNotImage = errors.New("media: only image uploads are allowed")

func isImage(mimeType string) bool {
	return strings.HasPrefix(mimeType, "image/")
}

type UploadOptions struct {
	Folder string
	Width  int // resize width in pixels, 0 keeps the original
}

// Uploader stores a file given as a data URI or remote URL.
type Uploader interface {
	Upload(ctx context.Context, file string, opts UploadOptions) (models.Image, error)
	// Destroy removes a previous upload. An empty publicID is a no-op.
	Destroy(ctx context.Context, publicID string) error
}

// New returns the Cloudinary uploader when credentials are configured and a
// local disk uploader otherwise.
func New(cfg *config.Config) Uploader {
	if cfg.CloudName != "" && cfg.CloudAPIKey != "" && cfg.CloudSecretKey != "" {
		return NewCloudinary(cfg.CloudName, cfg.CloudAPIKey, cfg.CloudSecretKey)
	}
	return NewLocal(cfg.UploadDir, LocalURLPrefix)
}
