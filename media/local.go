package media

import (
	"context"
	"elearning/models"
	"elearning/utils"
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalURLPrefix is where the server exposes the local upload directory.
const LocalURLPrefix = "/uploads"

// Local writes data URI uploads below dir. Remote URLs are kept as given.
type Local struct {
	dir       string
	urlPrefix string
}

func NewLocal(dir, urlPrefix string) *Local {
	return &Local{dir: dir, urlPrefix: urlPrefix}
}

func (u *Local) Upload(_ context.Context, file string, opts UploadOptions) (models.Image, error) {
	_, payload, ok := utils.ParseDataURI(file)
	if !ok {
		return models.Image{URL: file}, nil
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return models.Image{}, fmt.Errorf("media: decode upload: %w", err)
	}

	// the declared type is client input, the stored extension follows the bytes
	mimeType := http.DetectContentType(data)
	if !isImage(mimeType) {
		return models.Image{}, ErrNotImage
	}

	// Create destination directory if it doesn't exist
	destDir := filepath.Join(u.dir, filepath.FromSlash(opts.Folder))
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return models.Image{}, err
	}

	// Create a unique filename
	publicID := path.Join(opts.Folder, uuid.NewString()+extension(mimeType))
	if err := os.WriteFile(filepath.Join(u.dir, filepath.FromSlash(publicID)), data, 0644); err != nil {
		return models.Image{}, err
	}

	return models.Image{PublicID: publicID, URL: u.fileURL(publicID)}, nil
}

func (u *Local) Destroy(_ context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}
	clean := path.Clean("/" + publicID)
	err := os.Remove(filepath.Join(u.dir, filepath.FromSlash(strings.TrimPrefix(clean, "/"))))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (u *Local) fileURL(publicID string) string {
	return strings.TrimSuffix(u.urlPrefix, "/") + "/" + publicID
}

func extension(mimeType string) string {
	exts, _ := mime.ExtensionsByType(mimeType)
	if len(exts) == 0 {
		return ""
	}
	return exts[0]
}
