package media

import (
	"context"
	"crypto/sha1"
	"elearning/config"
	"encoding/base64"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pngSignature = "\x89PNG\r\n\x1a\n"

var pngDataURI = "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte(pngSignature))

func TestNewSelectsUploader(t *testing.T) {
	assert.IsType(t, &Local{}, New(&config.Config{UploadDir: t.TempDir()}))
	assert.IsType(t, &Cloudinary{}, New(&config.Config{CloudName: "c", CloudAPIKey: "k", CloudSecretKey: "s"}))
}

func TestLocalUploadAndDestroy(t *testing.T) {
	dir := t.TempDir()
	u := NewLocal(dir, LocalURLPrefix)
	ctx := context.Background()

	img, err := u.Upload(ctx, pngDataURI, UploadOptions{Folder: "avatars", Width: 150})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(img.PublicID, "avatars/"))
	assert.Equal(t, ".png", filepath.Ext(img.PublicID))
	assert.Equal(t, "/uploads/"+img.PublicID, img.URL)

	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(img.PublicID)))
	require.NoError(t, err)
	assert.Equal(t, pngSignature, string(data))

	require.NoError(t, u.Destroy(ctx, img.PublicID))
	_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(img.PublicID)))
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, u.Destroy(ctx, img.PublicID), "destroying twice is fine")
	assert.NoError(t, u.Destroy(ctx, ""))
}

func TestLocalRejectsNonImages(t *testing.T) {
	dir := t.TempDir()
	u := NewLocal(dir, LocalURLPrefix)
	html := base64.StdEncoding.EncodeToString([]byte("<html><script>alert(1)</script></html>"))

	for _, uri := range []string{
		"data:text/html;base64," + html,
		// a lying image type does not help, the bytes decide
		"data:image/png;base64," + html,
	} {
		_, err := u.Upload(context.Background(), uri, UploadOptions{Folder: "avatars"})
		assert.ErrorIs(t, err, ErrNotImage, uri)
	}

	entries, err := os.ReadDir(filepath.Join(dir, "avatars"))
	if err == nil {
		assert.Empty(t, entries)
	}
}

func TestLocalKeepsRemoteURLs(t *testing.T) {
	u := NewLocal(t.TempDir(), LocalURLPrefix)

	img, err := u.Upload(context.Background(), "https://example.com/pic.png", UploadOptions{Folder: "avatars"})
	require.NoError(t, err)
	assert.Empty(t, img.PublicID)
	assert.Equal(t, "https://example.com/pic.png", img.URL)
}

func TestCloudinaryUpload(t *testing.T) {
	var form map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		form = map[string]string{}
		for k := range r.PostForm {
			form[k] = r.PostForm.Get(k)
		}
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/demo/image/upload":
			_, _ = w.Write([]byte(`{"public_id":"avatars/abc","secure_url":"https://res.cloudinary.com/demo/abc.png"}`))
		case "/demo/image/destroy":
			_, _ = w.Write([]byte(`{"result":"ok"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":{"message":"unknown"}}`))
		}
	}))
	defer srv.Close()

	u := NewCloudinary("demo", "key", "secret")
	u.client.SetBaseURL(srv.URL)
	u.now = func() time.Time { return time.Unix(1700000000, 0) }

	_, err := u.Upload(context.Background(), "data:text/html;base64,PGgxPg==", UploadOptions{})
	assert.ErrorIs(t, err, ErrNotImage)
	assert.Nil(t, form, "nothing is sent for a non-image")

	img, err := u.Upload(context.Background(), pngDataURI, UploadOptions{Folder: "avatars", Width: 150})
	require.NoError(t, err)
	assert.Equal(t, "avatars/abc", img.PublicID)
	assert.Equal(t, "https://res.cloudinary.com/demo/abc.png", img.URL)

	sum := sha1.Sum([]byte("folder=avatars&timestamp=1700000000&transformation=w_150secret"))
	assert.Equal(t, hex.EncodeToString(sum[:]), form["signature"])
	assert.Equal(t, "key", form["api_key"])
	assert.Equal(t, "w_150", form["transformation"])

	require.NoError(t, u.Destroy(context.Background(), "avatars/abc"))
	assert.Equal(t, "avatars/abc", form["public_id"])

	u.cloudName = "other"
	_, err = u.Upload(context.Background(), "x", UploadOptions{})
	assert.ErrorContains(t, err, "unknown")
}
