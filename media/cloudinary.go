package media

import (
	"context"
	"crypto/sha1"
	"elearning/models"
	"elearning/utils"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const cloudinaryBaseURL = "https://api.cloudinary.com/v1_1"

// Cloudinary talks to the Cloudinary upload API with signed requests.
type Cloudinary struct {
	client    *resty.Client
	cloudName string
	apiKey    string
	apiSecret string
	now       func() time.Time
}

func NewCloudinary(cloudName, apiKey, apiSecret string) *Cloudinary {
	return &Cloudinary{
		client:    resty.New().SetBaseURL(cloudinaryBaseURL).SetTimeout(30 * time.Second),
		cloudName: cloudName,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		now:       time.Now,
	}
}

type cloudinaryResponse struct {
	PublicID  string `json:"public_id"`
	SecureURL string `json:"secure_url"`
	Result    string `json:"result"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (u *Cloudinary) Upload(ctx context.Context, file string, opts UploadOptions) (models.Image, error) {
	if mimeType, _, ok := utils.ParseDataURI(file); ok && !isImage(mimeType) {
		return models.Image{}, ErrNotImage
	}

	params := map[string]string{}
	if opts.Folder != "" {
		params["folder"] = opts.Folder
	}
	if opts.Width > 0 {
		params["transformation"] = "w_" + strconv.Itoa(opts.Width)
	}

	form := u.sign(params)
	form["file"] = file

	var out cloudinaryResponse
	if err := u.post(ctx, "upload", form, &out); err != nil {
		return models.Image{}, err
	}
	return models.Image{PublicID: out.PublicID, URL: out.SecureURL}, nil
}

func (u *Cloudinary) Destroy(ctx context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}
	var out cloudinaryResponse
	return u.post(ctx, "destroy", u.sign(map[string]string{"public_id": publicID}), &out)
}

func (u *Cloudinary) post(ctx context.Context, action string, form map[string]string, out *cloudinaryResponse) error {
	resp, err := u.client.R().
		SetContext(ctx).
		SetFormData(form).
		SetResult(out).
		SetError(out).
		Post(fmt.Sprintf("/%s/image/%s", u.cloudName, action))
	if err != nil {
		return fmt.Errorf("media: cloudinary %s: %w", action, err)
	}
	if resp.IsError() {
		msg := resp.Status()
		if out.Error != nil {
			msg = out.Error.Message
		}
		return fmt.Errorf("media: cloudinary %s failed: %s", action, msg)
	}
	return nil
}

// sign adds timestamp, api_key and signature to params.
func (u *Cloudinary) sign(params map[string]string) map[string]string {
	params["timestamp"] = strconv.FormatInt(u.now().Unix(), 10)

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + "=" + params[k]
	}
	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + u.apiSecret))

	params["api_key"] = u.apiKey
	params["signature"] = hex.EncodeToString(sum[:])
	return params
}
