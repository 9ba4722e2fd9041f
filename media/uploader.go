package media

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/Godswillconcept/expo-ecommerce/config"
)

// Uploader stores uploaded media and returns a public URL for it. With
// Cloudinary credentials configured, files go to Cloudinary; otherwise they
// land on local disk under the uploads dir (served at /uploads).
type Uploader struct {
	cld        *cloudinary.Cloudinary
	uploadsDir string
}

func NewUploader(cfg *config.Config) (*Uploader, error) {
	u := &Uploader{uploadsDir: cfg.UploadsDir}
	if cfg.CloudinaryConfigured() {
		cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
		if err != nil {
			return nil, fmt.Errorf("cloudinary init: %w", err)
		}
		u.cld = cld
	}
	return u, nil
}

// Upload saves a multipart file under the given folder and returns its URL.
func (u *Uploader) Upload(ctx context.Context, fh *multipart.FileHeader, folder string) (string, error) {
	file, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	if u.cld != nil {
		resp, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: folder})
		if err != nil {
			return "", fmt.Errorf("cloudinary upload: %w", err)
		}
		return resp.SecureURL, nil
	}

	dir := filepath.Join(u.uploadsDir, folder)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", err
	}

	ext := filepath.Ext(fh.Filename)
	base := strings.TrimSuffix(filepath.Base(fh.Filename), ext)
	base = strings.ReplaceAll(base, " ", "_")
	filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)

	dst, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := dst.ReadFrom(file); err != nil {
		return "", err
	}
	return fmt.Sprintf("/uploads/%s/%s", folder, filename), nil
}
