package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/Sky-Wdh/Snuggle/internal/config"
	"github.com/Sky-Wdh/Snuggle/internal/storage"
)

type UploadService interface {
	UploadTemp(ctx context.Context, userID, fileName, contentType string, file io.Reader, size int64) (string, error)
	DeleteTemp(ctx context.Context, url string) error
}

type uploadService struct {
	storage storage.Storage
	cfg     *config.Config
}

func NewUploadService(storage storage.Storage, cfg *config.Config) UploadService {
	return &uploadService{storage: storage, cfg: cfg}
}

// UploadTemp stores an editor image under temp/{user}/{uuid}{ext}. The
// write flow later references the public URL from post content.
func (u *uploadService) UploadTemp(ctx context.Context, userID, fileName, contentType string, file io.Reader, size int64) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext == "" {
		ext = ".png"
	}

	objectName := fmt.Sprintf("temp/%s/%s%s", userID, uuid.New().String(), ext)

	url, err := u.storage.Upload(ctx, objectName, contentType, file, size)
	if err != nil {
		return "", err
	}

	return url, nil
}

func (u *uploadService) DeleteTemp(ctx context.Context, url string) error {
	objectName, ok := u.storage.ObjectNameFromURL(url)
	if !ok {
		return fmt.Errorf("url does not belong to the upload bucket: %s", url)
	}

	return u.storage.Delete(ctx, objectName)
}
