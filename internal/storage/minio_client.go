package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/Sky-Wdh/Snuggle/internal/config"
)

// Storage is an S3-compatible bucket. Production talks to Cloudflare R2;
// local development runs MinIO.
type Storage interface {
	Upload(ctx context.Context, objectName, contentType string, file io.Reader, size int64) (string, error)
	Delete(ctx context.Context, objectName string) error
	ObjectNameFromURL(url string) (string, bool)
}

type MinIOClient struct {
	client *minio.Client
	cfg    *config.Config
}

func NewMinIOClient(cfg *config.Config) (*MinIOClient, error) {
	client, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
		Region: cfg.Storage.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &MinIOClient{client: client, cfg: cfg}, nil
}

// Upload stores the object and returns its public URL.
func (m *MinIOClient) Upload(ctx context.Context, objectName, contentType string, file io.Reader, size int64) (string, error) {
	_, err := m.client.PutObject(ctx, m.cfg.Storage.BucketName, objectName, file, size,
		minio.PutObjectOptions{
			ContentType: contentType,
		})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	url := strings.TrimSuffix(m.cfg.Storage.PublicURL, "/") + "/" + objectName

	return url, nil
}

func (m *MinIOClient) Delete(ctx context.Context, objectName string) error {
	err := m.client.RemoveObject(ctx, m.cfg.Storage.BucketName, objectName,
		minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}

	return nil
}

// ObjectNameFromURL maps a public URL back to the object key, if the
// URL belongs to this bucket.
func (m *MinIOClient) ObjectNameFromURL(url string) (string, bool) {
	base := strings.TrimSuffix(m.cfg.Storage.PublicURL, "/") + "/"
	if !strings.HasPrefix(url, base) {
		return "", false
	}
	return strings.TrimPrefix(url, base), true
}
