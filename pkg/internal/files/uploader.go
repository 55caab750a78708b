package files

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/spf13/viper"

	"github.com/staylio/messaging/pkg/internal/models"
)

// Uploader stores a binary payload and hands back a stable URL. Messages
// only ever reference the resulting URL, never the payload itself.
type Uploader interface {
	Upload(ctx context.Context, name string, mimetype string, size int64, in io.Reader) (models.Attachment, error)
}

var F Uploader

func Use(impl Uploader) {
	F = impl
}

type minioUploader struct {
	client  *minio.Client
	bucket  string
	baseUrl string
}

func NewMinioUploader() (Uploader, error) {
	client, err := minio.New(viper.GetString("storage.endpoint"), &minio.Options{
		Creds: credentials.NewStaticV4(
			viper.GetString("storage.access_key"),
			viper.GetString("storage.secret_key"),
			"",
		),
		Secure: viper.GetBool("storage.use_ssl"),
	})
	if err != nil {
		return nil, fmt.Errorf("unable to initialize object storage: %v", err)
	}

	return &minioUploader{
		client:  client,
		bucket:  viper.GetString("storage.bucket"),
		baseUrl: viper.GetString("storage.base_url"),
	}, nil
}

func (v *minioUploader) Upload(ctx context.Context, name string, mimetype string, size int64, in io.Reader) (models.Attachment, error) {
	var attachment models.Attachment

	id := uuid.NewString()
	key := id + filepath.Ext(name)
	if _, err := v.client.PutObject(ctx, v.bucket, key, in, size, minio.PutObjectOptions{
		ContentType: mimetype,
	}); err != nil {
		return attachment, fmt.Errorf("unable to upload attachment: %v", err)
	}

	attachment = models.Attachment{
		ID:   id,
		Url:  fmt.Sprintf("%s/%s/%s", v.baseUrl, v.bucket, key),
		Type: mimetype,
		Name: name,
	}

	return attachment, nil
}
