package minio

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"

	"fotkaj/internal/domain/entity"
)

type Uploader struct {
	minioClient *minio.Client
	cfg         UploaderConfig
}

func NewUploader(minioClient *minio.Client, cfg UploaderConfig) *Uploader {
	return &Uploader{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

// Upload writes the blob at key, refusing to overwrite. Keys carry a fresh
// random id, so a collision means something is badly wrong and is surfaced
// as a hard failure rather than retried.
func (u *Uploader) Upload(ctx context.Context, key string, data []byte, contentType string) (entity.UploadResult, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(u.cfg.Timeout)*time.Millisecond)
	defer cancel()

	bucket := u.cfg.Bucket

	_, err := u.minioClient.StatObject(ctx, bucket, key, minio.StatObjectOptions{})
	if err == nil {
		return entity.UploadResult{}, fmt.Errorf("object already exists: %s/%s", bucket, key)
	}
	if resp := minio.ToErrorResponse(err); resp.Code != "NoSuchKey" {
		return entity.UploadResult{}, fmt.Errorf("stat before upload failed: %w", err)
	}

	info, err := u.minioClient.PutObject(ctx, bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{
			ContentType: contentType,
		})
	if err != nil {
		return entity.UploadResult{}, fmt.Errorf("object upload failed: %w", err)
	}

	return entity.UploadResult{
		Bucket:   bucket,
		Key:      key,
		Size:     info.Size,
		Location: fmt.Sprintf("%s/%s", bucket, key),
	}, nil
}
