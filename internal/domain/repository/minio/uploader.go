package minio

import (
	"context"

	"fotkaj/internal/domain/entity"
)

// Uploader stores a blob at the given key. The put is non-overwriting: a key
// collision is an error, never a silent replace.
type Uploader interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (entity.UploadResult, error)
}
