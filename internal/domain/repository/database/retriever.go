package database

import (
	"context"
	"errors"

	"fotkaj/internal/domain/model"
)

var ErrMediaNotFound = errors.New("media not found")

type Retriever interface {
	GetByHash(ctx context.Context, contentHash string) (*model.Media, error)
}
