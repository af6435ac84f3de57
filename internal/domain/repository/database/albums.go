package database

import (
	"context"
	"errors"

	"fotkaj/internal/domain/model"
)

var ErrAlbumNotFound = errors.New("album not found")

// AlbumDirectory resolves albums by short code or id. Read-only from the
// ingestion pipeline's perspective.
type AlbumDirectory interface {
	GetByCode(ctx context.Context, code string) (*model.Album, error)
	GetByID(ctx context.Context, id string) (*model.Album, error)
}
