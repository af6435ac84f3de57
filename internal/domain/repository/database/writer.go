package database

import (
	"context"

	"fotkaj/internal/domain/model"
)

type Writer interface {
	Write(ctx context.Context, media *model.Media) error
}
