package binding

import (
	"context"
	"errors"
)

var ErrUnbound = errors.New("sender is not bound to an album")

// Store keeps the current album per sender. Bind is an upsert; a later bind
// overwrites the previous one with no history kept.
type Store interface {
	Bind(ctx context.Context, msisdn, albumID string) error
	Resolve(ctx context.Context, msisdn string) (string, error)
}
