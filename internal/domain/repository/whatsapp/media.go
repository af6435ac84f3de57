package whatsapp

import "context"

// MediaFetcher downloads an attachment's raw bytes from the messaging platform
// given its opaque media reference, returning the bytes and the MIME type.
type MediaFetcher interface {
	Fetch(ctx context.Context, mediaID string) ([]byte, string, error)
}
