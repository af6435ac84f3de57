package whatsapp

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabriel-vasile/mimetype"
)

type mediaMetadata struct {
	URL      string `json:"url"`
	MimeType string `json:"mime_type"`
}

// Fetch resolves a media id in two steps: a metadata call that yields a
// short-lived download URL, then the binary fetch of that URL. Both carry the
// same bearer token.
func (c *Client) Fetch(ctx context.Context, mediaID string) ([]byte, string, error) {
	var meta mediaMetadata

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("fields", "url,mime_type").
		SetResult(&meta).
		Get("/" + mediaID)
	if err != nil {
		return nil, "", fmt.Errorf("media metadata fetch failed: %w", err)
	}
	if resp.IsError() {
		return nil, "", fmt.Errorf("media metadata fetch failed: %s", resp.Status())
	}
	if meta.URL == "" {
		return nil, "", errors.New("no media url from platform")
	}

	resp, err = c.http.R().
		SetContext(ctx).
		Get(meta.URL)
	if err != nil {
		return nil, "", fmt.Errorf("media download failed: %w", err)
	}
	if resp.IsError() {
		return nil, "", fmt.Errorf("media download failed: %s", resp.Status())
	}

	data := resp.Body()

	mime := meta.MimeType
	if mime == "" {
		mime = mimetype.Detect(data).String()
	}

	return data, mime, nil
}
