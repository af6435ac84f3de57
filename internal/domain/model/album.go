package model

import "time"

// Album is a collection point for guest uploads, addressed by a short code
// printed next to the QR at the venue. The slug pair scopes storage keys and
// index rows. A nil StartAt or EndAt means the window is unbounded on that side.
type Album struct {
	ID        string     `bson:"_id"`
	Code      string     `bson:"code"`
	EventSlug string     `bson:"event_slug"`
	AlbumSlug string     `bson:"album_slug"`
	StartAt   *time.Time `bson:"start_at"`
	EndAt     *time.Time `bson:"end_at"`
	IsActive  bool       `bson:"is_active"`
	CreatedAt time.Time  `bson:"created_at"`
}
