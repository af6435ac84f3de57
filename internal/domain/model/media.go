package model

import "time"

// Media is one accepted guest upload. ContentHash is the hex SHA-256 of the raw
// bytes and is unique across all albums.
type Media struct {
	ID          string    `bson:"_id"`
	StorageKey  string    `bson:"storage_key"`
	Uploader    string    `bson:"uploader_msisdn"`
	Mime        string    `bson:"mime"`
	Size        int64     `bson:"bytes"`
	ContentHash string    `bson:"content_hash"`
	EventSlug   string    `bson:"event_slug"`
	AlbumSlug   string    `bson:"album_slug"`
	CreatedAt   time.Time `bson:"created_at"`
}
