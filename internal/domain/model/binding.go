package model

import "time"

// Binding points a sender's phone number at the album their next uploads land
// in. At most one binding exists per sender; a new ALBUM command overwrites it.
type Binding struct {
	Msisdn  string
	AlbumID string
	BoundAt time.Time
}
