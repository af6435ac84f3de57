package usecase

import (
	"time"

	"fotkaj/internal/domain/model"
)

type Openness int

const (
	Open Openness = iota
	NotYetOpen
	Closed
	Deactivated
)

// AlbumOpenness decides whether an album accepts uploads at the given instant.
// Deactivation wins over the window. Boundaries are inclusive: an upload at
// exactly start_at or end_at is accepted. Checked both at bind time and again
// at every upload, since the window may have elapsed in between.
func AlbumOpenness(now time.Time, album *model.Album) Openness {
	if !album.IsActive {
		return Deactivated
	}
	if album.StartAt != nil && now.Before(*album.StartAt) {
		return NotYetOpen
	}
	if album.EndAt != nil && now.After(*album.EndAt) {
		return Closed
	}

	return Open
}

func opennessReply(o Openness) string {
	switch o {
	case NotYetOpen:
		return replyNotYetOpen
	case Closed:
		return replyClosed
	case Deactivated:
		return replyInactive
	default:
		return ""
	}
}
