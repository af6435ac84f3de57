package usecase

import (
	"fmt"
	"time"

	"fotkaj/internal/domain/model"
)

// Reply texts sent back to guests. Every processed message produces exactly
// one of these.
const (
	replyInstruction  = "Send \"ALBUM <code>\" to choose an album (e.g., ALBUM K3H9WT). Then send photos here. 📸"
	replyUnknownCode  = "Unknown album code. Please check and try again."
	replyInactive     = "This album is inactive."
	replyNotYetOpen   = "This album is not open for uploads yet. Please try again once it starts."
	replyClosed       = "This album is closed for uploads (outside the allowed time window)."
	replyBindError    = "Error setting album. Please try again."
	replyPickAlbum    = "Please choose an album first: send \"ALBUM <code>\" (see QR code)."
	replyDuplicate    = "Looks like a duplicate photo. Skipped. 😉"
	replyPhotoStored  = "Uploaded ✔️ Thanks!"
	replyVideoStored  = "Video uploaded ✔️ Thanks!"
	replyUploadFailed = "Upload failed. Please try again."
	replyUnsupported  = "Only photos and videos are allowed for this gallery. 📸\nTip: send \"ALBUM <code>\" first to choose an album."
)

// formatBindConfirmation includes the album window so the sender doesn't need
// to re-scan the QR to know when uploads close.
func formatBindConfirmation(album *model.Album) string {
	return fmt.Sprintf("Album set ✅\nEvent: %s\nWindow: %s → %s\nNow send your photos here.",
		album.AlbumSlug, formatWindowTime(album.StartAt), formatWindowTime(album.EndAt))
}

func formatWindowTime(t *time.Time) string {
	if t == nil {
		return "N/A"
	}

	return t.UTC().Format("02 Jan 2006 15:04 MST")
}
