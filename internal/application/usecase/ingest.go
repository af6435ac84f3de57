package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"fotkaj/internal/domain/dto"
	"fotkaj/internal/domain/model"
	"fotkaj/internal/domain/repository/binding"
	"fotkaj/internal/domain/repository/database"
	"fotkaj/pkg/logger"
	"fotkaj/pkg/utils"
)

var errNoAlbum = errors.New("no album resolved for sender")

// ingestMedia runs one media message through the pipeline and returns the
// reply to send. A non-nil error means an internal failure; the caller turns
// it into the generic failure reply.
func (e *Engine) ingestMedia(ctx context.Context, in dto.Inbound) (string, error) {
	album, err := e.resolveAlbum(ctx, in)
	if err != nil {
		if errors.Is(err, errNoAlbum) {
			return replyPickAlbum, nil
		}

		return "", err
	}

	// Re-check against live album state: the window may have elapsed since
	// the sender bound.
	if o := AlbumOpenness(e.now(), album); o != Open {
		return opennessReply(o), nil
	}

	data, mime, err := e.media.Fetch(ctx, in.MediaID)
	if err != nil {
		return "", err
	}
	if mime == "" {
		mime = in.Mime
	}

	sum := sha256.Sum256(data)
	contentHash := hex.EncodeToString(sum[:])

	// Dedup is global across albums and doubles as the idempotency guard
	// against webhook redelivery.
	_, err = e.retriever.GetByHash(ctx, contentHash)
	if err == nil {
		logger.Info("duplicate content skipped", "from", in.From, "hash", contentHash)

		return replyDuplicate, nil
	}
	if !errors.Is(err, database.ErrMediaNotFound) {
		return "", err
	}

	key := fmt.Sprintf("event/%s/%s/%s.%s",
		album.EventSlug, album.AlbumSlug, uuid.New().String(), utils.ExtensionFromMimeType(mime))

	if _, err := e.uploader.Upload(ctx, key, data, mime); err != nil {
		return "", err
	}

	record := &model.Media{
		ID:          uuid.New().String(),
		StorageKey:  key,
		Uploader:    in.From,
		Mime:        mime,
		Size:        int64(len(data)),
		ContentHash: contentHash,
		EventSlug:   album.EventSlug,
		AlbumSlug:   album.AlbumSlug,
		CreatedAt:   e.now(),
	}
	if err := e.writer.Write(ctx, record); err != nil {
		if removeErr := e.remover.Remove(ctx, key); removeErr != nil {
			logger.Error("failed to remove object after index insert failed", "key", key, "err", removeErr.Error())
		}

		return "", err
	}

	if err := e.publisher.Publish(ctx, record.ID); err != nil {
		if removeErr := e.remover.Remove(ctx, key); removeErr != nil {
			logger.Error("failed to remove object after publish failed", "key", key, "err", removeErr.Error())
		}

		if removeErr := e.dbRemover.RemoveByID(ctx, record.ID); removeErr != nil {
			logger.Error("failed to remove media row after publish failed", "media_id", record.ID, "err", removeErr.Error())
		}

		return "", err
	}

	if in.Kind == dto.KindVideo {
		return replyVideoStored, nil
	}

	return replyPhotoStored, nil
}

// resolveAlbum tries the sender's binding first, then falls back to an
// ALBUM-command caption so first-time senders can caption their very first
// photo instead of sending the command separately.
func (e *Engine) resolveAlbum(ctx context.Context, in dto.Inbound) (*model.Album, error) {
	albumID, err := e.bindings.Resolve(ctx, in.From)
	switch {
	case err == nil:
		album, getErr := e.albums.GetByID(ctx, albumID)
		if getErr == nil {
			return album, nil
		}
		if !errors.Is(getErr, database.ErrAlbumNotFound) {
			return nil, getErr
		}
		// Binding points at a deleted album; try caption recovery.

	case errors.Is(err, binding.ErrUnbound):

	default:
		return nil, err
	}

	code, ok := ParseAlbumCommand(in.Caption)
	if !ok {
		return nil, errNoAlbum
	}

	album, err := e.albums.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, database.ErrAlbumNotFound) {
			return nil, errNoAlbum
		}

		return nil, err
	}

	if AlbumOpenness(e.now(), album) == Open {
		if err := e.bindings.Bind(ctx, in.From, album.ID); err != nil {
			logger.Warn("implicit bind from caption failed", "from", in.From, "album", album.ID, "err", err.Error())
		}
	}

	return album, nil
}
