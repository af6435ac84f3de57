package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"fotkaj/internal/domain/dto"
	"fotkaj/internal/domain/repository/database"
	"fotkaj/pkg/logger"
)

// The one command guests can send: ALBUM followed by a single space and a
// 3-40 character code. Anchored, so trailing text or doubled spaces don't
// match and fall through to the instructional reply.
var albumCommand = regexp.MustCompile(`^(?i:ALBUM) ([A-Za-z0-9_-]{3,40})$`)

// ParseAlbumCommand extracts the album code from a text body, canonicalized
// to uppercase. Surrounding whitespace is trimmed before matching.
func ParseAlbumCommand(text string) (string, bool) {
	m := albumCommand.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return "", false
	}

	return strings.ToUpper(m[1]), true
}

func (e *Engine) handleCommand(ctx context.Context, phoneNumberID string, in dto.Inbound) {
	code, ok := ParseAlbumCommand(in.Text)
	if !ok {
		e.reply(ctx, phoneNumberID, in.From, replyInstruction)

		return
	}

	album, err := e.albums.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, database.ErrAlbumNotFound) {
			e.reply(ctx, phoneNumberID, in.From, replyUnknownCode)

			return
		}

		logger.Error("album lookup failed", "code", code, "err", err.Error())
		e.reply(ctx, phoneNumberID, in.From, replyBindError)

		return
	}

	if o := AlbumOpenness(e.now(), album); o != Open {
		e.reply(ctx, phoneNumberID, in.From, opennessReply(o))

		return
	}

	if err := e.bindings.Bind(ctx, in.From, album.ID); err != nil {
		logger.Error("binding upsert failed", "from", in.From, "album", album.ID, "err", err.Error())
		e.reply(ctx, phoneNumberID, in.From, replyBindError)

		return
	}

	e.reply(ctx, phoneNumberID, in.From, formatBindConfirmation(album))
}
