package usecase

import (
	"context"
	"time"

	"fotkaj/internal/domain/dto"
	"fotkaj/internal/domain/repository/binding"
	"fotkaj/internal/domain/repository/broker"
	"fotkaj/internal/domain/repository/database"
	"fotkaj/internal/domain/repository/minio"
	"fotkaj/internal/domain/repository/whatsapp"
	"fotkaj/pkg/logger"
)

// Engine runs the webhook ingestion pipeline for one classified message at a
// time. Failures never escape Process: user-input problems get their specific
// reply, internal errors are logged and collapsed into a generic one.
type Engine struct {
	albums    database.AlbumDirectory
	bindings  binding.Store
	media     whatsapp.MediaFetcher
	sender    whatsapp.Sender
	writer    database.Writer
	retriever database.Retriever
	dbRemover database.Remover
	uploader  minio.Uploader
	remover   minio.Remover
	publisher broker.Publisher
	now       func() time.Time
}

func NewEngine(albums database.AlbumDirectory, bindings binding.Store,
	media whatsapp.MediaFetcher, sender whatsapp.Sender,
	writer database.Writer, retriever database.Retriever, dbRemover database.Remover,
	uploader minio.Uploader, remover minio.Remover, publisher broker.Publisher,
) *Engine {
	return &Engine{
		albums:    albums,
		bindings:  bindings,
		media:     media,
		sender:    sender,
		writer:    writer,
		retriever: retriever,
		dbRemover: dbRemover,
		uploader:  uploader,
		remover:   remover,
		publisher: publisher,
		now:       time.Now,
	}
}

func (e *Engine) Process(ctx context.Context, phoneNumberID string, msg dto.Message) {
	in := msg.Classify()

	switch in.Kind {
	case dto.KindText:
		e.handleCommand(ctx, phoneNumberID, in)

	case dto.KindImage, dto.KindVideo:
		text, err := e.ingestMedia(ctx, in)
		if err != nil {
			logger.Error("media ingestion failed", "from", in.From, "media_id", in.MediaID, "err", err.Error())
			text = replyUploadFailed
		}
		e.reply(ctx, phoneNumberID, in.From, text)

	default:
		e.reply(ctx, phoneNumberID, in.From, replyUnsupported)
	}
}

// reply is best-effort: the upload has usually been committed by the time a
// reply goes out, so delivery failure must not fail the pipeline.
func (e *Engine) reply(ctx context.Context, phoneNumberID, to, body string) {
	if err := e.sender.SendText(ctx, phoneNumberID, to, body); err != nil {
		logger.Warn("failed to deliver reply", "to", to, "err", err.Error())
	}
}
