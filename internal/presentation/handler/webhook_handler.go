package handler

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"

	"fotkaj/internal/application/usecase/abstraction"
	"fotkaj/internal/domain/dto"
	"fotkaj/internal/presentation"
	"fotkaj/pkg/logger"
)

type WebhookHandler struct {
	processor   abstraction.Processor
	verifyToken string
}

func NewWebhookHandler(processor abstraction.Processor, verifyToken string) *WebhookHandler {
	return &WebhookHandler{
		processor:   processor,
		verifyToken: verifyToken,
	}
}

// HandleVerify answers the platform's subscription handshake: echo the
// challenge iff the mode is "subscribe" and the token matches.
func (h *WebhookHandler) HandleVerify(c echo.Context) error {
	mode := c.QueryParam(presentation.HubModeParam)
	token := c.QueryParam(presentation.HubTokenParam)

	if mode == presentation.SubscribeMode && token == h.verifyToken {
		return c.String(http.StatusOK, c.QueryParam(presentation.HubChallengeParam))
	}

	return c.String(http.StatusForbidden, "Forbidden")
}

// HandleDelivery processes every message in the batch concurrently and
// independently, waits for all of them to settle, and always answers
// {"ok":true}: per-message failures reach the sender as chat replies, never
// as webhook status codes that would trigger redelivery storms.
func (h *WebhookHandler) HandleDelivery(c echo.Context) error {
	payload := new(dto.WebhookPayload)
	if err := c.Bind(payload); err != nil {
		logger.Warn("ignoring malformed webhook payload", "err", err.Error())

		return c.JSON(http.StatusOK, map[string]bool{"ok": true})
	}

	ctx := c.Request().Context()

	var wg sync.WaitGroup
	for _, entry := range payload.Entry {
		for _, change := range entry.Changes {
			phoneNumberID := change.Value.Metadata.PhoneNumberID
			if phoneNumberID == "" {
				continue
			}

			for _, msg := range change.Value.Messages {
				wg.Add(1)
				go func(msg dto.Message) {
					defer wg.Done()
					defer func() {
						if r := recover(); r != nil {
							logger.Error("message processing panicked", "from", msg.From, "panic", fmt.Sprint(r))
						}
					}()

					h.processor.Process(ctx, phoneNumberID, msg)
				}(msg)
			}
		}
	}
	wg.Wait()

	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}
