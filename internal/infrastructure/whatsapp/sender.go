package whatsapp

import (
	"context"
	"fmt"
)

type textPayload struct {
	MessagingProduct string   `json:"messaging_product"`
	To               string   `json:"to"`
	Type             string   `json:"type"`
	Text             textBody `json:"text"`
}

type textBody struct {
	Body string `json:"body"`
}

func (c *Client) SendText(ctx context.Context, phoneNumberID, to, body string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(textPayload{
			MessagingProduct: "whatsapp",
			To:               to,
			Type:             "text",
			Text:             textBody{Body: body},
		}).
		Post("/" + phoneNumberID + "/messages")
	if err != nil {
		return fmt.Errorf("send message failed: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("send message failed: %s", resp.Status())
	}

	return nil
}
