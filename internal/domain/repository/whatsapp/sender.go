package whatsapp

import "context"

// Sender delivers a text reply to a sender over the messaging channel
// identified by phoneNumberID.
type Sender interface {
	SendText(ctx context.Context, phoneNumberID, to, body string) error
}
