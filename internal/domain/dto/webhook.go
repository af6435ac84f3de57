package dto

// WebhookPayload is the Meta Business webhook delivery shape. Only the fields
// the ingestion pipeline reads are extracted; everything else is dropped at
// the boundary.
type WebhookPayload struct {
	Object string  `json:"object"`
	Entry  []Entry `json:"entry"`
}

type Entry struct {
	ID      string   `json:"id"`
	Changes []Change `json:"changes"`
}

type Change struct {
	Field string `json:"field"`
	Value Value  `json:"value"`
}

type Value struct {
	Metadata Metadata  `json:"metadata"`
	Messages []Message `json:"messages"`
}

type Metadata struct {
	PhoneNumberID string `json:"phone_number_id"`
}

type Message struct {
	From     string        `json:"from"`
	ID       string        `json:"id"`
	Type     string        `json:"type"`
	Text     *TextBody     `json:"text,omitempty"`
	Image    *MediaBody    `json:"image,omitempty"`
	Video    *MediaBody    `json:"video,omitempty"`
	Document *DocumentBody `json:"document,omitempty"`
}

type TextBody struct {
	Body string `json:"body"`
}

type MediaBody struct {
	ID       string `json:"id"`
	MimeType string `json:"mime_type"`
	Caption  string `json:"caption,omitempty"`
}

type DocumentBody struct {
	ID       string `json:"id"`
	MimeType string `json:"mime_type"`
	Filename string `json:"filename,omitempty"`
	Caption  string `json:"caption,omitempty"`
}
