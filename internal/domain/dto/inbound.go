package dto

import "strings"

type MessageKind int

const (
	KindText MessageKind = iota
	KindImage
	KindVideo
	KindUnsupported
)

// Inbound is the classified form of a webhook message: a tagged union over the
// kinds the pipeline handles. Anything that doesn't extract cleanly becomes
// KindUnsupported rather than carrying partial fields deeper in.
type Inbound struct {
	From    string
	Kind    MessageKind
	Text    string
	MediaID string
	Mime    string
	Caption string
}

// Classify maps a raw webhook message to its Inbound form. A document whose
// declared MIME type is image/* or video/* is just a generic attachment wrapper
// and is reclassified as the corresponding media kind.
func (m *Message) Classify() Inbound {
	in := Inbound{From: m.From, Kind: KindUnsupported}

	switch m.Type {
	case "text":
		if m.Text == nil {
			return in
		}
		in.Kind = KindText
		in.Text = m.Text.Body

	case "image":
		if m.Image == nil {
			return in
		}
		in.Kind = KindImage
		in.MediaID = m.Image.ID
		in.Mime = m.Image.MimeType
		in.Caption = m.Image.Caption

	case "video":
		if m.Video == nil {
			return in
		}
		in.Kind = KindVideo
		in.MediaID = m.Video.ID
		in.Mime = m.Video.MimeType
		in.Caption = m.Video.Caption

	case "document":
		if m.Document == nil {
			return in
		}
		switch {
		case strings.HasPrefix(m.Document.MimeType, "image/"):
			in.Kind = KindImage
		case strings.HasPrefix(m.Document.MimeType, "video/"):
			in.Kind = KindVideo
		default:
			return in
		}
		in.MediaID = m.Document.ID
		in.Mime = m.Document.MimeType
		in.Caption = m.Document.Caption
	}

	return in
}
