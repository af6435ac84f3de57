package utils

import "strings"

var extensionByMime = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
	"image/heic": "heic",
	"image/heif": "heif",
	"video/mp4":  "mp4",
	"video/3gpp": "3gp",
	"video/webm": "webm",
	// WhatsApp sends iPhone videos as quicktime.
	"video/quicktime": "mov",
}

// ExtensionFromMimeType maps a MIME type to a storage key extension, without
// a leading dot. Unknown but well-formed types fall back to the raw subtype,
// anything unparseable to "bin".
func ExtensionFromMimeType(mimeType string) string {
	mime := mimeType
	if idx := strings.Index(mime, ";"); idx != -1 {
		mime = mime[:idx]
	}
	mime = strings.TrimSpace(strings.ToLower(mime))

	if ext, ok := extensionByMime[mime]; ok {
		return ext
	}

	_, subtype, found := strings.Cut(mime, "/")
	if !found || subtype == "" {
		return "bin"
	}

	return subtype
}
