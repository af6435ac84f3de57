package whatsapp

import (
	"time"

	"github.com/go-resty/resty/v2"
)

type Config struct {
	BaseURL string `yaml:"base_url"`
	Timeout int64  `yaml:"timeout_in_ms"`
	Token   string
}

// Client talks to the Meta Graph API: media metadata + binary downloads and
// outbound text messages, all bearer-authenticated with the platform token.
type Client struct {
	http *resty.Client
}

func New(cfg Config) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetAuthToken(cfg.Token).
		SetTimeout(time.Duration(cfg.Timeout) * time.Millisecond)

	return &Client{http: httpClient}
}
