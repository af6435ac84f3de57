package whatsapp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)

	client := New(Config{
		BaseURL: srv.URL,
		Timeout: 5000,
		Token:   "test-token",
	})

	return client, srv
}

func TestFetch(t *testing.T) {
	t.Run("metadata then binary download", func(t *testing.T) {
		content := []byte("jpeg bytes")

		mux := http.NewServeMux()
		var downloadURL string
		mux.HandleFunc("/media-42", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
			assert.Equal(t, "url,mime_type", r.URL.Query().Get("fields"))

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]string{
				"url":       downloadURL,
				"mime_type": "image/jpeg",
			})
		})
		mux.HandleFunc("/download/media-42", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
			_, _ = w.Write(content)
		})

		client, srv := newTestClient(mux)
		defer srv.Close()
		downloadURL = srv.URL + "/download/media-42"

		data, mime, err := client.Fetch(context.Background(), "media-42")
		require.NoError(t, err)
		assert.Equal(t, content, data)
		assert.Equal(t, "image/jpeg", mime)
	})

	t.Run("missing url in metadata is an error", func(t *testing.T) {
		client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]string{"mime_type": "image/jpeg"})
		}))
		defer srv.Close()

		_, _, err := client.Fetch(context.Background(), "media-42")
		assert.ErrorContains(t, err, "no media url")
	})

	t.Run("metadata error status propagates", func(t *testing.T) {
		client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "expired", http.StatusNotFound)
		}))
		defer srv.Close()

		_, _, err := client.Fetch(context.Background(), "media-42")
		assert.ErrorContains(t, err, "media metadata fetch failed")
	})

	t.Run("download error status propagates", func(t *testing.T) {
		mux := http.NewServeMux()
		var downloadURL string
		mux.HandleFunc("/media-42", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]string{"url": downloadURL, "mime_type": "image/jpeg"})
		})
		mux.HandleFunc("/download/media-42", func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "gone", http.StatusGone)
		})

		client, srv := newTestClient(mux)
		defer srv.Close()
		downloadURL = srv.URL + "/download/media-42"

		_, _, err := client.Fetch(context.Background(), "media-42")
		assert.ErrorContains(t, err, "media download failed")
	})

	t.Run("empty metadata mime falls back to sniffing", func(t *testing.T) {
		// Real PNG magic so detection is deterministic.
		content := []byte("\x89PNG\r\n\x1a\n0000000000")

		mux := http.NewServeMux()
		var downloadURL string
		mux.HandleFunc("/media-42", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]string{"url": downloadURL})
		})
		mux.HandleFunc("/download/media-42", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write(content)
		})

		client, srv := newTestClient(mux)
		defer srv.Close()
		downloadURL = srv.URL + "/download/media-42"

		_, mime, err := client.Fetch(context.Background(), "media-42")
		require.NoError(t, err)
		assert.Equal(t, "image/png", mime)
	})
}

func TestSendText(t *testing.T) {
	t.Run("posts the message payload", func(t *testing.T) {
		var got textPayload

		client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/1029384756/messages", r.URL.Path)
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

			fmt.Fprint(w, `{"messages":[{"id":"wamid.1"}]}`)
		}))
		defer srv.Close()

		err := client.SendText(context.Background(), "1029384756", "385991234567", "Uploaded ✔️ Thanks!")
		require.NoError(t, err)

		assert.Equal(t, "whatsapp", got.MessagingProduct)
		assert.Equal(t, "385991234567", got.To)
		assert.Equal(t, "text", got.Type)
		assert.Equal(t, "Uploaded ✔️ Thanks!", got.Text.Body)
	})

	t.Run("error status becomes an error", func(t *testing.T) {
		client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
		}))
		defer srv.Close()

		err := client.SendText(context.Background(), "1029384756", "385991234567", "hi")
		assert.ErrorContains(t, err, "send message failed")
	})
}
