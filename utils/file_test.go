package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageExt(t *testing.T) {
	assert.Equal(t, ".jpg", ImageExt("https://img.example.com/a/b/25.JPG?size=l", ""))
	assert.Equal(t, ".webp", ImageExt("https://img.example.com/render", "image/webp"))
	assert.Equal(t, ".png", ImageExt("https://img.example.com/render", "application/octet-stream"))
	assert.Equal(t, ".png", ImageExt("::bad::", ""))
}

func TestCardImageKey(t *testing.T) {
	assert.Equal(t, "cards/0025-pikachu.png", CardImageKey(25, "Pikachu", ".png"))
	assert.Equal(t, "cards/0122-mr-mime.jpg", CardImageKey(122, "Mr. Mime", ".jpg"))
}

func TestFetchImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok.png":
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write([]byte("\x89PNG\r\n\x1a\nfake"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	body, contentType, err := FetchImage(context.Background(), srv.URL+"/ok.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", contentType)
	assert.NotEmpty(t, body)

	_, _, err = FetchImage(context.Background(), srv.URL+"/missing.png")
	assert.ErrorContains(t, err, "unexpected status 404")
}
