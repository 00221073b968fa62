package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPImageFetcher(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok.png":
			_, _ = w.Write([]byte("image-bytes"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	fetcher := NewHTTPImageFetcher(server.Client())

	data, err := fetcher.Fetch(context.Background(), server.URL+"/ok.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("image-bytes"), data)

	_, err = fetcher.Fetch(context.Background(), server.URL+"/missing.png")
	assert.ErrorContains(t, err, "404")
}

func TestHTTPImageFetcherTransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := NewHTTPImageFetcher(nil).Fetch(context.Background(), url+"/gone.png")
	assert.Error(t, err)
}
