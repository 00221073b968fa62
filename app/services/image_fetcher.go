package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// ImageFetcher downloads remote image bytes.
type ImageFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

type HTTPImageFetcher struct {
	client *http.Client
}

func NewHTTPImageFetcher(client *http.Client) *HTTPImageFetcher {
	if client == nil {
		client = &http.Client{
			Timeout: 30 * time.Second,
		}
	}
	return &HTTPImageFetcher{client: client}
}

// Fetch returns an error for anything but a 200 response.
func (f *HTTPImageFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		zap.L().Warn("ImageFetcher: request failed", zap.String("url", url), zap.Error(err))
		return nil, fmt.Errorf("failed to perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image request returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}
