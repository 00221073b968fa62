package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const ProductImageDir = "product"

// Storage persists uploaded media and resolves stored paths to URLs.
type Storage interface {
	Save(ctx context.Context, name string, data []byte) (string, error)
	URL(name string) string
}

// ProductImageName renames an uploaded file to a random name inside the
// product directory, keeping the original extension.
func ProductImageName(filename string) string {
	name := strings.ReplaceAll(uuid.New().String(), "-", "")
	if ext := path.Ext(filename); ext != "" {
		name += ext
	}
	return path.Join(ProductImageDir, name)
}

// LocalStorage writes files under Root and serves them below BaseURL.
type LocalStorage struct {
	Root    string
	BaseURL string
}

func NewLocalStorage(root, baseURL string) *LocalStorage {
	if baseURL == "" {
		baseURL = "/media/"
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &LocalStorage{Root: root, BaseURL: baseURL}
}

// Save stores data under a random name derived from name and returns the
// stored path relative to Root.
func (s *LocalStorage) Save(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	stored := ProductImageName(name)
	full := filepath.Join(s.Root, filepath.FromSlash(stored))

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("failed to create media directory: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", stored, err)
	}

	zap.L().Debug("LocalStorage: file stored", zap.String("name", name), zap.String("path", stored), zap.Int("bytes", len(data)))
	return stored, nil
}

func (s *LocalStorage) URL(name string) string {
	if name == "" {
		return ""
	}
	return s.BaseURL + strings.TrimPrefix(name, "/")
}
