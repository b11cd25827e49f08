package blobstore

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// DiskStore saves uploaded files under a base directory. Files are served
// back by the HTTP server under baseURL (the /files/ route).
type DiskStore struct {
	basePath string
	baseURL  string
}

// NewDiskStore creates the base directory if missing.
func NewDiskStore(basePath, baseURL string) (*DiskStore, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, fmt.Errorf("storage base path is required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &DiskStore{
		basePath: basePath,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// BasePath returns the directory files are written to, for the static route.
func (d *DiskStore) BasePath() string {
	return d.basePath
}

// Put writes an object to disk under a fresh key
func (d *DiskStore) Put(ctx context.Context, fileName, contentType string, r io.Reader, size int64) (string, error) {
	key := NewObjectKey(fileName)
	target := filepath.Join(d.basePath, key)

	out, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, r); err != nil {
		os.Remove(target)
		return "", fmt.Errorf("write file: %w", err)
	}

	return key, nil
}

// PublicURL resolves the serving URL for a stored object
func (d *DiskStore) PublicURL(ctx context.Context, key string) (string, error) {
	if _, err := os.Stat(filepath.Join(d.basePath, key)); err != nil {
		return "", fmt.Errorf("stat object: %w", err)
	}
	return d.baseURL + "/" + url.PathEscape(key), nil
}
