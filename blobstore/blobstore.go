// Package blobstore persists uploaded work-log files. Two drivers exist:
// a local-disk store served back over /files/, and a MinIO/S3 store with
// presigned links.
package blobstore

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ObjectStore provides access to the file half of the remote store.
type ObjectStore interface {
	// Put stores an object and returns its storage key.
	Put(ctx context.Context, fileName, contentType string, r io.Reader, size int64) (string, error)
	// PublicURL resolves a link-accessible URL for a stored object.
	// A failure here is a sharing failure, not a storage failure; callers
	// proceed without a link.
	PublicURL(ctx context.Context, key string) (string, error)
}

// NewObjectKey builds a collision-free storage key that keeps the original
// file name readable.
func NewObjectKey(fileName string) string {
	return uuid.NewString() + "_" + SafeFileName(fileName)
}

// SafeFileName strips path components from an upload's declared name.
func SafeFileName(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, string(os.PathSeparator), "_")
	name = strings.TrimSpace(name)
	if name == "" {
		return "upload"
	}
	return name
}
