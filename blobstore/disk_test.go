package blobstore

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStorePutAndURL(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir, "/files/")
	require.NoError(t, err)

	content := "not really a png"
	key, err := store.Put(context.Background(), "badge.png", "image/png", strings.NewReader(content), int64(len(content)))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(key, "_badge.png"), "key should keep the original name: %s", key)

	data, err := os.ReadFile(filepath.Join(dir, key))
	require.NoError(t, err)
	assert.Equal(t, content, string(data))

	url, err := store.PublicURL(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, "/files/"+key, url)

	// Unknown key is a sharing failure
	_, err = store.PublicURL(context.Background(), "missing")
	assert.Error(t, err)
}

func TestDiskStoreRequiresBasePath(t *testing.T) {
	_, err := NewDiskStore("  ", "/files/")
	assert.Error(t, err)
}

func TestSafeFileName(t *testing.T) {
	assert.Equal(t, "badge.png", SafeFileName("../../etc/badge.png"))
	assert.Equal(t, "upload", SafeFileName("   "))
	assert.Equal(t, "upload", SafeFileName(""))
}
