package client

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaiyapat/worklog/models"
)

func TestMirrorEmptyAndCorruptStorage(t *testing.T) {
	// Nothing stored yet
	mirror := NewMirror(&MemoryStorage{})
	assert.Empty(t, mirror.Load())

	// Corrupt payloads read as empty, no error surfaces
	corrupt := &MemoryStorage{}
	require.NoError(t, corrupt.Store([]byte("{not json")))
	mirror = NewMirror(corrupt)
	assert.Empty(t, mirror.Load())
}

func TestMirrorAppend(t *testing.T) {
	mirror := NewMirror(&MemoryStorage{})

	first := models.WorkLogEntry{Name: "Alice", SubmitTimestamp: 100}
	second := models.WorkLogEntry{Name: "Bob", SubmitTimestamp: 200}

	require.NoError(t, mirror.Append(first))
	require.NoError(t, mirror.Append(second))

	entries := mirror.Load()
	require.Len(t, entries, 2)
	// Stored in append order; display ordering is the renderer's job
	assert.Equal(t, "Alice", entries[0].Name)
	assert.Equal(t, "Bob", entries[1].Name)
}

func TestMirrorFileStoragePersists(t *testing.T) {
	dir := t.TempDir()

	mirror := NewMirror(NewFileStorage(dir))
	entry := models.WorkLogEntry{
		Date:            "2024-01-01",
		Name:            "Alice",
		TimeIn:          "09:00",
		TimeOut:         "17:00",
		SubmitTimestamp: 1704103200000,
	}
	require.NoError(t, mirror.Append(entry))

	// The fixed store key names the file
	_, err := os.Stat(filepath.Join(dir, StoreKey+".json"))
	require.NoError(t, err)

	// A fresh mirror over the same directory sees the entry
	reopened := NewMirror(NewFileStorage(dir))
	entries := reopened.Load()
	require.Len(t, entries, 1)
	assert.Equal(t, entry, entries[0])
}

func TestMirrorFileStorageCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, StoreKey+".json"), []byte("garbage"), 0o600))

	mirror := NewMirror(NewFileStorage(dir))
	assert.Empty(t, mirror.Load())
}

func TestMirrorSerializesConcurrentAppends(t *testing.T) {
	mirror := NewMirror(&MemoryStorage{})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = mirror.Append(models.WorkLogEntry{SubmitTimestamp: int64(n)})
		}(i)
	}
	wg.Wait()

	assert.Len(t, mirror.Load(), 20, "read-modify-write appends must not drop entries")
}
