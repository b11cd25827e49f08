package client

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/chaiyapat/worklog/models"
)

// StoreKey names the logical slot holding the mirrored entries. File-backed
// storage uses it as the file name. Versioned so a future layout change can
// start a fresh slot instead of migrating.
const StoreKey = "worklog_entries_v1"

// Storage is the durable key-value slot backing the mirror. Implementations
// persist a single opaque payload.
type Storage interface {
	// Load returns the stored payload, or nil when nothing is stored.
	Load() ([]byte, error)
	// Store replaces the payload.
	Store(data []byte) error
}

// FileStorage persists the mirror payload in a JSON file under dir.
type FileStorage struct {
	path string
}

// NewFileStorage stores the mirror under dir using the fixed store key.
func NewFileStorage(dir string) *FileStorage {
	return &FileStorage{path: filepath.Join(dir, StoreKey+".json")}
}

// Load reads the stored payload. A missing file means an empty mirror.
func (s *FileStorage) Load() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read mirror file: %w", err)
	}
	return data, nil
}

// Store atomically replaces the payload: write to a temp file then rename.
func (s *FileStorage) Store(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create mirror directory: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write mirror temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace mirror file: %w", err)
	}
	return nil
}

// MemoryStorage keeps the payload in memory, for tests and throwaway use.
type MemoryStorage struct {
	data []byte
}

func (s *MemoryStorage) Load() ([]byte, error) {
	return s.data, nil
}

func (s *MemoryStorage) Store(data []byte) error {
	s.data = append([]byte(nil), data...)
	return nil
}

// Mirror is the client-resident copy of previously successful submissions.
// It is append-only: entries are written exactly once, on commit, and never
// edited or deleted.
type Mirror struct {
	mu      sync.Mutex
	storage Storage
}

// NewMirror creates a mirror over the given storage slot.
func NewMirror(storage Storage) *Mirror {
	return &Mirror{storage: storage}
}

// Load returns all mirrored entries. Absent, unreadable or corrupt data is
// treated as an empty mirror; no error reaches the caller.
func (m *Mirror) Load() []models.WorkLogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.load()
}

// Append adds one entry to the mirror. The read-modify-write cycle is
// serialized internally so concurrent committers cannot drop entries.
func (m *Mirror) Append(entry models.WorkLogEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries := append(m.load(), entry)
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode mirror entries: %w", err)
	}
	if err := m.storage.Store(data); err != nil {
		return fmt.Errorf("failed to persist mirror entries: %w", err)
	}
	return nil
}

// load must be called with the mutex held
func (m *Mirror) load() []models.WorkLogEntry {
	data, err := m.storage.Load()
	if err != nil || len(data) == 0 {
		return []models.WorkLogEntry{}
	}

	var entries []models.WorkLogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		// Corrupt mirrors read as empty rather than failing the client
		return []models.WorkLogEntry{}
	}
	return entries
}
