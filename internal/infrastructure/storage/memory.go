package storage

import (
	"context"
	"errors"
	"sync"
	"time"

	settingsapp "github.com/geoffkats/accounting-system/internal/application/settings"
)

// Ensure MemoryObjectStorage implements ObjectStorageService
var _ settingsapp.ObjectStorageService = (*MemoryObjectStorage)(nil)

type memoryObject struct {
	data        []byte
	contentType string
}

// MemoryObjectStorage keeps objects in process memory. It backs local
// development and tests where no S3-compatible endpoint is available.
type MemoryObjectStorage struct {
	mu      sync.RWMutex
	objects map[string]memoryObject

	// BaseURL is the prefix used for generated download URLs.
	BaseURL string
}

// NewMemoryObjectStorage creates an empty MemoryObjectStorage
func NewMemoryObjectStorage() *MemoryObjectStorage {
	return &MemoryObjectStorage{
		objects: make(map[string]memoryObject),
		BaseURL: "http://localhost:8080/uploads",
	}
}

// Upload stores data under storageKey
func (m *MemoryObjectStorage) Upload(ctx context.Context, storageKey string, data []byte, contentType string) error {
	if storageKey == "" {
		return errors.New("storage key is required")
	}
	buf := make([]byte, len(data))
	copy(buf, data)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[storageKey] = memoryObject{data: buf, contentType: contentType}
	return nil
}

// DeleteObject removes the object under storageKey
func (m *MemoryObjectStorage) DeleteObject(ctx context.Context, storageKey string) error {
	if storageKey == "" {
		return errors.New("storage key is required")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, storageKey)
	return nil
}

// ObjectExists reports whether an object is stored under storageKey
func (m *MemoryObjectStorage) ObjectExists(ctx context.Context, storageKey string) (bool, error) {
	if storageKey == "" {
		return false, errors.New("storage key is required")
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.objects[storageKey]
	return ok, nil
}

// GenerateDownloadURL returns a stable URL under BaseURL
func (m *MemoryObjectStorage) GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error) {
	if storageKey == "" {
		return "", time.Time{}, errors.New("storage key is required")
	}
	return m.BaseURL + "/" + storageKey, time.Now().Add(expiresIn), nil
}

// Get returns a stored object's bytes and content type, for serving uploads
// directly in development.
func (m *MemoryObjectStorage) Get(storageKey string) ([]byte, string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	obj, ok := m.objects[storageKey]
	if !ok {
		return nil, "", false
	}
	return obj.data, obj.contentType, true
}

// Len reports how many objects are stored
func (m *MemoryObjectStorage) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.objects)
}
