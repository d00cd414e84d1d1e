package settings

import (
	"context"
	"time"
)

// ObjectStorageService is the blob storage boundary the settings service
// consumes for logo files. Implementations live in infrastructure/storage.
type ObjectStorageService interface {
	// Upload stores data under storageKey.
	Upload(ctx context.Context, storageKey string, data []byte, contentType string) error

	// DeleteObject removes the object under storageKey.
	DeleteObject(ctx context.Context, storageKey string) error

	// ObjectExists reports whether an object is stored under storageKey.
	ObjectExists(ctx context.Context, storageKey string) (bool, error)

	// GenerateDownloadURL returns a URL from which the object can be fetched,
	// together with its expiry.
	GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error)
}
