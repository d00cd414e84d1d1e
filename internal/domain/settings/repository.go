package settings

import "context"

// Repository persists the company settings singleton.
type Repository interface {
	// FindFirst returns the settings record, or shared.ErrNotFound when no
	// record has been created yet.
	FindFirst(ctx context.Context) (*CompanySetting, error)

	// Save creates the record if absent or updates it in place.
	Save(ctx context.Context, setting *CompanySetting) error
}
