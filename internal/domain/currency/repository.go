package currency

import "context"

// Repository is the currency registry persistence boundary.
type Repository interface {
	// FindAll returns every currency ordered base-first, then by code.
	FindAll(ctx context.Context) ([]Currency, error)

	// FindByCode returns the currency with the given code, or
	// shared.ErrNotFound.
	FindByCode(ctx context.Context, code string) (*Currency, error)

	// FindBase returns the currency flagged as base, or
	// shared.ErrNoBaseCurrency when none is flagged.
	FindBase(ctx context.Context) (*Currency, error)

	// SetBase reassigns the base flag to the currency with the given code.
	// The existence check, the bulk clear of the old flag, and the set of the
	// new flag run inside one transaction: an unknown code fails with
	// shared.ErrNotFound and mutates nothing, and concurrent calls always
	// leave exactly one base currency.
	SetBase(ctx context.Context, code string) error

	// Save creates or updates a currency row.
	Save(ctx context.Context, currency *Currency) error
}
