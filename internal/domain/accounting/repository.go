package accounting

import "context"

// Repository reads the chart of accounts.
type Repository interface {
	// FindAll returns every account ordered by code.
	FindAll(ctx context.Context) ([]Account, error)

	// FindByCode returns the account with the given code, or shared.ErrNotFound.
	FindByCode(ctx context.Context, code string) (*Account, error)

	// Save creates or updates an account row. Used by the seeder only.
	Save(ctx context.Context, account *Account) error
}
