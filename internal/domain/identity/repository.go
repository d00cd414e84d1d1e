package identity

import "context"

// Repository persists users.
type Repository interface {
	// FindByEmail returns the user with the given email, or shared.ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Save creates or updates a user.
	Save(ctx context.Context, user *User) error
}
