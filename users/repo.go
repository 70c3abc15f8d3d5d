package users

import "context"

// UserRepo is the credential store. Lookups of an unknown user return
// errors.ErrNotFound; creating a second user with the same email returns
// errors.ErrDuplicate.
type UserRepo interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}
