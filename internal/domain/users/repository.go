package users

import "context"

// Repository is the persistence contract for the users collection. Mutating
// methods execute as atomic critical sections against the store and persist
// before returning; Update and Delete return ErrNotFound for unknown ids.
type Repository interface {
	List(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, input Input) (*User, error)
	Update(ctx context.Context, id string, patch Patch) (*User, error)
	Delete(ctx context.Context, id string) (*User, error)
	DeleteAll(ctx context.Context) (int, error)
}
