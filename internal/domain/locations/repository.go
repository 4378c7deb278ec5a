package locations

import "context"

type Repository interface {
	List(ctx context.Context) ([]Location, error)
	GetByID(ctx context.Context, id string) (*Location, error)
	Create(ctx context.Context, input Input) (*Location, error)
	Update(ctx context.Context, id string, patch Patch) (*Location, error)
	Delete(ctx context.Context, id string) (*Location, error)
	DeleteAll(ctx context.Context) (int, error)
}
