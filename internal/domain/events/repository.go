package events

import "context"

// Repository is the persistence contract for the events collection.
// ListByOrganizer and ListByLocation back the user→events and location→events
// relationships and resolve by linear scan, so results always reflect the
// latest persisted state.
type Repository interface {
	List(ctx context.Context) ([]Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	ListByOrganizer(ctx context.Context, userID string) ([]Event, error)
	ListByLocation(ctx context.Context, locationID string) ([]Event, error)
	Create(ctx context.Context, input Input) (*Event, error)
	Update(ctx context.Context, id string, patch Patch) (*Event, error)
	Delete(ctx context.Context, id string) (*Event, error)
	DeleteAll(ctx context.Context) (int, error)
}
