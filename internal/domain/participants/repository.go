package participants

import "context"

// Repository is the persistence contract for the participants collection.
// ListByEvent and ListByUser back the event→participants and
// user→participations relationships.
type Repository interface {
	List(ctx context.Context) ([]Participant, error)
	GetByID(ctx context.Context, id string) (*Participant, error)
	ListByEvent(ctx context.Context, eventID string) ([]Participant, error)
	ListByUser(ctx context.Context, userID string) ([]Participant, error)
	Create(ctx context.Context, input Input) (*Participant, error)
	Update(ctx context.Context, id string, patch Patch) (*Participant, error)
	Delete(ctx context.Context, id string) (*Participant, error)
	DeleteAll(ctx context.Context) (int, error)
}
