package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/gatherly/server/internal/bus"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// ErrNotFound is returned when an update or delete names an id that does not
// exist in the users collection.
var ErrNotFound = errors.New("user not found")

var validate = validator.New()

// Service exposes user operations to the API façade. Mutations validate
// first, persist through the repository, and only then publish a
// notification, so a failed operation never publishes.
type Service struct {
	repo   Repository
	bus    *bus.Bus
	logger zerolog.Logger
}

func NewService(repo Repository, b *bus.Bus, logger zerolog.Logger) *Service {
	return &Service{repo: repo, bus: b, logger: logger}
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

// Get returns the user with the given id, or nil when absent. Absence is a
// valid query result, not an error.
func (s *Service) Get(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, input Input) (*User, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid user input: %w", err)
	}

	user, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	s.bus.Publish(bus.TopicUserCreated, *user)
	s.logger.Info().Str("user_id", user.ID).Msg("user created")
	return user, nil
}

func (s *Service) Update(ctx context.Context, id string, patch Patch) (*User, error) {
	user, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.bus.Publish(bus.TopicUserUpdated, *user)
	s.logger.Info().Str("user_id", user.ID).Msg("user updated")
	return user, nil
}

// Delete removes the user and returns its snapshot as it was immediately
// before removal.
func (s *Service) Delete(ctx context.Context, id string) (*User, error) {
	user, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.bus.Publish(bus.TopicUserDeleted, *user)
	s.logger.Info().Str("user_id", user.ID).Msg("user deleted")
	return user, nil
}

// DeleteAll removes every user and reports the count removed. Bulk removal
// publishes no per-record notifications.
func (s *Service) DeleteAll(ctx context.Context) (int, error) {
	count, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}

	s.logger.Info().Int("count", count).Msg("all users deleted")
	return count, nil
}
