package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/gatherly/server/internal/bus"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

var ErrNotFound = errors.New("event not found")

var validate = validator.New()

type Service struct {
	repo   Repository
	bus    *bus.Bus
	logger zerolog.Logger
}

func NewService(repo Repository, b *bus.Bus, logger zerolog.Logger) *Service {
	return &Service{repo: repo, bus: b, logger: logger}
}

func (s *Service) List(ctx context.Context) ([]Event, error) {
	return s.repo.List(ctx)
}

// Get returns nil when no event has the given id; absence is not an error.
func (s *Service) Get(ctx context.Context, id string) (*Event, error) {
	return s.repo.GetByID(ctx, id)
}

// ListByOrganizer returns every event organized by the given user.
func (s *Service) ListByOrganizer(ctx context.Context, userID string) ([]Event, error) {
	return s.repo.ListByOrganizer(ctx, userID)
}

// ListByLocation returns every event held at the given location.
func (s *Service) ListByLocation(ctx context.Context, locationID string) ([]Event, error) {
	return s.repo.ListByLocation(ctx, locationID)
}

func (s *Service) Create(ctx context.Context, input Input) (*Event, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid event input: %w", err)
	}

	event, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	s.bus.Publish(bus.TopicEventCreated, *event)
	s.logger.Info().Str("event_id", event.ID).Str("user_id", event.UserID).Msg("event created")
	return event, nil
}

func (s *Service) Update(ctx context.Context, id string, patch Patch) (*Event, error) {
	event, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.bus.Publish(bus.TopicEventUpdated, *event)
	s.logger.Info().Str("event_id", event.ID).Msg("event updated")
	return event, nil
}

func (s *Service) Delete(ctx context.Context, id string) (*Event, error) {
	event, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.bus.Publish(bus.TopicEventDeleted, *event)
	s.logger.Info().Str("event_id", event.ID).Msg("event deleted")
	return event, nil
}

func (s *Service) DeleteAll(ctx context.Context) (int, error) {
	count, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}

	s.logger.Info().Int("count", count).Msg("all events deleted")
	return count, nil
}
