package participants

import (
	"context"
	"errors"
	"fmt"

	"github.com/gatherly/server/internal/bus"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

var ErrNotFound = errors.New("participant not found")

var validate = validator.New()

type Service struct {
	repo   Repository
	bus    *bus.Bus
	logger zerolog.Logger
}

func NewService(repo Repository, b *bus.Bus, logger zerolog.Logger) *Service {
	return &Service{repo: repo, bus: b, logger: logger}
}

func (s *Service) List(ctx context.Context) ([]Participant, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*Participant, error) {
	return s.repo.GetByID(ctx, id)
}

// ListByEvent returns every participant registered on the given event.
func (s *Service) ListByEvent(ctx context.Context, eventID string) ([]Participant, error) {
	return s.repo.ListByEvent(ctx, eventID)
}

// ListByUser returns every registration made by the given user.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]Participant, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) Create(ctx context.Context, input Input) (*Participant, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid participant input: %w", err)
	}

	participant, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	s.bus.Publish(bus.TopicParticipantAdded, *participant)
	s.logger.Info().
		Str("participant_id", participant.ID).
		Str("user_id", participant.UserID).
		Str("event_id", participant.EventID).
		Msg("participant added")
	return participant, nil
}

func (s *Service) Update(ctx context.Context, id string, patch Patch) (*Participant, error) {
	participant, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.bus.Publish(bus.TopicParticipantUpdated, *participant)
	s.logger.Info().Str("participant_id", participant.ID).Msg("participant updated")
	return participant, nil
}

func (s *Service) Delete(ctx context.Context, id string) (*Participant, error) {
	participant, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.bus.Publish(bus.TopicParticipantDeleted, *participant)
	s.logger.Info().Str("participant_id", participant.ID).Msg("participant deleted")
	return participant, nil
}

func (s *Service) DeleteAll(ctx context.Context) (int, error) {
	count, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}

	s.logger.Info().Int("count", count).Msg("all participants deleted")
	return count, nil
}
