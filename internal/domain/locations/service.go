package locations

import (
	"context"
	"errors"
	"fmt"

	"github.com/gatherly/server/internal/bus"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

var ErrNotFound = errors.New("location not found")

var validate = validator.New()

type Service struct {
	repo   Repository
	bus    *bus.Bus
	logger zerolog.Logger
}

func NewService(repo Repository, b *bus.Bus, logger zerolog.Logger) *Service {
	return &Service{repo: repo, bus: b, logger: logger}
}

func (s *Service) List(ctx context.Context) ([]Location, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*Location, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, input Input) (*Location, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid location input: %w", err)
	}

	location, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	s.bus.Publish(bus.TopicLocationCreated, *location)
	s.logger.Info().Str("location_id", location.ID).Msg("location created")
	return location, nil
}

func (s *Service) Update(ctx context.Context, id string, patch Patch) (*Location, error) {
	location, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.bus.Publish(bus.TopicLocationUpdated, *location)
	s.logger.Info().Str("location_id", location.ID).Msg("location updated")
	return location, nil
}

func (s *Service) Delete(ctx context.Context, id string) (*Location, error) {
	location, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.bus.Publish(bus.TopicLocationDeleted, *location)
	s.logger.Info().Str("location_id", location.ID).Msg("location deleted")
	return location, nil
}

func (s *Service) DeleteAll(ctx context.Context) (int, error) {
	count, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}

	s.logger.Info().Int("count", count).Msg("all locations deleted")
	return count, nil
}
