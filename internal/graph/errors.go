package graph

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gatherly/server/internal/domain/events"
	"github.com/gatherly/server/internal/domain/locations"
	"github.com/gatherly/server/internal/domain/participants"
	"github.com/gatherly/server/internal/domain/users"
	"github.com/go-playground/validator/v10"
)

var errInternal = errors.New("internal server error")

// clientError shapes a service error for the GraphQL response. Validation and
// not-found errors are safe to return verbatim in meaning; anything else is
// logged server-side and replaced with a generic message so storage paths and
// other internals never leak to clients.
func (r *Resolver) clientError(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Sprintf("%s failed %s validation", strings.ToLower(fe.Field()), fe.Tag()))
		}
		return fmt.Errorf("invalid input: %s", strings.Join(msgs, "; "))
	case errors.Is(err, users.ErrNotFound),
		errors.Is(err, events.ErrNotFound),
		errors.Is(err, locations.ErrNotFound),
		errors.Is(err, participants.ErrNotFound):
		return err
	default:
		r.logger.Error().Err(err).Msg("resolver failed")
		return errInternal
	}
}
