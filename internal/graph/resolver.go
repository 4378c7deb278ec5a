// Package graph defines the GraphQL schema over the domain services: queries
// and mutations delegate to the services, and subscriptions stream change
// notifications from the bus. Relationships between entities are resolved
// lazily per field, so a dangling reference surfaces as a null field rather
// than an error.
package graph

import (
	"context"

	"github.com/gatherly/server/internal/bus"
	"github.com/gatherly/server/internal/domain/events"
	"github.com/gatherly/server/internal/domain/locations"
	"github.com/gatherly/server/internal/domain/participants"
	"github.com/gatherly/server/internal/domain/users"
	"github.com/rs/zerolog"
)

// Resolver carries the services and bus every field resolver needs. One
// resolver serves one schema instance.
type Resolver struct {
	users        *users.Service
	events       *events.Service
	locations    *locations.Service
	participants *participants.Service
	bus          *bus.Bus
	logger       zerolog.Logger
}

func NewResolver(
	us *users.Service,
	es *events.Service,
	ls *locations.Service,
	ps *participants.Service,
	b *bus.Bus,
	logger zerolog.Logger,
) *Resolver {
	return &Resolver{
		users:        us,
		events:       es,
		locations:    ls,
		participants: ps,
		bus:          b,
		logger:       logger,
	}
}

// pump bridges a bus subscription into the channel shape the GraphQL executor
// consumes. The bridge goroutine exits when the subscription closes or the
// request context ends, whichever happens first.
func (r *Resolver) pump(ctx context.Context, topic string, filter bus.FilterFunc) chan interface{} {
	var opts []bus.SubscribeOption
	if filter != nil {
		opts = append(opts, bus.WithFilter(filter))
	}
	sub := r.bus.Subscribe(ctx, topic, opts...)

	out := make(chan interface{})
	go func() {
		defer close(out)
		for payload := range sub.C() {
			select {
			case out <- payload:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

func stringArg(args map[string]interface{}, key string) string {
	v, _ := args[key].(string)
	return v
}

// optString reports an argument the client actually supplied; an absent or
// null argument yields nil, which patches treat as "no change".
func optString(args map[string]interface{}, key string) *string {
	if v, ok := args[key].(string); ok {
		return &v
	}
	return nil
}

func optFloat(args map[string]interface{}, key string) *float64 {
	if v, ok := args[key].(float64); ok {
		return &v
	}
	return nil
}

func floatArg(args map[string]interface{}, key string) float64 {
	v, _ := args[key].(float64)
	return v
}
