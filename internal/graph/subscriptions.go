package graph

import (
	"github.com/gatherly/server/internal/bus"
	"github.com/graphql-go/graphql"
)

// subscriptionType wires one subscription field per change topic. The
// Subscribe hook opens a bus subscription scoped to the request context; the
// Resolve hook passes each delivered payload straight through to the entity
// type's field resolution.
func (r *Resolver) subscriptionType(userType, eventType, locationType, participantType *graphql.Object) *graphql.Object {
	passthrough := func(p graphql.ResolveParams) (interface{}, error) {
		return p.Source, nil
	}

	// plain builds a field with no filter argument.
	plain := func(entity *graphql.Object, topic string) *graphql.Field {
		return &graphql.Field{
			Type:    graphql.NewNonNull(entity),
			Resolve: passthrough,
			Subscribe: func(p graphql.ResolveParams) (interface{}, error) {
				return r.pump(p.Context, topic, nil), nil
			},
		}
	}

	userIDArg := graphql.FieldConfigArgument{
		"user_id": &graphql.ArgumentConfig{Type: graphql.ID},
	}

	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Subscription",
		Fields: graphql.Fields{
			"userCreated": plain(userType, bus.TopicUserCreated),
			"userUpdated": plain(userType, bus.TopicUserUpdated),
			"userDeleted": plain(userType, bus.TopicUserDeleted),

			"eventCreated": &graphql.Field{
				Type:        graphql.NewNonNull(eventType),
				Description: "New events, optionally limited to one organizer.",
				Args:        userIDArg,
				Resolve:     passthrough,
				Subscribe: func(p graphql.ResolveParams) (interface{}, error) {
					var filter bus.FilterFunc
					if userID, ok := p.Args["user_id"].(string); ok && userID != "" {
						filter = OrganizerFilter(userID)
					}
					return r.pump(p.Context, bus.TopicEventCreated, filter), nil
				},
			},
			"eventUpdated": plain(eventType, bus.TopicEventUpdated),
			"eventDeleted": plain(eventType, bus.TopicEventDeleted),

			"locationCreated": plain(locationType, bus.TopicLocationCreated),
			"locationUpdated": plain(locationType, bus.TopicLocationUpdated),
			"locationDeleted": plain(locationType, bus.TopicLocationDeleted),

			"participantAdded": &graphql.Field{
				Type:        graphql.NewNonNull(participantType),
				Description: "New registrations, optionally limited to one attendee.",
				Args:        userIDArg,
				Resolve:     passthrough,
				Subscribe: func(p graphql.ResolveParams) (interface{}, error) {
					var filter bus.FilterFunc
					if userID, ok := p.Args["user_id"].(string); ok && userID != "" {
						filter = AttendeeFilter(userID)
					}
					return r.pump(p.Context, bus.TopicParticipantAdded, filter), nil
				},
			},
			"participantUpdated": plain(participantType, bus.TopicParticipantUpdated),
			"participantDeleted": plain(participantType, bus.TopicParticipantDeleted),
		},
	})
}
