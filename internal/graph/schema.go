package graph

import (
	"github.com/gatherly/server/internal/domain/events"
	"github.com/gatherly/server/internal/domain/locations"
	"github.com/gatherly/server/internal/domain/participants"
	"github.com/gatherly/server/internal/domain/users"
	"github.com/graphql-go/graphql"
)

// Schema assembles the executable schema. Object types are built here and the
// circular relationship fields (User.events, Event.user, ...) are attached
// afterwards, since the types reference each other.
func (r *Resolver) Schema() (graphql.Schema, error) {
	userType := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id":       &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"username": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"email":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	eventType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Event",
		Fields: graphql.Fields{
			"id":    &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"title": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"desc":  &graphql.Field{Type: graphql.String},
			"date":  &graphql.Field{Type: graphql.String},
			"from":  &graphql.Field{Type: graphql.String},
			"to":    &graphql.Field{Type: graphql.String},
		},
	})

	locationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Location",
		Fields: graphql.Fields{
			"id":   &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"desc": &graphql.Field{Type: graphql.String},
			"lat":  &graphql.Field{Type: graphql.Float},
			"lng":  &graphql.Field{Type: graphql.Float},
		},
	})

	participantType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Participant",
		Fields: graphql.Fields{
			"id": &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		},
	})

	userType.AddFieldConfig("events", &graphql.Field{
		Type:        graphql.NewList(graphql.NewNonNull(eventType)),
		Description: "Events this user organizes.",
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			u, ok := userFromSource(p.Source)
			if !ok {
				return nil, nil
			}
			out, err := r.events.ListByOrganizer(p.Context, u.ID)
			return out, r.clientError(err)
		},
	})

	userType.AddFieldConfig("participations", &graphql.Field{
		Type:        graphql.NewList(graphql.NewNonNull(participantType)),
		Description: "Registrations this user holds across all events.",
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			u, ok := userFromSource(p.Source)
			if !ok {
				return nil, nil
			}
			out, err := r.participants.ListByUser(p.Context, u.ID)
			return out, r.clientError(err)
		},
	})

	locationType.AddFieldConfig("events", &graphql.Field{
		Type:        graphql.NewList(graphql.NewNonNull(eventType)),
		Description: "Events held at this location.",
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			l, ok := locationFromSource(p.Source)
			if !ok {
				return nil, nil
			}
			out, err := r.events.ListByLocation(p.Context, l.ID)
			return out, r.clientError(err)
		},
	})

	eventType.AddFieldConfig("user", &graphql.Field{
		Type:        userType,
		Description: "The organizer; null when the referenced user no longer exists.",
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			e, ok := eventFromSource(p.Source)
			if !ok || e.UserID == "" {
				return nil, nil
			}
			out, err := r.users.Get(p.Context, e.UserID)
			if out == nil || err != nil {
				return nil, r.clientError(err)
			}
			return *out, nil
		},
	})

	eventType.AddFieldConfig("location", &graphql.Field{
		Type:        locationType,
		Description: "The venue; null when unset or the referenced location no longer exists.",
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			e, ok := eventFromSource(p.Source)
			if !ok || e.LocationID == "" {
				return nil, nil
			}
			out, err := r.locations.Get(p.Context, e.LocationID)
			if out == nil || err != nil {
				return nil, r.clientError(err)
			}
			return *out, nil
		},
	})

	eventType.AddFieldConfig("participants", &graphql.Field{
		Type: graphql.NewList(graphql.NewNonNull(participantType)),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			e, ok := eventFromSource(p.Source)
			if !ok {
				return nil, nil
			}
			out, err := r.participants.ListByEvent(p.Context, e.ID)
			return out, r.clientError(err)
		},
	})

	participantType.AddFieldConfig("user", &graphql.Field{
		Type: userType,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			pt, ok := participantFromSource(p.Source)
			if !ok || pt.UserID == "" {
				return nil, nil
			}
			out, err := r.users.Get(p.Context, pt.UserID)
			if out == nil || err != nil {
				return nil, r.clientError(err)
			}
			return *out, nil
		},
	})

	participantType.AddFieldConfig("event", &graphql.Field{
		Type: eventType,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			pt, ok := participantFromSource(p.Source)
			if !ok || pt.EventID == "" {
				return nil, nil
			}
			out, err := r.events.Get(p.Context, pt.EventID)
			if out == nil || err != nil {
				return nil, r.clientError(err)
			}
			return *out, nil
		},
	})

	idArg := graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
	}

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"users": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(userType)),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					out, err := r.users.List(p.Context)
					return out, r.clientError(err)
				},
			},
			"user": &graphql.Field{
				Type: userType,
				Args: idArg,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					out, err := r.users.Get(p.Context, stringArg(p.Args, "id"))
					if out == nil || err != nil {
						return nil, r.clientError(err)
					}
					return *out, nil
				},
			},
			"events": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(eventType)),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					out, err := r.events.List(p.Context)
					return out, r.clientError(err)
				},
			},
			"event": &graphql.Field{
				Type: eventType,
				Args: idArg,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					out, err := r.events.Get(p.Context, stringArg(p.Args, "id"))
					if out == nil || err != nil {
						return nil, r.clientError(err)
					}
					return *out, nil
				},
			},
			"locations": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(locationType)),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					out, err := r.locations.List(p.Context)
					return out, r.clientError(err)
				},
			},
			"location": &graphql.Field{
				Type: locationType,
				Args: idArg,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					out, err := r.locations.Get(p.Context, stringArg(p.Args, "id"))
					if out == nil || err != nil {
						return nil, r.clientError(err)
					}
					return *out, nil
				},
			},
			"participants": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(participantType)),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					out, err := r.participants.List(p.Context)
					return out, r.clientError(err)
				},
			},
			"participant": &graphql.Field{
				Type: participantType,
				Args: idArg,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					out, err := r.participants.Get(p.Context, stringArg(p.Args, "id"))
					if out == nil || err != nil {
						return nil, r.clientError(err)
					}
					return *out, nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:        query,
		Mutation:     r.mutationType(userType, eventType, locationType, participantType),
		Subscription: r.subscriptionType(userType, eventType, locationType, participantType),
	})
}

func userFromSource(src interface{}) (users.User, bool) {
	switch v := src.(type) {
	case users.User:
		return v, true
	case *users.User:
		if v != nil {
			return *v, true
		}
	}
	return users.User{}, false
}

func eventFromSource(src interface{}) (events.Event, bool) {
	switch v := src.(type) {
	case events.Event:
		return v, true
	case *events.Event:
		if v != nil {
			return *v, true
		}
	}
	return events.Event{}, false
}

func locationFromSource(src interface{}) (locations.Location, bool) {
	switch v := src.(type) {
	case locations.Location:
		return v, true
	case *locations.Location:
		if v != nil {
			return *v, true
		}
	}
	return locations.Location{}, false
}

func participantFromSource(src interface{}) (participants.Participant, bool) {
	switch v := src.(type) {
	case participants.Participant:
		return v, true
	case *participants.Participant:
		if v != nil {
			return *v, true
		}
	}
	return participants.Participant{}, false
}
