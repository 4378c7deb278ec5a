package graph

import (
	"github.com/gatherly/server/internal/domain/events"
	"github.com/gatherly/server/internal/domain/locations"
	"github.com/gatherly/server/internal/domain/participants"
	"github.com/gatherly/server/internal/domain/users"
	"github.com/graphql-go/graphql"
)

func (r *Resolver) mutationType(userType, eventType, locationType, participantType *graphql.Object) *graphql.Object {
	deleteAllType := graphql.NewObject(graphql.ObjectConfig{
		Name: "DeleteAllResult",
		Fields: graphql.Fields{
			"count": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		},
	})

	idArg := graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
	}

	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"addUser": &graphql.Field{
				Type: graphql.NewNonNull(userType),
				Args: graphql.FieldConfigArgument{
					"username": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					out, err := r.users.Create(p.Context, users.Input{
						Username: stringArg(p.Args, "username"),
						Email:    stringArg(p.Args, "email"),
					})
					if err != nil {
						return nil, r.clientError(err)
					}
					return *out, nil
				},
			},
			"updateUser": &graphql.Field{
				Type: graphql.NewNonNull(userType),
				Args: graphql.FieldConfigArgument{
					"id":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"username": &graphql.ArgumentConfig{Type: graphql.String},
					"email":    &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					patch := users.Patch{
						Username: optString(p.Args, "username"),
						Email:    optString(p.Args, "email"),
					}
					out, err := r.users.Update(p.Context, stringArg(p.Args, "id"), patch)
					if err != nil {
						return nil, r.clientError(err)
					}
					return *out, nil
				},
			},
			"deleteUser": &graphql.Field{
				Type: graphql.NewNonNull(userType),
				Args: idArg,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					out, err := r.users.Delete(p.Context, stringArg(p.Args, "id"))
					if err != nil {
						return nil, r.clientError(err)
					}
					return *out, nil
				},
			},
			"deleteAllUsers": &graphql.Field{
				Type: graphql.NewNonNull(deleteAllType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					count, err := r.users.DeleteAll(p.Context)
					if err != nil {
						return nil, r.clientError(err)
					}
					return map[string]interface{}{"count": count}, nil
				},
			},

			"addEvent": &graphql.Field{
				Type: graphql.NewNonNull(eventType),
				Args: graphql.FieldConfigArgument{
					"title":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"desc":        &graphql.ArgumentConfig{Type: graphql.String},
					"date":        &graphql.ArgumentConfig{Type: graphql.String},
					"from":        &graphql.ArgumentConfig{Type: graphql.String},
					"to":          &graphql.ArgumentConfig{Type: graphql.String},
					"location_id": &graphql.ArgumentConfig{Type: graphql.ID},
					"user_id":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					out, err := r.events.Create(p.Context, events.Input{
						Title:      stringArg(p.Args, "title"),
						Desc:       stringArg(p.Args, "desc"),
						Date:       stringArg(p.Args, "date"),
						From:       stringArg(p.Args, "from"),
						To:         stringArg(p.Args, "to"),
						LocationID: stringArg(p.Args, "location_id"),
						UserID:     stringArg(p.Args, "user_id"),
					})
					if err != nil {
						return nil, r.clientError(err)
					}
					return *out, nil
				},
			},
			"updateEvent": &graphql.Field{
				Type: graphql.NewNonNull(eventType),
				Args: graphql.FieldConfigArgument{
					"id":          &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"title":       &graphql.ArgumentConfig{Type: graphql.String},
					"desc":        &graphql.ArgumentConfig{Type: graphql.String},
					"date":        &graphql.ArgumentConfig{Type: graphql.String},
					"from":        &graphql.ArgumentConfig{Type: graphql.String},
					"to":          &graphql.ArgumentConfig{Type: graphql.String},
					"location_id": &graphql.ArgumentConfig{Type: graphql.ID},
					"user_id":     &graphql.ArgumentConfig{Type: graphql.ID},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					patch := events.Patch{
						Title:      optString(p.Args, "title"),
						Desc:       optString(p.Args, "desc"),
						Date:       optString(p.Args, "date"),
						From:       optString(p.Args, "from"),
						To:         optString(p.Args, "to"),
						LocationID: optString(p.Args, "location_id"),
						UserID:     optString(p.Args, "user_id"),
					}
					out, err := r.events.Update(p.Context, stringArg(p.Args, "id"), patch)
					if err != nil {
						return nil, r.clientError(err)
					}
					return *out, nil
				},
			},
			"deleteEvent": &graphql.Field{
				Type: graphql.NewNonNull(eventType),
				Args: idArg,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					out, err := r.events.Delete(p.Context, stringArg(p.Args, "id"))
					if err != nil {
						return nil, r.clientError(err)
					}
					return *out, nil
				},
			},
			"deleteAllEvents": &graphql.Field{
				Type: graphql.NewNonNull(deleteAllType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					count, err := r.events.DeleteAll(p.Context)
					if err != nil {
						return nil, r.clientError(err)
					}
					return map[string]interface{}{"count": count}, nil
				},
			},

			"addLocation": &graphql.Field{
				Type: graphql.NewNonNull(locationType),
				Args: graphql.FieldConfigArgument{
					"name": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"desc": &graphql.ArgumentConfig{Type: graphql.String},
					"lat":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
					"lng":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					out, err := r.locations.Create(p.Context, locations.Input{
						Name: stringArg(p.Args, "name"),
						Desc: stringArg(p.Args, "desc"),
						Lat:  floatArg(p.Args, "lat"),
						Lng:  floatArg(p.Args, "lng"),
					})
					if err != nil {
						return nil, r.clientError(err)
					}
					return *out, nil
				},
			},
			"updateLocation": &graphql.Field{
				Type: graphql.NewNonNull(locationType),
				Args: graphql.FieldConfigArgument{
					"id":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"name": &graphql.ArgumentConfig{Type: graphql.String},
					"desc": &graphql.ArgumentConfig{Type: graphql.String},
					"lat":  &graphql.ArgumentConfig{Type: graphql.Float},
					"lng":  &graphql.ArgumentConfig{Type: graphql.Float},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					patch := locations.Patch{
						Name: optString(p.Args, "name"),
						Desc: optString(p.Args, "desc"),
						Lat:  optFloat(p.Args, "lat"),
						Lng:  optFloat(p.Args, "lng"),
					}
					out, err := r.locations.Update(p.Context, stringArg(p.Args, "id"), patch)
					if err != nil {
						return nil, r.clientError(err)
					}
					return *out, nil
				},
			},
			"deleteLocation": &graphql.Field{
				Type: graphql.NewNonNull(locationType),
				Args: idArg,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					out, err := r.locations.Delete(p.Context, stringArg(p.Args, "id"))
					if err != nil {
						return nil, r.clientError(err)
					}
					return *out, nil
				},
			},
			"deleteAllLocations": &graphql.Field{
				Type: graphql.NewNonNull(deleteAllType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					count, err := r.locations.DeleteAll(p.Context)
					if err != nil {
						return nil, r.clientError(err)
					}
					return map[string]interface{}{"count": count}, nil
				},
			},

			"addParticipant": &graphql.Field{
				Type: graphql.NewNonNull(participantType),
				Args: graphql.FieldConfigArgument{
					"user_id":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"event_id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					out, err := r.participants.Create(p.Context, participants.Input{
						UserID:  stringArg(p.Args, "user_id"),
						EventID: stringArg(p.Args, "event_id"),
					})
					if err != nil {
						return nil, r.clientError(err)
					}
					return *out, nil
				},
			},
			"updateParticipant": &graphql.Field{
				Type: graphql.NewNonNull(participantType),
				Args: graphql.FieldConfigArgument{
					"id":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"user_id":  &graphql.ArgumentConfig{Type: graphql.ID},
					"event_id": &graphql.ArgumentConfig{Type: graphql.ID},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					patch := participants.Patch{
						UserID:  optString(p.Args, "user_id"),
						EventID: optString(p.Args, "event_id"),
					}
					out, err := r.participants.Update(p.Context, stringArg(p.Args, "id"), patch)
					if err != nil {
						return nil, r.clientError(err)
					}
					return *out, nil
				},
			},
			"deleteParticipant": &graphql.Field{
				Type: graphql.NewNonNull(participantType),
				Args: idArg,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					out, err := r.participants.Delete(p.Context, stringArg(p.Args, "id"))
					if err != nil {
						return nil, r.clientError(err)
					}
					return *out, nil
				},
			},
			"deleteAllParticipants": &graphql.Field{
				Type: graphql.NewNonNull(deleteAllType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					count, err := r.participants.DeleteAll(p.Context)
					if err != nil {
						return nil, r.clientError(err)
					}
					return map[string]interface{}{"count": count}, nil
				},
			},
		},
	})
}
