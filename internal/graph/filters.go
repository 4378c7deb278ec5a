package graph

import (
	"github.com/gatherly/server/internal/bus"
	"github.com/gatherly/server/internal/domain/events"
	"github.com/gatherly/server/internal/domain/participants"
)

// OrganizerFilter narrows an eventCreated stream to events organized by the
// given user.
func OrganizerFilter(userID string) bus.FilterFunc {
	return func(payload any) bool {
		e, ok := payload.(events.Event)
		return ok && e.UserID == userID
	}
}

// AttendeeFilter narrows a participantAdded stream to registrations by the
// given user.
func AttendeeFilter(userID string) bus.FilterFunc {
	return func(payload any) bool {
		p, ok := payload.(participants.Participant)
		return ok && p.UserID == userID
	}
}
