// Package events holds the Event entity and its service. Events reference
// their organizer and venue by id; the references are resolved lazily at read
// time and are not enforced on delete.
package events

// Event is a scheduled gathering organized by a user at a location.
type Event struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Desc       string `json:"desc"`
	Date       string `json:"date"`
	From       string `json:"from"`
	To         string `json:"to"`
	LocationID string `json:"location_id"`
	UserID     string `json:"user_id"`
}

type Input struct {
	Title      string `json:"title" validate:"required"`
	Desc       string `json:"desc"`
	Date       string `json:"date"`
	From       string `json:"from"`
	To         string `json:"to"`
	LocationID string `json:"location_id"`
	UserID     string `json:"user_id" validate:"required"`
}

// Patch is a partial update; nil fields mean "no change".
type Patch struct {
	Title      *string `json:"title"`
	Desc       *string `json:"desc"`
	Date       *string `json:"date"`
	From       *string `json:"from"`
	To         *string `json:"to"`
	LocationID *string `json:"location_id"`
	UserID     *string `json:"user_id"`
}

// Apply merges the patch over e without mutating either value.
func (p Patch) Apply(e Event) Event {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Desc != nil {
		e.Desc = *p.Desc
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.From != nil {
		e.From = *p.From
	}
	if p.To != nil {
		e.To = *p.To
	}
	if p.LocationID != nil {
		e.LocationID = *p.LocationID
	}
	if p.UserID != nil {
		e.UserID = *p.UserID
	}
	return e
}
