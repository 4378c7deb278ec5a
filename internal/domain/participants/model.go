// Package participants holds the Participant join entity linking a user to an
// event they attend.
package participants

type Participant struct {
	ID      string `json:"id"`
	UserID  string `json:"user_id"`
	EventID string `json:"event_id"`
}

type Input struct {
	UserID  string `json:"user_id" validate:"required"`
	EventID string `json:"event_id" validate:"required"`
}

type Patch struct {
	UserID  *string `json:"user_id"`
	EventID *string `json:"event_id"`
}

func (p Patch) Apply(pt Participant) Participant {
	if p.UserID != nil {
		pt.UserID = *p.UserID
	}
	if p.EventID != nil {
		pt.EventID = *p.EventID
	}
	return pt
}
