// Package users holds the User entity, its input and patch shapes, and the
// service coordinating validation, persistence, and change notifications.
package users

// User is a registered account. A user organizes events (events.Event.UserID)
// and attends them through participants (participants.Participant.UserID).
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Input carries the fields required to create a user. The id is assigned by
// the store.
type Input struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}

// Patch is a partial update: every field is optional, nil means "no change".
type Patch struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
}

// Apply merges the patch over u. Present fields overwrite, absent fields are
// retained. Pure function: the receiver and argument are never mutated.
func (p Patch) Apply(u User) User {
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	return u
}
