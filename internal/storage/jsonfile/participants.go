package jsonfile

import (
	"context"

	"github.com/gatherly/server/internal/domain/ids"
	"github.com/gatherly/server/internal/domain/participants"
)

type participantRepo struct {
	s *Store
}

func (r *participantRepo) List(ctx context.Context) ([]participants.Participant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append([]participants.Participant(nil), r.s.doc.Participants...), nil
}

func (r *participantRepo) GetByID(ctx context.Context, id string) (*participants.Participant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, p := range r.s.doc.Participants {
		if p.ID == id {
			copied := p
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *participantRepo) ListByEvent(ctx context.Context, eventID string) ([]participants.Participant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []participants.Participant
	for _, p := range r.s.doc.Participants {
		if p.EventID == eventID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *participantRepo) ListByUser(ctx context.Context, userID string) ([]participants.Participant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []participants.Participant
	for _, p := range r.s.doc.Participants {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *participantRepo) Create(ctx context.Context, input participants.Input) (*participants.Participant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	id, err := ids.NewULID()
	if err != nil {
		return nil, err
	}

	participant := participants.Participant{ID: id, UserID: input.UserID, EventID: input.EventID}
	r.s.doc.Participants = append(r.s.doc.Participants, participant)
	if err := r.s.save(); err != nil {
		r.s.doc.Participants = r.s.doc.Participants[:len(r.s.doc.Participants)-1]
		return nil, err
	}
	return &participant, nil
}

func (r *participantRepo) Update(ctx context.Context, id string, patch participants.Patch) (*participants.Participant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, p := range r.s.doc.Participants {
		if p.ID == id {
			prev := p
			r.s.doc.Participants[i] = patch.Apply(p)
			if err := r.s.save(); err != nil {
				r.s.doc.Participants[i] = prev
				return nil, err
			}
			copied := r.s.doc.Participants[i]
			return &copied, nil
		}
	}
	return nil, participants.ErrNotFound
}

func (r *participantRepo) Delete(ctx context.Context, id string) (*participants.Participant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, p := range r.s.doc.Participants {
		if p.ID == id {
			removed := p
			prev := append([]participants.Participant(nil), r.s.doc.Participants...)
			r.s.doc.Participants = append(r.s.doc.Participants[:i], r.s.doc.Participants[i+1:]...)
			if err := r.s.save(); err != nil {
				r.s.doc.Participants = prev
				return nil, err
			}
			return &removed, nil
		}
	}
	return nil, participants.ErrNotFound
}

func (r *participantRepo) DeleteAll(ctx context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	count := len(r.s.doc.Participants)
	if count == 0 {
		return 0, nil
	}

	prev := r.s.doc.Participants
	r.s.doc.Participants = []participants.Participant{}
	if err := r.s.save(); err != nil {
		r.s.doc.Participants = prev
		return 0, err
	}
	return count, nil
}
