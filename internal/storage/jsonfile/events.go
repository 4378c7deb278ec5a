package jsonfile

import (
	"context"

	"github.com/gatherly/server/internal/domain/events"
	"github.com/gatherly/server/internal/domain/ids"
)

type eventRepo struct {
	s *Store
}

func (r *eventRepo) List(ctx context.Context) ([]events.Event, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append([]events.Event(nil), r.s.doc.Events...), nil
}

func (r *eventRepo) GetByID(ctx context.Context, id string) (*events.Event, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, e := range r.s.doc.Events {
		if e.ID == id {
			copied := e
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *eventRepo) ListByOrganizer(ctx context.Context, userID string) ([]events.Event, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []events.Event
	for _, e := range r.s.doc.Events {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *eventRepo) ListByLocation(ctx context.Context, locationID string) ([]events.Event, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []events.Event
	for _, e := range r.s.doc.Events {
		if e.LocationID == locationID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *eventRepo) Create(ctx context.Context, input events.Input) (*events.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	id, err := ids.NewULID()
	if err != nil {
		return nil, err
	}

	event := events.Event{
		ID:         id,
		Title:      input.Title,
		Desc:       input.Desc,
		Date:       input.Date,
		From:       input.From,
		To:         input.To,
		LocationID: input.LocationID,
		UserID:     input.UserID,
	}
	r.s.doc.Events = append(r.s.doc.Events, event)
	if err := r.s.save(); err != nil {
		r.s.doc.Events = r.s.doc.Events[:len(r.s.doc.Events)-1]
		return nil, err
	}
	return &event, nil
}

func (r *eventRepo) Update(ctx context.Context, id string, patch events.Patch) (*events.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, e := range r.s.doc.Events {
		if e.ID == id {
			prev := e
			r.s.doc.Events[i] = patch.Apply(e)
			if err := r.s.save(); err != nil {
				r.s.doc.Events[i] = prev
				return nil, err
			}
			copied := r.s.doc.Events[i]
			return &copied, nil
		}
	}
	return nil, events.ErrNotFound
}

func (r *eventRepo) Delete(ctx context.Context, id string) (*events.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, e := range r.s.doc.Events {
		if e.ID == id {
			removed := e
			prev := append([]events.Event(nil), r.s.doc.Events...)
			r.s.doc.Events = append(r.s.doc.Events[:i], r.s.doc.Events[i+1:]...)
			if err := r.s.save(); err != nil {
				r.s.doc.Events = prev
				return nil, err
			}
			return &removed, nil
		}
	}
	return nil, events.ErrNotFound
}

func (r *eventRepo) DeleteAll(ctx context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	count := len(r.s.doc.Events)
	if count == 0 {
		return 0, nil
	}

	prev := r.s.doc.Events
	r.s.doc.Events = []events.Event{}
	if err := r.s.save(); err != nil {
		r.s.doc.Events = prev
		return 0, err
	}
	return count, nil
}
