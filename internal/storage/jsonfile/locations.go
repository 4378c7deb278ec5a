package jsonfile

import (
	"context"

	"github.com/gatherly/server/internal/domain/ids"
	"github.com/gatherly/server/internal/domain/locations"
)

type locationRepo struct {
	s *Store
}

func (r *locationRepo) List(ctx context.Context) ([]locations.Location, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append([]locations.Location(nil), r.s.doc.Locations...), nil
}

func (r *locationRepo) GetByID(ctx context.Context, id string) (*locations.Location, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, l := range r.s.doc.Locations {
		if l.ID == id {
			copied := l
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *locationRepo) Create(ctx context.Context, input locations.Input) (*locations.Location, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	id, err := ids.NewULID()
	if err != nil {
		return nil, err
	}

	location := locations.Location{ID: id, Name: input.Name, Desc: input.Desc, Lat: input.Lat, Lng: input.Lng}
	r.s.doc.Locations = append(r.s.doc.Locations, location)
	if err := r.s.save(); err != nil {
		r.s.doc.Locations = r.s.doc.Locations[:len(r.s.doc.Locations)-1]
		return nil, err
	}
	return &location, nil
}

func (r *locationRepo) Update(ctx context.Context, id string, patch locations.Patch) (*locations.Location, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, l := range r.s.doc.Locations {
		if l.ID == id {
			prev := l
			r.s.doc.Locations[i] = patch.Apply(l)
			if err := r.s.save(); err != nil {
				r.s.doc.Locations[i] = prev
				return nil, err
			}
			copied := r.s.doc.Locations[i]
			return &copied, nil
		}
	}
	return nil, locations.ErrNotFound
}

func (r *locationRepo) Delete(ctx context.Context, id string) (*locations.Location, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, l := range r.s.doc.Locations {
		if l.ID == id {
			removed := l
			prev := append([]locations.Location(nil), r.s.doc.Locations...)
			r.s.doc.Locations = append(r.s.doc.Locations[:i], r.s.doc.Locations[i+1:]...)
			if err := r.s.save(); err != nil {
				r.s.doc.Locations = prev
				return nil, err
			}
			return &removed, nil
		}
	}
	return nil, locations.ErrNotFound
}

func (r *locationRepo) DeleteAll(ctx context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	count := len(r.s.doc.Locations)
	if count == 0 {
		return 0, nil
	}

	prev := r.s.doc.Locations
	r.s.doc.Locations = []locations.Location{}
	if err := r.s.save(); err != nil {
		r.s.doc.Locations = prev
		return 0, err
	}
	return count, nil
}
