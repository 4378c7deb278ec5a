package jsonfile

import (
	"context"

	"github.com/gatherly/server/internal/domain/ids"
	"github.com/gatherly/server/internal/domain/users"
)

type userRepo struct {
	s *Store
}

func (r *userRepo) List(ctx context.Context) ([]users.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append([]users.User(nil), r.s.doc.Users...), nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*users.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.doc.Users {
		if u.ID == id {
			copied := u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *userRepo) Create(ctx context.Context, input users.Input) (*users.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	// The id is minted under the write lock so concurrent creates can never
	// assign the same one.
	id, err := ids.NewULID()
	if err != nil {
		return nil, err
	}

	user := users.User{ID: id, Username: input.Username, Email: input.Email}
	r.s.doc.Users = append(r.s.doc.Users, user)
	if err := r.s.save(); err != nil {
		r.s.doc.Users = r.s.doc.Users[:len(r.s.doc.Users)-1]
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) Update(ctx context.Context, id string, patch users.Patch) (*users.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, u := range r.s.doc.Users {
		if u.ID == id {
			prev := u
			r.s.doc.Users[i] = patch.Apply(u)
			if err := r.s.save(); err != nil {
				r.s.doc.Users[i] = prev
				return nil, err
			}
			copied := r.s.doc.Users[i]
			return &copied, nil
		}
	}
	return nil, users.ErrNotFound
}

func (r *userRepo) Delete(ctx context.Context, id string) (*users.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, u := range r.s.doc.Users {
		if u.ID == id {
			removed := u
			prev := append([]users.User(nil), r.s.doc.Users...)
			r.s.doc.Users = append(r.s.doc.Users[:i], r.s.doc.Users[i+1:]...)
			if err := r.s.save(); err != nil {
				r.s.doc.Users = prev
				return nil, err
			}
			return &removed, nil
		}
	}
	return nil, users.ErrNotFound
}

func (r *userRepo) DeleteAll(ctx context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	count := len(r.s.doc.Users)
	if count == 0 {
		return 0, nil
	}

	prev := r.s.doc.Users
	r.s.doc.Users = []users.User{}
	if err := r.s.save(); err != nil {
		r.s.doc.Users = prev
		return 0, err
	}
	return count, nil
}
