package events

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/gatherly/server/internal/bus"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	records []Event
	nextID  int
}

func (r *fakeRepo) List(ctx context.Context) ([]Event, error) {
	return append([]Event(nil), r.records...), nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id string) (*Event, error) {
	for _, e := range r.records {
		if e.ID == id {
			copied := e
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) ListByOrganizer(ctx context.Context, userID string) ([]Event, error) {
	var out []Event
	for _, e := range r.records {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListByLocation(ctx context.Context, locationID string) ([]Event, error) {
	var out []Event
	for _, e := range r.records {
		if e.LocationID == locationID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeRepo) Create(ctx context.Context, input Input) (*Event, error) {
	r.nextID++
	e := Event{
		ID:         fmt.Sprintf("fake-%d", r.nextID),
		Title:      input.Title,
		Desc:       input.Desc,
		Date:       input.Date,
		From:       input.From,
		To:         input.To,
		LocationID: input.LocationID,
		UserID:     input.UserID,
	}
	r.records = append(r.records, e)
	return &e, nil
}

func (r *fakeRepo) Update(ctx context.Context, id string, patch Patch) (*Event, error) {
	for i, e := range r.records {
		if e.ID == id {
			r.records[i] = patch.Apply(e)
			copied := r.records[i]
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fakeRepo) Delete(ctx context.Context, id string) (*Event, error) {
	for i, e := range r.records {
		if e.ID == id {
			copied := e
			r.records = append(r.records[:i], r.records[i+1:]...)
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fakeRepo) DeleteAll(ctx context.Context) (int, error) {
	n := len(r.records)
	r.records = nil
	return n, nil
}

func TestCreateRequiresTitleAndOrganizer(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{}
	svc := NewService(repo, bus.New(zerolog.Nop()), zerolog.Nop())

	_, err := svc.Create(ctx, Input{Desc: "no title"})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Empty(t, repo.records)
}

func TestCreatePublishesEventCreated(t *testing.T) {
	ctx := context.Background()
	b := bus.New(zerolog.Nop())
	svc := NewService(&fakeRepo{}, b, zerolog.Nop())
	sub := b.Subscribe(ctx, bus.TopicEventCreated)
	defer sub.Close()

	event, err := svc.Create(ctx, Input{Title: "GraphQL meetup", UserID: "u1"})
	require.NoError(t, err)

	select {
	case payload := <-sub.C():
		require.Equal(t, *event, payload)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for eventCreated")
	}
}

func TestListByOrganizer(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{records: []Event{
		{ID: "1", Title: "a", UserID: "u1"},
		{ID: "2", Title: "b", UserID: "u2"},
		{ID: "3", Title: "c", UserID: "u1"},
	}}
	svc := NewService(repo, bus.New(zerolog.Nop()), zerolog.Nop())

	got, err := svc.ListByOrganizer(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, e := range got {
		require.Equal(t, "u1", e.UserID)
	}
}

func TestUpdatePartialPatchKeepsOtherFields(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{records: []Event{{ID: "1", Title: "old", Desc: "keep", UserID: "u1"}}}
	svc := NewService(repo, bus.New(zerolog.Nop()), zerolog.Nop())

	title := "new"
	event, err := svc.Update(ctx, "1", Patch{Title: &title})
	require.NoError(t, err)
	require.Equal(t, "new", event.Title)
	require.Equal(t, "keep", event.Desc)
	require.Equal(t, "u1", event.UserID)
}

func TestDeleteNotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&fakeRepo{}, bus.New(zerolog.Nop()), zerolog.Nop())

	_, err := svc.Delete(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)
}
