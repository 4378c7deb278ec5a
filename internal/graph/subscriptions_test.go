package graph

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/gatherly/server/internal/bus"
	"github.com/gatherly/server/internal/domain/events"
	"github.com/gatherly/server/internal/domain/participants"
	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/require"
)

func subscribe(t *testing.T, schema graphql.Schema, b *bus.Bus, topic, query string) (chan *graphql.Result, context.CancelFunc) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	results := graphql.Subscribe(graphql.Params{
		Schema:        schema,
		RequestString: query,
		Context:       ctx,
	})

	// The executor registers the bus subscription asynchronously; wait for it
	// before publishing so nothing is missed.
	require.Eventually(t, func() bool {
		return b.SubscriberCount(topic) > 0
	}, time.Second, 5*time.Millisecond)

	return results, cancel
}

func receive(t *testing.T, results chan *graphql.Result) map[string]interface{} {
	t.Helper()
	select {
	case res := <-results:
		require.NotNil(t, res)
		require.Empty(t, res.Errors)
		return res.Data.(map[string]interface{})
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for subscription delivery")
		return nil
	}
}

func requireNoDelivery(t *testing.T, results chan *graphql.Result) {
	t.Helper()
	select {
	case res := <-results:
		t.Fatalf("unexpected delivery: %+v", res)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestUserCreatedSubscriptionDeliversPayload(t *testing.T) {
	schema, b := newTestSchema(t)

	results, cancel := subscribe(t, schema, b, bus.TopicUserCreated,
		`subscription { userCreated { username email } }`)
	defer cancel()

	addUser(t, schema, "alice", "alice@example.com")

	data := receive(t, results)
	created := data["userCreated"].(map[string]interface{})
	require.Equal(t, "alice", created["username"])
	require.Equal(t, "alice@example.com", created["email"])
}

func TestEventCreatedSubscriptionFiltersByOrganizer(t *testing.T) {
	schema, b := newTestSchema(t)
	alice := addUser(t, schema, "alice", "alice@example.com")
	bob := addUser(t, schema, "bob", "bob@example.com")

	results, cancel := subscribe(t, schema, b, bus.TopicEventCreated, fmt.Sprintf(
		`subscription { eventCreated(user_id: %q) { title user { username } } }`, alice))
	defer cancel()

	execute(t, schema, fmt.Sprintf(`mutation { addEvent(title: "bobs", user_id: %q) { id } }`, bob))
	execute(t, schema, fmt.Sprintf(`mutation { addEvent(title: "alices", user_id: %q) { id } }`, alice))

	data := receive(t, results)
	created := data["eventCreated"].(map[string]interface{})
	require.Equal(t, "alices", created["title"])
	require.Equal(t, "alice", created["user"].(map[string]interface{})["username"])

	requireNoDelivery(t, results)
}

func TestEventCreatedSubscriptionWithoutFilterSeesAll(t *testing.T) {
	schema, b := newTestSchema(t)
	alice := addUser(t, schema, "alice", "alice@example.com")
	bob := addUser(t, schema, "bob", "bob@example.com")

	results, cancel := subscribe(t, schema, b, bus.TopicEventCreated,
		`subscription { eventCreated { title } }`)
	defer cancel()

	execute(t, schema, fmt.Sprintf(`mutation { addEvent(title: "first", user_id: %q) { id } }`, alice))
	execute(t, schema, fmt.Sprintf(`mutation { addEvent(title: "second", user_id: %q) { id } }`, bob))

	require.Equal(t, "first", receive(t, results)["eventCreated"].(map[string]interface{})["title"])
	require.Equal(t, "second", receive(t, results)["eventCreated"].(map[string]interface{})["title"])
}

func TestParticipantAddedSubscriptionFiltersByAttendee(t *testing.T) {
	schema, b := newTestSchema(t)
	alice := addUser(t, schema, "alice", "alice@example.com")
	bob := addUser(t, schema, "bob", "bob@example.com")

	data := execute(t, schema, fmt.Sprintf(`mutation { addEvent(title: "launch", user_id: %q) { id } }`, alice))
	eventID := data["addEvent"].(map[string]interface{})["id"].(string)

	results, cancel := subscribe(t, schema, b, bus.TopicParticipantAdded, fmt.Sprintf(
		`subscription { participantAdded(user_id: %q) { user { username } } }`, bob))
	defer cancel()

	execute(t, schema, fmt.Sprintf(`mutation { addParticipant(user_id: %q, event_id: %q) { id } }`, alice, eventID))
	execute(t, schema, fmt.Sprintf(`mutation { addParticipant(user_id: %q, event_id: %q) { id } }`, bob, eventID))

	data = receive(t, results)
	added := data["participantAdded"].(map[string]interface{})
	require.Equal(t, "bob", added["user"].(map[string]interface{})["username"])

	requireNoDelivery(t, results)
}

func TestDeleteAllPublishesNoNotifications(t *testing.T) {
	schema, b := newTestSchema(t)
	alice := addUser(t, schema, "alice", "alice@example.com")
	execute(t, schema, fmt.Sprintf(`mutation { addEvent(title: "launch", user_id: %q) { id } }`, alice))

	results, cancel := subscribe(t, schema, b, bus.TopicEventDeleted,
		`subscription { eventDeleted { id } }`)
	defer cancel()

	execute(t, schema, `mutation { deleteAllEvents { count } }`)
	requireNoDelivery(t, results)
}

func TestCancelledSubscriptionDeregisters(t *testing.T) {
	schema, b := newTestSchema(t)

	results, cancel := subscribe(t, schema, b, bus.TopicUserCreated,
		`subscription { userCreated { id } }`)
	cancel()

	require.Eventually(t, func() bool {
		return b.SubscriberCount(bus.TopicUserCreated) == 0
	}, time.Second, 5*time.Millisecond)
	_ = results
}

func TestOrganizerFilter(t *testing.T) {
	f := OrganizerFilter("u1")
	require.True(t, f(events.Event{UserID: "u1"}))
	require.False(t, f(events.Event{UserID: "u2"}))
	require.False(t, f("not an event"))
}

func TestAttendeeFilter(t *testing.T) {
	f := AttendeeFilter("u1")
	require.True(t, f(participants.Participant{UserID: "u1"}))
	require.False(t, f(participants.Participant{UserID: "u2"}))
	require.False(t, f(42))
}
