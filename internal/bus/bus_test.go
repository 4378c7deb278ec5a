package bus

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, sub *Subscription) any {
	t.Helper()
	select {
	case payload := <-sub.C():
		return payload
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for payload")
		return nil
	}
}

func TestPublishFansOutToAllSubscribers(t *testing.T) {
	ctx := context.Background()
	b := New(zerolog.Nop())

	first := b.Subscribe(ctx, "topic")
	second := b.Subscribe(ctx, "topic")
	defer first.Close()
	defer second.Close()

	b.Publish("topic", "payload")

	require.Equal(t, "payload", receive(t, first))
	require.Equal(t, "payload", receive(t, second))
}

func TestPublishDoesNotReachOtherTopics(t *testing.T) {
	ctx := context.Background()
	b := New(zerolog.Nop())

	sub := b.Subscribe(ctx, "other")
	defer sub.Close()

	b.Publish("topic", "payload")

	select {
	case <-sub.C():
		t.Fatal("payload leaked across topics")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestNoReplayForLateSubscribers(t *testing.T) {
	ctx := context.Background()
	b := New(zerolog.Nop())

	b.Publish("topic", "before")

	sub := b.Subscribe(ctx, "topic")
	defer sub.Close()
	b.Publish("topic", "after")

	require.Equal(t, "after", receive(t, sub))
}

func TestDeliveryOrder(t *testing.T) {
	ctx := context.Background()
	b := New(zerolog.Nop())

	sub := b.Subscribe(ctx, "topic")
	defer sub.Close()

	for i := 0; i < 5; i++ {
		b.Publish("topic", i)
	}
	for i := 0; i < 5; i++ {
		require.Equal(t, i, receive(t, sub))
	}
}

func TestFilterNarrowsDelivery(t *testing.T) {
	ctx := context.Background()
	b := New(zerolog.Nop())

	filtered := b.Subscribe(ctx, "topic", WithFilter(func(payload any) bool {
		return payload == "keep"
	}))
	unfiltered := b.Subscribe(ctx, "topic")
	defer filtered.Close()
	defer unfiltered.Close()

	b.Publish("topic", "skip")
	b.Publish("topic", "keep")

	require.Equal(t, "keep", receive(t, filtered))
	require.Equal(t, "skip", receive(t, unfiltered))
	require.Equal(t, "keep", receive(t, unfiltered))
}

func TestCloseDeregisters(t *testing.T) {
	ctx := context.Background()
	b := New(zerolog.Nop())

	sub := b.Subscribe(ctx, "topic")
	require.Equal(t, 1, b.SubscriberCount("topic"))

	sub.Close()
	require.Equal(t, 0, b.SubscriberCount("topic"))

	_, open := <-sub.C()
	require.False(t, open, "channel must be closed after Close")

	// Close is idempotent.
	sub.Close()
}

func TestContextCancelDeregisters(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	b := New(zerolog.Nop())

	b.Subscribe(ctx, "topic")
	require.Equal(t, 1, b.SubscriberCount("topic"))

	cancel()
	require.Eventually(t, func() bool {
		return b.SubscriberCount("topic") == 0
	}, time.Second, 10*time.Millisecond)
}

func TestOverflowDropsOldest(t *testing.T) {
	ctx := context.Background()
	b := New(zerolog.Nop(), WithBufferSize(1))

	sub := b.Subscribe(ctx, "topic")
	defer sub.Close()

	b.Publish("topic", "old")
	b.Publish("topic", "new")

	require.Equal(t, "new", receive(t, sub))
}
