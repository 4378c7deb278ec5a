// Package bus implements the in-process notification fan-out between mutation
// handlers and subscription consumers. Publications reach every subscriber
// registered on the topic at the moment of publication; there is no replay
// buffer, and each subscriber receives its own copy of every payload.
package bus

import (
	"context"
	"sync"

	"github.com/gatherly/server/internal/metrics"
	"github.com/rs/zerolog"
)

// DefaultBufferSize is the per-subscription queue capacity used when no
// override is configured.
const DefaultBufferSize = 64

// FilterFunc narrows a subscription's stream. A nil filter passes everything.
type FilterFunc func(payload any) bool

// Bus is a topic-keyed broadcast hub. The zero value is not usable; construct
// with New so it can be injected per server (and per test).
type Bus struct {
	mu     sync.RWMutex
	subs   map[string][]*Subscription
	buffer int
	logger zerolog.Logger
}

// Option configures a Bus.
type Option func(*Bus)

// WithBufferSize sets the per-subscription queue capacity.
func WithBufferSize(n int) Option {
	return func(b *Bus) {
		if n > 0 {
			b.buffer = n
		}
	}
}

func New(logger zerolog.Logger, opts ...Option) *Bus {
	b := &Bus{
		subs:   make(map[string][]*Subscription),
		buffer: DefaultBufferSize,
		logger: logger,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscription is a live consumer of one topic. Payloads arrive on C in
// publication order until the subscription is closed or its context ends.
type Subscription struct {
	topic  string
	ch     chan any
	filter FilterFunc
	bus    *Bus
	once   sync.Once
}

// C returns the delivery channel. It is closed when the subscription ends.
func (s *Subscription) C() <-chan any {
	return s.ch
}

// Close deregisters the subscription and closes its channel. Safe to call
// more than once.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.bus.remove(s)
	})
}

// SubscribeOption configures a single subscription.
type SubscribeOption func(*Subscription)

// WithFilter attaches a per-subscription predicate. Payloads failing the
// predicate are silently skipped for this subscriber only.
func WithFilter(f FilterFunc) SubscribeOption {
	return func(s *Subscription) {
		s.filter = f
	}
}

// Subscribe registers a consumer on topic. The subscription is torn down when
// ctx is cancelled, so a disconnecting client releases its queue promptly.
func (b *Bus) Subscribe(ctx context.Context, topic string, opts ...SubscribeOption) *Subscription {
	sub := &Subscription{
		topic: topic,
		ch:    make(chan any, b.buffer),
		bus:   b,
	}
	for _, opt := range opts {
		opt(sub)
	}

	b.mu.Lock()
	b.subs[topic] = append(b.subs[topic], sub)
	b.mu.Unlock()
	metrics.BusSubscribers.WithLabelValues(topic).Inc()

	go func() {
		<-ctx.Done()
		sub.Close()
	}()

	return sub
}

// Publish delivers payload to every current subscriber of topic. It never
// blocks the caller: when a subscriber's queue is full the oldest queued
// payload is dropped to make room for the new one.
func (b *Bus) Publish(topic string, payload any) {
	metrics.BusPublishedTotal.WithLabelValues(topic).Inc()

	// Deliveries are non-blocking, so holding the read lock here is cheap and
	// guarantees no channel is closed mid-send (remove holds the write lock).
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, sub := range b.subs[topic] {
		if sub.filter != nil && !sub.filter(payload) {
			continue
		}
		select {
		case sub.ch <- payload:
		default:
			// Queue full: drop the oldest entry so slow consumers see the
			// most recent notifications instead of stalling the publisher.
			select {
			case <-sub.ch:
				metrics.BusDroppedTotal.WithLabelValues(topic).Inc()
			default:
			}
			select {
			case sub.ch <- payload:
			default:
				metrics.BusDroppedTotal.WithLabelValues(topic).Inc()
			}
		}
	}
}

// SubscriberCount reports the number of live subscriptions on topic.
func (b *Bus) SubscriberCount(topic string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[topic])
}

func (b *Bus) remove(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.subs[sub.topic]
	for i, candidate := range subs {
		if candidate == sub {
			b.subs[sub.topic] = append(subs[:i], subs[i+1:]...)
			close(sub.ch)
			metrics.BusSubscribers.WithLabelValues(sub.topic).Dec()
			break
		}
	}
	if len(b.subs[sub.topic]) == 0 {
		delete(b.subs, sub.topic)
	}
}
