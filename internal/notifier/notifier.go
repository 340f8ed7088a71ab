// Package notifier fans slot state changes out to connected viewers.
// Delivery is best-effort and at-most-once: a slow subscriber loses events
// instead of blocking the publisher.
package notifier

import (
	"context"
	"log/slog"
	"sync"

	"meetease/internal/lib/logger/sl"
)

const (
	ActionBooked  = "booked"
	ActionDeleted = "deleted"
)

type Event struct {
	SlotID string `json:"slotId"`
	Action string `json:"action"`
}

// Channel is an external push transport for slot updates.
type Channel interface {
	Publish(ctx context.Context, topic string, event Event) error
}

const topicSlotUpdate = "slot-update"

type Subscriber struct {
	events chan Event
}

// Events yields published events until Unsubscribe.
func (s *Subscriber) Events() <-chan Event {
	return s.events
}

type Hub struct {
	log     *slog.Logger
	bufSize int
	remote  Channel

	mu   sync.RWMutex
	subs map[*Subscriber]struct{}
}

type Option func(*Hub)

// WithRemote forwards every published event to an external fan-out channel,
// fire-and-forget.
func WithRemote(ch Channel) Option {
	return func(h *Hub) {
		h.remote = ch
	}
}

func New(log *slog.Logger, bufSize int, opts ...Option) *Hub {
	if bufSize <= 0 {
		bufSize = 16
	}

	h := &Hub{
		log:     log,
		bufSize: bufSize,
		subs:    make(map[*Subscriber]struct{}),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

func (h *Hub) Subscribe() *Subscriber {
	sub := &Subscriber{
		events: make(chan Event, h.bufSize),
	}

	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()

	return sub
}

func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	_, ok := h.subs[sub]
	if ok {
		delete(h.subs, sub)
	}
	h.mu.Unlock()

	if ok {
		close(sub.events)
	}
}

// Publish delivers the event to every current subscriber without blocking.
// A subscriber whose buffer is full is skipped for this event. Events for
// the same slot reach a given subscriber in publish order because same-slot
// publishes are already serialized by the caller's slot lock.
func (h *Hub) Publish(event Event) {
	h.mu.RLock()
	for sub := range h.subs {
		select {
		case sub.events <- event:
		default:
			h.log.Warn("subscriber buffer full, dropping event",
				slog.String("slot_id", event.SlotID),
				slog.String("action", event.Action),
			)
		}
	}
	h.mu.RUnlock()

	if h.remote != nil {
		go func() {
			if err := h.remote.Publish(context.Background(), topicSlotUpdate, event); err != nil {
				h.log.Warn("failed to publish to remote channel", sl.Err(err))
			}
		}()
	}
}
