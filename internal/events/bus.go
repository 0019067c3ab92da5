// Package events provides the in-process event bus and the RabbitMQ relay
// that forwards domain events to external consumers.
package events

import (
	"context"
	"log"
	"sync"

	"github.com/easybanking/backoffice/internal/domain"
)

// Subscriber handles a published domain event. A returned error is logged by
// the bus and never reaches the publisher.
type Subscriber func(ctx context.Context, event domain.DomainEvent) error

// Bus is a synchronous in-process event bus: Publish runs every subscriber in
// registration order before returning. This is best-effort, at-most-once
// notification, not transactional messaging; a subscriber failure does not
// roll back the state the publisher already persisted.
type Bus struct {
	mu          sync.RWMutex
	subscribers []Subscriber
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a subscriber for all subsequently published events.
func (b *Bus) Subscribe(s Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers = append(b.subscribers, s)
}

// Publish dispatches the event to every subscriber, fire-and-forget.
func (b *Bus) Publish(ctx context.Context, event domain.DomainEvent) {
	b.mu.RLock()
	subscribers := make([]Subscriber, len(b.subscribers))
	copy(subscribers, b.subscribers)
	b.mu.RUnlock()

	for _, s := range subscribers {
		if err := s(ctx, event); err != nil {
			log.Printf("event subscriber failed for %s: %v", event.EventName(), err)
		}
	}
}
