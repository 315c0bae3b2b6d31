package events

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"fleet-field-api/internal/domain"
)

const subscriberBuffer = 64

// Broker fans events out to in-process subscribers. A subscriber whose
// buffer is full misses the event rather than blocking the publisher.
type Broker struct {
	mu          sync.RWMutex
	subscribers map[chan domain.ChangeEvent]struct{}
	logger      *zap.Logger
}

// NewBroker creates an empty broker
func NewBroker(logger *zap.Logger) *Broker {
	return &Broker{
		subscribers: make(map[chan domain.ChangeEvent]struct{}),
		logger:      logger,
	}
}

// Publish delivers the event to every current subscriber
func (b *Broker) Publish(_ context.Context, event domain.ChangeEvent) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for ch := range b.subscribers {
		select {
		case ch <- event:
		default:
			b.logger.Warn("Dropping change event for slow subscriber",
				zap.String("type", string(event.Type)),
			)
		}
	}
	return nil
}

// Subscribe registers a subscriber. The returned function unsubscribes and
// closes the channel; it is safe to call more than once.
func (b *Broker) Subscribe() (<-chan domain.ChangeEvent, func()) {
	ch := make(chan domain.ChangeEvent, subscriberBuffer)

	b.mu.Lock()
	b.subscribers[ch] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subscribers, ch)
			b.mu.Unlock()
			close(ch)
		})
	}
}

// SubscriberCount returns the number of active subscribers
func (b *Broker) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
