package events

import (
	"context"

	"fleet-field-api/internal/domain"
)

// Publisher delivers committed change events to whoever refreshes views
type Publisher interface {
	Publish(ctx context.Context, event domain.ChangeEvent) error
}

// NopPublisher discards events
type NopPublisher struct{}

// Publish does nothing
func (NopPublisher) Publish(context.Context, domain.ChangeEvent) error { return nil }

// TransportName labels a publisher for metrics
func TransportName(p Publisher) string {
	switch p.(type) {
	case *RedisPublisher:
		return "redis"
	case *Broker:
		return "local"
	case NopPublisher, *NopPublisher:
		return "nop"
	}
	return "other"
}
