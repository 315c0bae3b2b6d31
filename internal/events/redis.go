package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"fleet-field-api/internal/domain"
)

// RedisPublisher publishes events to a redis channel so every instance sees them
type RedisPublisher struct {
	client   *redis.Client
	channel  string
	fallback Publisher
}

// NewRedisPublisher creates a publisher on the given channel
func NewRedisPublisher(client *redis.Client, channel string) *RedisPublisher {
	return &RedisPublisher{client: client, channel: channel}
}

// WithFallback sets the publisher that receives events redis could not take.
// Local subscribers then still see changes made on this instance.
func (p *RedisPublisher) WithFallback(fallback Publisher) *RedisPublisher {
	p.fallback = fallback
	return p
}

// Publish encodes the event as JSON and publishes it. On failure the event
// goes to the fallback and the redis error is still returned.
func (p *RedisPublisher) Publish(ctx context.Context, event domain.ChangeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode change event: %w", err)
	}
	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		if p.fallback != nil {
			_ = p.fallback.Publish(ctx, event)
		}
		return err
	}
	return nil
}

// RedisRelay forwards events from a redis channel into a local broker
type RedisRelay struct {
	client  *redis.Client
	channel string
	target  Publisher
	logger  *zap.Logger
}

// NewRedisRelay creates a relay from channel into target
func NewRedisRelay(client *redis.Client, channel string, target Publisher, logger *zap.Logger) *RedisRelay {
	return &RedisRelay{client: client, channel: channel, target: target, logger: logger}
}

// Run relays events until ctx is cancelled
func (r *RedisRelay) Run(ctx context.Context) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("Recovered from panic in redis relay", zap.Any("panic", rec))
		}
	}()

	pubsub := r.client.Subscribe(ctx, r.channel)
	defer pubsub.Close()

	r.logger.Info("Relaying change events from redis", zap.String("channel", r.channel))

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			r.deliver(ctx, msg.Payload)
		}
	}
}

func (r *RedisRelay) deliver(ctx context.Context, payload string) {
	var event domain.ChangeEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		r.logger.Warn("Discarding malformed change event", zap.Error(err))
		return
	}
	if err := r.target.Publish(ctx, event); err != nil {
		r.logger.Warn("Failed to relay change event", zap.Error(err))
	}
}
