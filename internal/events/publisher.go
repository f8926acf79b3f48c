package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Publisher appends events to Redis Streams. A nil Publisher is valid and
// publishes nothing, so services can run without Redis wired.
type Publisher struct {
	client *redis.Client
}

func NewPublisher(client *redis.Client) *Publisher {
	return &Publisher{client: client}
}

func (p *Publisher) Publish(ctx context.Context, stream, eventType string, data any) error {
	if p == nil || p.client == nil {
		return nil
	}

	event := Event{
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Data:      data,
	}

	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	args := &redis.XAddArgs{
		Stream: stream,
		Values: map[string]any{
			"event": eventJSON,
		},
	}

	if _, err := p.client.XAdd(ctx, args).Result(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// TryPublish is Publish for fire-and-forget call sites: failures are logged,
// never surfaced, because event delivery must not fail a money movement that
// has already committed.
func (p *Publisher) TryPublish(ctx context.Context, stream, eventType string, data any) {
	if err := p.Publish(ctx, stream, eventType, data); err != nil {
		log.Warn().Err(err).Str("stream", stream).Str("type", eventType).Msg("event publish failed")
	}
}
