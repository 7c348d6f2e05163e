package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/dotflix/catalog/internal/domain/video"
	"github.com/dotflix/catalog/pkg/logger"
)

const publishTimeout = 5 * time.Second

// EventEnvelope is the wire format for published domain events.
type EventEnvelope struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	OccurredOn time.Time       `json:"occurred_on"`
	Data       json.RawMessage `json:"data"`
}

// Publisher publishes domain events to JetStream. Subjects follow
// <prefix>.<event type>, for example catalog.video.media.created.
type Publisher struct {
	js            jetstream.JetStream
	subjectPrefix string
	logger        logger.Logger
}

// NewPublisher creates a JetStream-backed event publisher.
func NewPublisher(client *Client, subjectPrefix string, log logger.Logger) *Publisher {
	return &Publisher{
		js:            client.JetStream(),
		subjectPrefix: subjectPrefix,
		logger:        log.Named("event-publisher"),
	}
}

// PublishEvent wraps the event in an envelope and publishes it. The envelope
// id doubles as the JetStream message id for stream-side deduplication.
func (p *Publisher) PublishEvent(ctx context.Context, event video.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshaling event data: %w", err)
	}

	envelope := EventEnvelope{
		ID:         uuid.NewString(),
		Type:       event.EventType(),
		OccurredOn: event.OccurredOn(),
		Data:       data,
	}

	payload, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("marshaling event envelope: %w", err)
	}

	subject := p.subjectPrefix + "." + event.EventType()

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if _, err := p.js.Publish(ctx, subject, payload, jetstream.WithMsgID(envelope.ID)); err != nil {
		return fmt.Errorf("publishing to %s: %w", subject, err)
	}

	p.logger.Debug("event published",
		logger.String("subject", subject),
		logger.String("event_id", envelope.ID),
		logger.String("event_type", envelope.Type))
	return nil
}
