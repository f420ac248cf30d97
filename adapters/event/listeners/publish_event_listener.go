package listeners

import (
	"context"
	"fmt"
	"time"

	"github.com/ddd-commerce/backend/domain"
	"github.com/ddd-commerce/backend/domain/pubsub"
	jsoniter "github.com/json-iterator/go"
)

const publishTimeout = 5 * time.Second

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PublishedEvent is the wire form of a forwarded event.
type PublishedEvent struct {
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

// PublishEventListener forwards the events it is registered for to a
// pub/sub channel.
type PublishEventListener struct {
	publisher pubsub.Service
	channel   string
}

func NewPublishEventListener(publisher pubsub.Service, channel string) *PublishEventListener {
	return &PublishEventListener{publisher: publisher, channel: channel}
}

func (l *PublishEventListener) Handle(event domain.Event) error {
	data, err := json.Marshal(PublishedEvent{
		Name:       event.EventName(),
		OccurredAt: event.OccurredAt(),
		Payload:    event.Payload(),
	})
	if err != nil {
		return fmt.Errorf("cannot encode %s: %w", event.EventName(), err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if err := l.publisher.Publish(ctx, l.channel, string(data)); err != nil {
		return fmt.Errorf("cannot publish %s to %s: %w", event.EventName(), l.channel, err)
	}

	return nil
}

// DecodePublishedEvent parses a message produced by PublishEventListener.
// The payload is left as generic JSON.
func DecodePublishedEvent(payload string) (PublishedEvent, error) {
	var e PublishedEvent
	if err := json.UnmarshalFromString(payload, &e); err != nil {
		return PublishedEvent{}, fmt.Errorf("cannot decode published event: %w", err)
	}

	return e, nil
}
