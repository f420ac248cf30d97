package redisstore

import (
	"context"

	"github.com/ddd-commerce/backend/domain/pubsub"
	"github.com/redis/go-redis/v9"
)

// PubSubClient implements pubsub.Service on top of redis channels.
type PubSubClient struct {
	rdb *redis.Client
}

type subscription struct {
	rps *redis.PubSub
}

func NewPubSubClient(rdb *redis.Client) *PubSubClient {
	return &PubSubClient{rdb: rdb}
}

func (r *PubSubClient) Publish(ctx context.Context, channel string, message interface{}) error {
	return r.rdb.Publish(ctx, channel, message).Err()
}

func (r *PubSubClient) Subscribe(ctx context.Context, channel string) pubsub.Subscription {
	return &subscription{rps: r.rdb.Subscribe(ctx, channel)}
}

func (s *subscription) ReceiveMessage(ctx context.Context) (pubsub.Message, error) {
	msg, err := s.rps.ReceiveMessage(ctx)
	if err != nil {
		return pubsub.Message{}, err
	}

	return pubsub.Message{
		Channel: msg.Channel,
		Payload: msg.Payload,
	}, nil
}

func (s *subscription) Close() error {
	return s.rps.Close()
}
